package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/facilistyles/internal/quiz"
)

// StartTool handles the facili_start MCP tool.
type StartTool struct {
	runner *Runner
}

// NewStartTool creates a StartTool.
func NewStartTool(r *Runner) *StartTool {
	return &StartTool{runner: r}
}

// Definition returns the MCP tool definition for registration.
func (t *StartTool) Definition() mcp.Tool {
	return mcp.NewTool("facili_start",
		mcp.WithDescription(
			"Start the FacilitatorStyles quiz: 32 questions in random order, each answered on a 1-6 scale. "+
				"Returns the first question. Fails if a quiz is already running unless `restart` is true.",
		),
		mcp.WithBoolean("restart",
			mcp.Description("Discard any quiz in progress and start over (default: false)"),
		),
	)
}

// Handle processes the facili_start tool call.
func (t *StartTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	restart := boolArg(req, "restart", false)
	st, err := t.runner.Do(func(s *quiz.Session) error {
		if restart {
			s.Restart()
		}
		return s.Start()
	})
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText("# FacilitatorStyles quiz started\n\n" + questionText(st)), nil
}
