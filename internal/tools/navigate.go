package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/facilistyles/internal/quiz"
)

// NextTool handles the facili_next MCP tool.
type NextTool struct {
	runner *Runner
}

// NewNextTool creates a NextTool.
func NewNextTool(r *Runner) *NextTool {
	return &NextTool{runner: r}
}

// Definition returns the MCP tool definition for registration.
func (t *NextTool) Definition() mcp.Tool {
	return mcp.NewTool("facili_next",
		mcp.WithDescription(
			"Go to the next question. The current question must be answered. "+
				"On the last question this scores the quiz and produces the result.",
		),
	)
}

// Handle processes the facili_next tool call.
func (t *NextTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st, err := t.runner.Do(func(s *quiz.Session) error { return s.Next() })
	if err != nil {
		return toolError(err)
	}
	if st.Step == quiz.StepResult {
		return mcp.NewToolResultText(completedText(st)), nil
	}
	return mcp.NewToolResultText(questionText(st)), nil
}

// PrevTool handles the facili_prev MCP tool.
type PrevTool struct {
	runner *Runner
}

// NewPrevTool creates a PrevTool.
func NewPrevTool(r *Runner) *PrevTool {
	return &PrevTool{runner: r}
}

// Definition returns the MCP tool definition for registration.
func (t *PrevTool) Definition() mcp.Tool {
	return mcp.NewTool("facili_prev",
		mcp.WithDescription("Go back to the previous question. Earlier answers are kept and can be changed."),
	)
}

// Handle processes the facili_prev tool call.
func (t *PrevTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st, err := t.runner.Do(func(s *quiz.Session) error { return s.Prev() })
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(questionText(st)), nil
}

// RestartTool handles the facili_restart MCP tool.
type RestartTool struct {
	runner *Runner
}

// NewRestartTool creates a RestartTool.
func NewRestartTool(r *Runner) *RestartTool {
	return &RestartTool{runner: r}
}

// Definition returns the MCP tool definition for registration.
func (t *RestartTool) Definition() mcp.Tool {
	return mcp.NewTool("facili_restart",
		mcp.WithDescription("Discard the current quiz, its answers and result, and return to the start."),
	)
}

// Handle processes the facili_restart tool call.
func (t *RestartTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	_, _ = t.runner.Do(func(s *quiz.Session) error {
		s.Restart()
		return nil
	})
	return mcp.NewToolResultText("Quiz reset. Call `facili_start` to begin again."), nil
}
