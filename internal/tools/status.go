package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// StatusTool handles the facili_status MCP tool.
type StatusTool struct {
	runner *Runner
}

// NewStatusTool creates a StatusTool.
func NewStatusTool(r *Runner) *StatusTool {
	return &StatusTool{runner: r}
}

// Definition returns the MCP tool definition for registration.
func (t *StatusTool) Definition() mcp.Tool {
	return mcp.NewTool("facili_status",
		mcp.WithDescription(
			"Show where the quiz stands: step, current question, progress and whether it has an answer.",
		),
	)
}

// Handle processes the facili_status tool call.
func (t *StatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(statusText(t.runner.Status())), nil
}
