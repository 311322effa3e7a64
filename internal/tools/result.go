package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/facilistyles/internal/report"
)

// ResultTool handles the facili_result MCP tool.
type ResultTool struct {
	runner *Runner
}

// NewResultTool creates a ResultTool.
func NewResultTool(r *Runner) *ResultTool {
	return &ResultTool{runner: r}
}

// Definition returns the MCP tool definition for registration.
func (t *ResultTool) Definition() mcp.Tool {
	return mcp.NewTool("facili_result",
		mcp.WithDescription(
			"Return the full result report once the quiz is complete: facilitator type, axis scores, "+
				"strengths, growth hints, co-facilitation advice, compatibility and share text.",
		),
	)
}

// Handle processes the facili_result tool call.
func (t *ResultTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st := t.runner.Status()
	if st.Result == nil {
		return mcp.NewToolResultError("No result yet. Finish the quiz first (see `facili_status`)."), nil
	}
	md := report.Result(st.Result, t.runner.Catalog(), report.Options{ShareURL: t.runner.ShareURL()})
	return mcp.NewToolResultText(md), nil
}
