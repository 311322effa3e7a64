package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/facilistyles/internal/report"
)

// TypesTool handles the facili_types MCP tool.
type TypesTool struct {
	runner *Runner
}

// NewTypesTool creates a TypesTool.
func NewTypesTool(r *Runner) *TypesTool {
	return &TypesTool{runner: r}
}

// Definition returns the MCP tool definition for registration.
func (t *TypesTool) Definition() mcp.Tool {
	return mcp.NewTool("facili_types",
		mcp.WithDescription("List all sixteen facilitator types grouped into their four families."),
	)
}

// Handle processes the facili_types tool call.
func (t *TypesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	md := report.Overview(t.runner.Catalog(), t.runner.LastResultType())
	return mcp.NewToolResultText(md), nil
}

// TypeTool handles the facili_type MCP tool.
type TypeTool struct {
	runner *Runner
}

// NewTypeTool creates a TypeTool.
func NewTypeTool(r *Runner) *TypeTool {
	return &TypeTool{runner: r}
}

// Definition returns the MCP tool definition for registration.
func (t *TypeTool) Definition() mcp.Tool {
	return mcp.NewTool("facili_type",
		mcp.WithDescription("Show one facilitator type in detail, including its tendencies and compatibility."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Type id as listed by facili_types, e.g. 'conductor'"),
		),
	)
}

// Handle processes the facili_type tool call.
func (t *TypeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("`id` is required."), nil
	}
	ft, ok := t.runner.Catalog().TypeByID(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Unknown type %q. Call `facili_types` for the list.", id)), nil
	}
	return mcp.NewToolResultText(report.TypeDetail(t.runner.Catalog(), ft)), nil
}
