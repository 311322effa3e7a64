package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ResultPrompt handles the facili-result MCP prompt.
// It asks the AI to explain the finished result around one topic.
type ResultPrompt struct{}

// NewResultPrompt creates a ResultPrompt.
func NewResultPrompt() *ResultPrompt {
	return &ResultPrompt{}
}

var resultFocus = map[string]string{
	"strengths":      "Focus on where I shine and how to lean on it in my next session.",
	"growth":         "Focus on my weak spots and the growth hints; suggest one thing to try next week.",
	"cofacilitation": "Focus on co-facilitation: how I work as main and as sub facilitator, and which types pair well with me.",
}

// Definition returns the MCP prompt definition for registration.
func (p *ResultPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("facili-result",
		mcp.WithPromptDescription("Explain my FacilitatorStyles result and what to do with it."),
		mcp.WithArgument("focus",
			mcp.ArgumentDescription("'strengths', 'growth' or 'cofacilitation'. Default: an overall summary"),
		),
	)
}

// Handle processes the facili-result prompt request.
func (p *ResultPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	focus := "Give me an overall summary, then one concrete tip per axis."
	if args := req.Params.Arguments; args != nil {
		if f, ok := resultFocus[args["focus"]]; ok {
			focus = f
		}
	}

	return &mcp.GetPromptResult{
		Description: "Explain the FacilitatorStyles result",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Run `facili_result` and explain my facilitator type in plain words. "+
						"If the quiz is not finished, run `facili_status` and help me complete it first.\n\n%s",
					focus,
				)),
			},
		},
	}, nil
}
