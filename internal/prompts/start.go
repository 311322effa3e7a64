// Package prompts implements MCP prompt handlers for FacilitatorStyles.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// StartPrompt handles the facili-start MCP prompt.
// It guides the AI to run the quiz one question at a time.
type StartPrompt struct{}

// NewStartPrompt creates a StartPrompt.
func NewStartPrompt() *StartPrompt {
	return &StartPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StartPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("facili-start",
		mcp.WithPromptDescription(
			"Take the FacilitatorStyles quiz. The assistant asks the 32 questions one by one "+
				"and then explains which of the sixteen facilitator types fits you.",
		),
		mcp.WithArgument("name",
			mcp.ArgumentDescription("How the assistant should address you"),
		),
		mcp.WithArgument("pace",
			mcp.ArgumentDescription(
				"'steady' (one question per message, default) or 'quick' (accept a short reply and move on)",
			),
		),
	)
}

// Handle processes the facili-start prompt request.
func (p *StartPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	name := ""
	pace := "steady"
	if args := req.Params.Arguments; args != nil {
		if n, ok := args["name"]; ok {
			name = n
		}
		if v, ok := args["pace"]; ok && v != "" {
			pace = v
		}
	}

	greeting := "I want to find out my facilitator style."
	if name != "" {
		greeting = fmt.Sprintf("I'm %s and I want to find out my facilitator style.", name)
	}

	paceNote := "Show each question with both options and wait for my answer before moving on."
	if pace == "quick" {
		paceNote = "Keep it brisk: show each question compactly and accept a bare number as my answer."
	}

	return &mcp.GetPromptResult{
		Description: "Take the FacilitatorStyles quiz",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"%s\n\n"+
						"Please:\n"+
						"1. Run `facili_start` (use restart=true if a quiz is already running)\n"+
						"2. For each question, let me answer from 1 (first option) to 6 (second option)\n"+
						"3. Record it with `facili_answer` and advance=true\n"+
						"4. If I want to change an earlier answer, use `facili_prev`\n"+
						"5. When the quiz completes, run `facili_result` and walk me through it\n\n"+
						"%s",
					greeting, paceNote,
				)),
			},
		},
	}, nil
}
