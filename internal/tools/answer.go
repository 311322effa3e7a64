package tools

import (
	"context"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/facilistyles/internal/quiz"
)

// AnswerTool handles the facili_answer MCP tool.
type AnswerTool struct {
	runner *Runner
}

// NewAnswerTool creates an AnswerTool.
func NewAnswerTool(r *Runner) *AnswerTool {
	return &AnswerTool{runner: r}
}

// Definition returns the MCP tool definition for registration.
func (t *AnswerTool) Definition() mcp.Tool {
	return mcp.NewTool("facili_answer",
		mcp.WithDescription(
			"Record the answer to the current question. 1 leans fully toward the first option, "+
				"6 fully toward the second. Answering again replaces the previous answer. "+
				"Set `advance` to move on in the same call.",
		),
		mcp.WithNumber("score",
			mcp.Required(),
			mcp.Description("Score from 1 to 6"),
			mcp.Min(quiz.ScaleMin),
			mcp.Max(quiz.ScaleMax),
		),
		mcp.WithBoolean("advance",
			mcp.Description("Go to the next question after recording (default: false)"),
		),
	)
}

// Handle processes the facili_answer tool call.
func (t *AnswerTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, present := req.GetArguments()["score"]
	if !present {
		return mcp.NewToolResultError("`score` is required: a whole number from 1 to 6."), nil
	}
	v, ok := raw.(float64)
	if !ok || v != math.Trunc(v) {
		return mcp.NewToolResultError(fmt.Sprintf("`score` must be a whole number from 1 to 6, got %v.", raw)), nil
	}
	score := int(v)
	advance := boolArg(req, "advance", false)

	st, err := t.runner.Do(func(s *quiz.Session) error {
		if err := s.Answer(score); err != nil {
			return err
		}
		if advance {
			return s.Next()
		}
		return nil
	})
	if err != nil {
		return toolError(err)
	}
	if st.Step == quiz.StepResult {
		return mcp.NewToolResultText(completedText(st)), nil
	}
	if advance {
		return mcp.NewToolResultText(fmt.Sprintf("Recorded %d.\n\n%s", score, questionText(st))), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Recorded %d for question %d of %d. Call `facili_next` to continue.", score, st.Index+1, st.Total)), nil
}

// completedText announces the transition to the result step.
func completedText(st quiz.Status) string {
	return fmt.Sprintf("# Quiz complete\n\nYou are **%s**: %s\n\nCall `facili_result` for the full report.",
		st.Result.Type.Name, st.Result.Type.Tagline)
}
