// Package tools implements the FacilitatorStyles MCP tools.
//
// Each tool follows the same shape:
// - A struct with its dependencies injected via constructor
// - Definition() returns the mcp.Tool schema
// - Handle() processes the request and returns a result
//
// Quiz tools share one Runner, which serializes access to the session.
package tools

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/facilistyles/internal/quiz"
)

// boolArg extracts a boolean argument from a tool request.
func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}

// toolError maps caller mistakes to tool-level errors the agent can act
// on. Anything else is an internal failure and is returned as a Go error.
func toolError(err error) (*mcp.CallToolResult, error) {
	switch {
	case errors.Is(err, quiz.ErrNoAnswer):
		return mcp.NewToolResultError("The current question has no answer yet. Call `facili_answer` with a score from 1 to 6 first."), nil
	case errors.Is(err, quiz.ErrAtFirstQuestion):
		return mcp.NewToolResultError("Already at the first question."), nil
	case errors.Is(err, quiz.ErrInvalidTransition):
		return mcp.NewToolResultError(fmt.Sprintf("Not allowed right now: %v. Check `facili_status`.", err)), nil
	case errors.Is(err, quiz.ErrScoreOutOfRange):
		return mcp.NewToolResultError(fmt.Sprintf("Invalid score: %v.", err)), nil
	}
	return nil, err
}

// questionText renders the current question of a status snapshot.
func questionText(st quiz.Status) string {
	q := st.Question
	if q == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "## Question %d of %d\n\n", st.Index+1, st.Total)
	fmt.Fprintf(&b, "**Progress:** %d%%\n\n", st.Progress)
	fmt.Fprintf(&b, "**%s**\n\n", q.Text)
	fmt.Fprintf(&b, "- **%d** = %s\n", quiz.ScaleMin, q.OptionA)
	fmt.Fprintf(&b, "- **%d** = %s\n\n", quiz.ScaleMax, q.OptionB)
	fmt.Fprintf(&b, "Answer on a scale from %d to %d; values in between lean toward the nearer option.\n", quiz.ScaleMin, quiz.ScaleMax)
	if st.HasCurrentAnswer {
		fmt.Fprintf(&b, "\n**Current answer:** %d\n", st.CurrentAnswer)
	}
	return b.String()
}

// statusText summarizes a status snapshot for any step.
func statusText(st quiz.Status) string {
	switch st.Step {
	case quiz.StepTop:
		return "# FacilitatorStyles\n\nNo quiz in progress. Call `facili_start` to begin."
	case quiz.StepResult:
		if st.Result != nil {
			return fmt.Sprintf("# Quiz complete\n\nResult: **%s**. Call `facili_result` for the full report or `facili_restart` to start over.",
				st.Result.Type.Name)
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Quiz in progress\n\n**Answered:** %d of %d\n\n", st.Answered, st.Total)
	b.WriteString(questionText(st))
	return b.String()
}
