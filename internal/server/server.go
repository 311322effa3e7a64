// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools, prompts and resources that depend on them.
// No quiz logic lives here, only wiring.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/HendryAvila/facilistyles/internal/catalog"
	"github.com/HendryAvila/facilistyles/internal/config"
	"github.com/HendryAvila/facilistyles/internal/prefs"
	"github.com/HendryAvila/facilistyles/internal/prompts"
	"github.com/HendryAvila/facilistyles/internal/quiz"
	"github.com/HendryAvila/facilistyles/internal/resources"
	"github.com/HendryAvila/facilistyles/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered.
//
// The returned cleanup function closes the preference store and must be
// called on shutdown (typically via defer). It is always non-nil and safe
// to call even if preferences are disabled.
func New(cfg config.Config, logger *zap.Logger, cat *catalog.Catalog) (*server.MCPServer, func(), error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	sess, err := NewSession(cfg, logger, cat)
	if err != nil {
		return nil, noop, err
	}

	// Preferences are optional: if the store cannot be opened the quiz
	// still works, only the last-result highlight is lost.
	store, cleanup := OpenPrefs(cfg, logger)

	runner := tools.NewRunner(sess, cat, store, logger, cfg.ShareURL)

	s := server.NewMCPServer(
		"facilistyles",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register quiz tools ---

	startTool := tools.NewStartTool(runner)
	s.AddTool(startTool.Definition(), startTool.Handle)

	answerTool := tools.NewAnswerTool(runner)
	s.AddTool(answerTool.Definition(), answerTool.Handle)

	nextTool := tools.NewNextTool(runner)
	s.AddTool(nextTool.Definition(), nextTool.Handle)

	prevTool := tools.NewPrevTool(runner)
	s.AddTool(prevTool.Definition(), prevTool.Handle)

	restartTool := tools.NewRestartTool(runner)
	s.AddTool(restartTool.Definition(), restartTool.Handle)

	statusTool := tools.NewStatusTool(runner)
	s.AddTool(statusTool.Definition(), statusTool.Handle)

	resultTool := tools.NewResultTool(runner)
	s.AddTool(resultTool.Definition(), resultTool.Handle)

	// --- Register catalog tools ---

	typesTool := tools.NewTypesTool(runner)
	s.AddTool(typesTool.Definition(), typesTool.Handle)

	typeTool := tools.NewTypeTool(runner)
	s.AddTool(typeTool.Definition(), typeTool.Handle)

	// --- Register prompts ---

	startPrompt := prompts.NewStartPrompt()
	s.AddPrompt(startPrompt.Definition(), startPrompt.Handle)

	resultPrompt := prompts.NewResultPrompt()
	s.AddPrompt(resultPrompt.Definition(), resultPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(runner, cat)
	s.AddResource(resourceHandler.StatusResource(), resourceHandler.HandleStatus)
	s.AddResource(resourceHandler.TypesResource(), resourceHandler.HandleTypes)

	logger.Info("mcp server ready", zap.String("version", Version), zap.Bool("prefs", store != nil))
	return s, cleanup, nil
}

// NewSession builds a quiz session from configuration. A non-zero seed
// makes the question order reproducible.
func NewSession(cfg config.Config, logger *zap.Logger, cat *catalog.Catalog) (*quiz.Session, error) {
	opts := []quiz.Option{quiz.WithLogger(logger.Named("quiz"))}
	if cfg.Seed != 0 {
		opts = append(opts, quiz.WithShuffler(quiz.NewSeededShuffler(cfg.Seed)))
	}
	sess, err := quiz.NewSession(cat, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating quiz session: %w", err)
	}
	return sess, nil
}

// OpenPrefs opens the preference store unless disabled. On failure it logs
// a warning and returns a nil store. The cleanup is always non-nil.
func OpenPrefs(cfg config.Config, logger *zap.Logger) (tools.Preferences, func()) {
	if cfg.NoPrefs {
		return nil, noop
	}
	store, err := prefs.New(prefs.Config{DataDir: cfg.DataDir, MaxAge: cfg.PrefsMaxAge})
	if err != nil {
		logger.Warn("preferences disabled", zap.Error(err))
		return nil, noop
	}
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Warn("preference store close", zap.Error(err))
		}
	}
}

// noop is a no-op cleanup function used when preferences are disabled.
func noop() {}

// serverInstructions returns the system instructions for the MCP server.
func serverInstructions() string {
	return `You have access to FacilitatorStyles, a quiz that tells a workshop or meeting facilitator which of sixteen facilitator types they are.

## HOW THE QUIZ WORKS

- 32 questions, eight per axis, shown in random order.
- Each question has two options. The user answers from 1 (fully the first option) to 6 (fully the second option).
- Four axes: intervention (trigger / watch), perception (observe / insight), judgment (goal / relation) and engagement (design / improvise).
- The four tendencies together select one of sixteen types, grouped into four families.

## RUNNING A QUIZ

1. Call facili_start. If a quiz is already running, ask before passing restart=true.
2. Show the question and both options exactly as returned. Do not answer on the user's behalf.
3. Record the user's number with facili_answer (advance=true moves on in the same call).
4. Use facili_prev when the user wants to revisit an answer. Earlier answers are kept.
5. After the last question the quiz scores itself. Call facili_result and explain the report.

## OTHER TOOLS

- facili_status: where the quiz stands.
- facili_restart: throw everything away and go back to the start.
- facili_types / facili_type: browse the sixteen types without taking the quiz.

## RULES

- Never invent scores or skip questions; every question needs the user's own answer.
- Present the result as a tendency, not a fixed label. Balanced axes mean both styles are available.
`
}
