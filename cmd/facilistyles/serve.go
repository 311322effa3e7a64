package main

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	fsserver "github.com/HendryAvila/facilistyles/internal/server"
)

func newServeCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio transport)",
		Long: `Starts an MCP server on stdin/stdout so an AI assistant can run the quiz.

Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "facilistyles": {
        "command": "facilistyles",
        "args": ["serve"]
      }
    }
  }`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, cat, err := setup(cmd, f)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			s, cleanup, err := fsserver.New(cfg, logger, cat)
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}
			defer cleanup()

			// ServeStdio handles SIGINT and SIGTERM itself.
			return server.ServeStdio(s)
		},
	}
}
