package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HendryAvila/facilistyles/internal/catalog"
	"github.com/HendryAvila/facilistyles/internal/config"
	"github.com/HendryAvila/facilistyles/internal/report"
	fsserver "github.com/HendryAvila/facilistyles/internal/server"
)

// renderWidth is the word-wrap width for markdown printed to the terminal.
const renderWidth = 80

func newTypesCmd(f *flags) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the sixteen facilitator types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, cat, err := setup(cmd, f)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			last := ""
			prefs, cleanup := fsserver.OpenPrefs(cfg, logger)
			defer cleanup()
			if prefs != nil {
				if id, ok, err := prefs.LastResultType(); err == nil && ok {
					last = id
				}
			}
			return printMarkdown(cmd, cfg, plain, report.Overview(cat, last))
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Print raw markdown")
	return cmd
}

func newTypeCmd(f *flags) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "type <id>",
		Short: "Show one facilitator type in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, cat, err := setup(cmd, f)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			t, ok := cat.TypeByID(args[0])
			if !ok {
				return fmt.Errorf("unknown type %q, run 'facilistyles types' for the list", args[0])
			}
			return printMarkdown(cmd, cfg, plain, report.TypeDetail(cat, t))
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return typeIDs(catalog.MustLoad()), cobra.ShellCompDirectiveNoFileComp
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Print raw markdown")
	return cmd
}

func typeIDs(c *catalog.Catalog) []string {
	types := c.Types()
	ids := make([]string, 0, len(types))
	for _, t := range types {
		ids = append(ids, t.ID)
	}
	return ids
}

func printMarkdown(cmd *cobra.Command, cfg config.Config, plain bool, md string) error {
	out := md
	if !plain {
		rendered, err := report.Render(md, renderWidth, cfg.DarkMode)
		if err != nil {
			return err
		}
		out = rendered
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
