package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	fsserver "github.com/HendryAvila/facilistyles/internal/server"
	"github.com/HendryAvila/facilistyles/internal/tui"
)

// logFile is where the interactive UI logs, since stderr shares the screen.
const logFile = "facilistyles.log"

func newPlayCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Take the quiz in the terminal (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, f)
		},
	}
}

func runPlay(cmd *cobra.Command, f *flags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	var outputs []string
	if cfg.DataDir != "" && os.MkdirAll(cfg.DataDir, 0o700) == nil {
		outputs = []string{filepath.Join(cfg.DataDir, logFile)}
	}

	cfg, logger, cat, err := setup(cmd, f, outputs...)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	sess, err := fsserver.NewSession(cfg, logger, cat)
	if err != nil {
		return err
	}
	prefs, cleanup := fsserver.OpenPrefs(cfg, logger)
	defer cleanup()

	m := tui.New(sess, cat, tui.Options{
		Prefs:    prefs,
		Logger:   logger,
		ShareURL: cfg.ShareURL,
		Dark:     cfg.DarkMode,
	})
	return tui.Run(m)
}
