// FacilitatorStyles: a 32-question quiz that finds your facilitator type.
//
// Usage:
//
//	facilistyles            # Take the quiz in the terminal
//	facilistyles serve      # Start the MCP server (stdio transport)
//	facilistyles types      # List the sixteen types
//	facilistyles type <id>  # Show one type in detail
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HendryAvila/facilistyles/internal/catalog"
	"github.com/HendryAvila/facilistyles/internal/config"
	"github.com/HendryAvila/facilistyles/internal/logging"
	fsserver "github.com/HendryAvila/facilistyles/internal/server"
)

// flags holds command-line overrides of the environment configuration.
type flags struct {
	logLevel string
	seed     int64
	noPrefs  bool
	light    bool
	dataDir  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   "facilistyles",
		Short: "Find your facilitator type in 32 questions",
		Long: `FacilitatorStyles asks 32 forced-choice questions about how you run
workshops and meetings, scores four axes (intervention, perception,
judgment, engagement) and tells you which of sixteen facilitator types
you are.

Run without a subcommand to take the quiz in the terminal.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, f)
		},
	}

	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().Int64Var(&f.seed, "seed", 0, "Fix the question order (0 = random)")
	root.PersistentFlags().BoolVar(&f.noPrefs, "no-prefs", false, "Do not read or save the last result")
	root.PersistentFlags().BoolVar(&f.light, "light", false, "Use the light color theme")
	root.PersistentFlags().StringVar(&f.dataDir, "data-dir", "", "Directory for the preference database")

	root.AddCommand(
		newPlayCmd(f),
		newServeCmd(f),
		newTypesCmd(f),
		newTypeCmd(f),
		newVersionCmd(),
	)
	return root
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(cmd *cobra.Command, f *flags) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	pf := cmd.Flags()
	if pf.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if pf.Changed("seed") {
		cfg.Seed = f.seed
	}
	if pf.Changed("no-prefs") {
		cfg.NoPrefs = f.noPrefs
	}
	if pf.Changed("light") {
		cfg.DarkMode = !f.light
	}
	if pf.Changed("data-dir") {
		cfg.DataDir = f.dataDir
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// setup loads configuration, the logger and the content catalog.
func setup(cmd *cobra.Command, f *flags, logOutputs ...string) (config.Config, *zap.Logger, *catalog.Catalog, error) {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	logger, err := logging.New(cfg.LogLevel, logOutputs...)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	cat, err := catalog.Load()
	if err != nil {
		_ = logger.Sync()
		return config.Config{}, nil, nil, fmt.Errorf("loading catalog: %w", err)
	}
	return cfg, logger, cat, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "facilistyles v%s\n", fsserver.Version)
		},
	}
}
