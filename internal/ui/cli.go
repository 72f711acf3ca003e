package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/betterrest/internal/bedtime"
	"github.com/javiermolinar/betterrest/internal/config"
	"github.com/javiermolinar/betterrest/internal/predict"
	"github.com/javiermolinar/betterrest/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	predictor bedtime.Predictor
	config    *config.Config
	root      *cobra.Command
	debug     bool // Enable debug logging
}

// NewApp creates a new CLI application. A nil predictor is built from the
// model section of cfg when first needed.
func NewApp(p bedtime.Predictor, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{predictor: p, config: cfg}

	a.root = &cobra.Command{
		Use:   "betterrest",
		Short: "Find out when to go to bed",
		Long: `Better Rest recommends a bedtime from the time you want to wake up,
how much sleep you would like, and how much coffee you drink each day.

Run without arguments to open the interactive form.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := a.getPredictor()
			if err != nil {
				return err
			}
			return tui.RunWithDebug(p, a.config, a.debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+tui.DebugLogPath+")")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.calcCmd())

	return a
}

func (a *App) getPredictor() (bedtime.Predictor, error) {
	if a.predictor != nil {
		return a.predictor, nil
	}
	p, err := predict.New(a.config.Model)
	if err != nil {
		return nil, fmt.Errorf("creating predictor: %w", err)
	}
	a.predictor = p
	return p, nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "betterrest %s (commit: %s)\n", Version, Commit)
		},
	}
}

// SetArgs overrides the command line arguments, mainly for tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
