package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/betterrest/internal/bedtime"
	"github.com/javiermolinar/betterrest/internal/config"
)

// Run starts the TUI.
func Run(p bedtime.Predictor, cfg *config.Config) error {
	return RunWithDebug(p, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(p bedtime.Predictor, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(bedtime.NewCalculator(p), cfg)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
