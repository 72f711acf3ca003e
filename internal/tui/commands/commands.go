// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/betterrest/internal/bedtime"
)

// CalculateTimeout bounds a single calculation, remote predictors included.
const CalculateTimeout = 30 * time.Second

// CalculatedMsg is sent when a calculation finishes.
type CalculatedMsg struct {
	ID      string
	Outcome bedtime.Outcome
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// Calculate creates a command that runs one bedtime calculation.
func Calculate(calc *bedtime.Calculator, in bedtime.Input, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), CalculateTimeout)
		defer cancel()

		return CalculatedMsg{ID: id, Outcome: calc.Calculate(ctx, in)}
	}
}

// Status creates a command that shows a temporary status message.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}
