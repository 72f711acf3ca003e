package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/javiermolinar/betterrest/internal/tui/commands"
)

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Increment key.Binding
	Decrement key.Binding
	Calculate key.Binding
	Quit      key.Binding
	Dismiss   key.Binding
	Copy      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down", "j"),
			key.WithHelp("tab/↓", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up", "k"),
			key.WithHelp("shift+tab/↑", "prev"),
		),
		Increment: key.NewBinding(
			key.WithKeys("right", "l", "+", "="),
			key.WithHelp("→/+", "increase"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←/-", "decrease"),
		),
		Calculate: key.NewBinding(
			key.WithKeys("enter", "c"),
			key.WithHelp("enter", "calculate"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter", "ok"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
	}
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeModal:
		return m.handleModalKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys on the form.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.setFocus(Field((int(m.focus)+1)%int(fieldCount)), "next")

	case key.Matches(msg, m.keys.Prev):
		m.setFocus(Field((int(m.focus)+int(fieldCount)-1)%int(fieldCount)), "prev")

	case key.Matches(msg, m.keys.Increment):
		m.form = m.form.Step(m.focus, 1)

	case key.Matches(msg, m.keys.Decrement):
		m.form = m.form.Step(m.focus, -1)

	case key.Matches(msg, m.keys.Calculate):
		return m.startCalculation()
	}

	return m, nil
}

func (m *Model) setFocus(f Field, reason string) {
	LogFocusChange(m.focus, f, reason)
	m.focus = f
}

// startCalculation snapshots the draft values and runs the calculator.
// It does nothing while a previous calculation is in flight.
func (m Model) startCalculation() (tea.Model, tea.Cmd) {
	if m.calculating {
		return m, nil
	}

	in := m.form.Input(m.now())
	m.calculating = true
	m.calcID = uuid.NewString()
	m.spinner = newSpinner(m.styles)
	LogCalcStart(m.calcID, m.form)

	return m, tea.Batch(
		commands.Calculate(m.calc, in, m.calcID),
		m.spinner.Tick,
	)
}

// handleModalKeys handles keys in modal mode.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalOutcome:
		return m.handleOutcomeKeys(msg)
	default:
		if key.Matches(msg, m.keys.Dismiss) {
			m.closeModal()
		}
	}
	return m, nil
}

func (m Model) handleOutcomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Dismiss):
		m.closeModal()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if !m.outcome.OK {
			return m, nil
		}
		text := m.outcome.Text(m.clock24)
		if err := m.copy(text); err != nil {
			LogError("clipboard", err)
			return m, commands.Status(fmt.Sprintf("Copy failed: %v", err))
		}
		return m, commands.Status("Copied " + text)
	}
	return m, nil
}

func (m *Model) closeModal() {
	m.mode = ModeNormal
	m.modalType = ModalNone
}
