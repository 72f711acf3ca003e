package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Status and help lines below the form.
const footerHeight = 2

// renderStatus renders the temporary status message, if any.
func (m Model) renderStatus() string {
	if m.statusMsg == "" {
		return ""
	}
	return m.styles.StatusStyle.Render(m.statusMsg)
}

// renderHelp renders the help bar for the current mode.
func (m Model) renderHelp() string {
	var bindings []key.Binding
	switch m.mode {
	case ModeModal:
		bindings = []key.Binding{m.keys.Dismiss}
		if m.outcome.OK {
			bindings = append(bindings, m.keys.Copy)
		}
	default:
		bindings = []key.Binding{m.keys.Next, m.keys.Decrement, m.keys.Increment, m.keys.Calculate, m.keys.Quit}
	}
	return m.styles.HelpStyle.Render(helpLine(bindings))
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, " | ")
}
