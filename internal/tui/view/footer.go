package view

import "github.com/charmbracelet/lipgloss"

// FooterViewState holds the strings needed to render the footer section.
type FooterViewState struct {
	Width      int
	StatusLine string
	HelpLine   string
	Bg         lipgloss.Color
}

// RenderFooter renders the status and help lines, padded to Width.
func RenderFooter(state FooterViewState) string {
	status := state.StatusLine
	if status == "" {
		status = " "
	}
	return PadLinesWithBackground(status+"\n"+state.HelpLine, state.Width, 2, state.Bg)
}
