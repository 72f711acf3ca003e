package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/betterrest/internal/tui/view"
)

// OverlayModel centers a modal over the base view.
type OverlayModel struct {
	active  bool
	bgColor lipgloss.Color
}

// NewOverlayModel initializes an overlay model.
func NewOverlayModel() OverlayModel {
	return OverlayModel{}
}

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// SetActive shows or hides the overlay.
func (o *OverlayModel) SetActive(active bool) {
	o.active = active
}

// SetBackground updates the color restored inside the modal after resets.
func (o *OverlayModel) SetBackground(color lipgloss.Color) {
	o.bgColor = color
}

// Render draws content centered on top of base.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 || content == "" {
		return base
	}

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	boxW := 0
	for i, line := range lines {
		lines[i] = view.ReapplyBackground(line, o.bgColor)
		boxW = max(boxW, lipgloss.Width(line))
	}
	boxW = min(boxW, width)

	top := max(0, (height-len(lines))/2)
	left := max(0, (width-boxW)/2)

	base = view.PadLinesWithBackground(base, width, height, lipgloss.Color(""))
	return view.Splice(base, strings.Join(lines, "\n"), top, left)
}
