package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PlaceCenter centers content in a width x height box filled with bg.
func PlaceCenter(width, height int, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceBackground(bg),
	)
	return PadLinesWithBackground(placed, width, height, bg)
}

// PadLinesWithBackground pads or trims content to exactly height lines, each
// at least width cells wide.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	fill := lipgloss.NewStyle().Background(bg)

	lines := strings.Split(content, "\n")
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		if gap := width - lipgloss.Width(line); gap > 0 {
			line += fill.Render(strings.Repeat(" ", gap))
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}

// Splice writes overlay onto base with its top-left corner at (top, left).
// Cells of base outside the overlay are kept.
func Splice(base, overlay string, top, left int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(overlay, "\n") {
		row := top + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		under := baseLines[row]
		w := lipgloss.Width(line)
		baseLines[row] = ansi.Cut(under, 0, left) + line + ansi.ResetStyle + ansi.Cut(under, left+w, lipgloss.Width(under))
	}
	return strings.Join(baseLines, "\n")
}

// ReapplyBackground restores bg after every reset inside line, so nested
// styles do not punch holes into a filled box.
func ReapplyBackground(line string, bg lipgloss.Color) string {
	if bg == "" {
		return line
	}
	seq := ansi.Style{}.BackgroundColor(ansi.HexColor(string(bg))).String()
	line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+seq)
	return strings.ReplaceAll(line, "\x1b[49m", "\x1b[49m"+seq)
}
