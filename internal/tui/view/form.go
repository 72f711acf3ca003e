package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FormPart is one adjustable value inside a row, e.g. the hour of a time.
type FormPart struct {
	Text       string
	Focused    bool
	FocusStyle lipgloss.Style
}

// FormRow is a heading followed by one control.
type FormRow struct {
	Heading string
	Parts   []FormPart
	Sep     string // Between parts, e.g. ":"
}

// FormStyles groups the styles needed to render the form card.
type FormStyles struct {
	Title      lipgloss.Style
	Heading    lipgloss.Style
	Value      lipgloss.Style
	Arrow      lipgloss.Style
	ArrowFocus lipgloss.Style
	Card       lipgloss.Style
}

// FormViewState holds the data needed to render the form.
type FormViewState struct {
	Title  string
	Rows   []FormRow
	Action string // Pre-rendered trigger line
	Styles FormStyles
}

// RenderForm renders the title and a card with every row and the action.
func RenderForm(state FormViewState) string {
	st := state.Styles

	blocks := make([]string, 0, len(state.Rows)*3+1)
	for i, row := range state.Rows {
		if i > 0 {
			blocks = append(blocks, st.Heading.Render(""))
		}
		blocks = append(blocks, st.Heading.Render(row.Heading))
		blocks = append(blocks, renderRow(row, st))
	}
	if state.Action != "" {
		blocks = append(blocks, st.Heading.Render(""), state.Action)
	}

	card := st.Card.Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
	if state.Title == "" {
		return card
	}
	return lipgloss.JoinVertical(lipgloss.Left, st.Title.Render(state.Title), "", card)
}

func renderRow(row FormRow, st FormStyles) string {
	focused := false
	parts := make([]string, 0, len(row.Parts))
	for _, p := range row.Parts {
		style := st.Value
		if p.Focused {
			focused = true
			style = p.FocusStyle
		}
		parts = append(parts, style.Render(p.Text))
	}

	arrow := st.Arrow
	if focused {
		arrow = st.ArrowFocus
	}
	sep := st.Value.UnsetPadding().Render(row.Sep)

	var b strings.Builder
	b.WriteString(arrow.Render("‹"))
	b.WriteString(strings.Join(parts, sep))
	b.WriteString(arrow.Render("›"))
	return b.String()
}
