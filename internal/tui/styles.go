// Package tui provides the terminal user interface for betterrest.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/betterrest/internal/tui/theme"
)

// Width of the form card, borders excluded.
const formWidth = 40

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorSleep       lipgloss.Color
	colorCoffee      lipgloss.Color
	colorWake        lipgloss.Color
	colorWarning     lipgloss.Color

	colorSleepBg  lipgloss.Color
	colorCoffeeBg lipgloss.Color
	colorWakeBg   lipgloss.Color

	TitleStyle   lipgloss.Style
	HeadingStyle lipgloss.Style
	CardStyle    lipgloss.Style

	// Field values, plain and focused
	ValueStyle        lipgloss.Style
	WakeFocusStyle    lipgloss.Style
	SleepFocusStyle   lipgloss.Style
	CoffeeFocusStyle  lipgloss.Style
	ArrowStyle        lipgloss.Style
	ArrowFocusStyle   lipgloss.Style
	ActionStyle       lipgloss.Style
	ActionBusyStyle   lipgloss.Style
	SpinnerStyle      lipgloss.Style
	StatusStyle       lipgloss.Style
	HelpStyle         lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalBackdropColor     lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalResultStyle       lipgloss.Style
	ModalErrorStyle        lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorSleep = palette.Sleep
	s.colorCoffee = palette.Coffee
	s.colorWake = palette.Wake
	s.colorWarning = palette.Warning

	s.colorSleepBg = palette.SleepBg
	s.colorCoffeeBg = palette.CoffeeBg
	s.colorWakeBg = palette.WakeBg

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.HeadingStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBgHighlight).
		Width(formWidth)

	s.CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		BorderBackground(s.colorBg).
		Background(s.colorBgHighlight).
		Padding(0, 1)

	s.ValueStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgHighlight).
		Padding(0, 1)

	focused := s.ValueStyle.Bold(true)
	s.WakeFocusStyle = focused.Foreground(palette.TextOnWake).Background(s.colorWakeBg)
	s.SleepFocusStyle = focused.Foreground(s.colorSleep).Background(s.colorSleepBg)
	s.CoffeeFocusStyle = focused.Foreground(s.colorCoffee).Background(s.colorCoffeeBg)

	s.ArrowStyle = lipgloss.NewStyle().
		Foreground(s.colorBgSelection).
		Background(s.colorBgHighlight)

	s.ArrowFocusStyle = s.ArrowStyle.
		Foreground(s.colorAccent)

	s.ActionStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnAccent).
		Background(s.colorAccent).
		Bold(true).
		Padding(0, 2)

	s.ActionBusyStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBgSelection).
		Padding(0, 2)

	s.SpinnerStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBgSelection)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	modal := palette.Modal
	s.ModalBgColor = modal.Bg
	s.ModalBackdropColor = modal.Backdrop

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		BorderBackground(modal.Bg).
		Background(modal.Bg).
		Foreground(modal.Text).
		Padding(1, 2)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Background(modal.Bg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modal.Bg).
		Bold(true)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Background(modal.Bg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modal.Bg)

	s.ModalResultStyle = lipgloss.NewStyle().
		Foreground(s.colorWake).
		Background(modal.Bg).
		Bold(true)

	s.ModalErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(modal.Bg)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Background(modal.Panel).
		Foreground(modal.Text).
		Padding(0, 3)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Background(modal.Highlight).
		Foreground(modal.ReverseText).
		Padding(0, 3).
		Underline(true)

	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		Padding(1, 2)

	return s
}

// FieldFocusStyle returns the focused value style for a field.
func (s *Styles) FieldFocusStyle(f Field) lipgloss.Style {
	switch f {
	case FieldSleep:
		return s.SleepFocusStyle
	case FieldCoffee:
		return s.CoffeeFocusStyle
	default:
		return s.WakeFocusStyle
	}
}
