package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/betterrest/internal/tui/view"
)

// Headings shown above each control.
const (
	formTitle     = "Better Rest"
	wakeHeading   = "When do you want to wake up?"
	sleepHeading  = "Desired amount of sleep"
	coffeeHeading = "Daily coffee intake"
	actionLabel   = "Calculate"
)

// View renders the TUI.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	showModal := m.mode == ModeModal && m.modalType != ModalNone
	modal := ""
	if showModal {
		modal = m.renderModal()
	}
	m.overlay.SetActive(showModal)
	m.overlay.SetBackground(m.styles.ModalBgColor)

	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      m.renderAppContent(),
		ModalContent:     modal,
		ShowModal:        showModal,
		Overlay:          m.overlay,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderAppContent() string {
	frameW, frameH := m.styles.AppStyle.GetFrameSize()
	innerW := m.width - frameW
	innerH := m.height - frameH - footerHeight
	if innerW <= 0 || innerH <= 0 {
		return "Terminal too small"
	}

	form := view.PlaceCenter(innerW, innerH, view.RenderForm(m.formViewState()), m.styles.colorBg)
	footer := view.RenderFooter(m.footerViewState(innerW))

	content := lipgloss.JoinVertical(lipgloss.Left, form, footer)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) formViewState() view.FormViewState {
	return view.FormViewState{
		Title: formTitle,
		Rows: []view.FormRow{
			{
				Heading: wakeHeading,
				Sep:     ":",
				Parts: []view.FormPart{
					m.formPart(FieldWakeHour, fmt.Sprintf("%02d", m.form.Hour)),
					m.formPart(FieldWakeMinute, fmt.Sprintf("%02d", m.form.Minute)),
				},
			},
			{
				Heading: sleepHeading,
				Parts:   []view.FormPart{m.formPart(FieldSleep, m.form.SleepLabel())},
			},
			{
				Heading: coffeeHeading,
				Parts:   []view.FormPart{m.formPart(FieldCoffee, m.form.CoffeeLabel())},
			},
		},
		Action: m.renderAction(),
		Styles: view.FormStyles{
			Title:      m.styles.TitleStyle,
			Heading:    m.styles.HeadingStyle,
			Value:      m.styles.ValueStyle,
			Arrow:      m.styles.ArrowStyle,
			ArrowFocus: m.styles.ArrowFocusStyle,
			Card:       m.styles.CardStyle,
		},
	}
}

func (m Model) formPart(f Field, text string) view.FormPart {
	return view.FormPart{
		Text:       text,
		Focused:    m.focus == f && m.mode == ModeNormal,
		FocusStyle: m.styles.FieldFocusStyle(f),
	}
}

func (m Model) renderAction() string {
	if m.calculating {
		return m.styles.ActionBusyStyle.Render(m.spinner.View() + " Calculating...")
	}
	return m.styles.ActionStyle.Render(actionLabel)
}

func (m Model) footerViewState(width int) view.FooterViewState {
	return view.FooterViewState{
		Width:      width,
		StatusLine: m.renderStatus(),
		HelpLine:   m.renderHelp(),
		Bg:         m.styles.colorBg,
	}
}
