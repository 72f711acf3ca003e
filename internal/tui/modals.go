package tui

import "github.com/javiermolinar/betterrest/internal/tui/view"

// renderModal renders the current modal.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalOutcome:
		return m.renderOutcomeModal()
	default:
		return ""
	}
}

func (m Model) modalStyles() view.ModalStyles {
	return view.ModalStyles{
		ModalHeaderStyle:       m.styles.ModalHeaderStyle,
		ModalTitleStyle:        m.styles.ModalTitleStyle,
		ModalFooterStyle:       m.styles.ModalFooterStyle,
		ModalStyle:             m.styles.ModalStyle,
		ModalButtonStyle:       m.styles.ModalButtonStyle,
		ModalButtonActiveStyle: m.styles.ModalButtonActiveStyle,
		ModalBodyStyle:         m.styles.ModalBodyStyle,
	}
}

// renderOutcomeModal shows the bedtime, or the failure message verbatim.
func (m Model) renderOutcomeModal() string {
	bodyStyle := m.styles.ModalErrorStyle
	if m.outcome.OK {
		bodyStyle = m.styles.ModalResultStyle
	}
	body := bodyStyle.Render(m.outcome.Text(m.clock24))
	footer := view.OutcomeFooter(m.outcome.OK, m.modalStyles())
	return view.RenderModalFrame(m.outcome.Title(), body, footer, m.modalStyles())
}
