package view

// Outcome dialog labels.
const (
	DismissLabel = "[Enter] OK"
	CopyLabel    = "[y] Copy"
)

// OutcomeFooter renders the footer for the outcome modal. Only a successful
// outcome has something to copy.
func OutcomeFooter(ok bool, styles ModalStyles) string {
	if ok {
		return RenderModalButtons(styles, DismissLabel, CopyLabel)
	}
	return RenderModalButtons(styles, DismissLabel)
}
