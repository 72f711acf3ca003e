package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderModalButtons_UsesModalBodySeparator(t *testing.T) {
	styles := ModalStyles{
		ModalBodyStyle:         lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		ModalButtonStyle:       lipgloss.NewStyle(),
		ModalButtonActiveStyle: lipgloss.NewStyle(),
	}

	view := RenderModalButtons(styles, DismissLabel, CopyLabel)
	sep := styles.ModalBodyStyle.Render(" ")
	if !strings.Contains(view, sep) {
		t.Fatalf("expected modal button separator to use modal body style")
	}
}

func TestOutcomeFooter(t *testing.T) {
	styles := ModalStyles{}

	success := OutcomeFooter(true, styles)
	if !strings.Contains(success, DismissLabel) || !strings.Contains(success, CopyLabel) {
		t.Fatalf("expected dismiss and copy on success, got %q", success)
	}

	failure := OutcomeFooter(false, styles)
	if !strings.Contains(failure, DismissLabel) || strings.Contains(failure, CopyLabel) {
		t.Fatalf("expected a single dismiss action on failure, got %q", failure)
	}
}

func TestRenderModalFrame(t *testing.T) {
	out := ansi.Strip(RenderModalFrame("Error", "Sorry, there was a problem calculating your bedtime.", DismissLabel, ModalStyles{}))

	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("lines = %d, want 5:\n%s", len(lines), out)
	}
	if strings.TrimSpace(lines[0]) != "Error" || strings.TrimSpace(lines[4]) != DismissLabel {
		t.Fatalf("unexpected frame:\n%s", out)
	}
}
