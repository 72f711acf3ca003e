package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestPadLinesWithBackground(t *testing.T) {
	out := PadLinesWithBackground("ab\ncdef\nxyz", 5, 2, lipgloss.Color(""))

	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	for i, want := range []string{"ab   ", "cdef "} {
		if lines[i] != want {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
}

func TestSplice(t *testing.T) {
	base := "..........\n..........\n.........."

	out := ansi.Strip(Splice(base, "XX\nYY", 1, 3))

	want := "..........\n...XX.....\n...YY....."
	if out != want {
		t.Fatalf("Splice() =\n%s\nwant\n%s", out, want)
	}
}

func TestSpliceClipsRowsOutsideBase(t *testing.T) {
	out := ansi.Strip(Splice("....", "A\nB\nC", 0, 1))
	if out != ".A.." {
		t.Fatalf("Splice() = %q, want %q", out, ".A..")
	}
}

func TestReapplyBackground(t *testing.T) {
	line := "a" + ansi.ResetStyle + "b"
	if got := ReapplyBackground(line, ""); got != line {
		t.Fatalf("empty bg should leave line untouched, got %q", got)
	}

	got := ReapplyBackground(line, lipgloss.Color("#112233"))
	if strings.Count(got, "\x1b[") < 2 {
		t.Fatalf("expected background sequence after reset, got %q", got)
	}
}
