// Package tui provides the terminal user interface for betterrest.
package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/betterrest/internal/bedtime"
	"github.com/javiermolinar/betterrest/internal/config"
	"github.com/javiermolinar/betterrest/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone ModalType = iota
	ModalOutcome
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	calc   *bedtime.Calculator
	config *config.Config
	now    func() time.Time
	copy   func(string) error

	// Theme and styles
	theme  *theme.Theme
	styles *Styles
	keys   keyMap

	// Draft form values, read only when a calculation starts
	form  Form
	focus Field

	// Calculation state. Only one calculation runs at a time.
	calculating bool
	calcID      string
	spinner     spinner.Model

	// Last outcome, shown in the modal
	mode      Mode
	modalType ModalType
	outcome   bedtime.Outcome
	clock24   bool

	// Overlay state
	overlay OverlayModel

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithNow overrides the clock used to seed the wake time and date inputs.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
	}
}

// WithClipboard overrides how the bedtime is copied.
func WithClipboard(copyFn func(string) error) ModelOption {
	return func(m *Model) {
		m.copy = copyFn
	}
}

// New creates a new TUI model.
func New(calc *bedtime.Calculator, cfg *config.Config, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t = theme.MustLoad("mocha")
	}
	styles := NewStyles(t)

	m := &Model{
		calc:    calc,
		config:  cfg,
		now:     time.Now,
		copy:    clipboard.WriteAll,
		theme:   t,
		styles:  styles,
		keys:    defaultKeyMap(),
		focus:   FieldWakeHour,
		spinner: newSpinner(styles),
		mode:    ModeNormal,
		clock24: cfg.Uses24HourClock(),
		overlay: NewOverlayModel(),
	}

	for _, opt := range opts {
		opt(m)
	}
	m.form = newForm(cfg.Defaults, m.now())

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Form returns the current draft values.
func (m Model) Form() Form {
	return m.form
}

// Focus returns the focused field.
func (m Model) Focus() Field {
	return m.focus
}

// Calculating reports whether a calculation is in flight.
func (m Model) Calculating() bool {
	return m.calculating
}

// Outcome returns the outcome currently shown, if any.
func (m Model) Outcome() (bedtime.Outcome, bool) {
	if m.modalType != ModalOutcome {
		return bedtime.Outcome{}, false
	}
	return m.outcome, true
}

// newSpinner returns a spinner with a fresh ID. Ticks addressed to an older
// spinner are dropped by its Update.
func newSpinner(styles *Styles) spinner.Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = styles.SpinnerStyle
	return sp
}
