package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Sleep       lipgloss.Color
	Coffee      lipgloss.Color
	Wake        lipgloss.Color
	Warning     lipgloss.Color

	// Tinted panel backgrounds for focused fields.
	SleepBg  lipgloss.Color
	CoffeeBg lipgloss.Color
	WakeBg   lipgloss.Color

	TextOnAccent  lipgloss.Color
	TextOnWarning lipgloss.Color
	TextOnWake    lipgloss.Color

	Modal ModalColors
}

// ModalColors holds modal-specific colors derived from a Theme.
type ModalColors struct {
	Bg          lipgloss.Color
	Border      lipgloss.AdaptiveColor
	Text        lipgloss.AdaptiveColor
	Muted       lipgloss.AdaptiveColor
	Highlight   lipgloss.AdaptiveColor
	Panel       lipgloss.AdaptiveColor
	ReverseText lipgloss.AdaptiveColor
	Backdrop    lipgloss.Color
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t = MustLoad(defaultTheme)
	}

	light := isLightTheme(t.Bg)
	modalBg := coalesce(t.BaseBg, t.BgHighlight, t.Bg)
	modalText := coalesce(t.TextPrimary, t.Fg)

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Sleep:       lipgloss.Color(t.Sleep),
		Coffee:      lipgloss.Color(t.Coffee),
		Wake:        lipgloss.Color(t.Wake),
		Warning:     lipgloss.Color(t.Warning),

		SleepBg:  lipgloss.Color(tint(t.Sleep, t.Bg, light)),
		CoffeeBg: lipgloss.Color(tint(t.Coffee, t.Bg, light)),
		WakeBg:   lipgloss.Color(tint(t.Wake, t.Bg, light)),

		TextOnAccent:  lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		TextOnWarning: lipgloss.Color(chooseTextColor(t.Warning, t.Bg, t.Fg)),
		TextOnWake:    lipgloss.Color(chooseTextColor(t.Wake, t.Bg, t.Fg)),

		Modal: ModalColors{
			Bg:          lipgloss.Color(modalBg),
			Border:      adaptiveColor(coalesce(t.ModalBorder, t.Accent)),
			Text:        adaptiveColor(modalText),
			Muted:       adaptiveColor(coalesce(t.TextMuted, t.FgMuted)),
			Highlight:   adaptiveColor(coalesce(t.Highlight, t.BgSelection, t.Accent)),
			Panel:       adaptiveColor(coalesce(t.BgSelection, t.BgHighlight, t.Bg)),
			ReverseText: lipgloss.AdaptiveColor{Dark: modalBg, Light: modalText},
			Backdrop:    lipgloss.Color(coalesce(t.BgSelection, t.BgHighlight, t.Bg)),
		},
	}
}

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

// tint mixes an accent into the background: a quarter of the accent on light
// themes, a third on dark ones.
func tint(accent, bg string, light bool) string {
	ratio := 0.66
	if light {
		ratio = 0.75
	}
	return blendColors(accent, bg, ratio)
}

func adaptiveColor(hex string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: hex, Light: hex}
}

// chooseTextColor picks whichever of lightText/darkText contrasts more with bg.
func chooseTextColor(bg, lightText, darkText string) string {
	if contrastRatio(bg, lightText) >= contrastRatio(bg, darkText) {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// relativeLuminance returns the WCAG luminance of a hex color, 0 if invalid.
func relativeLuminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// blendColors mixes a towards b by ratio in RGB space. a is returned unchanged
// if either color is invalid.
func blendColors(a, b string, ratio float64) string {
	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	if errA != nil || errB != nil {
		return a
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return ca.BlendRgb(cb, ratio).Clamped().Hex()
}
