// Package theme holds the arcade palette and shared styles.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette. Names describe roles, not hues.
var (
	Primary   = lipgloss.Color("#A855F7") // monster purple
	Secondary = lipgloss.Color("#2DD4BF") // sea teal
	Accent    = lipgloss.Color("#FB923C") // ember orange
	Success   = lipgloss.Color("#4ADE80")
	Error     = lipgloss.Color("#FB7185")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0B1020")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// HP thresholds, as a fraction of max HP.
const (
	HPWarn     = 0.5
	HPCritical = 0.25
)

// HPColor picks the fill for a health bar at fraction pct of max HP.
func HPColor(pct float64) color.Color {
	switch {
	case pct <= HPCritical:
		return Error
	case pct <= HPWarn:
		return Accent
	default:
		return Success
	}
}

// FeedbackColor is the color of the line shown after an answer.
func FeedbackColor(correct, invalid bool) color.Color {
	switch {
	case invalid:
		return TextDim
	case correct:
		return Success
	default:
		return Error
	}
}

// Centered returns a style that centers text across width.
func Centered(width int) lipgloss.Style {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
}

var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
