package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathmonsters/internal/ui/theme"
)

const minBarCells = 4

// ProgressBar is a one-line bar: label, filled cells, empty cells, suffix.
type ProgressBar struct {
	Label    string
	Fraction float64 // 0..1, clamped when drawn
	Width    int     // whole line, label and suffix included
	Suffix   string
	Fill     color.Color // theme.Secondary when nil
}

// NewProgressBar shows fraction as a rounded-down percentage.
func NewProgressBar(label string, fraction float64, width int) ProgressBar {
	return ProgressBar{
		Label:    label,
		Fraction: fraction,
		Width:    width,
		Suffix:   fmt.Sprintf("%d%%", int(min(max(fraction, 0), 1)*100)),
	}
}

// NewHPBar shows hp out of maxHP, colored by theme.HPColor. Negative hp
// is drawn as zero.
func NewHPBar(label string, hp, maxHP, width int) ProgressBar {
	hp = max(0, hp)
	var frac float64
	if maxHP > 0 {
		frac = float64(hp) / float64(maxHP)
	}
	return ProgressBar{
		Label:    label,
		Fraction: frac,
		Width:    width,
		Suffix:   fmt.Sprintf("%d/%d", hp, maxHP),
		Fill:     theme.HPColor(frac),
	}
}

func (p ProgressBar) View() string {
	var head, tail string
	if p.Label != "" {
		head = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}
	if p.Suffix != "" {
		tail = lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + p.Suffix)
	}

	cells := max(minBarCells, p.Width-lipgloss.Width(head)-lipgloss.Width(tail))
	on := int(float64(cells) * min(max(p.Fraction, 0), 1))

	fill := p.Fill
	if fill == nil {
		fill = theme.Secondary
	}
	bar := lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", on)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", cells-on))
	return head + bar + tail
}
