package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathmonsters/internal/ui/theme"
)

// Cabinet geometry. Every card inside the cabinet shares one inner width
// so borders line up.
const (
	cabinetChrome   = 6 // double border plus inner padding
	minContentWidth = 20
	maxContentWidth = 60
	menuButtonWidth = 22
)

// ContentWidth is the inner card width for a frame of frameWidth columns.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-cabinetChrome, minContentWidth), maxContentWidth)
}

// CabinetFrame draws the outer double border and centers content in it.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard is a rounded card cw columns wide.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw-2).
		Padding(1, 2).
		Align(lipgloss.Center).
		Render(content)
}

func arcadeButtonStyle(selected bool, width int) lipgloss.Style {
	st := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())
	if selected {
		return st.Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow)
	}
	return st.Foreground(theme.Text).BorderForeground(theme.Border)
}

// ArcadeButton renders a bordered button; the selected one gets a marker.
func ArcadeButton(label string, selected bool, width int) string {
	if selected {
		label = "▸ " + label
	}
	return arcadeButtonStyle(selected, width).Render(label)
}

// ArcadeMenu renders labels as a column of buttons. With compact set the
// borders are dropped so the menu fits short terminals.
func ArcadeMenu(labels []string, selected, cw int, compact bool) string {
	rows := make([]string, len(labels))
	for i, label := range labels {
		switch {
		case !compact:
			rows[i] = ArcadeButton(label, i == selected, menuButtonWidth)
		case i == selected:
			rows[i] = lipgloss.NewStyle().
				Bold(true).
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Render(" ▸ " + label + " ")
		default:
			rows[i] = lipgloss.NewStyle().Foreground(theme.Text).Render("   " + label)
		}
	}
	return theme.Centered(cw).Render(strings.Join(rows, "\n"))
}
