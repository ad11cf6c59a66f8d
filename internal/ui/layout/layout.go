// Package layout renders the frame around every screen: header bar,
// content area and key-hint footer.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathmonsters/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Header is what the header bar shows. A zero Level hides the player stats,
// which is the case before a profile exists.
type Header struct {
	Title string
	Level int
	XP    int

	// XPToNext is the XP still needed for the next level.
	XPToNext int

	Practice bool
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the player to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"The monsters need more room!\n\nMake the window at least %d x %d.\nIt is %d x %d now.",
			MinWidth, MinHeight, width, height,
		))
}

// stats renders the right side of the header.
func (h Header) stats() string {
	if h.Level <= 0 {
		return ""
	}
	parts := []string{
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(fmt.Sprintf("★ Lv %d", h.Level)),
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("◆ %d XP", h.XP)),
	}
	if h.XPToNext > 0 {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d to go", h.XPToNext)))
	}
	if h.Practice {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Accent).Render("PRACTICE"))
	}
	return strings.Join(parts, "  ")
}

// RenderHeader renders the header bar: game name on the left, screen title
// centered and player stats on the right.
func RenderHeader(h Header, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Math Monsters")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(h.Title)
	right := h.stats()

	inner := max(0, width-4)
	leftGap := max(1, (inner-lipgloss.Width(center))/2-lipgloss.Width(left))
	rightGap := max(1, inner-lipgloss.Width(left)-leftGap-lipgloss.Width(center)-lipgloss.Width(right))

	return bar(left+strings.Repeat(" ", leftGap)+center+strings.Repeat(" ", rightGap)+right, width)
}

// RenderFooter renders the key hints.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, key.Render(h.Key)+" "+desc.Render(h.Description))
	}
	return bar("  "+strings.Join(parts, "   "), width)
}

func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderFrame stacks header, content and footer, giving the content all
// remaining height.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))
	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)
	return header + "\n" + body + "\n" + footer
}
