package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathmonsters/internal/ui/theme"
)

const arcadeTitleFull = `█▀▄▀█ ▄▀█ ▀█▀ █ █   █▀▄▀█ █▀█ █▄ █ █▀ ▀█▀ █▀▀ █▀█ █▀
█ ▀ █ █▀█  █  █▀█   █ ▀ █ █▄█ █ ▀█ ▄█  █  ██▄ █▀▄ ▄█`

const arcadeTitleCompact = "M A T H · M O N S T E R S"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact || cw < 56 {
		title = arcadeTitleCompact
	}
	return theme.Centered(cw).Render(style.Render(title))
}

// stats is the data shown in the dashboard bar.
type stats struct {
	Creature string
	Grade    int
	Level    int
	XP       int
	Battles  int
	Practice bool
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(st stats, cw int, compact bool) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	xpStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	battleStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var line string
	if compact {
		line = fmt.Sprintf("%s %s %s",
			levelStyle.Render(fmt.Sprintf("★%d", st.Level)),
			xpStyle.Render(fmt.Sprintf("◆%d", st.XP)),
			battleStyle.Render(fmt.Sprintf("⚔%d", st.Battles)),
		)
	} else {
		line = fmt.Sprintf("%s  %s  %s",
			levelStyle.Render(fmt.Sprintf("★ LEVEL %d", st.Level)),
			xpStyle.Render(fmt.Sprintf("◆ %d XP", st.XP)),
			battleStyle.Render(fmt.Sprintf("⚔ %d BATTLES", st.Battles)),
		)
	}

	sub := dimStyle.Render(fmt.Sprintf("%s · Grade %d", st.Creature, st.Grade))
	if st.Practice {
		sub += "  " + lipgloss.NewStyle().
			Foreground(theme.BgDark).
			Background(theme.Secondary).
			Padding(0, 1).
			Render("PRACTICE")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line + "\n" + sub)
}

// renderNotes renders dismissable notes below the stats bar.
func renderNotes(notes []string, cw int) string {
	if len(notes) == 0 {
		return ""
	}
	lines := make([]string, 0, len(notes)+1)
	for _, n := range notes {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Accent).Render("✦ "+n))
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press d to dismiss"))
	return theme.Centered(cw).Render(strings.Join(lines, "\n"))
}
