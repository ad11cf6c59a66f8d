package battle

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	eng "github.com/abhisek/mathmonsters/internal/battle"
	"github.com/abhisek/mathmonsters/internal/mastery"
	"github.com/abhisek/mathmonsters/internal/ui/components"
	"github.com/abhisek/mathmonsters/internal/ui/theme"
)

// renderBattle renders the HP bars, the question and the answer input.
func (s *BattleScreen) renderBattle(width, _ int, b eng.Session) string {
	cat := s.g.Catalog()

	skillName := b.SkillID
	if sk, ok := cat.Skill(b.SkillID); ok {
		skillName = sk.Name
	}
	enemy, _ := cat.Enemy(b.EnemyID)
	creatureID := s.g.Save().Child.SelectedCreatureID
	creatureName := creatureID
	if c, ok := cat.Creature(creatureID); ok {
		creatureName = c.Name
	}

	var out strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s  %s", skillName, mastery.DifficultyMeter(b.CurrentQuestion.Difficulty)))
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d",
			b.QuestionNumber(), b.QuestionLimit,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			b.CorrectCount,
		))

	infoLine := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	out.WriteString(infoLine)
	out.WriteString("\n")
	out.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(0, width-4))))
	out.WriteString("\n\n")

	barWidth := min(56, max(20, width-12))
	bars := components.NewHPBar(fmt.Sprintf("%-12s", enemy.Name), b.EnemyHP, b.MaxEnemyHP, barWidth).View() +
		"\n" +
		components.NewHPBar(fmt.Sprintf("%-12s", creatureName), b.PlayerHP, b.MaxPlayerHP, barWidth).View()
	out.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bars))
	out.WriteString("\n\n\n")

	out.WriteString(theme.Centered(width).
		Foreground(theme.Text).
		Bold(true).
		Render(b.CurrentQuestion.Prompt))
	out.WriteString("\n\n")

	out.WriteString(theme.Centered(width).
		Render("Answer: " + s.input.View()))
	out.WriteString("\n\n")

	if s.feedback != "" {
		out.WriteString(theme.Centered(width).
			Foreground(theme.FeedbackColor(s.lastCorrect, s.invalidInput)).
			Bold(true).
			Render(s.feedback))
	}

	return out.String()
}

// renderQuitConfirm renders the run-away confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(theme.Centered(width).
		Foreground(theme.Text).
		Bold(true).
		Render("Run away from this battle?"))
	b.WriteString("\n")
	b.WriteString(theme.Centered(width).
		Foreground(theme.TextDim).
		Render("Skill progress so far is already saved."))
	b.WriteString("\n\n")

	b.WriteString(theme.Centered(width).
		Foreground(theme.Error).
		Render("[Y] Yes, run away"))
	b.WriteString("\n")
	b.WriteString(theme.Centered(width).
		Foreground(theme.Primary).
		Render("[N] No, keep fighting"))

	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width int) string {
	return theme.Centered(width).
		Foreground(theme.TextDim).
		Render("\n\n\n  A wild monster appears...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return theme.Centered(width).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
