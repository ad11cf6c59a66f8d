package skills

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathmonsters/internal/catalog"
	"github.com/abhisek/mathmonsters/internal/game"
	"github.com/abhisek/mathmonsters/internal/mastery"
	"github.com/abhisek/mathmonsters/internal/router"
	"github.com/abhisek/mathmonsters/internal/screen"
	battlescreen "github.com/abhisek/mathmonsters/internal/screens/battle"
	"github.com/abhisek/mathmonsters/internal/ui/components"
	"github.com/abhisek/mathmonsters/internal/ui/layout"
	"github.com/abhisek/mathmonsters/internal/ui/theme"
)

// SkillDetailScreen shows progress on a single skill.
type SkillDetailScreen struct {
	g     *game.Game
	skill catalog.Skill
}

var _ screen.Screen = (*SkillDetailScreen)(nil)
var _ screen.KeyHintProvider = (*SkillDetailScreen)(nil)

func newSkillDetail(g *game.Game, skill catalog.Skill) *SkillDetailScreen {
	return &SkillDetailScreen{g: g, skill: skill}
}

func (d *SkillDetailScreen) Init() tea.Cmd { return nil }
func (d *SkillDetailScreen) Title() string { return d.skill.Name }

func (d *SkillDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "b" {
		next := battlescreen.New(d.g, d.skill.ID)
		return d, router.ReplaceCmd(next)
	}
	return d, nil
}

func (d *SkillDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "b", Description: "Battle"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *SkillDetailScreen) View(width, height int) string {
	sk := d.skill
	save := d.g.Save()
	st := save.Skill(sk.ID)
	difficulty := catalog.ClampDifficulty(st.Difficulty)
	r := sk.Range(save.Child.Grade, difficulty)

	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(20)
	value := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  " + sk.Name))
	b.WriteString("\n")
	if sk.Description != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + sk.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	rows := [][2]string{
		{"Difficulty", fmt.Sprintf("%s  (%d/%d)", mastery.DifficultyMeter(difficulty), difficulty, catalog.MaxDifficulty)},
		{"Numbers", fmt.Sprintf("%d to %d (grade %d)", r.Min(), r.Max(), save.Child.Grade)},
		{"Answered", fmt.Sprintf("%d", st.TotalAnswered)},
		{"Correct", fmt.Sprintf("%d (%.0f%%)", st.TotalCorrect, st.Accuracy()*100)},
		{"Average time", mastery.FormatResponseTime(st.AverageResponseMs)},
		{"Streak", fmt.Sprintf("%d right · %d wrong", st.CorrectStreak, st.IncorrectStreak)},
	}
	for _, row := range rows {
		b.WriteString("  " + label.Render(row[0]) + value.Render(row[1]) + "\n")
	}
	if st.TotalAnswered > 0 {
		b.WriteString("\n  " + components.NewProgressBar("Accuracy", st.Accuracy(), min(width-4, 50)).View() + "\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render(fmt.Sprintf("  %d right in a row with quick answers makes it harder.", mastery.StreakToLevelUp)))
	return b.String()
}
