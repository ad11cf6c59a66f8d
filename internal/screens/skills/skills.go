// Package skills lists catalog skills with the player's progress on each.
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
	"github.com/abhisek/mathmonsters/internal/ui/layout"
	"github.com/abhisek/mathmonsters/internal/ui/theme"
)

// Mode selects what Enter does on a skill row.
type Mode int

const (
	ModeView Mode = iota // open the detail view
	ModePick             // start a battle with the skill
)

type rowKind int

const (
	rowSubjectHeader rowKind = iota
	rowSkill
)

type row struct {
	kind    rowKind
	subject string
	skill   catalog.Skill
}

// SkillsScreen displays the catalog skills grouped by subject.
type SkillsScreen struct {
	g            *game.Game
	mode         Mode
	rows         []row
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*SkillsScreen)(nil)
var _ screen.KeyHintProvider = (*SkillsScreen)(nil)

// New creates a SkillsScreen.
func New(g *game.Game, mode Mode) *SkillsScreen {
	var rows []row
	seen := make(map[string]bool)
	cat := g.Catalog()
	for _, sk := range cat.Skills {
		if seen[sk.Subject] {
			continue
		}
		seen[sk.Subject] = true
		rows = append(rows, row{kind: rowSubjectHeader, subject: sk.Subject})
		for _, other := range cat.Skills {
			if other.Subject == sk.Subject {
				rows = append(rows, row{kind: rowSkill, subject: sk.Subject, skill: other})
			}
		}
	}

	s := &SkillsScreen{g: g, mode: mode, rows: rows}

	// Start on the last played skill, else the first skill row.
	last := g.Save().Progress.LastPlayedSkillID
	s.cursor = -1
	for i, r := range s.rows {
		if r.kind != rowSkill {
			continue
		}
		if s.cursor < 0 || r.skill.ID == last {
			s.cursor = i
		}
		if r.skill.ID == last {
			break
		}
	}
	s.cursor = max(s.cursor, 0)
	return s
}

func (s *SkillsScreen) Init() tea.Cmd {
	return nil
}

func (s *SkillsScreen) Title() string {
	if s.mode == ModePick {
		return "Choose a Skill"
	}
	return "Skills"
}

// KeyHints returns the key binding hints for the footer.
func (s *SkillsScreen) KeyHints() []layout.KeyHint {
	action := "Details"
	if s.mode == ModePick {
		action = "Battle!"
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: action},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SkillsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "enter":
			return s, s.selectSkill()
		case "q":
			return s, router.PopCmd()
		}
	}
	return s, nil
}

// Selected returns the skill under the cursor.
func (s *SkillsScreen) Selected() (catalog.Skill, bool) {
	if s.cursor < 0 || s.cursor >= len(s.rows) || s.rows[s.cursor].kind != rowSkill {
		return catalog.Skill{}, false
	}
	return s.rows[s.cursor].skill, true
}

// moveCursor moves the cursor by delta, skipping subject headers.
func (s *SkillsScreen) moveCursor(delta int) {
	for i := s.cursor + delta; i >= 0 && i < len(s.rows); i += delta {
		if s.rows[i].kind == rowSkill {
			s.cursor = i
			return
		}
	}
}

func (s *SkillsScreen) selectSkill() tea.Cmd {
	sk, ok := s.Selected()
	if !ok {
		return nil
	}
	if s.mode == ModePick {
		next := battlescreen.New(s.g, sk.ID)
		return router.ReplaceCmd(next)
	}
	detail := newSkillDetail(s.g, sk)
	return router.PushCmd(detail)
}

func (s *SkillsScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
	// Keep the subject header of the first visible skill in view.
	if s.scrollOffset > 0 && s.rows[s.scrollOffset].kind == rowSkill && s.rows[s.scrollOffset-1].kind == rowSubjectHeader && s.cursor-s.scrollOffset+1 < height {
		s.scrollOffset--
	}
}

func (s *SkillsScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("  No skills in this catalog.")
	}

	s.adjustScroll(height)

	var lines []string
	for i := s.scrollOffset; i < len(s.rows) && len(lines) < height; i++ {
		r := s.rows[i]
		switch r.kind {
		case rowSubjectHeader:
			lines = append(lines, renderSubjectHeader(r.subject, width))
		case rowSkill:
			lines = append(lines, s.renderSkillRow(r.skill, i == s.cursor))
		}
	}
	return strings.Join(lines, "\n")
}

func renderSubjectHeader(subject string, width int) string {
	title := strings.ToUpper(subject)
	if title == "" {
		title = "OTHER"
	}
	rule := strings.Repeat("─", max(0, min(width-len(title)-6, 50)))
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s %s", title, rule))
}

func (s *SkillsScreen) renderSkillRow(sk catalog.Skill, selected bool) string {
	st := s.g.Save().Skill(sk.ID)

	prefix := "    "
	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		prefix = "  ▸ "
		nameStyle = nameStyle.Foreground(theme.Primary).Bold(true)
	}

	stats := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%3.0f%%  %s",
		st.Accuracy()*100, mastery.FormatResponseTime(st.AverageResponseMs)))

	return prefix + nameStyle.Render(fmt.Sprintf("%-18s", sk.Name)) + "  " +
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(mastery.DifficultyMeter(st.Difficulty)) +
		"  " + stats
}
