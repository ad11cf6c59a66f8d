package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathmonsters/internal/ui/theme"
)

// Choice is one option of a Picker.
type Choice struct {
	Label string
	Value string
	Hint  string
}

// Picker is a vertical single-choice selector. Enter confirms the
// highlighted option.
type Picker struct {
	Prompt    string
	Choices   []Choice
	Selected  int
	Confirmed bool
}

// NewPicker creates a picker with the option whose value is initial
// highlighted.
func NewPicker(prompt string, choices []Choice, initial string) Picker {
	p := Picker{Prompt: prompt, Choices: choices}
	for i, c := range choices {
		if c.Value == initial {
			p.Selected = i
			break
		}
	}
	return p
}

// Value returns the value of the highlighted option.
func (p Picker) Value() string {
	if p.Selected < 0 || p.Selected >= len(p.Choices) {
		return ""
	}
	return p.Choices[p.Selected].Value
}

// Update handles keyboard navigation and confirmation.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.Selected > 0 {
			p.Selected--
		}
	case "down", "j":
		if p.Selected < len(p.Choices)-1 {
			p.Selected++
		}
	case "enter":
		p.Confirmed = len(p.Choices) > 0
	}
	return p, nil
}

// View renders the picker.
func (p Picker) View() string {
	var b strings.Builder
	if p.Prompt != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(p.Prompt))
		b.WriteString("\n\n")
	}

	for i, c := range p.Choices {
		line := "    " + c.Label
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == p.Selected {
			line = "  ▸ " + c.Label
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(line))
		if c.Hint != "" {
			b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(c.Hint))
		}
		b.WriteString("\n")
	}
	return b.String()
}
