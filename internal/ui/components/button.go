package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathmonsters/internal/ui/theme"
)

// Button is a styled button.
type Button struct {
	Label   string
	OnPress func() tea.Cmd
}

// ButtonRow is a horizontal row of buttons navigated with left and right.
type ButtonRow struct {
	Buttons  []Button
	Selected int
}

// NewButtonRow creates a row with the first button selected.
func NewButtonRow(buttons ...Button) ButtonRow {
	return ButtonRow{Buttons: buttons}
}

// Update handles key events.
func (r ButtonRow) Update(msg tea.Msg) (ButtonRow, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(r.Buttons) == 0 {
		return r, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if r.Selected > 0 {
			r.Selected--
		}
	case "right", "l", "tab":
		if r.Selected < len(r.Buttons)-1 {
			r.Selected++
		}
	case "enter":
		if b := r.Buttons[r.Selected]; b.OnPress != nil {
			return r, b.OnPress()
		}
	}
	return r, nil
}

// View renders the row.
func (r ButtonRow) View() string {
	rendered := make([]string, 0, len(r.Buttons))
	for i, b := range r.Buttons {
		if i == r.Selected {
			rendered = append(rendered, theme.ButtonActive.Render("▸ "+b.Label))
		} else {
			rendered = append(rendered, theme.ButtonInactive.Render(b.Label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, joinWithGap(rendered, "  ")...)
}

func joinWithGap(items []string, gap string) []string {
	if len(items) < 2 {
		return items
	}
	out := make([]string, 0, len(items)*2-1)
	for i, it := range items {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, it)
	}
	return out
}
