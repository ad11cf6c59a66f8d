package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathmonsters/internal/ui/theme"
)

type mark int

const (
	markNone mark = iota
	markRight
	markWrong
)

// TextInput is a styled single-line field. Answer fields set digitsOnly so
// stray letters never reach the model; after Submit a tick or cross is
// drawn next to the value until Clear.
type TextInput struct {
	in         textinput.Model
	digitsOnly bool
	mark       mark
}

// NewTextInput returns a focused input. limit caps the number of runes when
// positive.
func NewTextInput(placeholder string, digitsOnly bool, limit int) TextInput {
	in := textinput.New()
	in.Placeholder = placeholder
	if limit > 0 {
		in.CharLimit = limit
	}
	in.Focus()
	return TextInput{in: in, digitsOnly: digitsOnly}
}

func (t TextInput) Init() tea.Cmd {
	return t.in.Focus()
}

// accepts reports whether a key should be passed to the model.
func (t TextInput) accepts(msg tea.Msg) bool {
	if !t.digitsOnly {
		return true
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return true
	}
	k := kmsg.String()
	return len(k) != 1 || (k[0] >= '0' && k[0] <= '9')
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if !t.accepts(msg) {
		return t, nil
	}
	var cmd tea.Cmd
	t.in, cmd = t.in.Update(msg)
	return t, cmd
}

func (t TextInput) View() string {
	v := t.in.View()
	switch t.mark {
	case markRight:
		v += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	case markWrong:
		v += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return v
}

func (t TextInput) Value() string { return t.in.Value() }

// SetValue replaces the text and puts the cursor after it.
func (t *TextInput) SetValue(s string) {
	t.in.SetValue(s)
	t.in.CursorEnd()
}

func (t *TextInput) Focus() tea.Cmd { return t.in.Focus() }

func (t *TextInput) Blur() { t.in.Blur() }

func (t TextInput) Focused() bool { return t.in.Focused() }

// Clear empties the field and drops any submit mark.
func (t *TextInput) Clear() {
	t.in.Reset()
	t.mark = markNone
}

// Submit marks the current value as right or wrong.
func (t *TextInput) Submit(correct bool) {
	t.mark = markWrong
	if correct {
		t.mark = markRight
	}
}
