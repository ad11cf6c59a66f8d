package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathmonsters/internal/ui/theme"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestPickerInitialAndNavigation(t *testing.T) {
	p := NewPicker("Pick", []Choice{
		{Label: "One", Value: "1"},
		{Label: "Two", Value: "2"},
		{Label: "Three", Value: "3"},
	}, "2")
	assert.Equal(t, "2", p.Value())

	p, _ = p.Update(key(tea.KeyDown))
	p, _ = p.Update(key(tea.KeyDown))
	assert.Equal(t, "3", p.Value(), "stops at the last choice")

	p, _ = p.Update(key(tea.KeyEnter))
	assert.True(t, p.Confirmed)
	assert.Contains(t, p.View(), "▸ Three")
}

func TestPickerEmpty(t *testing.T) {
	p := NewPicker("", nil, "x")
	p, _ = p.Update(key(tea.KeyEnter))
	assert.False(t, p.Confirmed)
	assert.Empty(t, p.Value())
}

func TestButtonRow(t *testing.T) {
	pressed := ""
	press := func(name string) func() tea.Cmd {
		return func() tea.Cmd {
			pressed = name
			return nil
		}
	}
	r := NewButtonRow(Button{Label: "No", OnPress: press("no")}, Button{Label: "Yes", OnPress: press("yes")})

	r, _ = r.Update(key(tea.KeyLeft))
	assert.Equal(t, 0, r.Selected)
	r, _ = r.Update(key(tea.KeyRight))
	r, _ = r.Update(key(tea.KeyRight))
	assert.Equal(t, 1, r.Selected)

	r.Update(key(tea.KeyEnter))
	assert.Equal(t, "yes", pressed)
	assert.Contains(t, r.View(), "▸ Yes")
}

func TestHPBar(t *testing.T) {
	tests := []struct {
		hp   int
		want any
	}{
		{100, theme.Success},
		{50, theme.Accent},
		{20, theme.Error},
		{-5, theme.Error},
	}
	for _, tt := range tests {
		bar := NewHPBar("HP", tt.hp, 100, 40)
		assert.Equal(t, tt.want, bar.Fill, "hp %d", tt.hp)
	}

	bar := NewHPBar("HP", -5, 100, 40)
	assert.Equal(t, "0/100", bar.Suffix)
	assert.Zero(t, bar.Fraction)
	assert.True(t, strings.Contains(bar.View(), "0/100"))
}

func TestTextInputClear(t *testing.T) {
	in := NewTextInput("", true, 4)
	in, _ = in.Update(tea.KeyPressMsg{Code: '4', Text: "4"})
	in, _ = in.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	require.Equal(t, "4", in.Value(), "non-digits are dropped")

	in.Submit(true)
	assert.Contains(t, in.View(), "✓")
	in.Clear()
	assert.Empty(t, in.Value())
	assert.NotContains(t, in.View(), "✓")
}

func TestTextInputSetValueAndFocus(t *testing.T) {
	in := NewTextInput("", false, 0)
	in.SetValue("mum@example.com")
	in, _ = in.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Equal(t, "mum@example.comx", in.Value(), "cursor sits after the preset text")

	in.Blur()
	assert.False(t, in.Focused())
	in.Focus()
	assert.True(t, in.Focused())
}

func TestTextInputWrongMark(t *testing.T) {
	in := NewTextInput("?", true, 3)
	in.Submit(false)
	assert.Contains(t, in.View(), "✗")
}

func TestMenuNavigation(t *testing.T) {
	var ran []string
	item := func(name string) MenuItem {
		return MenuItem{Label: name, Action: func() tea.Cmd {
			ran = append(ran, name)
			return nil
		}}
	}
	m := NewMenu([]MenuItem{item("a"), item("b"), item("c")})
	assert.Equal(t, []string{"a", "b", "c"}, m.Labels())

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 2, m.Selected, "up from the top wraps")
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 0, m.Selected, "down from the bottom wraps")

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m, _ = m.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	assert.Equal(t, 1, m.Selected)
	m, _ = m.Update(tea.KeyPressMsg{Code: '9', Text: "9"})
	assert.Equal(t, []string{"a", "b"}, ran, "digits past the end are ignored")
}

func TestArcadeMenuMarksSelection(t *testing.T) {
	out := ArcadeMenu([]string{"PLAY", "QUIT"}, 1, 40, true)
	assert.Contains(t, out, "▸ QUIT")
	assert.NotContains(t, out, "▸ PLAY")

	out = ArcadeMenu([]string{"PLAY", "QUIT"}, 0, 40, false)
	assert.Contains(t, out, "▸ PLAY")
}

func TestContentWidthBounds(t *testing.T) {
	assert.Equal(t, 20, ContentWidth(10))
	assert.Equal(t, 44, ContentWidth(50))
	assert.Equal(t, 60, ContentWidth(200))
}

func TestProgressBarPercent(t *testing.T) {
	assert.Equal(t, "75%", NewProgressBar("", 0.75, 30).Suffix)
	assert.Equal(t, "100%", NewProgressBar("", 1.4, 30).Suffix)
	assert.Contains(t, NewProgressBar("Accuracy", 0.5, 30).View(), "Accuracy")
}
