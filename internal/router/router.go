// Package router keeps the stack of screens behind the TUI. Screens never
// touch the stack directly; they return one of the navigation messages and
// the app feeds it back through Update.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathmonsters/internal/screen"
)

// navigation is implemented by the messages that change the stack.
type navigation interface {
	apply(r *Router) tea.Cmd
}

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct{ Screen screen.Screen }

// PopScreenMsg returns to the previous screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the top screen, keeping the depth.
type ReplaceScreenMsg struct{ Screen screen.Screen }

// ResetScreenMsg drops the whole stack and starts over at Screen.
type ResetScreenMsg struct{ Screen screen.Screen }

func (m PushScreenMsg) apply(r *Router) tea.Cmd    { return r.Push(m.Screen) }
func (PopScreenMsg) apply(r *Router) tea.Cmd       { return r.Pop() }
func (m ReplaceScreenMsg) apply(r *Router) tea.Cmd { return r.Replace(m.Screen) }
func (m ResetScreenMsg) apply(r *Router) tea.Cmd   { return r.Reset(m.Screen) }

// PushCmd, PopCmd, ReplaceCmd and ResetCmd wrap the messages as commands.
func PushCmd(s screen.Screen) tea.Cmd    { return send(PushScreenMsg{Screen: s}) }
func PopCmd() tea.Cmd                    { return send(PopScreenMsg{}) }
func ReplaceCmd(s screen.Screen) tea.Cmd { return send(ReplaceScreenMsg{Screen: s}) }
func ResetCmd(s screen.Screen) tea.Cmd   { return send(ResetScreenMsg{Screen: s}) }

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Router is a stack of screens. The bottom screen can't be popped.
type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push opens s and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

func (r *Router) Pop() tea.Cmd {
	if n := len(r.stack); n > 1 {
		r.stack[n-1] = nil
		r.stack = r.stack[:n-1]
	}
	return nil
}

func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		return r.Push(s)
	}
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

func (r *Router) Reset(s screen.Screen) tea.Cmd {
	clear(r.stack)
	r.stack = append(r.stack[:0], s)
	return s.Init()
}

// Active is the screen on top, or nil for an empty router.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int { return len(r.stack) }

// Update applies navigation messages and hands everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if nav, ok := msg.(navigation); ok {
		return nav.apply(r)
	}
	top := r.Active()
	if top == nil {
		return nil
	}
	next, cmd := top.Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	if top := r.Active(); top != nil {
		return top.View(width, height)
	}
	return ""
}
