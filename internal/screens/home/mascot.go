package home

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathmonsters/internal/ui/theme"
)

const shellfinArt = `   ___
 _/o o\_
(  ===  )
 \_/ \_/`

const emberpupArt = ` /\_/\
( o.o )  ~
 > ^ <  ~~
 /   \`

const leaflingArt = `   \|/
  (o o)
 --( )--
   / \`

const unknownArt = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ +-= │
└─────┘`

// RenderCreature returns the ASCII art for a creature ID.
func RenderCreature(id string) string {
	var art string
	var fg color.Color

	switch id {
	case "shellfin":
		art, fg = shellfinArt, theme.Secondary
	case "emberpup":
		art, fg = emberpupArt, theme.Accent
	case "leafling":
		art, fg = leaflingArt, theme.Success
	default:
		art, fg = unknownArt, theme.Primary
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
