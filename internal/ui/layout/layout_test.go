package layout

import (
	"strings"
	"testing"
)

func TestHeaderStats(t *testing.T) {
	tests := []struct {
		name    string
		header  Header
		want    []string
		notWant []string
	}{
		{
			name:    "no profile",
			header:  Header{Title: "New Player"},
			notWant: []string{"Lv", "XP"},
		},
		{
			name:   "player",
			header: Header{Title: "Home", Level: 3, XP: 12, XPToNext: 3},
			want:   []string{"★ Lv 3", "◆ 12 XP", "3 to go"},
		},
		{
			name:   "practice",
			header: Header{Title: "Home", Level: 1, Practice: true},
			want:   []string{"PRACTICE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderHeader(tt.header, 100)
			if !strings.Contains(out, "Math Monsters") {
				t.Error("header missing game name")
			}
			if !strings.Contains(out, tt.header.Title) {
				t.Errorf("header missing title %q", tt.header.Title)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("header missing %q", w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("header should not contain %q", w)
				}
			}
		})
	}
}

func TestFooterHints(t *testing.T) {
	out := RenderFooter([]KeyHint{{Key: "Enter", Description: "Attack"}, {Key: "Esc", Description: "Back"}}, 80)
	for _, w := range []string{"Enter", "Attack", "Esc", "Back"} {
		if !strings.Contains(out, w) {
			t.Errorf("footer missing %q", w)
		}
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(79, 30) || !IsTooSmall(100, 23) {
		t.Error("expected too small")
	}
	if IsTooSmall(80, 24) {
		t.Error("80x24 should fit")
	}
}
