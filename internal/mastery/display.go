package mastery

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathmonsters/internal/catalog"
)

// DifficultyMeter renders difficulty as filled and empty pips, e.g. "●●○○○".
func DifficultyMeter(d int) string {
	d = catalog.ClampDifficulty(d)
	return strings.Repeat("●", d) + strings.Repeat("○", catalog.MaxDifficulty-d)
}

// FormatResponseTime renders an average response time for display.
func FormatResponseTime(ms float64) string {
	if ms <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1fs", ms/1000)
}
