package problemgen

import (
	"math"
	"strconv"
	"strings"
)

// ParseAnswer converts player input into a number. Whitespace is trimmed and
// integers or decimals are accepted. The second result is false for
// anything else, in which case the returned value is NaN.
func ParseAnswer(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return math.NaN(), false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return math.NaN(), false
	}
	return v, true
}

// CheckAnswer reports whether answer equals the question's answer. NaN never
// matches.
func CheckAnswer(answer float64, q Question) bool {
	return answer == float64(q.Answer)
}
