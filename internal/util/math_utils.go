package util

import (
	"fmt"
	"math"
)

// Percent returns round(score/total*100) as an integer percentage.
// A zero total yields 0 rather than dividing by zero; callers that need a
// placeholder display for "nothing answered yet" should check total
// themselves.
func Percent(score, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// FormatPercent renders an integer percentage for display.
func FormatPercent(p int) string {
	return fmt.Sprintf("%d%%", p)
}

// Clamp bounds v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
