package utils

import "fmt"

// ClampPercent keeps a percentage within [0,100].
func ClampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// FormatPercent renders a percentage with one decimal place, e.g. "82.3%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
