package analytics

import (
	"fmt"
	"math"
	"strings"
)

// FormatNumber renders a value with comma-separated thousands and a fixed
// number of decimals.
func FormatNumber(v float64, decimals int) string {
	negative := v < 0
	if negative {
		v = -v
	}

	scale := math.Pow(10, float64(decimals))
	v = math.Round(v*scale) / scale

	intPart := int64(v)
	intStr := groupThousands(intPart)

	result := intStr
	if decimals > 0 {
		frac := int64(math.Round((v - float64(intPart)) * scale))
		result = fmt.Sprintf("%s.%0*d", intStr, decimals, frac)
	}
	if negative {
		result = "-" + result
	}
	return result
}

// FormatPercent renders a value as a percentage with one decimal.
func FormatPercent(v float64) string {
	return FormatNumber(v, 1) + "%"
}

// FormatMillions renders a count of millions, e.g. "23.4M".
func FormatMillions(v float64) string {
	return FormatNumber(v, 1) + "M"
}

// RoundTo rounds to the given number of decimal places.
func RoundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}
