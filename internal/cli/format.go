// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatINR formats a rupee amount with the Rs prefix.
// e.g., 150000 -> "Rs 1,50,000"
func FormatINR(amount float64) string {
	return "Rs " + FormatIndianGroups(int64(math.Round(amount)))
}

// FormatIndianGroups adds separators in the Indian numbering style: the
// last three digits form one group, everything above pairs off.
// e.g., 150000 -> "1,50,000", 12345678 -> "1,23,45,678"
func FormatIndianGroups(n int64) string {
	if n < 0 {
		return "-" + FormatIndianGroups(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	head := s[:len(s)-3]
	tail := s[len(s)-3:]

	var result strings.Builder
	remainder := len(head) % 2
	if remainder > 0 {
		result.WriteString(head[:remainder])
	}
	for i := remainder; i < len(head); i += 2 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(head[i : i+2])
	}
	result.WriteByte(',')
	result.WriteString(tail)
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatWholePercent formats a 0-1 float as a whole percentage.
// e.g., 0.65 -> "65%"
func FormatWholePercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatLockIn formats a lock-in period in years.
// e.g., 15 -> "15yr", 0.25 -> "0.25yr", 0 -> "None"
func FormatLockIn(years float64) string {
	if years <= 0 {
		return "None"
	}
	return strconv.FormatFloat(years, 'f', -1, 64) + "yr"
}

// FormatTaxBenefit renders the tax benefit column.
func FormatTaxBenefit(hasBenefit bool) string {
	if hasBenefit {
		return "Yes (80C)"
	}
	return "No"
}
