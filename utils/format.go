package utils

import (
	"fmt"
	"strings"
)

// FormatAmount formats a float64 number to a string like "125,000".
// If the fractional part is zero, decimals are omitted; otherwise, up to 2 decimals are kept.
func FormatAmount(value float64) string {
	// Format with two decimals first
	s := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}

	// Remove trailing .00
	if fracPart == "00" {
		fracPart = ""
	}

	neg := false
	if strings.HasPrefix(intPart, "-") {
		neg = true
		intPart = intPart[1:]
	}

	// Insert commas every 3 digits in integer part
	var b strings.Builder
	cnt := 0
	for i := len(intPart) - 1; i >= 0; i-- {
		b.WriteByte(intPart[i])
		cnt++
		if cnt%3 == 0 && i != 0 {
			b.WriteByte(',')
		}
	}
	// Reverse the string
	runes := []rune(b.String())
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	grouped := string(runes)

	if neg {
		grouped = "-" + grouped
	}
	if fracPart != "" {
		return grouped + "." + fracPart
	}
	return grouped
}

// FormatRupees formats an amount with the agency display currency, "Rs. 125,000"
func FormatRupees(value float64) string {
	return "Rs. " + FormatAmount(value)
}
