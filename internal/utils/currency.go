package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RoundAriary rounds a monetary amount to two decimal places.
func RoundAriary(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatAriary renders an amount with thousands separators and the
// Ariary symbol, e.g. 1234567.5 -> "1 234 567.50 Ar".
func FormatAriary(amount float64) string {
	rounded := RoundAriary(amount)
	neg := rounded < 0
	if neg {
		rounded = -rounded
	}

	s := strconv.FormatFloat(rounded, 'f', 2, 64)
	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s%s.%s Ar", sign, b.String(), parts[1])
}

// FormatKg renders a weight without trailing zeros, e.g. 1500 -> "1500",
// 12.50 -> "12.5".
func FormatKg(weight float64) string {
	return strconv.FormatFloat(weight, 'f', -1, 64)
}
