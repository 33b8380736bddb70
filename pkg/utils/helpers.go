package utils

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// RoundTo rounds a float to specified decimal places
func RoundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}

// FormatCount renders n with thousands separators, e.g. 1234567 -> "1,234,567"
func FormatCount(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatPercent renders a percentage with one decimal, e.g. "31.4%"
func FormatPercent(p float64) string {
	return printer.Sprintf("%.1f%%", p)
}

// HourLabel renders an hour of day as a clock label, e.g. 7 -> "07.00"
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d.00", hour)
}
