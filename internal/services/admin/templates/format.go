package templates

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RubleSign prefixes currency amounts.
const RubleSign = "₽"

var numbers = message.NewPrinter(language.English)

// FormatCount renders an integer with thousands grouping, e.g. 1,234.
func FormatCount(n int) string {
	return numbers.Sprintf("%d", n)
}

// FormatRubles renders a whole-ruble amount, e.g. ₽1,999.
func FormatRubles(amount int) string {
	return RubleSign + FormatCount(amount)
}

// FormatPercent renders a discount percentage, e.g. 20%.
func FormatPercent(percent int) string {
	return numbers.Sprintf("%d%%", percent)
}
