// Package format renders monetary amounts and percentages as en-US
// strings. Both functions are pure and guard non-finite input.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands
// separators (e.g., "-$1,234.56"). NaN and Inf render as "$0.00".
func Currency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "$0.00"
	}
	if amount < 0 {
		return printer.Sprintf("-$%.2f", -amount)
	}
	return printer.Sprintf("$%.2f", amount)
}

// Percent returns a percentage string for a value already expressed in
// percent units (e.g., 12.5 renders "12.50%"). NaN and Inf render as
// "0.00%".
func Percent(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "0.00%"
	}
	return printer.Sprintf("%.2f%%", value)
}
