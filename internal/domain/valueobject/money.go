// Package valueobject holds small immutable domain values and pure helpers.
package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatKeystroke converts raw numeric keystroke input into a fixed-point
// currency string with a comma decimal separator. All non-digit characters
// are stripped; the remaining digits are read as cents, so typing fills the
// value right to left: "1250" renders "12,50" and "5" renders "0,05". Empty
// input (or input with no digits) renders the empty string.
func FormatKeystroke(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return ""
	}

	cents, err := decimal.NewFromString(digits.String())
	if err != nil {
		return ""
	}
	return strings.Replace(cents.Shift(-2).StringFixed(2), ".", ",", 1)
}

// ParseAmount converts a comma-formatted currency string back into a decimal
// amount. Empty or unparsable input yields zero; it never fails.
func ParseAmount(formatted string) decimal.Decimal {
	if formatted == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(strings.Replace(formatted, ",", ".", 1))
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// FormatAmount renders a decimal amount with two fraction digits and a comma
// separator, the inverse of ParseAmount for display purposes.
func FormatAmount(amount decimal.Decimal) string {
	return strings.Replace(amount.StringFixed(2), ".", ",", 1)
}
