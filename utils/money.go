package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatUSD formats a decimal amount as a string like "$1,250.00".
// Uses comma as thousands separator and always two decimal places.
func FormatUSD(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	s := amount.Abs().StringFixed(2)

	whole, frac := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		whole, frac = s[:dot], s[dot:]
	}

	var b strings.Builder
	b.Grow(len(s) + len(whole)/3 + 2)
	if neg {
		b.WriteString("-$")
	} else {
		b.WriteString("$")
	}

	// Insert separators from the left.
	rem := len(whole) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(whole[:rem])
	for i := rem; i < len(whole); i += 3 {
		b.WriteByte(',')
		b.WriteString(whole[i : i+3])
	}
	b.WriteString(frac)

	return b.String()
}

// FormatUSDString formats a decimal string price, returning it unchanged when it does not parse
func FormatUSDString(amount string) string {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return amount
	}
	return FormatUSD(d)
}
