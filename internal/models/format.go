package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Naira formats a backend-supplied figure for display: currency symbol plus
// thousands separators. Formatting only, the value is never computed on.
func Naira(d decimal.Decimal) string {
	return "₦" + Comma(d)
}

// Comma inserts thousands separators into the decimal's plain form.
func Comma(d decimal.Decimal) string {
	s := d.String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
