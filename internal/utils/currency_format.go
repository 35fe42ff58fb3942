package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRupiah formats an amount as Indonesian Rupiah for receipts and
// reports, e.g. 850000 -> "Rp 850.000". Rupiah has no fractional unit in
// retail use, so the amount is rounded to whole units.
func FormatRupiah(amount decimal.Decimal) string {
	whole := amount.Round(0).String()

	negative := strings.HasPrefix(whole, "-")
	if negative {
		whole = whole[1:]
	}

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}

	if negative {
		return "-Rp " + b.String()
	}
	return "Rp " + b.String()
}
