package models

import "github.com/shopspring/decimal"

func init() {
	// Collection files store amounts as plain JSON numbers, not
	// quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// FormatAmount renders an amount for CSV export with at least one
// decimal place: 50 -> "50.0", 12.25 -> "12.25".
func FormatAmount(d decimal.Decimal) string {
	if d.IsInteger() {
		return d.StringFixed(1)
	}
	return d.String()
}
