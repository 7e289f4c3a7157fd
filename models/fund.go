package models

import "github.com/shopspring/decimal"

// FundEntry is one incoming payment on the ledger, either entered
// directly by an admin or mirrored from an approved submission.
// Entries are append-only.
type FundEntry struct {
	ID     int             `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"` // YYYY-MM-DD
	Method string          `json:"method"`
}

// Payment methods accepted for direct fund entries.
const (
	MethodBkash = "bKash"
	MethodNagad = "Nagad"
	MethodCash  = "Cash"
	MethodOther = "Other"
)

// FundMethods returns the payment methods valid for a fund entry.
func FundMethods() []string {
	return []string{MethodBkash, MethodNagad, MethodCash, MethodOther}
}
