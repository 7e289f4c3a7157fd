package models

import "github.com/shopspring/decimal"

// ExpenseEntry is one outgoing payment on the ledger. Entries are
// created by admins and immutable afterwards.
type ExpenseEntry struct {
	ID     int             `json:"id"`
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"` // YYYY-MM-DD
	Reason string          `json:"reason"`
}
