package models

import "github.com/shopspring/decimal"

// Submission statuses. Approved and rejected are terminal; the
// workflow defines no transitions out of them.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Payment method accepted only on member submissions.
const MethodCellfin = "Cellfin"

// FundSubmission is a member-initiated, unverified claim of payment.
// It affects the ledger only after an admin approves it, at which
// point a FundEntry mirroring name/amount/date/method is appended.
type FundSubmission struct {
	ID            int             `json:"id"`
	FullName      string          `json:"full_name"`
	MobileNumber  string          `json:"mobile_number"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transaction_id"`
	PaymentMethod string          `json:"payment_method"`
	Screenshot    *string         `json:"screenshot"`
	DateSubmitted string          `json:"date_submitted"` // YYYY-MM-DD, server clock at creation
	Status        string          `json:"status"`
}

// SubmissionMethods returns the payment methods valid for a member
// submission.
func SubmissionMethods() []string {
	return []string{MethodBkash, MethodNagad, MethodCellfin}
}
