package api

import (
	"time"

	"clubfund/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ExpenseHandler serves expense-entry endpoints.
type ExpenseHandler struct {
	ledger *service.LedgerService
}

// NewExpenseHandler creates an expense handler.
func NewExpenseHandler(ledger *service.LedgerService) *ExpenseHandler {
	return &ExpenseHandler{ledger: ledger}
}

// CreateExpenseRequest is the payload for an expense entry.
type CreateExpenseRequest struct {
	Title  string          `json:"title" binding:"required" example:"Snacks"`
	Amount decimal.Decimal `json:"amount" binding:"required" example:"30.0"`
	Date   string          `json:"date" example:"2024-03-02"`
	Reason string          `json:"reason" binding:"required" example:"party"`
}

// Create adds an expense entry
// @Summary Add an expense entry (admin)
// @Description Appends an expense entry to the ledger. Date defaults to today when omitted.
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateExpenseRequest true "expense entry"
// @Success 200 {object} Response{data=models.ExpenseEntry} "entry added"
// @Failure 400 {object} Response "invalid payload"
// @Failure 403 {object} Response "admin only"
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid request"))
		return
	}

	if req.Date == "" {
		req.Date = time.Now().Format(service.DateLayout)
	} else if !validDate(req.Date) {
		BadRequest(c, "invalid date, expected YYYY-MM-DD")
		return
	}

	entry, err := h.ledger.AddExpense(req.Title, req.Amount, req.Date, req.Reason)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "adding expense entry failed"))
		return
	}

	SuccessWithMessage(c, "expense entry added successfully", entry)
}

// List returns all expense entries
// @Summary List expense entries
// @Description Returns every expense entry with the total, most recent date first.
// @Tags expenses
// @Produce json
// @Success 200 {object} Response "expense entries"
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.ledger.ListExpenses()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "loading expenses failed"))
		return
	}
	total, err := h.ledger.TotalExpenses()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "loading expenses failed"))
		return
	}

	Success(c, gin.H{
		"expenses": expenses,
		"total":    total,
	})
}
