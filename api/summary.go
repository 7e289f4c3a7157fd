package api

import (
	"clubfund/models"
	"clubfund/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SummaryHandler serves the public ledger overview, the monthly
// summary and the admin dashboard.
type SummaryHandler struct {
	ledger      *service.LedgerService
	submissions *service.SubmissionService
}

// NewSummaryHandler creates a summary handler.
func NewSummaryHandler(ledger *service.LedgerService, submissions *service.SubmissionService) *SummaryHandler {
	return &SummaryHandler{ledger: ledger, submissions: submissions}
}

// home page shows only the most recent entries
const overviewLimit = 5

// LedgerOverview is the public summary of the ledger.
type LedgerOverview struct {
	Funds          []models.FundEntry    `json:"funds"`
	Expenses       []models.ExpenseEntry `json:"expenses"`
	TotalFunds     decimal.Decimal       `json:"total_funds"`
	TotalExpenses  decimal.Decimal       `json:"total_expenses"`
	CurrentBalance decimal.Decimal       `json:"current_balance"`
}

func (h *SummaryHandler) overview() (LedgerOverview, error) {
	funds, err := h.ledger.ListFunds()
	if err != nil {
		return LedgerOverview{}, err
	}
	expenses, err := h.ledger.ListExpenses()
	if err != nil {
		return LedgerOverview{}, err
	}
	totalFunds, err := h.ledger.TotalFunds()
	if err != nil {
		return LedgerOverview{}, err
	}
	totalExpenses, err := h.ledger.TotalExpenses()
	if err != nil {
		return LedgerOverview{}, err
	}

	if len(funds) > overviewLimit {
		funds = funds[:overviewLimit]
	}
	if len(expenses) > overviewLimit {
		expenses = expenses[:overviewLimit]
	}

	return LedgerOverview{
		Funds:          funds,
		Expenses:       expenses,
		TotalFunds:     totalFunds,
		TotalExpenses:  totalExpenses,
		CurrentBalance: totalFunds.Sub(totalExpenses),
	}, nil
}

// Ledger returns the public overview
// @Summary Public ledger overview
// @Description Totals, balance, and the five most recent funds and expenses.
// @Tags summary
// @Produce json
// @Success 200 {object} Response{data=LedgerOverview} "overview"
// @Router /api/v1/ledger [get]
func (h *SummaryHandler) Ledger(c *gin.Context) {
	ov, err := h.overview()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "loading ledger failed"))
		return
	}
	Success(c, ov)
}

// Monthly returns the monthly summary
// @Summary Monthly summary
// @Description Funds, expenses and balance per calendar month, most recent month first.
// @Tags summary
// @Produce json
// @Success 200 {object} Response{data=[]service.MonthSummary} "monthly summary"
// @Router /api/v1/summary [get]
func (h *SummaryHandler) Monthly(c *gin.Context) {
	summary, err := h.ledger.MonthlySummary()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "building summary failed"))
		return
	}
	Success(c, summary)
}

// Dashboard returns the admin aggregate view
// @Summary Admin dashboard (admin)
// @Description Overview plus submissions awaiting a decision.
// @Tags summary
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "dashboard"
// @Failure 403 {object} Response "admin only"
// @Router /api/v1/dashboard [get]
func (h *SummaryHandler) Dashboard(c *gin.Context) {
	ov, err := h.overview()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "loading dashboard failed"))
		return
	}
	pending, err := h.submissions.ListPending()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "loading dashboard failed"))
		return
	}

	Success(c, gin.H{
		"overview":            ov,
		"pending_submissions": pending,
	})
}
