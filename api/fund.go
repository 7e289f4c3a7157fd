package api

import (
	"time"

	"clubfund/models"
	"clubfund/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// FundHandler serves fund-entry endpoints.
type FundHandler struct {
	ledger *service.LedgerService
}

// NewFundHandler creates a fund handler.
func NewFundHandler(ledger *service.LedgerService) *FundHandler {
	return &FundHandler{ledger: ledger}
}

// CreateFundRequest is the payload for a direct fund entry.
type CreateFundRequest struct {
	Name   string          `json:"name" binding:"required" example:"Alice"`
	Amount decimal.Decimal `json:"amount" binding:"required" example:"100.0"`
	Date   string          `json:"date" example:"2024-03-01"`
	Method string          `json:"method" binding:"required" example:"Cash"`
}

// validDate reports whether s is a YYYY-MM-DD calendar date.
func validDate(s string) bool {
	_, err := time.Parse(service.DateLayout, s)
	return err == nil
}

func validMethod(method string, allowed []string) bool {
	for _, m := range allowed {
		if m == method {
			return true
		}
	}
	return false
}

// Create adds a fund entry
// @Summary Add a fund entry (admin)
// @Description Appends a fund entry to the ledger. Date defaults to today when omitted.
// @Tags funds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateFundRequest true "fund entry"
// @Success 200 {object} Response{data=models.FundEntry} "entry added"
// @Failure 400 {object} Response "invalid payload"
// @Failure 403 {object} Response "admin only"
// @Router /api/v1/funds [post]
func (h *FundHandler) Create(c *gin.Context) {
	var req CreateFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid request"))
		return
	}

	if !validMethod(req.Method, models.FundMethods()) {
		BadRequest(c, "invalid payment method")
		return
	}
	if req.Date == "" {
		req.Date = time.Now().Format(service.DateLayout)
	} else if !validDate(req.Date) {
		BadRequest(c, "invalid date, expected YYYY-MM-DD")
		return
	}

	entry, err := h.ledger.AddFund(req.Name, req.Amount, req.Date, req.Method)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "adding fund entry failed"))
		return
	}

	SuccessWithMessage(c, "fund entry added successfully", entry)
}

// List returns all fund entries
// @Summary List fund entries
// @Description Returns every fund entry with the total, most recent date first.
// @Tags funds
// @Produce json
// @Success 200 {object} Response "fund entries"
// @Router /api/v1/funds [get]
func (h *FundHandler) List(c *gin.Context) {
	funds, err := h.ledger.ListFunds()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "loading funds failed"))
		return
	}
	total, err := h.ledger.TotalFunds()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "loading funds failed"))
		return
	}

	Success(c, gin.H{
		"funds": funds,
		"total": total,
	})
}
