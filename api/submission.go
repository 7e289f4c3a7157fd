package api

import (
	"strconv"

	"clubfund/config"
	"clubfund/models"
	"clubfund/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SubmissionHandler serves the fund-submission workflow: public
// intake plus admin review.
type SubmissionHandler struct {
	cfg         *config.Config
	submissions *service.SubmissionService
}

// NewSubmissionHandler creates a submission handler.
func NewSubmissionHandler(cfg *config.Config, submissions *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{cfg: cfg, submissions: submissions}
}

// SubmitFundRequest is the multipart form for a fund submission. The
// amount arrives as a form string and is parsed at the boundary; the
// screenshot file part is optional and handled separately.
type SubmitFundRequest struct {
	FullName      string `form:"full_name" binding:"required,min=3,max=50" example:"Rahim Uddin"`
	MobileNumber  string `form:"mobile_number" binding:"required,min=11,max=15" example:"01712345678"`
	Amount        string `form:"amount" binding:"required" example:"500.0"`
	TransactionID string `form:"transaction_id" binding:"required" example:"TX12345"`
	PaymentMethod string `form:"payment_method" binding:"required" example:"bKash"`
}

// Submit records a member fund submission
// @Summary Submit a payment claim
// @Description Public intake for member payment claims. Accepts an optional screenshot (jpg/jpeg/png). The submission stays pending until an admin decides it.
// @Tags submissions
// @Accept multipart/form-data
// @Produce json
// @Param full_name formData string true "full name"
// @Param mobile_number formData string true "mobile number"
// @Param amount formData number true "amount"
// @Param transaction_id formData string true "transaction id"
// @Param payment_method formData string true "bKash, Nagad or Cellfin"
// @Param screenshot formData file false "payment screenshot"
// @Success 200 {object} Response{data=models.FundSubmission} "submission received"
// @Failure 400 {object} Response "invalid payload"
// @Router /api/v1/submissions [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req SubmitFundRequest
	if err := c.ShouldBind(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid request"))
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		BadRequest(c, "invalid amount")
		return
	}
	if !validMethod(req.PaymentMethod, models.SubmissionMethods()) {
		BadRequest(c, "invalid payment method")
		return
	}

	var screenshot *string
	if file, err := c.FormFile("screenshot"); err == nil && file != nil {
		name, err := saveScreenshot(c, file, h.cfg.Upload.Dir)
		if err != nil {
			BadRequest(c, SafeErrorMessage(err, "screenshot upload failed"))
			return
		}
		screenshot = &name
	}

	sub, err := h.submissions.Submit(req.FullName, req.MobileNumber, amount, req.TransactionID, req.PaymentMethod, screenshot)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "recording submission failed"))
		return
	}

	SuccessWithMessage(c, "your fund submission has been received and is pending approval", sub)
}

// ListPending returns submissions awaiting a decision
// @Summary List pending submissions (admin)
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.FundSubmission} "pending submissions"
// @Failure 403 {object} Response "admin only"
// @Router /api/v1/submissions/pending [get]
func (h *SubmissionHandler) ListPending(c *gin.Context) {
	pending, err := h.submissions.ListPending()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "loading submissions failed"))
		return
	}
	Success(c, pending)
}

// Approve approves a submission
// @Summary Approve a submission (admin)
// @Description Marks the submission approved and appends the mirroring fund entry.
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param id path int true "submission id"
// @Success 200 {object} Response "submission approved"
// @Failure 400 {object} Response "invalid id"
// @Failure 403 {object} Response "admin only"
// @Failure 404 {object} Response "submission not found"
// @Router /api/v1/submissions/{id}/approve [post]
func (h *SubmissionHandler) Approve(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		BadRequest(c, "invalid submission id")
		return
	}

	ok, err := h.submissions.Approve(id)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "approving submission failed"))
		return
	}
	if !ok {
		NotFound(c, "could not find the submission")
		return
	}

	SuccessWithMessage(c, "fund submission approved and added to funds", nil)
}

// Reject rejects a submission
// @Summary Reject a submission (admin)
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param id path int true "submission id"
// @Success 200 {object} Response "submission rejected"
// @Failure 400 {object} Response "invalid id"
// @Failure 403 {object} Response "admin only"
// @Failure 404 {object} Response "submission not found"
// @Router /api/v1/submissions/{id}/reject [post]
func (h *SubmissionHandler) Reject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		BadRequest(c, "invalid submission id")
		return
	}

	ok, err := h.submissions.Reject(id)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "rejecting submission failed"))
		return
	}
	if !ok {
		NotFound(c, "could not find the submission")
		return
	}

	SuccessWithMessage(c, "fund submission rejected", nil)
}
