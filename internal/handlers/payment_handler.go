package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/billing-tracker/internal/httperr"
	"github.com/BruksfildServices01/billing-tracker/internal/httpresp"
	"github.com/BruksfildServices01/billing-tracker/internal/models"
	ucMilestone "github.com/BruksfildServices01/billing-tracker/internal/usecase/milestone"
)

type PaymentHandler struct {
	db            *gorm.DB
	createPayment *ucMilestone.CreatePayment
	deletePayment *ucMilestone.DeletePayment
	loc           *time.Location
}

func NewPaymentHandler(
	db *gorm.DB,
	createPayment *ucMilestone.CreatePayment,
	deletePayment *ucMilestone.DeletePayment,
	loc *time.Location,
) *PaymentHandler {
	return &PaymentHandler{
		db:            db,
		createPayment: createPayment,
		deletePayment: deletePayment,
		loc:           loc,
	}
}

type CreatePaymentRequest struct {
	MilestoneID uint             `json:"milestone_id" binding:"required"`
	Amount      *decimal.Decimal `json:"amount"`
	PaymentDate *string          `json:"payment_date"`
	Notes       string           `json:"notes"`
}

// ======================================================
// LIST PAYMENTS
// ======================================================
func (h *PaymentHandler) List(c *gin.Context) {
	milestoneID, err := uintQuery(c, "milestone_id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	q := h.db.WithContext(c.Request.Context()).
		Preload("Milestone.Project.Client")

	if milestoneID != nil {
		q = q.Where("milestone_id = ?", *milestoneID)
	}

	var payments []models.Payment
	if err := q.Order("payment_date DESC").Find(&payments).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, payments)
}

// ======================================================
// CREATE PAYMENT (recomputes the milestone status)
// ======================================================
func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	if req.Amount == nil {
		httperr.BadRequest(c, "amount is required")
		return
	}

	paymentDate, err := optionalDateField("payment_date", req.PaymentDate, h.loc)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out, err := h.createPayment.Execute(c.Request.Context(), ucMilestone.CreatePaymentInput{
		MilestoneID: req.MilestoneID,
		Amount:      *req.Amount,
		PaymentDate: paymentDate,
		Notes:       req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, out)
}

// ======================================================
// DELETE PAYMENT (recomputes the milestone status)
// ======================================================
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	out, err := h.deletePayment.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}
