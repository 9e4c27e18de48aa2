package milestone

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/billing-tracker/internal/audit"
	domain "github.com/BruksfildServices01/billing-tracker/internal/domain/milestone"
	"github.com/BruksfildServices01/billing-tracker/internal/dto"
	"github.com/BruksfildServices01/billing-tracker/internal/httperr"
	"github.com/BruksfildServices01/billing-tracker/internal/models"
)

type CreatePaymentInput struct {
	MilestoneID uint
	Amount      decimal.Decimal
	PaymentDate *time.Time
	Notes       string
}

type CreatePayment struct {
	repo      domain.Repository
	recompute *RecomputeStatus
	audit     *audit.Dispatcher
	logger    *zap.Logger
	now       func() time.Time
}

func NewCreatePayment(
	repo domain.Repository,
	recompute *RecomputeStatus,
	audit *audit.Dispatcher,
	logger *zap.Logger,
	now func() time.Time,
) *CreatePayment {
	return &CreatePayment{
		repo:      repo,
		recompute: recompute,
		audit:     audit,
		logger:    logger,
		now:       now,
	}
}

// Execute records the payment and then updates the milestone status. Only a
// failed payment write fails the call; a failed status update is logged and
// reported through StatusRecomputed.
func (uc *CreatePayment) Execute(
	ctx context.Context,
	in CreatePaymentInput,
) (*dto.PaymentResultDTO, error) {

	if !in.Amount.IsPositive() {
		return nil, httperr.Validation("amount must be greater than zero")
	}

	if _, err := uc.repo.GetMilestone(ctx, in.MilestoneID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.InvalidReference("milestone %d does not exist", in.MilestoneID)
		}
		return nil, err
	}

	paymentDate := uc.now()
	if in.PaymentDate != nil {
		paymentDate = *in.PaymentDate
	}

	p := &models.Payment{
		MilestoneID: in.MilestoneID,
		Amount:      in.Amount,
		PaymentDate: paymentDate,
		Notes:       in.Notes,
	}
	if err := uc.repo.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionPaymentRecorded,
		Entity:   "payment",
		EntityID: audit.IDPtr(p.ID),
		Metadata: map[string]any{
			"milestone_id": p.MilestoneID,
			"amount":       p.Amount.String(),
		},
	})

	out := &dto.PaymentResultDTO{Payment: *p}

	status, err := uc.recompute.Execute(ctx, p.MilestoneID)
	if err != nil {
		uc.logger.Warn("milestone status not recomputed after payment",
			zap.Uint("payment_id", p.ID),
			zap.Uint("milestone_id", p.MilestoneID),
			zap.Error(err),
		)
		return out, nil
	}

	out.MilestoneStatus = status
	out.StatusRecomputed = true
	return out, nil
}
