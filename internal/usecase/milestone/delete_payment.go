package milestone

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/billing-tracker/internal/audit"
	domain "github.com/BruksfildServices01/billing-tracker/internal/domain/milestone"
	"github.com/BruksfildServices01/billing-tracker/internal/dto"
	"github.com/BruksfildServices01/billing-tracker/internal/httperr"
)

type DeletePayment struct {
	repo      domain.Repository
	recompute *RecomputeStatus
	audit     *audit.Dispatcher
	logger    *zap.Logger
}

func NewDeletePayment(
	repo domain.Repository,
	recompute *RecomputeStatus,
	audit *audit.Dispatcher,
	logger *zap.Logger,
) *DeletePayment {
	return &DeletePayment{
		repo:      repo,
		recompute: recompute,
		audit:     audit,
		logger:    logger,
	}
}

func (uc *DeletePayment) Execute(
	ctx context.Context,
	paymentID uint,
) (*dto.PaymentDeletedDTO, error) {

	p, err := uc.repo.GetPayment(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFoundErr("payment")
		}
		return nil, err
	}

	if err := uc.repo.DeletePayment(ctx, p.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFoundErr("payment")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionPaymentDeleted,
		Entity:   "payment",
		EntityID: audit.IDPtr(p.ID),
		Metadata: map[string]any{"milestone_id": p.MilestoneID},
	})

	out := &dto.PaymentDeletedDTO{
		Success:     true,
		MilestoneID: p.MilestoneID,
	}

	status, err := uc.recompute.Execute(ctx, p.MilestoneID)
	if err != nil {
		uc.logger.Warn("milestone status not recomputed after payment delete",
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
