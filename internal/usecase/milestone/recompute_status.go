package milestone

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/billing-tracker/internal/audit"
	domain "github.com/BruksfildServices01/billing-tracker/internal/domain/milestone"
	"github.com/BruksfildServices01/billing-tracker/internal/httperr"
	"github.com/BruksfildServices01/billing-tracker/internal/metrics"
	"github.com/BruksfildServices01/billing-tracker/internal/models"
)

type RecomputeStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewRecomputeStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	now func() time.Time,
) *RecomputeStatus {
	return &RecomputeStatus{
		repo:  repo,
		audit: audit,
		now:   now,
	}
}

// Execute re-derives the milestone status from its payments and due date
// and persists it. Amount, due date and payments are left untouched.
func (uc *RecomputeStatus) Execute(
	ctx context.Context,
	milestoneID uint,
) (domain.Status, error) {

	now := uc.now()

	previous, current, err := uc.repo.UpdateStatusLocked(ctx, milestoneID,
		func(m *models.Milestone) domain.Status {
			return domain.Resolve(m, now)
		},
	)
	if err != nil {
		metrics.RecordRecompute(metrics.OutcomeFailed)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", httperr.NotFoundErr("milestone")
		}
		return "", err
	}

	if previous == current {
		metrics.RecordRecompute(metrics.OutcomeUnchanged)
		return current, nil
	}

	metrics.RecordRecompute(metrics.OutcomeChanged)
	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionMilestoneStatus,
		Entity:   "milestone",
		EntityID: audit.IDPtr(milestoneID),
		Metadata: map[string]string{
			"from": string(previous),
			"to":   string(current),
		},
	})

	return current, nil
}
