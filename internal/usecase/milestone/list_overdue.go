package milestone

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/billing-tracker/internal/domain/milestone"
	"github.com/BruksfildServices01/billing-tracker/internal/dto"
)

type ListOverdue struct {
	repo domain.Repository
	now  func() time.Time
}

func NewListOverdue(
	repo domain.Repository,
	now func() time.Time,
) *ListOverdue {
	return &ListOverdue{
		repo: repo,
		now:  now,
	}
}

// Execute lists milestones flagged overdue or still pending past their due
// date, earliest due first, with their payment balance. The repository
// query narrows the rows; domain.IsOverdue decides.
func (uc *ListOverdue) Execute(
	ctx context.Context,
) ([]dto.MilestoneBalanceDTO, error) {

	now := uc.now()

	list, err := uc.repo.ListOverdue(ctx, now)
	if err != nil {
		return nil, err
	}

	overdue := list[:0]
	for i := range list {
		if domain.IsOverdue(&list[i], now) {
			overdue = append(overdue, list[i])
		}
	}

	return dto.NewMilestoneBalances(overdue), nil
}
