package timesheet

import (
	"context"

	domain "github.com/BruksfildServices01/billing-tracker/internal/domain/timesheet"
	"github.com/BruksfildServices01/billing-tracker/internal/models"
)

type ListEntries struct {
	repo domain.Repository
}

func NewListEntries(repo domain.Repository) *ListEntries {
	return &ListEntries{repo: repo}
}

func (uc *ListEntries) Execute(
	ctx context.Context,
	filter domain.EntryFilter,
) ([]models.TimeEntry, error) {
	return uc.repo.ListEntries(ctx, filter)
}
