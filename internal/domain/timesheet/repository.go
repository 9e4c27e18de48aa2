package timesheet

import (
	"context"

	"github.com/BruksfildServices01/billing-tracker/internal/models"
)

// EntryFilter narrows time entry listings. Nil fields are ignored.
type EntryFilter struct {
	ProjectID  *uint
	AssigneeID *uint
	Period     *Period
}

type Repository interface {
	// -------- References --------
	ProjectExists(ctx context.Context, id uint) (bool, error)
	AssigneeExists(ctx context.Context, id uint) (bool, error)

	// -------- Time entries --------
	GetEntry(
		ctx context.Context,
		id uint,
	) (*models.TimeEntry, error)

	CreateEntry(
		ctx context.Context,
		e *models.TimeEntry,
	) error

	UpdateEntry(
		ctx context.Context,
		e *models.TimeEntry,
	) error

	DeleteEntry(
		ctx context.Context,
		id uint,
	) error

	// ListEntries preloads project (with client) and assignee, ordered by
	// date then id.
	ListEntries(
		ctx context.Context,
		filter EntryFilter,
	) ([]models.TimeEntry, error)
}
