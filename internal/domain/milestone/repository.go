package milestone

import (
	"context"
	"time"

	"github.com/BruksfildServices01/billing-tracker/internal/models"
)

// ResolveFunc receives the locked milestone with its current payments.
type ResolveFunc func(m *models.Milestone) Status

type Repository interface {
	// -------- Milestone --------
	GetMilestone(
		ctx context.Context,
		id uint,
	) (*models.Milestone, error)

	// UpdateStatusLocked reads the milestone and its payments under a row
	// lock, writes the resolved status and returns previous and new values.
	UpdateStatusLocked(
		ctx context.Context,
		id uint,
		resolve ResolveFunc,
	) (previous Status, current Status, err error)

	ListOverdue(
		ctx context.Context,
		now time.Time,
	) ([]models.Milestone, error)

	// -------- Payment --------
	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	GetPayment(
		ctx context.Context,
		id uint,
	) (*models.Payment, error)

	DeletePayment(
		ctx context.Context,
		id uint,
	) error
}
