package milestone

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/billing-tracker/internal/models"
)

// ===============================
// Milestone Status
// ===============================

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// InitialStatus is used when a milestone is created without an explicit status.
func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Resolver
// ===============================

func TotalPaid(payments []models.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

// Remaining may be negative when a milestone was overpaid.
func Remaining(amount decimal.Decimal, payments []models.Payment) decimal.Decimal {
	return amount.Sub(TotalPaid(payments))
}

// ResolveStatus applies, in order: fully paid, past due, pending.
func ResolveStatus(
	amount decimal.Decimal,
	dueDate time.Time,
	payments []models.Payment,
	now time.Time,
) Status {
	if TotalPaid(payments).GreaterThanOrEqual(amount) {
		return StatusPaid
	}
	if now.After(dueDate) {
		return StatusOverdue
	}
	return StatusPending
}

// Resolve is ResolveStatus over a loaded milestone.
func Resolve(m *models.Milestone, now time.Time) Status {
	return ResolveStatus(m.Amount, m.DueDate, m.Payments, now)
}

// IsOverdue matches the dashboard rule: flagged overdue, or still pending
// after the due date.
func IsOverdue(m *models.Milestone, now time.Time) bool {
	switch Status(m.Status) {
	case StatusOverdue:
		return true
	case StatusPending:
		return m.DueDate.Before(now)
	}
	return false
}
