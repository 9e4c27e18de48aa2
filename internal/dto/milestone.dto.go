package dto

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/billing-tracker/internal/domain/milestone"
	"github.com/BruksfildServices01/billing-tracker/internal/models"
)

// MilestoneBalanceDTO is a milestone with its derived payment balance.
type MilestoneBalanceDTO struct {
	models.Milestone
	TotalPaid decimal.Decimal `json:"total_paid"`
	Remaining decimal.Decimal `json:"remaining"`
}

func NewMilestoneBalance(m models.Milestone) MilestoneBalanceDTO {
	return MilestoneBalanceDTO{
		Milestone: m,
		TotalPaid: milestone.TotalPaid(m.Payments),
		Remaining: milestone.Remaining(m.Amount, m.Payments),
	}
}

func NewMilestoneBalances(list []models.Milestone) []MilestoneBalanceDTO {
	out := make([]MilestoneBalanceDTO, 0, len(list))
	for _, m := range list {
		out = append(out, NewMilestoneBalance(m))
	}
	return out
}
