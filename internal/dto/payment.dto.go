package dto

import (
	"github.com/BruksfildServices01/billing-tracker/internal/domain/milestone"
	"github.com/BruksfildServices01/billing-tracker/internal/models"
)

// PaymentResultDTO reports the payment write together with the outcome of
// the milestone status update that follows it.
type PaymentResultDTO struct {
	models.Payment
	MilestoneStatus  milestone.Status `json:"milestone_status,omitempty"`
	StatusRecomputed bool             `json:"status_recomputed"`
}

type PaymentDeletedDTO struct {
	Success          bool             `json:"success"`
	MilestoneID      uint             `json:"milestone_id"`
	MilestoneStatus  milestone.Status `json:"milestone_status,omitempty"`
	StatusRecomputed bool             `json:"status_recomputed"`
}
