package dto

import "github.com/BruksfildServices01/billing-tracker/internal/domain/timesheet"

type DashboardDTO struct {
	Overdue      []MilestoneBalanceDTO `json:"overdue"`
	OverdueTotal int                   `json:"overdue_total"`
	Week         *timesheet.Summary    `json:"week"`
	Month        *timesheet.Summary    `json:"month"`
}
