package timesheet

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/billing-tracker/internal/models"
)

type ProjectTotal struct {
	ProjectID   uint               `json:"project_id"`
	Project     *models.Project    `json:"project"`
	TotalHours  decimal.Decimal    `json:"total_hours"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	Entries     []models.TimeEntry `json:"entries"`
}

type AssigneeTotal struct {
	AssigneeID uint               `json:"assignee_id"`
	Assignee   *models.Assignee   `json:"assignee"`
	TotalHours decimal.Decimal    `json:"total_hours"`
	Entries    []models.TimeEntry `json:"entries"`
}

type OverallTotal struct {
	TotalHours  decimal.Decimal `json:"total_hours"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type Summary struct {
	PeriodStart    time.Time          `json:"period_start"`
	PeriodEnd      time.Time          `json:"period_end"`
	ProjectTotals  []ProjectTotal     `json:"project_totals"`
	AssigneeTotals []AssigneeTotal    `json:"assignee_totals"`
	OverallTotal   OverallTotal       `json:"overall_total"`
	Entries        []models.TimeEntry `json:"entries"`
}

// Aggregate groups entries by project and by assignee. Groups appear in the
// order their first entry appears; entries are not re-sorted. Entries dated
// outside the period are ignored.
func Aggregate(period Period, entries []models.TimeEntry) Summary {
	inside := make([]models.TimeEntry, 0, len(entries))
	for _, e := range entries {
		if period.Contains(e.Date) {
			inside = append(inside, e)
		}
	}
	entries = inside

	s := Summary{
		PeriodStart:    period.Start,
		PeriodEnd:      period.End,
		ProjectTotals:  []ProjectTotal{},
		AssigneeTotals: []AssigneeTotal{},
		OverallTotal: OverallTotal{
			TotalHours:  decimal.Zero,
			TotalAmount: decimal.Zero,
		},
		Entries: entries,
	}

	projectIdx := map[uint]int{}
	assigneeIdx := map[uint]int{}

	for _, e := range entries {
		i, ok := projectIdx[e.ProjectID]
		if !ok {
			i = len(s.ProjectTotals)
			projectIdx[e.ProjectID] = i
			s.ProjectTotals = append(s.ProjectTotals, ProjectTotal{
				ProjectID:   e.ProjectID,
				Project:     e.Project,
				TotalHours:  decimal.Zero,
				TotalAmount: decimal.Zero,
			})
		}
		pt := &s.ProjectTotals[i]
		pt.TotalHours = pt.TotalHours.Add(e.Hours)
		pt.Entries = append(pt.Entries, e)

		j, ok := assigneeIdx[e.AssigneeID]
		if !ok {
			j = len(s.AssigneeTotals)
			assigneeIdx[e.AssigneeID] = j
			s.AssigneeTotals = append(s.AssigneeTotals, AssigneeTotal{
				AssigneeID: e.AssigneeID,
				Assignee:   e.Assignee,
				TotalHours: decimal.Zero,
			})
		}
		at := &s.AssigneeTotals[j]
		at.TotalHours = at.TotalHours.Add(e.Hours)
		at.Entries = append(at.Entries, e)

		s.OverallTotal.TotalHours = s.OverallTotal.TotalHours.Add(e.Hours)
	}

	for i := range s.ProjectTotals {
		pt := &s.ProjectTotals[i]
		pt.TotalAmount = ProjectAmount(pt.Project, pt.TotalHours)
		s.OverallTotal.TotalAmount = s.OverallTotal.TotalAmount.Add(pt.TotalAmount)
	}

	return s
}

// ProjectAmount bills hours at the project's hourly rate; projects without a
// rate contribute nothing.
func ProjectAmount(p *models.Project, hours decimal.Decimal) decimal.Decimal {
	if p == nil || p.HourlyRate == nil {
		return decimal.Zero
	}
	return hours.Mul(*p.HourlyRate)
}
