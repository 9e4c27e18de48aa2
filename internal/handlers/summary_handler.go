package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/billing-tracker/internal/domain/timesheet"
	"github.com/BruksfildServices01/billing-tracker/internal/dto"
	"github.com/BruksfildServices01/billing-tracker/internal/httperr"
	"github.com/BruksfildServices01/billing-tracker/internal/httpresp"
	ucMilestone "github.com/BruksfildServices01/billing-tracker/internal/usecase/milestone"
	ucTimesheet "github.com/BruksfildServices01/billing-tracker/internal/usecase/timesheet"
)

type SummaryHandler struct {
	summarize   *ucTimesheet.SummarizePeriod
	listOverdue *ucMilestone.ListOverdue
	now         func() time.Time
	loc         *time.Location
}

func NewSummaryHandler(
	summarize *ucTimesheet.SummarizePeriod,
	listOverdue *ucMilestone.ListOverdue,
	now func() time.Time,
	loc *time.Location,
) *SummaryHandler {
	return &SummaryHandler{
		summarize:   summarize,
		listOverdue: listOverdue,
		now:         now,
		loc:         loc,
	}
}

// ======================================================
// WEEKLY TIME
// ======================================================
// ?date=YYYY-MM-DD selects the week holding that day; ?start=&end= selects an
// explicit range; with neither the current week is used.
func (h *SummaryHandler) Weekly(c *gin.Context) {
	period, err := h.weekPeriod(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	summary, err := h.summarize.Execute(c.Request.Context(), period)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, summary)
}

func (h *SummaryHandler) weekPeriod(c *gin.Context) (domain.Period, error) {
	start, hasStart, err := dateQuery(c, "start", h.loc)
	if err != nil {
		return domain.Period{}, err
	}
	end, hasEnd, err := dateQuery(c, "end", h.loc)
	if err != nil {
		return domain.Period{}, err
	}
	if hasStart != hasEnd {
		return domain.Period{}, httperr.Validation("start and end must be given together")
	}
	if hasStart {
		return domain.NewPeriod(start, end)
	}

	day, hasDate, err := dateQuery(c, "date", h.loc)
	if err != nil {
		return domain.Period{}, err
	}
	if !hasDate {
		day = h.now().In(h.loc)
	}
	return domain.WeekContaining(day), nil
}

// ======================================================
// MONTHLY TIME
// ======================================================
func (h *SummaryHandler) Monthly(c *gin.Context) {
	now := h.now().In(h.loc)

	year, err := intQuery(c, "year", now.Year())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	month, err := intQuery(c, "month", int(now.Month()))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if year < 2000 || year > 2100 {
		httperr.BadRequest(c, "year must be between 2000 and 2100")
		return
	}
	if month < 1 || month > 12 {
		httperr.BadRequest(c, "month must be between 1 and 12")
		return
	}

	summary, err := h.summarize.Execute(c.Request.Context(), domain.MonthOf(year, time.Month(month), h.loc))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, summary)
}

// ======================================================
// OVERDUE
// ======================================================
func (h *SummaryHandler) Overdue(c *gin.Context) {
	list, err := h.listOverdue.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, list)
}

// ======================================================
// DASHBOARD
// ======================================================
func (h *SummaryHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	now := h.now().In(h.loc)

	overdue, err := h.listOverdue.Execute(ctx)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	week, err := h.summarize.Execute(ctx, domain.WeekContaining(now))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	month, err := h.summarize.Execute(ctx, domain.MonthOf(now.Year(), now.Month(), h.loc))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.DashboardDTO{
		Overdue:      overdue,
		OverdueTotal: len(overdue),
		Week:         week,
		Month:        month,
	})
}
