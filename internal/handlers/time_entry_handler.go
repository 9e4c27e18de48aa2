package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/billing-tracker/internal/domain/timesheet"
	"github.com/BruksfildServices01/billing-tracker/internal/httperr"
	"github.com/BruksfildServices01/billing-tracker/internal/httpresp"
	ucTimesheet "github.com/BruksfildServices01/billing-tracker/internal/usecase/timesheet"
)

type TimeEntryHandler struct {
	listEntries *ucTimesheet.ListEntries
	saveEntry   *ucTimesheet.SaveEntry
	loc         *time.Location
}

func NewTimeEntryHandler(
	listEntries *ucTimesheet.ListEntries,
	saveEntry *ucTimesheet.SaveEntry,
	loc *time.Location,
) *TimeEntryHandler {
	return &TimeEntryHandler{
		listEntries: listEntries,
		saveEntry:   saveEntry,
		loc:         loc,
	}
}

// TimeEntryRequest serves both create and partial update.
type TimeEntryRequest struct {
	ProjectID   *uint            `json:"project_id" binding:"omitempty,min=1"`
	AssigneeID  *uint            `json:"assignee_id" binding:"omitempty,min=1"`
	Date        *string          `json:"date"`
	Hours       *decimal.Decimal `json:"hours"`
	EntryHour   *int             `json:"entry_hour" binding:"omitempty,min=0"`
	EntryMinute *int             `json:"entry_minute" binding:"omitempty,min=0,max=59"`
	Description *string          `json:"description"`
}

func (h *TimeEntryHandler) toInput(req TimeEntryRequest) (ucTimesheet.EntryInput, error) {
	date, err := optionalDateField("date", req.Date, h.loc)
	if err != nil {
		return ucTimesheet.EntryInput{}, err
	}

	return ucTimesheet.EntryInput{
		ProjectID:   req.ProjectID,
		AssigneeID:  req.AssigneeID,
		Date:        date,
		Hours:       req.Hours,
		EntryHour:   req.EntryHour,
		EntryMinute: req.EntryMinute,
		Description: req.Description,
	}, nil
}

// ======================================================
// LIST TIME ENTRIES
// ======================================================
// week_start and week_end only filter when both are present.
func (h *TimeEntryHandler) List(c *gin.Context) {
	var filter domain.EntryFilter
	var err error

	if filter.ProjectID, err = uintQuery(c, "project_id"); err != nil {
		httperr.Respond(c, err)
		return
	}
	if filter.AssigneeID, err = uintQuery(c, "assignee_id"); err != nil {
		httperr.Respond(c, err)
		return
	}

	start, hasStart, err := dateQuery(c, "week_start", h.loc)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	end, hasEnd, err := dateQuery(c, "week_end", h.loc)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if hasStart && hasEnd {
		period, err := domain.NewPeriod(start, end)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		filter.Period = &period
	}

	entries, err := h.listEntries.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, entries)
}

// ======================================================
// CREATE TIME ENTRY
// ======================================================
func (h *TimeEntryHandler) Create(c *gin.Context) {
	var req TimeEntryRequest
	if !bindJSON(c, &req) {
		return
	}

	in, err := h.toInput(req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	e, err := h.saveEntry.Create(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, e)
}

// ======================================================
// UPDATE TIME ENTRY
// ======================================================
func (h *TimeEntryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req TimeEntryRequest
	if !bindJSON(c, &req) {
		return
	}

	in, err := h.toInput(req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	e, err := h.saveEntry.Update(c.Request.Context(), id, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, e)
}

// ======================================================
// DELETE TIME ENTRY
// ======================================================
func (h *TimeEntryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.saveEntry.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Deleted(c)
}
