package timesheet

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/billing-tracker/internal/audit"
	"github.com/BruksfildServices01/billing-tracker/internal/cache"
	domain "github.com/BruksfildServices01/billing-tracker/internal/domain/timesheet"
	"github.com/BruksfildServices01/billing-tracker/internal/httperr"
	"github.com/BruksfildServices01/billing-tracker/internal/models"
)

// EntryInput carries a create or a partial update. Nil fields are left
// unchanged on update.
type EntryInput struct {
	ProjectID   *uint
	AssigneeID  *uint
	Date        *time.Time
	Hours       *decimal.Decimal
	EntryHour   *int
	EntryMinute *int
	Description *string
}

type SaveEntry struct {
	repo   domain.Repository
	cache  cache.SummaryCache
	audit  *audit.Dispatcher
	logger *zap.Logger
}

func NewSaveEntry(
	repo domain.Repository,
	cache cache.SummaryCache,
	audit *audit.Dispatcher,
	logger *zap.Logger,
) *SaveEntry {
	return &SaveEntry{
		repo:   repo,
		cache:  cache,
		audit:  audit,
		logger: logger,
	}
}

// ======================================================
// CREATE
// ======================================================

func (uc *SaveEntry) Create(
	ctx context.Context,
	in EntryInput,
) (*models.TimeEntry, error) {

	if in.ProjectID == nil || *in.ProjectID == 0 {
		return nil, httperr.Validation("project_id is required")
	}
	if in.AssigneeID == nil || *in.AssigneeID == 0 {
		return nil, httperr.Validation("assignee_id is required")
	}
	if in.Date == nil {
		return nil, httperr.Validation("date is required")
	}

	hours, err := domain.ResolveHours(in.Hours, in.EntryHour, in.EntryMinute)
	if err != nil {
		return nil, err
	}

	if err := uc.checkReferences(ctx, *in.ProjectID, *in.AssigneeID); err != nil {
		return nil, err
	}

	e := &models.TimeEntry{
		ProjectID:  *in.ProjectID,
		AssigneeID: *in.AssigneeID,
		Date:       *in.Date,
		Hours:      hours,
	}
	if in.EntryHour != nil && in.EntryMinute != nil {
		e.EntryHour = in.EntryHour
		e.EntryMinute = in.EntryMinute
	}
	if in.Description != nil {
		e.Description = *in.Description
	}

	if err := uc.repo.CreateEntry(ctx, e); err != nil {
		return nil, err
	}

	uc.afterWrite(ctx, audit.ActionCreated, e.ID)
	return uc.repo.GetEntry(ctx, e.ID)
}

// ======================================================
// UPDATE
// ======================================================

// Update applies the supplied fields. A new entry_hour/entry_minute pair
// re-derives hours; a bare hours value clears the pair.
func (uc *SaveEntry) Update(
	ctx context.Context,
	id uint,
	in EntryInput,
) (*models.TimeEntry, error) {

	e, err := uc.repo.GetEntry(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFoundErr("time entry")
		}
		return nil, err
	}

	switch {
	case in.EntryHour != nil && in.EntryMinute != nil:
		hours, err := domain.ResolveHours(nil, in.EntryHour, in.EntryMinute)
		if err != nil {
			return nil, err
		}
		e.Hours = hours
		e.EntryHour = in.EntryHour
		e.EntryMinute = in.EntryMinute
	case in.Hours != nil:
		hours, err := domain.ResolveHours(in.Hours, nil, nil)
		if err != nil {
			return nil, err
		}
		e.Hours = hours
		e.EntryHour = nil
		e.EntryMinute = nil
	}

	if in.ProjectID != nil {
		e.ProjectID = *in.ProjectID
	}
	if in.AssigneeID != nil {
		e.AssigneeID = *in.AssigneeID
	}
	if in.Date != nil {
		e.Date = *in.Date
	}
	if in.Description != nil {
		e.Description = *in.Description
	}

	if in.ProjectID != nil || in.AssigneeID != nil {
		if err := uc.checkReferences(ctx, e.ProjectID, e.AssigneeID); err != nil {
			return nil, err
		}
	}

	e.Project = nil
	e.Assignee = nil
	if err := uc.repo.UpdateEntry(ctx, e); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFoundErr("time entry")
		}
		return nil, err
	}

	uc.afterWrite(ctx, audit.ActionUpdated, e.ID)
	return uc.repo.GetEntry(ctx, e.ID)
}

// ======================================================
// DELETE
// ======================================================

func (uc *SaveEntry) Delete(
	ctx context.Context,
	id uint,
) error {

	if err := uc.repo.DeleteEntry(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFoundErr("time entry")
		}
		return err
	}

	uc.afterWrite(ctx, audit.ActionDeleted, id)
	return nil
}

// ======================================================
// HELPERS
// ======================================================

func (uc *SaveEntry) checkReferences(ctx context.Context, projectID, assigneeID uint) error {
	ok, err := uc.repo.ProjectExists(ctx, projectID)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.InvalidReference("project %d does not exist", projectID)
	}

	ok, err = uc.repo.AssigneeExists(ctx, assigneeID)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.InvalidReference("assignee %d does not exist", assigneeID)
	}
	return nil
}

func (uc *SaveEntry) afterWrite(ctx context.Context, action string, id uint) {
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("summary cache invalidation failed", zap.Error(err))
	}

	uc.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "time_entry",
		EntityID: audit.IDPtr(id),
	})
}
