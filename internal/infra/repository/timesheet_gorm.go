package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	appdb "github.com/BruksfildServices01/billing-tracker/internal/db"
	domain "github.com/BruksfildServices01/billing-tracker/internal/domain/timesheet"
	"github.com/BruksfildServices01/billing-tracker/internal/models"
)

type TimesheetGormRepository struct {
	db   *gorm.DB
	caps appdb.Capabilities
}

func NewTimesheetGormRepository(db *gorm.DB, caps appdb.Capabilities) *TimesheetGormRepository {
	return &TimesheetGormRepository{db: db, caps: caps}
}

var _ domain.Repository = (*TimesheetGormRepository)(nil)

// --------------------------------------------------
// References
// --------------------------------------------------

func (r *TimesheetGormRepository) ProjectExists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &models.Project{}, id)
}

func (r *TimesheetGormRepository) AssigneeExists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &models.Assignee{}, id)
}

func exists(ctx context.Context, db *gorm.DB, model any, id uint) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).
		Model(model).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Time entries
// --------------------------------------------------

// writableColumns leaves out the split duration columns when the live
// schema does not have them.
func (r *TimesheetGormRepository) writableColumns() []string {
	cols := []string{"project_id", "assignee_id", "date", "hours", "description"}
	if r.caps.TimeEntrySplitDuration {
		cols = append(cols, "entry_hour", "entry_minute")
	}
	return cols
}

func (r *TimesheetGormRepository) GetEntry(
	ctx context.Context,
	id uint,
) (*models.TimeEntry, error) {

	var e models.TimeEntry
	if err := r.db.WithContext(ctx).
		Preload("Project.Client").
		Preload("Assignee").
		First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *TimesheetGormRepository) CreateEntry(
	ctx context.Context,
	e *models.TimeEntry,
) error {

	omit := []string{clause.Associations}
	if !r.caps.TimeEntrySplitDuration {
		omit = append(omit, "EntryHour", "EntryMinute")
	}
	return r.db.WithContext(ctx).Omit(omit...).Create(e).Error
}

func (r *TimesheetGormRepository) UpdateEntry(
	ctx context.Context,
	e *models.TimeEntry,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.TimeEntry{ID: e.ID}).
		Select(r.writableColumns()).
		Updates(e)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TimesheetGormRepository) DeleteEntry(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.TimeEntry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TimesheetGormRepository) ListEntries(
	ctx context.Context,
	filter domain.EntryFilter,
) ([]models.TimeEntry, error) {

	q := r.db.WithContext(ctx).
		Preload("Project.Client").
		Preload("Assignee")

	if filter.ProjectID != nil {
		q = q.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.AssigneeID != nil {
		q = q.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.Period != nil {
		q = q.Where(clause.Gte{Column: "date", Value: filter.Period.Start}).
			Where(clause.Lte{Column: "date", Value: filter.Period.End})
	}

	var entries []models.TimeEntry
	if err := q.
		Order("date ASC").
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}
