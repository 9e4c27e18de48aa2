package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	appdb "github.com/BruksfildServices01/billing-tracker/internal/db"
	domain "github.com/BruksfildServices01/billing-tracker/internal/domain/timesheet"
	"github.com/BruksfildServices01/billing-tracker/internal/models"
)

func newEntry(f fixture, date time.Time, hours string) *models.TimeEntry {
	return &models.TimeEntry{
		ProjectID:  f.project.ID,
		AssigneeID: f.assignee.ID,
		Date:       date,
		Hours:      decimal.RequireFromString(hours),
	}
}

func TestTimesheetListEntries(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	repo := NewTimesheetGormRepository(db, appdb.FullCapabilities())
	ctx := context.Background()

	week := domain.WeekContaining(now)

	inside := []*models.TimeEntry{
		newEntry(f, week.Start.AddDate(0, 0, 2), "3"),
		newEntry(f, week.Start, "2"),
		newEntry(f, week.Start.AddDate(0, 0, 2), "1"),
	}
	for _, e := range inside {
		require.NoError(t, repo.CreateEntry(ctx, e))
	}
	require.NoError(t, repo.CreateEntry(ctx, newEntry(f, week.End.Add(time.Hour), "8")))
	require.NoError(t, repo.CreateEntry(ctx, newEntry(f, week.Start.Add(-time.Minute), "8")))

	list, err := repo.ListEntries(ctx, domain.EntryFilter{Period: &week})
	require.NoError(t, err)

	require.Len(t, list, 3)
	assert.Equal(t, inside[1].ID, list[0].ID)
	assert.Equal(t, inside[0].ID, list[1].ID)
	assert.Equal(t, inside[2].ID, list[2].ID)

	require.NotNil(t, list[0].Project)
	require.NotNil(t, list[0].Project.Client)
	require.NotNil(t, list[0].Assignee)
	assert.Equal(t, "Ana", list[0].Assignee.Name)
}

func TestTimesheetFilters(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	repo := NewTimesheetGormRepository(db, appdb.FullCapabilities())
	ctx := context.Background()

	other := models.Assignee{Name: "Bo"}
	require.NoError(t, db.Create(&other).Error)

	require.NoError(t, repo.CreateEntry(ctx, newEntry(f, now, "1")))
	e := newEntry(f, now, "2")
	e.AssigneeID = other.ID
	require.NoError(t, repo.CreateEntry(ctx, e))

	list, err := repo.ListEntries(ctx, domain.EntryFilter{AssigneeID: &other.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, e.ID, list[0].ID)

	list, err = repo.ListEntries(ctx, domain.EntryFilter{ProjectID: &f.project.ID})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestTimesheetUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	repo := NewTimesheetGormRepository(db, appdb.FullCapabilities())
	ctx := context.Background()

	e := newEntry(f, now, "1")
	require.NoError(t, repo.CreateEntry(ctx, e))

	hour, minute := 2, 30
	e.Hours = decimal.RequireFromString("2.5")
	e.EntryHour = &hour
	e.EntryMinute = &minute
	e.Description = "review"
	require.NoError(t, repo.UpdateEntry(ctx, e))

	stored, err := repo.GetEntry(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("2.5").Equal(stored.Hours))
	require.NotNil(t, stored.EntryMinute)
	assert.Equal(t, 30, *stored.EntryMinute)
	assert.Equal(t, "review", stored.Description)

	require.NoError(t, repo.DeleteEntry(ctx, e.ID))
	assert.True(t, errors.Is(repo.DeleteEntry(ctx, e.ID), gorm.ErrRecordNotFound))

	missing := &models.TimeEntry{ID: 999, ProjectID: f.project.ID, AssigneeID: f.assignee.ID, Date: now, Hours: decimal.NewFromInt(1)}
	assert.True(t, errors.Is(repo.UpdateEntry(ctx, missing), gorm.ErrRecordNotFound))
}

func TestTimesheetLegacySchema(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	require.NoError(t, db.Migrator().DropColumn(&models.TimeEntry{}, "EntryHour"))
	require.NoError(t, db.Migrator().DropColumn(&models.TimeEntry{}, "EntryMinute"))

	caps := appdb.DetectCapabilities(db)
	require.False(t, caps.TimeEntrySplitDuration)

	repo := NewTimesheetGormRepository(db, caps)
	ctx := context.Background()

	hour, minute := 1, 30
	e := newEntry(f, now, "1.5")
	e.EntryHour = &hour
	e.EntryMinute = &minute
	require.NoError(t, repo.CreateEntry(ctx, e))

	e.Hours = decimal.NewFromInt(2)
	require.NoError(t, repo.UpdateEntry(ctx, e))

	list, err := repo.ListEntries(ctx, domain.EntryFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, decimal.NewFromInt(2).Equal(list[0].Hours))
	assert.Nil(t, list[0].EntryHour)
}

func TestTimesheetReferenceChecks(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	repo := NewTimesheetGormRepository(db, appdb.FullCapabilities())
	ctx := context.Background()

	ok, err := repo.ProjectExists(ctx, f.project.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.AssigneeExists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}
