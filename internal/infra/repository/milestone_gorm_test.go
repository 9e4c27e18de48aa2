package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/BruksfildServices01/billing-tracker/internal/domain/milestone"
	"github.com/BruksfildServices01/billing-tracker/internal/models"
)

var now = time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

func resolveAt(at time.Time) domain.ResolveFunc {
	return func(m *models.Milestone) domain.Status {
		return domain.Resolve(m, at)
	}
}

func TestUpdateStatusLocked(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	repo := NewMilestoneGormRepository(db)
	ctx := context.Background()

	m := createMilestone(t, db, f.project.ID, 1000, now.AddDate(0, 0, -1), "pending")

	for _, amount := range []int64{400, 600} {
		require.NoError(t, repo.CreatePayment(ctx, &models.Payment{
			MilestoneID: m.ID,
			Amount:      decimal.NewFromInt(amount),
			PaymentDate: now,
		}))
	}

	prev, cur, err := repo.UpdateStatusLocked(ctx, m.ID, resolveAt(now))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, prev)
	assert.Equal(t, domain.StatusPaid, cur)

	stored, err := repo.GetMilestone(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "paid", stored.Status)
	assert.Len(t, stored.Payments, 2)
}

func TestUpdateStatusLockedMissingMilestone(t *testing.T) {
	db := newTestDB(t)
	repo := NewMilestoneGormRepository(db)

	_, _, err := repo.UpdateStatusLocked(context.Background(), 999, resolveAt(now))
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestUpdateStatusLockedAfterPaymentDelete(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	repo := NewMilestoneGormRepository(db)
	ctx := context.Background()

	m := createMilestone(t, db, f.project.ID, 1000, now.AddDate(0, 0, -1), "paid")
	p := models.Payment{MilestoneID: m.ID, Amount: decimal.NewFromInt(1000), PaymentDate: now}
	require.NoError(t, repo.CreatePayment(ctx, &p))

	require.NoError(t, repo.DeletePayment(ctx, p.ID))
	assert.True(t, errors.Is(repo.DeletePayment(ctx, p.ID), gorm.ErrRecordNotFound))

	_, cur, err := repo.UpdateStatusLocked(ctx, m.ID, resolveAt(now))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOverdue, cur)
}

func TestListOverdue(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	repo := NewMilestoneGormRepository(db)

	late := createMilestone(t, db, f.project.ID, 100, now.AddDate(0, 0, -2), "pending")
	flagged := createMilestone(t, db, f.project.ID, 100, now.AddDate(0, 0, 3), "overdue")
	createMilestone(t, db, f.project.ID, 100, now.AddDate(0, 0, 1), "pending")
	createMilestone(t, db, f.project.ID, 100, now.AddDate(0, 0, -5), "paid")

	list, err := repo.ListOverdue(context.Background(), now)
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, late.ID, list[0].ID)
	assert.Equal(t, flagged.ID, list[1].ID)
	require.NotNil(t, list[0].Project)
	require.NotNil(t, list[0].Project.Client)
	assert.Equal(t, "Acme", list[0].Project.Client.Name)
	require.NotNil(t, list[0].Project.ProjectType)
}

func TestUpdateStatusLockedTakesRowLock(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	due := now.AddDate(0, 0, -1)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "milestones" WHERE id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "project_id", "amount", "due_date", "status"}).
			AddRow(7, "Phase", 1, "1000", due, "pending"))
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE milestone_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "milestone_id", "amount", "payment_date"}).
			AddRow(1, 7, "300", now))
	mock.ExpectExec(`UPDATE "milestones" SET "status"=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewMilestoneGormRepository(db)
	prev, cur, err := repo.UpdateStatusLocked(context.Background(), 7, resolveAt(now))
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, prev)
	assert.Equal(t, domain.StatusOverdue, cur)
	assert.NoError(t, mock.ExpectationsWereMet())
}
