package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	appdb "github.com/BruksfildServices01/billing-tracker/internal/db"
	"github.com/BruksfildServices01/billing-tracker/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, appdb.Migrate(db))
	return db
}

type fixture struct {
	client   models.Client
	pType    models.ProjectType
	project  models.Project
	assignee models.Assignee
}

func seed(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	f := fixture{
		client:   models.Client{Name: "Acme"},
		pType:    models.ProjectType{Name: "Web"},
		assignee: models.Assignee{Name: "Ana"},
	}
	require.NoError(t, db.Create(&f.client).Error)
	require.NoError(t, db.Create(&f.pType).Error)
	require.NoError(t, db.Create(&f.assignee).Error)

	rate := decimal.NewFromInt(100)
	f.project = models.Project{
		Name:          "Site",
		ClientID:      f.client.ID,
		ProjectTypeID: f.pType.ID,
		Budget:        decimal.NewFromInt(5000),
		BillingType:   models.BillingHourly,
		HourlyRate:    &rate,
		Status:        models.ProjectActive,
	}
	require.NoError(t, db.Create(&f.project).Error)

	return f
}

func createMilestone(t *testing.T, db *gorm.DB, projectID uint, amount int64, due time.Time, status string) models.Milestone {
	t.Helper()

	m := models.Milestone{
		Name:      "Phase",
		ProjectID: projectID,
		Amount:    decimal.NewFromInt(amount),
		DueDate:   due,
		Status:    status,
	}
	require.NoError(t, db.Create(&m).Error)
	return m
}
