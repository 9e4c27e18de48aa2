package db

import (
	"gorm.io/gorm"

	"github.com/BruksfildServices01/billing-tracker/internal/models"
)

// Capabilities records optional columns found in the live schema. It is
// computed once at startup so writes never have to guess from driver errors.
type Capabilities struct {
	TimeEntrySplitDuration bool
}

func DetectCapabilities(db *gorm.DB) Capabilities {
	m := db.Migrator()
	return Capabilities{
		TimeEntrySplitDuration: m.HasColumn(&models.TimeEntry{}, "EntryHour") &&
			m.HasColumn(&models.TimeEntry{}, "EntryMinute"),
	}
}

// FullCapabilities is what a freshly migrated schema provides.
func FullCapabilities() Capabilities {
	return Capabilities{TimeEntrySplitDuration: true}
}
