package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeEntry keeps the decimal Hours column for older rows that predate the
// EntryHour/EntryMinute split.
type TimeEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProjectID uint     `gorm:"not null;index" json:"project_id"`
	Project   *Project `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"project,omitempty"`

	AssigneeID uint      `gorm:"not null;index" json:"assignee_id"`
	Assignee   *Assignee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"assignee,omitempty"`

	Date        time.Time       `gorm:"not null;index" json:"date"`
	Hours       decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"hours"`
	EntryHour   *int            `json:"entry_hour"`
	EntryMinute *int            `json:"entry_minute"`
	Description string          `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
