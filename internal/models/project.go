package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	BillingFixed  = "fixed"
	BillingHourly = "hourly"

	ProjectActive    = "active"
	ProjectCompleted = "completed"
	ProjectOnHold    = "on-hold"
)

type Project struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"size:150;not null" json:"name"`

	ClientID uint    `gorm:"not null;index" json:"client_id"`
	Client   *Client `json:"client,omitempty"`

	ProjectTypeID uint         `gorm:"not null;index" json:"project_type_id"`
	ProjectType   *ProjectType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"project_type,omitempty"`

	Budget      decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0" json:"budget"`
	BillingType string           `gorm:"size:10;not null;default:'fixed'" json:"billing_type"`
	HourlyRate  *decimal.Decimal `gorm:"type:decimal(12,2)" json:"hourly_rate"`
	Description string           `gorm:"type:text" json:"description"`
	Status      string           `gorm:"size:20;not null;default:'active'" json:"status"`

	Milestones []Milestone `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"milestones,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
