package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Milestone struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"size:150;not null" json:"name"`

	ProjectID uint     `gorm:"not null;index" json:"project_id"`
	Project   *Project `json:"project,omitempty"`

	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	DueDate     time.Time       `gorm:"not null;index" json:"due_date"`
	Description string          `gorm:"type:text" json:"description"`
	Status      string          `gorm:"size:20;not null;default:'pending';index" json:"status"`

	Payments []Payment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"payments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
