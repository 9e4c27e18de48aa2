package models

import "time"

type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:150;not null" json:"name"`
	Email   string `gorm:"size:150" json:"email"`
	Phone   string `gorm:"size:30" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	Projects []Project `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"projects,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
