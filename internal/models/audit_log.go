package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Action   string `gorm:"size:50;not null;index" json:"action"`
	Entity   string `gorm:"size:50;index" json:"entity"`
	EntityID *uint  `json:"entity_id"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}

// All lists every model managed by migrations, parents first.
func All() []any {
	return []any{
		&Client{},
		&ProjectType{},
		&Project{},
		&Milestone{},
		&Payment{},
		&Assignee{},
		&TimeEntry{},
		&AuditLog{},
	}
}
