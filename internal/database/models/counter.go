package models

import (
	"time"

	"github.com/google/uuid"
)

// Counter is an org-scoped monotonically increasing named value
type Counter struct {
	OrgID     uuid.UUID `json:"-" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"primaryKey;size:100"`
	Value     int64     `json:"value" gorm:"not null;default:0"`
	UpdatedAt time.Time `json:"updated"`
}

// TableName returns the table name for Counter
func (Counter) TableName() string {
	return "counters"
}
