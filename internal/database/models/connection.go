package models

import (
	"github.com/google/uuid"
)

// ConnectionState is the lifecycle state of a connection
type ConnectionState string

const (
	ConnectionStatePending ConnectionState = "pending"
	ConnectionStateActive  ConnectionState = "active"
)

// Connection shares an instance (the context) with a target account at an access level
type Connection struct {
	BaseModel
	OrgID     uuid.UUID       `json:"org" gorm:"type:uuid;not null;index" validate:"required"`
	Object    string          `json:"object" gorm:"not null;size:40"`
	ContextID uuid.UUID       `json:"context" gorm:"type:uuid;not null;index"`
	CreatorID uuid.UUID       `json:"creator" gorm:"type:uuid;not null"`
	TargetID  uuid.UUID       `json:"target" gorm:"type:uuid;not null;index"`
	Access    int             `json:"access" gorm:"not null"`
	State     ConnectionState `json:"state" gorm:"type:varchar(20);not null;default:'pending'"`
}

// TableName returns the table name for Connection
func (Connection) TableName() string {
	return "connections"
}
