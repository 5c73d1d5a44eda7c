package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Deployment records a bundle of object definitions imported into an org
type Deployment struct {
	BaseModel
	OrgID      uuid.UUID       `json:"org" gorm:"type:uuid;not null;index" validate:"required"`
	Version    string          `json:"version" gorm:"not null;size:50" validate:"required"`
	Source     string          `json:"source" gorm:"size:40"`
	Checksum   string          `json:"checksum" gorm:"not null;size:64"`
	DeployedBy uuid.UUID       `json:"deployedBy" gorm:"type:uuid"`
	Objects    int             `json:"objects"`
	Bundle     json.RawMessage `json:"-" gorm:"type:jsonb"`

	Org Org `json:"-" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Deployment
func (Deployment) TableName() string {
	return "deployments"
}
