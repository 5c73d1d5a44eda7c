package models

import (
	"encoding/json"
)

// OrgState is the lifecycle state of an org
type OrgState string

const (
	OrgStateEnabled  OrgState = "enabled"
	OrgStateDisabled OrgState = "disabled"
)

// IsValid checks if the OrgState is valid
func (s OrgState) IsValid() bool {
	switch s {
	case OrgStateEnabled, OrgStateDisabled:
		return true
	}
	return false
}

// Org is the root entity for multi-tenancy. Every other entity is scoped to one.
type Org struct {
	BaseModel
	Code     string          `json:"code" gorm:"uniqueIndex;not null;size:40" validate:"required,min=3,max=40"`
	Name     string          `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	State    OrgState        `json:"state" gorm:"type:varchar(20);not null;default:'enabled'"`
	Roles    json.RawMessage `json:"roles" gorm:"type:jsonb"`
	Settings json.RawMessage `json:"settings,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for Org
func (Org) TableName() string {
	return "orgs"
}

// RoleNames returns the roles defined in the org
func (o *Org) RoleNames() ([]string, error) {
	var roles []string
	if err := decodeJSON(o.Roles, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// SetRoles replaces the org's roles
func (o *Org) SetRoles(roles []string) error {
	raw, err := encodeJSON(roles)
	if err != nil {
		return err
	}
	o.Roles = raw
	return nil
}

// Enabled reports whether the org accepts requests
func (o *Org) Enabled() bool {
	return o.State != OrgStateDisabled
}
