package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AccountState is the lifecycle state of an account
type AccountState string

const (
	AccountStateActive AccountState = "active"
	AccountStateLocked AccountState = "locked"
)

// IsValid checks if the AccountState is valid
func (s AccountState) IsValid() bool {
	switch s {
	case AccountStateActive, AccountStateLocked:
		return true
	}
	return false
}

// Account is an org member that can authenticate
type Account struct {
	BaseModel
	OrgID        uuid.UUID       `json:"org" gorm:"type:uuid;not null;uniqueIndex:idx_accounts_org_email" validate:"required"`
	Email        string          `json:"email" gorm:"not null;size:255;uniqueIndex:idx_accounts_org_email" validate:"required,email,max=255"`
	Name         string          `json:"name" gorm:"size:200" validate:"max=200"`
	PasswordHash string          `json:"-" gorm:"not null;size:100"`
	Roles        json.RawMessage `json:"roles" gorm:"type:jsonb"`
	State        AccountState    `json:"state" gorm:"type:varchar(20);not null;default:'active'"`
	LastLogin    *time.Time      `json:"lastLogin,omitempty"`

	Org Org `json:"-" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Account
func (Account) TableName() string {
	return "accounts"
}

// RoleNames returns the roles held by the account
func (a *Account) RoleNames() ([]string, error) {
	var roles []string
	if err := decodeJSON(a.Roles, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// SetRoles replaces the account's roles
func (a *Account) SetRoles(roles []string) error {
	if roles == nil {
		roles = []string{}
	}
	raw, err := encodeJSON(roles)
	if err != nil {
		return err
	}
	a.Roles = raw
	return nil
}
