package testutils

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"cortex-backend/internal/acl"
	"cortex-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the plain-text password of every factory account
const DefaultPassword = "correct-horse-battery"

var sequence int64

func nextSeq() int64 {
	return atomic.AddInt64(&sequence, 1)
}

// OrgFactory provides methods to create test Org data
type OrgFactory struct{}

// NewOrgFactory creates a new OrgFactory
func NewOrgFactory() *OrgFactory {
	return &OrgFactory{}
}

// Create creates a test Org with a unique code and the built-in roles
func (f *OrgFactory) Create() *models.Org {
	return f.WithCode(fmt.Sprintf("org-%d-%s", nextSeq(), uuid.NewString()[:8]))
}

// WithCode creates a test Org with a fixed code
func (f *OrgFactory) WithCode(code string) *models.Org {
	org := &models.Org{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Code:  code,
		Name:  "Test Org " + code,
		State: models.OrgStateEnabled,
	}
	_ = org.SetRoles(acl.BuiltinRoles)
	return org
}

// Disabled creates a disabled test Org
func (f *OrgFactory) Disabled() *models.Org {
	org := f.Create()
	org.State = models.OrgStateDisabled
	return org
}

// AccountFactory provides methods to create test Account data
type AccountFactory struct {
	hash string
}

// NewAccountFactory creates a new AccountFactory. The password hash is computed once.
func NewAccountFactory() *AccountFactory {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return &AccountFactory{hash: string(hash)}
}

// Create creates an active administrator account with a unique email
func (f *AccountFactory) Create() *models.Account {
	return f.WithRoles(acl.RoleAdministrator)
}

// WithRoles creates an active account holding roles
func (f *AccountFactory) WithRoles(roles ...string) *models.Account {
	n := nextSeq()
	account := &models.Account{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:        strings.ToLower(fmt.Sprintf("user%d@example.com", n)),
		Name:         fmt.Sprintf("User %d", n),
		PasswordHash: f.hash,
		State:        models.AccountStateActive,
	}
	_ = account.SetRoles(roles)
	return account
}

// Locked creates a locked account
func (f *AccountFactory) Locked() *models.Account {
	account := f.WithRoles()
	account.State = models.AccountStateLocked
	return account
}

// ObjectFactory provides methods to create test ObjectDefinition data
type ObjectFactory struct{}

// NewObjectFactory creates a new ObjectFactory
func NewObjectFactory() *ObjectFactory {
	return &ObjectFactory{}
}

// TicketProperties is the property set used by Named
const TicketProperties = `[
	{"name":"c_title","type":"String","required":true,"validators":[{"name":"string","definition":{"min":1,"max":100}}]},
	{"name":"c_status","type":"String","default":"open","validators":[{"name":"stringEnum","definition":{"values":["open","closed"]}}]},
	{"name":"c_number","type":"Number","autoIncrement":true}
]`

// Named creates a definition with the ticket property set
func (f *ObjectFactory) Named(name string) models.ObjectDefinition {
	return models.ObjectDefinition{
		Name:       name,
		Label:      strings.TrimPrefix(name, "c_"),
		Properties: json.RawMessage(TicketProperties),
		DefaultACL: json.RawMessage(`[{"type":"owner","allow":6}]`),
		CreateACL:  json.RawMessage(`[]`),
		Triggers:   json.RawMessage(`[]`),
	}
}

// InstanceFactory provides methods to create test Instance data
type InstanceFactory struct{}

// NewInstanceFactory creates a new InstanceFactory
func NewInstanceFactory() *InstanceFactory {
	return &InstanceFactory{}
}

// For creates an instance of object owned by ownerID with properties given as JSON
func (f *InstanceFactory) For(orgID uuid.UUID, object string, ownerID uuid.UUID, properties string) *models.Instance {
	return &models.Instance{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrgID:      orgID,
		Object:     object,
		OwnerID:    ownerID,
		CreatorID:  ownerID,
		ACL:        json.RawMessage(`[]`),
		Properties: json.RawMessage(properties),
	}
}

// FactorySet provides all factories in one place
type FactorySet struct {
	Org      *OrgFactory
	Account  *AccountFactory
	Object   *ObjectFactory
	Instance *InstanceFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Org:      NewOrgFactory(),
		Account:  NewAccountFactory(),
		Object:   NewObjectFactory(),
		Instance: NewInstanceFactory(),
	}
}
