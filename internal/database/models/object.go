package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ObjectDefinition is an org's custom object type: its properties, ACLs and triggers
type ObjectDefinition struct {
	BaseModel
	OrgID      uuid.UUID       `json:"org" gorm:"type:uuid;not null;uniqueIndex:idx_objects_org_name" validate:"required"`
	Name       string          `json:"name" gorm:"not null;size:40;uniqueIndex:idx_objects_org_name" validate:"required,max=40"`
	Label      string          `json:"label" gorm:"size:100" validate:"max=100"`
	Properties json.RawMessage `json:"properties" gorm:"type:jsonb"`
	DefaultACL json.RawMessage `json:"defaultAcl" gorm:"column:default_acl;type:jsonb"`
	CreateACL  json.RawMessage `json:"createAcl" gorm:"column:create_acl;type:jsonb"`
	Triggers   json.RawMessage `json:"triggers" gorm:"type:jsonb"`

	Org Org `json:"-" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ObjectDefinition
func (ObjectDefinition) TableName() string {
	return "object_definitions"
}

// Instance is one document of an object definition
type Instance struct {
	BaseModel
	OrgID      uuid.UUID       `json:"org" gorm:"type:uuid;not null;index:idx_instances_org_object" validate:"required"`
	Object     string          `json:"object" gorm:"not null;size:40;index:idx_instances_org_object" validate:"required"`
	OwnerID    uuid.UUID       `json:"owner" gorm:"type:uuid;index"`
	CreatorID  uuid.UUID       `json:"creator" gorm:"type:uuid"`
	ACL        json.RawMessage `json:"acl" gorm:"column:acl;type:jsonb"`
	Properties json.RawMessage `json:"properties" gorm:"type:jsonb"`
	// Sequence is incremented on every write and guards against lost updates
	Sequence int64 `json:"sequence" gorm:"not null;default:0"`
}

// TableName returns the table name for Instance
func (Instance) TableName() string {
	return "instances"
}

// Document decodes the instance properties
func (i *Instance) Document() (map[string]interface{}, error) {
	doc := map[string]interface{}{}
	if err := decodeJSON(i.Properties, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// SetDocument replaces the instance properties
func (i *Instance) SetDocument(doc map[string]interface{}) error {
	raw, err := encodeJSON(doc)
	if err != nil {
		return err
	}
	i.Properties = raw
	return nil
}
