// Package acl implements the access level model used to gate object instances
// and their properties.
package acl

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Level is an ordered access level. Higher levels include every lower one.
type Level int

const (
	None Level = iota
	Public
	Connected
	Reserved
	Share
	Update
	Delete
	Script
	Max
)

var levelNames = map[Level]string{
	None:      "none",
	Public:    "public",
	Connected: "connected",
	Reserved:  "reserved",
	Share:     "share",
	Update:    "update",
	Delete:    "delete",
	Script:    "script",
	Max:       "max",
}

// RoleAdministrator is the built-in org administrator role
const (
	RoleAdministrator = "administrator"
	RoleDeveloper     = "developer"
	RoleSupport       = "support"
)

// BuiltinRoles are created for every provisioned org
var BuiltinRoles = []string{RoleAdministrator, RoleDeveloper, RoleSupport}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return strconv.Itoa(int(l))
}

// Valid reports whether l is within [None, Max]
func (l Level) Valid() bool {
	return l >= None && l <= Max
}

// Satisfies reports whether l grants at least required
func (l Level) Satisfies(required Level) bool {
	return l >= required
}

// UnmarshalJSON accepts either the numeric level or its name
func (l *Level) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		parsed := Level(n)
		if !parsed.Valid() {
			return fmt.Errorf("access level %d out of range", n)
		}
		*l = parsed
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("access level must be a number or a name")
	}
	parsed, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// UnmarshalYAML accepts either the numeric level or its name
func (l *Level) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("access level must be a number or a name")
	}
	parsed, err := ParseLevel(value.Value)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel parses a level name or number
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if n, err := strconv.Atoi(s); err == nil {
		l := Level(n)
		if !l.Valid() {
			return None, fmt.Errorf("access level %d out of range", n)
		}
		return l, nil
	}
	for level, name := range levelNames {
		if name == s {
			return level, nil
		}
	}
	return None, fmt.Errorf("unknown access level %q", s)
}

// MaxOf returns the highest of the given levels
func MaxOf(levels ...Level) Level {
	out := None
	for _, l := range levels {
		if l > out {
			out = l
		}
	}
	return out
}

// Clamp bounds l to [None, Max]
func Clamp(l Level) Level {
	if l < None {
		return None
	}
	if l > Max {
		return Max
	}
	return l
}

// EntryType selects what an Entry matches against
type EntryType string

const (
	EntryOwner   EntryType = "owner"
	EntryAccount EntryType = "account"
	EntryRole    EntryType = "role"
	EntryAny     EntryType = "any"
)

// Entry is one access control list rule
type Entry struct {
	Type   EntryType `json:"type" yaml:"type"`
	Target string    `json:"target,omitempty" yaml:"target,omitempty"`
	Allow  Level     `json:"allow" yaml:"allow"`
}

// Validate checks the entry shape
func (e Entry) Validate() error {
	switch e.Type {
	case EntryOwner, EntryAny:
		if e.Target != "" {
			return fmt.Errorf("%s entries take no target", e.Type)
		}
	case EntryAccount:
		if _, err := uuid.Parse(e.Target); err != nil {
			return fmt.Errorf("account entry target must be an account id")
		}
	case EntryRole:
		if e.Target == "" {
			return fmt.Errorf("role entry requires a target role")
		}
	default:
		return fmt.Errorf("unknown entry type %q", e.Type)
	}
	if e.Allow <= None || !e.Allow.Valid() {
		return fmt.Errorf("entry allow must be between %d and %d", Public, Max)
	}
	return nil
}

// Principal is the caller on whose behalf an operation runs
type Principal struct {
	OrgID     uuid.UUID
	AccountID uuid.UUID
	Email     string
	Roles     []string
	Anonymous bool
}

// HasRole reports whether the principal holds role
func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the principal is an org administrator
func (p Principal) IsAdmin() bool {
	return !p.Anonymous && p.HasRole(RoleAdministrator)
}

// IsDeveloper reports whether the principal may manage object definitions
func (p Principal) IsDeveloper() bool {
	return !p.Anonymous && (p.HasRole(RoleAdministrator) || p.HasRole(RoleDeveloper))
}

// Subject describes the thing access is being resolved for
type Subject struct {
	OwnerID uuid.UUID
}

// Matches reports whether the entry applies to principal for subject
func (e Entry) Matches(p Principal, s Subject) bool {
	if p.Anonymous {
		return false
	}
	switch e.Type {
	case EntryOwner:
		return s.OwnerID != uuid.Nil && s.OwnerID == p.AccountID
	case EntryAccount:
		return e.Target == p.AccountID.String()
	case EntryRole:
		return p.HasRole(e.Target)
	case EntryAny:
		return true
	}
	return false
}

// Resolve computes the principal's access to subject from the given lists.
// The result is the highest matching Allow; administrators get at least Delete.
func Resolve(p Principal, s Subject, lists ...[]Entry) Level {
	level := None
	for _, entries := range lists {
		for _, e := range entries {
			if e.Matches(p, s) && e.Allow > level {
				level = e.Allow
			}
		}
	}
	if p.IsAdmin() && level < Delete {
		level = Delete
	}
	return Clamp(level)
}

// CanCreate checks a create ACL. An empty list admits any authenticated principal.
func CanCreate(p Principal, createACL []Entry) bool {
	if p.Anonymous {
		return false
	}
	if len(createACL) == 0 || p.IsAdmin() {
		return true
	}
	for _, e := range createACL {
		if e.Type == EntryOwner {
			continue
		}
		if e.Matches(p, Subject{}) {
			return true
		}
	}
	return false
}

// DefaultObjectACL is applied to definitions that do not declare one
func DefaultObjectACL() []Entry {
	return []Entry{{Type: EntryOwner, Allow: Delete}}
}
