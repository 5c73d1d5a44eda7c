package property

import (
	"fmt"
	"regexp"
	"strconv"

	"cortex-backend/internal/acl"
	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/sandbox"
)

// MaxDepth is the deepest allowed nesting of document properties
const MaxDepth = 8

var namePattern = regexp.MustCompile(`^[a-z][a-zA-Z0-9_]{0,39}$`)

// ReservedNames are instance fields managed by the platform
var ReservedNames = map[string]bool{
	"_id":      true,
	"object":   true,
	"owner":    true,
	"creator":  true,
	"created":  true,
	"updated":  true,
	"sequence": true,
	"acl":      true,
	"access":   true,
}

// Definition describes one property of an object or document
type Definition struct {
	Name          string       `json:"name" yaml:"name"`
	Label         string       `json:"label,omitempty" yaml:"label,omitempty"`
	Type          Type         `json:"type" yaml:"type"`
	Array         bool         `json:"array,omitempty" yaml:"array,omitempty"`
	MaxItems      int          `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
	Required      bool         `json:"required,omitempty" yaml:"required,omitempty"`
	Default       interface{}  `json:"default,omitempty" yaml:"default,omitempty"`
	ReadOnly      bool         `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
	Writable      *bool        `json:"writable,omitempty" yaml:"writable,omitempty"`
	ReadAccess    acl.Level    `json:"readAccess,omitempty" yaml:"readAccess,omitempty"`
	WriteAccess   acl.Level    `json:"writeAccess,omitempty" yaml:"writeAccess,omitempty"`
	AutoIncrement bool         `json:"autoIncrement,omitempty" yaml:"autoIncrement,omitempty"`
	DateOnly      bool         `json:"dateOnly,omitempty" yaml:"dateOnly,omitempty"`
	AutoGenerate  bool         `json:"autoGenerate,omitempty" yaml:"autoGenerate,omitempty"`
	Validators    []Validator  `json:"validators,omitempty" yaml:"validators,omitempty"`
	Properties    []Definition `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Validator attaches a named check with its options to a property
type Validator struct {
	Name       string                 `json:"name" yaml:"name"`
	Definition map[string]interface{} `json:"definition,omitempty" yaml:"definition,omitempty"`
}

// IsWritable reports whether callers may set the property. Unset means writable.
func (d *Definition) IsWritable() bool {
	if d.AutoIncrement {
		return false
	}
	return d.Writable == nil || *d.Writable
}

// IsRequired reports whether the property must hold a value
func (d *Definition) IsRequired() bool {
	if d.Required {
		return true
	}
	for _, v := range d.Validators {
		if v.Name == "required" {
			return true
		}
	}
	return false
}

// ValidateDefinitions checks a set of definitions at definition time. All
// problems are collected into a single validation fault.
func ValidateDefinitions(defs []Definition) error {
	_, err := compileFields(defs, sandbox.NewRunner(sandbox.Config{}))
	return err
}

// field is a compiled definition
type field struct {
	def      Definition
	path     string
	each     []check
	whole    []check
	children *fieldSet
}

type fieldSet struct {
	order  []*field
	byName map[string]*field
}

func (s *fieldSet) get(name string) (*field, bool) {
	f, ok := s.byName[name]
	return f, ok
}

func compileFields(defs []Definition, runner *sandbox.Runner) (*fieldSet, error) {
	container := apperrors.NewValidation()
	set := compileLevel(defs, "", 1, runner, container)
	if container.HasFaults() {
		return nil, container
	}
	return set, nil
}

func compileLevel(defs []Definition, prefix string, depth int, runner *sandbox.Runner, container *apperrors.Fault) *fieldSet {
	set := &fieldSet{byName: make(map[string]*field, len(defs))}
	for i := range defs {
		def := defs[i]
		path := join(prefix, def.Name)
		if def.Name == "" {
			path = join(prefix, strconv.Itoa(i))
		}
		invalid := func(detail, reason string) {
			container.Add(apperrors.InvalidArgument(detail, reason).WithPath(path))
		}

		switch {
		case !namePattern.MatchString(def.Name):
			invalid("name", "property names must start with a lowercase letter and contain only letters, digits and underscores (max 40)")
			continue
		case ReservedNames[def.Name]:
			invalid("name", fmt.Sprintf("%q is a reserved property name", def.Name))
			continue
		case set.byName[def.Name] != nil:
			invalid("name", fmt.Sprintf("duplicate property %q", def.Name))
			continue
		}
		if !def.Type.Valid() {
			invalid("type", fmt.Sprintf("unknown property type %q", def.Type))
			continue
		}

		f := &field{def: def, path: path}
		if def.MaxItems < 0 || (def.MaxItems > 0 && !def.Array) {
			invalid("maxItems", "maxItems requires a non-negative value on an array property")
		}
		if def.AutoIncrement && (def.Type != TypeNumber || def.Array || depth > 1) {
			invalid("autoIncrement", "autoIncrement is only available on top-level scalar Number properties")
		}
		if def.AutoGenerate && def.Type != TypeUUID {
			invalid("autoGenerate", "autoGenerate is only available on UUID properties")
		}
		if def.DateOnly && def.Type != TypeDate {
			invalid("dateOnly", "dateOnly is only available on Date properties")
		}
		if !def.ReadAccess.Valid() || !def.WriteAccess.Valid() {
			invalid("accessLevel", "access levels must be between 0 and 8")
		}

		if def.Type == TypeDocument {
			if depth >= MaxDepth {
				invalid("depth", fmt.Sprintf("documents may not be nested deeper than %d levels", MaxDepth))
				continue
			}
			if len(def.Properties) == 0 {
				invalid("properties", "document properties require at least one child property")
			}
			f.children = compileLevel(def.Properties, path, depth+1, runner, container)
		} else if len(def.Properties) > 0 {
			invalid("properties", "only Document properties may declare child properties")
		}

		for j, v := range def.Validators {
			c, fault := compileValidator(&f.def, v, runner)
			if fault != nil {
				container.Add(fault.WithPath(join(path, "validators."+strconv.Itoa(j))))
				continue
			}
			if c == nil {
				continue
			}
			if c.whole {
				f.whole = append(f.whole, c.fn)
			} else {
				f.each = append(f.each, c.fn)
			}
		}

		if def.Default != nil {
			if def.AutoIncrement || def.AutoGenerate {
				invalid("default", "auto values cannot also declare a default")
			} else if _, fault := f.cast(def.Default, path); fault != nil {
				invalid("default", "default does not match the property type: "+fault.Reason)
			}
		}

		set.order = append(set.order, f)
		set.byName[def.Name] = f
	}
	return set
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
