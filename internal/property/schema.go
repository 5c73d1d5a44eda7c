package property

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"cortex-backend/internal/acl"
	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/expression"
	"cortex-backend/internal/sandbox"

	"github.com/google/uuid"
)

// Env carries the caller-dependent inputs of a write
type Env struct {
	// Access is the caller's resolved access to the instance being written
	Access    acl.Level
	Org       string
	Principal map[string]interface{}
	// NextValue issues the next auto-increment value for a property path
	NextValue func(ctx context.Context, path string) (int64, error)
}

// Schema is a compiled set of property definitions, safe for concurrent use
type Schema struct {
	defs   []Definition
	fields *fieldSet
	runner *sandbox.Runner
}

// NewSchema validates and compiles defs. Script validators run on runner.
func NewSchema(defs []Definition, runner *sandbox.Runner) (*Schema, error) {
	if runner == nil {
		runner = sandbox.NewRunner(sandbox.Config{})
	}
	fields, err := compileFields(defs, runner)
	if err != nil {
		return nil, err
	}
	return &Schema{defs: defs, fields: fields, runner: runner}, nil
}

// Definitions returns the definitions the schema was compiled from
func (s *Schema) Definitions() []Definition {
	return s.defs
}

// Create casts input into a new document, applies defaults and auto values,
// and validates the result.
func (s *Schema) Create(ctx context.Context, env Env, input map[string]interface{}) (map[string]interface{}, error) {
	r := s.newRun(env)
	doc := r.write(ctx, s.fields, "", nil, normalizeDoc(input), true)
	return r.finish(ctx, s.fields, doc)
}

// Update applies patch on top of current. A null value unsets the property.
// Document properties are merged; arrays are replaced.
func (s *Schema) Update(ctx context.Context, env Env, current, patch map[string]interface{}) (map[string]interface{}, error) {
	r := s.newRun(env)
	doc := r.write(ctx, s.fields, "", normalizeDoc(current), normalizeDoc(patch), false)
	return r.finish(ctx, s.fields, doc)
}

// Project returns the parts of doc readable at access. Properties no longer
// defined are dropped.
func (s *Schema) Project(doc map[string]interface{}, access acl.Level) map[string]interface{} {
	return project(s.fields, doc, access)
}

func project(set *fieldSet, doc map[string]interface{}, access acl.Level) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for name, v := range doc {
		f, ok := set.get(name)
		if !ok || f.def.ReadAccess > access {
			continue
		}
		if f.children == nil {
			out[name] = v
			continue
		}
		switch t := v.(type) {
		case map[string]interface{}:
			out[name] = project(f.children, t, access)
		case []interface{}:
			items := make([]interface{}, len(t))
			for i, item := range t {
				if m, ok := item.(map[string]interface{}); ok {
					items[i] = project(f.children, m, access)
				} else {
					items[i] = item
				}
			}
			out[name] = items
		default:
			out[name] = v
		}
	}
	return out
}

// run collects the faults of a single write
type run struct {
	env    Env
	runner *sandbox.Runner
	root   map[string]interface{}
	fault  *apperrors.Fault
	denied *apperrors.Fault
	// failed holds the paths rejected while writing; validation skips them
	failed []string
}

func (s *Schema) newRun(env Env) *run {
	return &run{env: env, runner: s.runner, fault: apperrors.NewValidation()}
}

func (r *run) add(f *apperrors.Fault) {
	if f != nil {
		r.fault.Add(f)
	}
}

func (r *run) deny(path string) {
	if r.denied == nil {
		r.denied = apperrors.ErrPropertyUpdate.WithPath(path)
	}
}

func (r *run) finish(ctx context.Context, set *fieldSet, doc map[string]interface{}) (map[string]interface{}, error) {
	if r.denied != nil {
		return nil, r.denied
	}
	for _, f := range r.fault.Faults {
		r.failed = append(r.failed, f.Path)
	}
	r.root = doc
	r.validate(ctx, set, "", doc)
	if r.fault.HasFaults() {
		return nil, r.fault
	}
	return doc, nil
}

// write applies patch over current for one level of properties
func (r *run) write(ctx context.Context, set *fieldSet, prefix string, current, patch map[string]interface{}, creating bool) map[string]interface{} {
	out := make(map[string]interface{}, len(current)+len(patch))
	for k, v := range current {
		out[k] = v
	}

	names := make([]string, 0, len(patch))
	for name := range patch {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := join(prefix, name)
		f, ok := set.get(name)
		if !ok {
			r.add(apperrors.InvalidArgument("unknownProperty", "unknown property").WithPath(path))
			continue
		}
		def := &f.def
		if def.WriteAccess > r.env.Access {
			r.deny(path)
			continue
		}
		if !def.IsWritable() {
			r.add(apperrors.InvalidArgument("notWritable", "property is not writable").WithPath(path))
			continue
		}
		if !creating && def.ReadOnly {
			r.add(apperrors.InvalidArgument("readOnly", "property can only be set on create").WithPath(path))
			continue
		}

		value := patch[name]
		if value == nil {
			delete(out, name)
			continue
		}
		if !creating && def.Type == TypeDocument && !def.Array {
			sub, isMap := value.(map[string]interface{})
			existing, hasExisting := out[name].(map[string]interface{})
			if isMap && hasExisting {
				out[name] = r.write(ctx, f.children, path, existing, sub, false)
				continue
			}
		}
		if cast, ok := r.castField(ctx, f, value, path); ok {
			out[name] = cast
		}
	}

	if creating {
		r.applyDefaults(ctx, set, prefix, out)
	}
	return out
}

func (r *run) applyDefaults(ctx context.Context, set *fieldSet, prefix string, doc map[string]interface{}) {
	for _, f := range set.order {
		name := f.def.Name
		if v, ok := doc[name]; ok && v != nil {
			continue
		}
		path := join(prefix, name)
		switch {
		case f.def.Default != nil:
			v, fault := f.cast(f.def.Default, path)
			if fault != nil {
				r.add(fault)
				continue
			}
			doc[name] = v
		case f.def.AutoGenerate:
			doc[name] = uuid.NewString()
		case f.def.AutoIncrement && r.env.NextValue != nil:
			next, err := r.env.NextValue(ctx, path)
			if err != nil {
				r.add(apperrors.From(err).WithPath(path))
				continue
			}
			doc[name] = float64(next)
		}
	}
}

func (r *run) castField(ctx context.Context, f *field, value interface{}, path string) (interface{}, bool) {
	if !f.def.Array {
		return r.castElement(ctx, f, value, path)
	}
	items, ok := value.([]interface{})
	if !ok {
		r.add(apperrors.NewCastError(path, "an array"))
		return nil, false
	}
	if f.def.MaxItems > 0 && len(items) > f.def.MaxItems {
		r.add(apperrors.InvalidArgument("maxItems", fmt.Sprintf("at most %d items are allowed", f.def.MaxItems)).WithPath(path))
		return nil, false
	}
	out := make([]interface{}, 0, len(items))
	valid := true
	for i, item := range items {
		cast, ok := r.castElement(ctx, f, item, join(path, strconv.Itoa(i)))
		if !ok {
			valid = false
			continue
		}
		out = append(out, cast)
	}
	return out, valid
}

func (r *run) castElement(ctx context.Context, f *field, value interface{}, path string) (interface{}, bool) {
	if value == nil {
		r.add(apperrors.NewCastError(path, "a value"))
		return nil, false
	}
	if f.def.Type == TypeDocument {
		m, ok := value.(map[string]interface{})
		if !ok {
			r.add(apperrors.NewCastError(path, "a document"))
			return nil, false
		}
		return r.write(ctx, f.children, path, nil, m, true), true
	}
	cast, fault := castScalar(&f.def, value, path)
	if fault != nil {
		r.add(fault)
		return nil, false
	}
	return cast, true
}

// cast converts a value outside of any write, as for defaults
func (f *field) cast(value interface{}, path string) (interface{}, *apperrors.Fault) {
	r := &run{env: Env{Access: acl.Max}, fault: apperrors.NewValidation()}
	out, ok := r.castField(context.Background(), f, expression.Normalize(value), path)
	if !ok || r.fault.HasFaults() {
		if r.fault.HasFaults() {
			return nil, r.fault.Faults[0]
		}
		return nil, apperrors.NewCastError(path, describe(&f.def))
	}
	return out, nil
}

// validate runs required checks and validators over an assembled document
func (r *run) validate(ctx context.Context, set *fieldSet, prefix string, doc map[string]interface{}) {
	for _, f := range set.order {
		path := join(prefix, f.def.Name)
		if r.failedAt(path, f.def.Type == TypeDocument && !f.def.Array) {
			continue
		}
		v := doc[f.def.Name]
		if isEmpty(v) {
			if f.def.IsRequired() {
				r.add(apperrors.InvalidArgument("required", "a value is required").WithPath(path))
			}
			continue
		}
		if f.def.Array {
			items, ok := v.([]interface{})
			if !ok {
				r.add(apperrors.NewCastError(path, "an array"))
				continue
			}
			for i, item := range items {
				r.validateValue(ctx, f, join(path, strconv.Itoa(i)), item)
			}
		} else {
			r.validateValue(ctx, f, path, v)
		}
		for _, c := range f.whole {
			r.add(c(ctx, r, path, v))
		}
	}
}

// failedAt reports whether the value at path was rejected while writing. A
// rejected array element drops the whole array; a single document is still
// validated child by child.
func (r *run) failedAt(path string, document bool) bool {
	for _, p := range r.failed {
		if p == path || (!document && strings.HasPrefix(p, path+".")) {
			return true
		}
	}
	return false
}

func (r *run) validateValue(ctx context.Context, f *field, path string, v interface{}) {
	if !conforms(f.def.Type, v) {
		r.add(apperrors.NewCastError(path, string(f.def.Type)))
		return
	}
	for _, c := range f.each {
		r.add(c(ctx, r, path, v))
	}
	if f.children != nil {
		r.validate(ctx, f.children, path, v.(map[string]interface{}))
	}
}

// conforms guards validators against stored values that predate a definition change
func conforms(t Type, v interface{}) bool {
	switch t {
	case TypeString, TypeDate, TypeBinary, TypeUUID:
		_, ok := v.(string)
		return ok
	case TypeNumber:
		_, ok := v.(float64)
		return ok
	case TypeBoolean:
		_, ok := v.(bool)
		return ok
	case TypeDocument:
		_, ok := v.(map[string]interface{})
		return ok
	}
	return true
}

func isEmpty(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case []interface{}:
		return len(t) == 0
	}
	return false
}

func normalizeDoc(doc map[string]interface{}) map[string]interface{} {
	if doc == nil {
		return map[string]interface{}{}
	}
	out, _ := expression.Normalize(doc).(map[string]interface{})
	return out
}
