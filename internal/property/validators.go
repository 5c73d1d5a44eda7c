package property

import (
	"context"
	"encoding/base64"
	"fmt"
	"math"
	"regexp"
	"sort"
	"time"
	"unicode/utf8"

	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/expression"
	"cortex-backend/internal/sandbox"

	"github.com/go-playground/validator/v10"
)

var fieldValidator = validator.New()

// check validates a single cast value. A nil fault means the value passed.
type check func(ctx context.Context, r *run, path string, value interface{}) *apperrors.Fault

type compiledValidator struct {
	fn    check
	whole bool
}

type validatorSpec struct {
	appliesTo func(def *Definition) bool
	compile   func(def *Definition, opts options, runner *sandbox.Runner) (*compiledValidator, error)
}

var validatorSpecs map[string]validatorSpec

func init() {
	validatorSpecs = map[string]validatorSpec{
		"required":     {appliesTo: anyType, compile: compileRequired},
		"string":       {appliesTo: ofType(TypeString), compile: compileStringLength},
		"pattern":      {appliesTo: ofType(TypeString), compile: compilePattern},
		"stringEnum":   {appliesTo: ofType(TypeString), compile: compileStringEnum},
		"number":       {appliesTo: ofType(TypeNumber), compile: compileNumberRange},
		"numberEnum":   {appliesTo: ofType(TypeNumber), compile: compileNumberEnum},
		"email":        {appliesTo: ofType(TypeString), compile: compileTag("email", "must be a valid email address")},
		"url":          {appliesTo: ofType(TypeString), compile: compileTag("url", "must be a valid url")},
		"dateRange":    {appliesTo: ofType(TypeDate), compile: compileDateRange},
		"binarySize":   {appliesTo: ofType(TypeBinary), compile: compileBinarySize},
		"uniqueValues": {appliesTo: func(def *Definition) bool { return def.Array }, compile: compileUniqueValues},
		"expression":   {appliesTo: anyType, compile: compileExpression},
		"script":       {appliesTo: anyType, compile: compileScript},
	}
}

// ValidatorNames lists the supported validators
func ValidatorNames() []string {
	names := make([]string, 0, len(validatorSpecs))
	for name := range validatorSpecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func anyType(*Definition) bool { return true }

func ofType(t Type) func(*Definition) bool {
	return func(def *Definition) bool { return def.Type == t }
}

func compileValidator(def *Definition, v Validator, runner *sandbox.Runner) (*compiledValidator, *apperrors.Fault) {
	spec, ok := validatorSpecs[v.Name]
	if !ok {
		return nil, apperrors.InvalidArgument("validator", fmt.Sprintf("unknown validator %q", v.Name))
	}
	if !spec.appliesTo(def) {
		return nil, apperrors.InvalidArgument("validator", fmt.Sprintf("validator %q does not apply to %s properties", v.Name, describe(def)))
	}
	opts, _ := expression.Normalize(v.Definition).(map[string]interface{})
	c, err := spec.compile(def, opts, runner)
	if err != nil {
		return nil, apperrors.InvalidArgument("validator", fmt.Sprintf("%s: %s", v.Name, err.Error()))
	}
	return c, nil
}

func describe(def *Definition) string {
	if def.Array {
		return string(def.Type) + "[]"
	}
	return string(def.Type)
}

func failed(name, reason, path string) *apperrors.Fault {
	return apperrors.InvalidArgument(name, reason).WithPath(path)
}

// required is enforced by the schema once the document is assembled
func compileRequired(*Definition, options, *sandbox.Runner) (*compiledValidator, error) {
	return nil, nil
}

func compileStringLength(_ *Definition, opts options, _ *sandbox.Runner) (*compiledValidator, error) {
	min, hasMin, err := opts.number("min")
	if err != nil {
		return nil, err
	}
	max, hasMax, err := opts.number("max")
	if err != nil {
		return nil, err
	}
	if hasMin && hasMax && min > max {
		return nil, fmt.Errorf("min must not exceed max")
	}
	return &compiledValidator{fn: func(_ context.Context, _ *run, path string, value interface{}) *apperrors.Fault {
		n := float64(utf8.RuneCountInString(value.(string)))
		if (hasMin && n < min) || (hasMax && n > max) {
			return failed("string", lengthReason(hasMin, min, hasMax, max), path)
		}
		return nil
	}}, nil
}

func lengthReason(hasMin bool, min float64, hasMax bool, max float64) string {
	switch {
	case hasMin && hasMax:
		return fmt.Sprintf("must be between %g and %g characters", min, max)
	case hasMin:
		return fmt.Sprintf("must be at least %g characters", min)
	}
	return fmt.Sprintf("must be at most %g characters", max)
}

func compilePattern(_ *Definition, opts options, _ *sandbox.Runner) (*compiledValidator, error) {
	source, ok := opts["regex"].(string)
	if !ok || source == "" {
		return nil, fmt.Errorf("regex is required")
	}
	re, err := regexp.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("invalid regex: %w", err)
	}
	return &compiledValidator{fn: func(_ context.Context, _ *run, path string, value interface{}) *apperrors.Fault {
		if !re.MatchString(value.(string)) {
			return failed("pattern", fmt.Sprintf("must match %s", source), path)
		}
		return nil
	}}, nil
}

func compileStringEnum(_ *Definition, opts options, _ *sandbox.Runner) (*compiledValidator, error) {
	values, err := opts.strings("values")
	if err != nil {
		return nil, err
	}
	allowed := make(map[string]bool, len(values))
	for _, v := range values {
		allowed[v] = true
	}
	return &compiledValidator{fn: func(_ context.Context, _ *run, path string, value interface{}) *apperrors.Fault {
		if !allowed[value.(string)] {
			return failed("stringEnum", fmt.Sprintf("must be one of %v", values), path)
		}
		return nil
	}}, nil
}

func compileNumberRange(_ *Definition, opts options, _ *sandbox.Runner) (*compiledValidator, error) {
	min, hasMin, err := opts.number("min")
	if err != nil {
		return nil, err
	}
	max, hasMax, err := opts.number("max")
	if err != nil {
		return nil, err
	}
	if hasMin && hasMax && min > max {
		return nil, fmt.Errorf("min must not exceed max")
	}
	allowDecimal := true
	if raw, ok := opts["allowDecimal"]; ok {
		b, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("allowDecimal must be a boolean")
		}
		allowDecimal = b
	}
	return &compiledValidator{fn: func(_ context.Context, _ *run, path string, value interface{}) *apperrors.Fault {
		n := value.(float64)
		if !allowDecimal && n != math.Trunc(n) {
			return failed("number", "must be a whole number", path)
		}
		if hasMin && n < min {
			return failed("number", fmt.Sprintf("must be at least %g", min), path)
		}
		if hasMax && n > max {
			return failed("number", fmt.Sprintf("must be at most %g", max), path)
		}
		return nil
	}}, nil
}

func compileNumberEnum(_ *Definition, opts options, _ *sandbox.Runner) (*compiledValidator, error) {
	values, err := opts.numbers("values")
	if err != nil {
		return nil, err
	}
	return &compiledValidator{fn: func(_ context.Context, _ *run, path string, value interface{}) *apperrors.Fault {
		n := value.(float64)
		for _, v := range values {
			if v == n {
				return nil
			}
		}
		return failed("numberEnum", fmt.Sprintf("must be one of %v", values), path)
	}}, nil
}

func compileTag(tag, reason string) func(*Definition, options, *sandbox.Runner) (*compiledValidator, error) {
	return func(*Definition, options, *sandbox.Runner) (*compiledValidator, error) {
		return &compiledValidator{fn: func(_ context.Context, _ *run, path string, value interface{}) *apperrors.Fault {
			if err := fieldValidator.Var(value, tag); err != nil {
				return failed(tag, reason, path)
			}
			return nil
		}}, nil
	}
}

func compileDateRange(def *Definition, opts options, _ *sandbox.Runner) (*compiledValidator, error) {
	bound := func(key string) (time.Time, bool, error) {
		raw, ok := opts[key]
		if !ok || raw == nil {
			return time.Time{}, false, nil
		}
		s, ok := raw.(string)
		if !ok {
			return time.Time{}, false, fmt.Errorf("%s must be a date string", key)
		}
		t, err := parseDate(s)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("%s must be an RFC3339 or YYYY-MM-DD date", key)
		}
		return t, true, nil
	}
	min, hasMin, err := bound("min")
	if err != nil {
		return nil, err
	}
	max, hasMax, err := bound("max")
	if err != nil {
		return nil, err
	}
	if hasMin && hasMax && min.After(max) {
		return nil, fmt.Errorf("min must not be after max")
	}
	return &compiledValidator{fn: func(_ context.Context, _ *run, path string, value interface{}) *apperrors.Fault {
		t, err := parseDate(value.(string))
		if err != nil {
			return apperrors.NewCastError(path, "a date")
		}
		if hasMin && t.Before(min) {
			return failed("dateRange", "must not be before "+min.Format(time.RFC3339), path)
		}
		if hasMax && t.After(max) {
			return failed("dateRange", "must not be after "+max.Format(time.RFC3339), path)
		}
		return nil
	}}, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Parse(dateLayout, s)
}

func compileBinarySize(_ *Definition, opts options, _ *sandbox.Runner) (*compiledValidator, error) {
	max, ok, err := opts.number("max")
	if err != nil {
		return nil, err
	}
	if !ok || max < 0 {
		return nil, fmt.Errorf("max is required and must not be negative")
	}
	return &compiledValidator{fn: func(_ context.Context, _ *run, path string, value interface{}) *apperrors.Fault {
		raw, _ := base64.StdEncoding.DecodeString(value.(string))
		if float64(len(raw)) > max {
			return failed("binarySize", fmt.Sprintf("must be at most %g bytes", max), path)
		}
		return nil
	}}, nil
}

func compileUniqueValues(*Definition, options, *sandbox.Runner) (*compiledValidator, error) {
	return &compiledValidator{whole: true, fn: func(_ context.Context, _ *run, path string, value interface{}) *apperrors.Fault {
		items, _ := value.([]interface{})
		for i := 1; i < len(items); i++ {
			for j := 0; j < i; j++ {
				if expression.Compare(items[i], items[j]) == 0 {
					return failed("uniqueValues", "array values must be unique", join(path, fmt.Sprint(i)))
				}
			}
		}
		return nil
	}}, nil
}

func compileExpression(_ *Definition, opts options, _ *sandbox.Runner) (*compiledValidator, error) {
	raw, ok := opts["expression"]
	if !ok {
		return nil, fmt.Errorf("expression is required")
	}
	expr, err := expression.Compile(raw)
	if err != nil {
		return nil, err
	}
	message := opts.message("expression validation failed")
	return &compiledValidator{whole: true, fn: func(ctx context.Context, r *run, path string, value interface{}) *apperrors.Fault {
		scope := expression.NewScope(r.root).
			With(expression.VarValue, value).
			With(expression.VarPrincipal, r.env.Principal).
			With(expression.VarOrg, r.env.Org)
		pass, err := expr.EvaluateBool(ctx, scope)
		if err != nil {
			return apperrors.From(err).WithPath(path)
		}
		if !pass {
			return failed("expression", message, path)
		}
		return nil
	}}, nil
}

func compileScript(_ *Definition, opts options, runner *sandbox.Runner) (*compiledValidator, error) {
	source, ok := opts["script"].(string)
	if !ok || source == "" {
		return nil, fmt.Errorf("script is required")
	}
	if err := runner.Check(source); err != nil {
		return nil, err
	}
	message := opts.message("script validation failed")
	return &compiledValidator{whole: true, fn: func(ctx context.Context, r *run, path string, value interface{}) *apperrors.Fault {
		out, err := r.runner.Run(ctx, sandbox.Script{
			Name:      "validator:" + path,
			Source:    source,
			Org:       r.env.Org,
			Principal: r.env.Principal,
			Arguments: map[string]interface{}{
				"value": value,
				"path":  path,
				"root":  r.root,
			},
		})
		if err != nil {
			return apperrors.From(err).WithPath(path)
		}
		if !expression.Truthy(out) {
			return failed("script", message, path)
		}
		return nil
	}}, nil
}

// options is the free-form definition attached to a validator
type options map[string]interface{}

func (o options) number(key string) (float64, bool, error) {
	raw, ok := o[key]
	if !ok || raw == nil {
		return 0, false, nil
	}
	n, ok := expression.Normalize(raw).(float64)
	if !ok {
		return 0, false, fmt.Errorf("%s must be a number", key)
	}
	return n, true, nil
}

func (o options) strings(key string) ([]string, error) {
	items, ok := o[key].([]interface{})
	if !ok || len(items) == 0 {
		return nil, fmt.Errorf("%s must be a non-empty array of strings", key)
	}
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s must be a non-empty array of strings", key)
		}
		out[i] = s
	}
	return out, nil
}

func (o options) numbers(key string) ([]float64, error) {
	items, ok := expression.Normalize(o[key]).([]interface{})
	if !ok || len(items) == 0 {
		return nil, fmt.Errorf("%s must be a non-empty array of numbers", key)
	}
	out := make([]float64, len(items))
	for i, item := range items {
		n, ok := item.(float64)
		if !ok {
			return nil, fmt.Errorf("%s must be a non-empty array of numbers", key)
		}
		out[i] = n
	}
	return out, nil
}

func (o options) message(fallback string) string {
	if m, ok := o["message"].(string); ok && m != "" {
		return m
	}
	return fallback
}
