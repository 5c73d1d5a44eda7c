// Package property implements the typed property definitions that make up an
// object's schema: casting input values, running validators and projecting
// documents by access level.
package property

import (
	"encoding/base64"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/expression"

	"github.com/google/uuid"
)

// Type names a property type
type Type string

const (
	TypeString     Type = "String"
	TypeNumber     Type = "Number"
	TypeBoolean    Type = "Boolean"
	TypeDate       Type = "Date"
	TypeBinary     Type = "Binary"
	TypeUUID       Type = "UUID"
	TypeCoordinate Type = "Coordinate"
	TypeExpression Type = "Expression"
	TypeDocument   Type = "Document"
	TypeAny        Type = "Any"
)

const dateLayout = "2006-01-02"

var knownTypes = map[Type]bool{
	TypeString:     true,
	TypeNumber:     true,
	TypeBoolean:    true,
	TypeDate:       true,
	TypeBinary:     true,
	TypeUUID:       true,
	TypeCoordinate: true,
	TypeExpression: true,
	TypeDocument:   true,
	TypeAny:        true,
}

// Valid reports whether t is a known type
func (t Type) Valid() bool {
	return knownTypes[t]
}

// castScalar converts one (non-array) value to the canonical representation of
// def's type. Documents are handled by the schema since they recurse.
func castScalar(def *Definition, v interface{}, path string) (interface{}, *apperrors.Fault) {
	switch def.Type {
	case TypeString:
		s, ok := v.(string)
		if !ok {
			return nil, apperrors.NewCastError(path, "a string")
		}
		return s, nil

	case TypeNumber:
		return castNumber(v, path)

	case TypeBoolean:
		switch b := v.(type) {
		case bool:
			return b, nil
		case string:
			switch strings.ToLower(strings.TrimSpace(b)) {
			case "true":
				return true, nil
			case "false":
				return false, nil
			}
		}
		return nil, apperrors.NewCastError(path, "a boolean")

	case TypeDate:
		s, ok := v.(string)
		if !ok {
			return nil, apperrors.NewCastError(path, "a date string")
		}
		return castDate(strings.TrimSpace(s), def.DateOnly, path)

	case TypeBinary:
		s, ok := v.(string)
		if !ok {
			return nil, apperrors.NewCastError(path, "base64 encoded binary")
		}
		raw, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, apperrors.NewCastError(path, "base64 encoded binary")
		}
		return base64.StdEncoding.EncodeToString(raw), nil

	case TypeUUID:
		s, ok := v.(string)
		if !ok {
			return nil, apperrors.NewCastError(path, "a uuid")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, apperrors.NewCastError(path, "a uuid")
		}
		return id.String(), nil

	case TypeCoordinate:
		return castCoordinate(v, path)

	case TypeExpression:
		if _, err := expression.Compile(v); err != nil {
			f := apperrors.From(err)
			reason := f.Reason
			if f.Path != "" {
				reason = f.Path + ": " + reason
			}
			return nil, apperrors.ErrExpression.WithReason(reason).WithPath(path)
		}
		return expression.Normalize(v), nil

	case TypeAny:
		return expression.Normalize(v), nil
	}
	return nil, apperrors.NewCastError(path, string(def.Type))
}

func castNumber(v interface{}, path string) (interface{}, *apperrors.Fault) {
	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, apperrors.NewCastError(path, "a number")
		}
		n = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return nil, apperrors.NewCastError(path, "a number")
		}
		n = f
	default:
		return nil, apperrors.NewCastError(path, "a number")
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, apperrors.NewCastError(path, "a finite number")
	}
	return n, nil
}

func castDate(s string, dateOnly bool, path string) (interface{}, *apperrors.Fault) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t, err = time.Parse(dateLayout, s)
		if err != nil {
			return nil, apperrors.NewCastError(path, "an RFC3339 date")
		}
	}
	t = t.UTC()
	if dateOnly {
		return t.Format(dateLayout), nil
	}
	return t.Format(time.RFC3339Nano), nil
}

func castCoordinate(v interface{}, path string) (interface{}, *apperrors.Fault) {
	var lng, lat interface{}
	switch c := v.(type) {
	case []interface{}:
		if len(c) != 2 {
			return nil, apperrors.NewCastError(path, "a [lng, lat] pair")
		}
		lng, lat = c[0], c[1]
	case map[string]interface{}:
		if len(c) != 2 {
			return nil, apperrors.NewCastError(path, "a {lng, lat} object")
		}
		lng, lat = c["lng"], c["lat"]
	default:
		return nil, apperrors.NewCastError(path, "a coordinate")
	}
	x, ok := lng.(float64)
	if !ok || x < -180 || x > 180 {
		return nil, apperrors.NewCastError(path, "a longitude between -180 and 180")
	}
	y, ok := lat.(float64)
	if !ok || y < -90 || y > 90 {
		return nil, apperrors.NewCastError(path, "a latitude between -90 and 90")
	}
	return []interface{}{x, y}, nil
}
