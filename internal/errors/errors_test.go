package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaultCategories(t *testing.T) {
	t.Run("status and code follow the namespace", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, ErrInstanceNotFound.Status)
		assert.Equal(t, "kNotFound", ErrInstanceNotFound.Code)
		assert.Equal(t, http.StatusBadRequest, InvalidArgument("required", "").Status)
		assert.Equal(t, http.StatusForbidden, ErrOrgDisabled.Status)
		assert.Equal(t, http.StatusConflict, ErrSequencing.Status)
		assert.Equal(t, http.StatusTooManyRequests, ErrRateLimited.Status)
		assert.Equal(t, http.StatusRequestTimeout, ErrScriptTimeout.Status)
	})

	t.Run("unknown namespace is an internal error", func(t *testing.T) {
		f := New("something.else", "x")
		assert.Equal(t, http.StatusInternalServerError, f.Status)
		assert.Equal(t, "kError", f.Code)
	})
}

func TestFaultError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "cortex.notFound.instance: instance not found", ErrInstanceNotFound.Error())
	})

	t.Run("Error message with path", func(t *testing.T) {
		f := InvalidArgument("required", "required property").WithPath("c_name")
		assert.Equal(t, "cortex.invalidArgument.required [c_name]: required property", f.Error())
	})
}

func TestFaultIs(t *testing.T) {
	t.Run("errors.Is comparison with same errCode", func(t *testing.T) {
		assert.True(t, errors.Is(ErrInstanceNotFound.WithPath("x"), ErrInstanceNotFound))
	})

	t.Run("errors.Is comparison with different errCode", func(t *testing.T) {
		assert.False(t, errors.Is(ErrInstanceNotFound, ErrObjectNotFound))
	})

	t.Run("errors.Is through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("update failed: %w", ErrSequencing)
		assert.True(t, IsSequencing(err))
		assert.True(t, IsConflict(err))
	})

	t.Run("namespace helpers", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrOrgNotFound))
		assert.False(t, IsNotFound(ErrOrgDisabled))
		assert.True(t, IsAccessDenied(ErrOrgDisabled))
		assert.True(t, IsInvalidArgument(ErrValidation))
		assert.True(t, IsUnauthorized(ErrInvalidToken))
		assert.True(t, IsTimeout(ErrScriptTimeout))
		assert.False(t, IsNotFound(errors.New("plain")))
	})
}

func TestFaultCopies(t *testing.T) {
	f := ErrInstanceNotFound.WithPath("a").WithResource("c_thing")
	assert.Equal(t, "", ErrInstanceNotFound.Path)
	assert.Equal(t, "", ErrInstanceNotFound.Resource)
	assert.Equal(t, "a", f.Path)
	assert.Equal(t, "c_thing", f.Resource)

	v := NewValidation()
	v.Add(InvalidArgument("required", "").WithPath("a"), nil)
	assert.True(t, v.HasFaults())
	assert.Len(t, v.Faults, 1)
	assert.False(t, ErrValidation.HasFaults())
}

func TestFrom(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, From(nil))
	})

	t.Run("fault passes through", func(t *testing.T) {
		err := fmt.Errorf("ctx: %w", ErrAccountNotFound)
		assert.Same(t, ErrAccountNotFound, From(err))
	})

	t.Run("deadline becomes timeout", func(t *testing.T) {
		f := From(context.DeadlineExceeded)
		assert.True(t, IsTimeout(f))
		assert.ErrorIs(t, f, context.DeadlineExceeded)
	})

	t.Run("other errors become unspecified and keep the cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		f := From(cause)
		assert.Equal(t, "cortex.error.unspecified", f.ErrCode)
		assert.Equal(t, cause, Cause(f))
	})
}

func TestFaultJSON(t *testing.T) {
	v := NewValidation()
	v.Add(NewCastError("c_age", "number"))
	raw, err := json.Marshal(v.Wrap(errors.New("secret")))
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "fault", body["object"])
	assert.Equal(t, "validation", body["name"])
	assert.Equal(t, "cortex.invalidArgument.validation", body["errCode"])
	assert.Equal(t, float64(400), body["status"])
	assert.NotContains(t, string(raw), "secret")

	children := body["faults"].([]interface{})
	require.Len(t, children, 1)
	child := children[0].(map[string]interface{})
	assert.Equal(t, "cortex.invalidArgument.castError", child["errCode"])
	assert.Equal(t, "c_age", child["path"])
}
