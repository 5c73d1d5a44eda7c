package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error code namespaces. Every ErrCode lives under exactly one of them.
const (
	NamespaceInvalidArgument = "cortex.invalidArgument"
	NamespaceUnauthorized    = "cortex.unauthorized"
	NamespaceAccessDenied    = "cortex.accessDenied"
	NamespaceNotFound        = "cortex.notFound"
	NamespaceTimeout         = "cortex.timeout"
	NamespaceConflict        = "cortex.conflict"
	NamespaceTooBusy         = "cortex.tooBusy"
	NamespaceError           = "cortex.error"
)

type category struct {
	code   string
	status int
}

var categories = map[string]category{
	NamespaceInvalidArgument: {code: "kInvalidArgument", status: http.StatusBadRequest},
	NamespaceUnauthorized:    {code: "kUnauthorized", status: http.StatusUnauthorized},
	NamespaceAccessDenied:    {code: "kAccessDenied", status: http.StatusForbidden},
	NamespaceNotFound:        {code: "kNotFound", status: http.StatusNotFound},
	NamespaceTimeout:         {code: "kTimeout", status: http.StatusRequestTimeout},
	NamespaceConflict:        {code: "kConflict", status: http.StatusConflict},
	NamespaceTooBusy:         {code: "kTooBusy", status: http.StatusTooManyRequests},
	NamespaceError:           {code: "kError", status: http.StatusInternalServerError},
}

// Fault is the uniform error value of the platform. It serializes to the JSON
// shape returned by every API endpoint.
type Fault struct {
	Code     string   `json:"code"`
	ErrCode  string   `json:"errCode"`
	Status   int      `json:"status"`
	Reason   string   `json:"reason,omitempty"`
	Path     string   `json:"path,omitempty"`
	Resource string   `json:"resource,omitempty"`
	Faults   []*Fault `json:"faults,omitempty"`

	cause error
}

func (f *Fault) Error() string {
	var b strings.Builder
	b.WriteString(f.ErrCode)
	if f.Path != "" {
		b.WriteString(" [")
		b.WriteString(f.Path)
		b.WriteString("]")
	}
	if f.Reason != "" {
		b.WriteString(": ")
		b.WriteString(f.Reason)
	}
	return b.String()
}

// Is enables errors.Is() comparison between faults with the same ErrCode
func (f *Fault) Is(target error) bool {
	t, ok := target.(*Fault)
	if !ok {
		return false
	}
	return f.ErrCode == t.ErrCode
}

// Unwrap exposes the wrapped cause, if any
func (f *Fault) Unwrap() error {
	return f.cause
}

// Namespace returns the "cortex.<category>" prefix of the ErrCode
func (f *Fault) Namespace() string {
	return namespaceOf(f.ErrCode)
}

// MarshalJSON adds the object discriminator expected by API clients
func (f *Fault) MarshalJSON() ([]byte, error) {
	type alias Fault
	return json.Marshal(struct {
		Object string `json:"object"`
		Name   string `json:"name"`
		*alias
	}{
		Object: "fault",
		Name:   f.name(),
		alias:  (*alias)(f),
	})
}

func (f *Fault) name() string {
	if f.ErrCode == ErrCodeValidation {
		return "validation"
	}
	if f.Namespace() == NamespaceError {
		return "error"
	}
	return "fault"
}

// WithPath returns a copy of the fault bound to a property path
func (f *Fault) WithPath(path string) *Fault {
	c := f.clone()
	c.Path = path
	return c
}

// WithReason returns a copy of the fault with a different reason
func (f *Fault) WithReason(reason string) *Fault {
	c := f.clone()
	c.Reason = reason
	return c
}

// WithResource returns a copy of the fault naming the resource it concerns
func (f *Fault) WithResource(resource string) *Fault {
	c := f.clone()
	c.Resource = resource
	return c
}

// Wrap returns a copy of the fault carrying cause. The cause is never serialized.
func (f *Fault) Wrap(cause error) *Fault {
	c := f.clone()
	c.cause = cause
	return c
}

// Add appends child faults. Used by validation containers.
func (f *Fault) Add(children ...*Fault) {
	for _, child := range children {
		if child != nil {
			f.Faults = append(f.Faults, child)
		}
	}
}

// HasFaults reports whether any child fault was collected
func (f *Fault) HasFaults() bool {
	return len(f.Faults) > 0
}

func (f *Fault) clone() *Fault {
	c := *f
	if f.Faults != nil {
		c.Faults = append([]*Fault(nil), f.Faults...)
	}
	return &c
}

// New creates a fault for errCode. Unknown namespaces are filed under cortex.error.
func New(errCode, reason string) *Fault {
	cat, ok := categories[namespaceOf(errCode)]
	if !ok {
		cat = categories[NamespaceError]
	}
	return &Fault{
		Code:    cat.code,
		ErrCode: errCode,
		Status:  cat.status,
		Reason:  reason,
	}
}

// InvalidArgument creates a cortex.invalidArgument.<detail> fault
func InvalidArgument(detail, reason string) *Fault {
	return New(NamespaceInvalidArgument+"."+detail, reason)
}

// Unauthorized creates a cortex.unauthorized.<detail> fault
func Unauthorized(detail, reason string) *Fault {
	return New(NamespaceUnauthorized+"."+detail, reason)
}

// AccessDenied creates a cortex.accessDenied.<detail> fault
func AccessDenied(detail, reason string) *Fault {
	return New(NamespaceAccessDenied+"."+detail, reason)
}

// NotFound creates a cortex.notFound.<detail> fault
func NotFound(detail, reason string) *Fault {
	return New(NamespaceNotFound+"."+detail, reason)
}

// Timeout creates a cortex.timeout.<detail> fault
func Timeout(detail, reason string) *Fault {
	return New(NamespaceTimeout+"."+detail, reason)
}

// Conflict creates a cortex.conflict.<detail> fault
func Conflict(detail, reason string) *Fault {
	return New(NamespaceConflict+"."+detail, reason)
}

// TooBusy creates a cortex.tooBusy.<detail> fault
func TooBusy(detail, reason string) *Fault {
	return New(NamespaceTooBusy+"."+detail, reason)
}

// Internal creates a cortex.error.<detail> fault
func Internal(detail, reason string) *Fault {
	return New(NamespaceError+"."+detail, reason)
}

// NewValidation creates an empty validation container
func NewValidation() *Fault {
	return ErrValidation.clone()
}

// Common error codes
const (
	ErrCodeValidation = NamespaceInvalidArgument + ".validation"
	ErrCodeSequencing = NamespaceConflict + ".sequencing"
)

// Not Found Errors
var (
	ErrOrgNotFound        = NotFound("org", "org not found")
	ErrAccountNotFound    = NotFound("account", "account not found")
	ErrObjectNotFound     = NotFound("object", "object not found")
	ErrInstanceNotFound   = NotFound("instance", "instance not found")
	ErrConnectionNotFound = NotFound("connection", "connection not found")
	ErrCounterNotFound    = NotFound("counter", "counter not found")
	ErrCacheKeyNotFound   = NotFound("cacheKey", "cache key not found")
	ErrRouteNotFound      = NotFound("route", "route not found")
)

// Conflict Errors
var (
	ErrOrgExists        = Conflict("exists", "org already exists with this code")
	ErrAccountExists    = Conflict("exists", "account already exists with this email")
	ErrObjectExists     = Conflict("exists", "object already exists with this name")
	ErrConnectionExists = Conflict("exists", "connection already exists for this target")
	ErrSequencing       = New(ErrCodeSequencing, "the document was modified concurrently")
	ErrInstancesExist   = Conflict("instancesExist", "object has existing instances")
	ErrStaleDeployment  = Conflict("staleDeployment", "deployment version is not newer than the current one")
)

// Invalid Argument Errors
var (
	ErrUnspecifiedArgument = InvalidArgument("unspecified", "invalid argument")
	ErrValidation          = New(ErrCodeValidation, "validation failed")
	ErrInvalidID           = InvalidArgument("id", "invalid identifier")
	ErrInvalidPaging       = InvalidArgument("paging", "invalid pagination parameters")
	ErrInvalidBody         = InvalidArgument("body", "invalid request body")
	ErrInvalidLevel        = InvalidArgument("accessLevel", "invalid access level")
	ErrInvalidBundle       = InvalidArgument("bundle", "invalid deployment bundle")
	ErrScriptTooLarge      = InvalidArgument("scriptTooLarge", "script exceeds maximum size")
	ErrScript              = InvalidArgument("script", "script error")
	ErrExpression          = InvalidArgument("expression", "invalid expression")
)

// Access Denied Errors
var (
	ErrAccessDenied        = AccessDenied("unspecified", "access denied")
	ErrOrgDisabled         = AccessDenied("orgDisabled", "org is disabled")
	ErrAccountLocked       = AccessDenied("accountLocked", "account is locked")
	ErrRoleRequired        = AccessDenied("role", "a privileged role is required")
	ErrCreateDenied        = AccessDenied("create", "not allowed to create instances of this object")
	ErrInstanceUpdate      = AccessDenied("instanceUpdate", "update access required")
	ErrInstanceDelete      = AccessDenied("instanceDelete", "delete access required")
	ErrShareDenied         = AccessDenied("share", "share access required")
	ErrPropertyUpdate      = AccessDenied("propertyUpdate", "insufficient access to update property")
	ErrProvisioningDenied  = AccessDenied("provisioning", "invalid provisioning key")
	ErrConnectionForbidden = AccessDenied("connection", "not allowed to act on this connection")
)

// Authentication Errors
var (
	ErrMissingToken       = Unauthorized("missingToken", "authorization header is required")
	ErrInvalidToken       = Unauthorized("invalidToken", "invalid or expired token")
	ErrInvalidCredentials = Unauthorized("invalidCredentials", "invalid email or password")
	ErrWrongOrg           = Unauthorized("wrongOrg", "token was issued for another org")
)

// Other Errors
var (
	ErrUnspecified   = Internal("unspecified", "an unexpected error occurred")
	ErrTimeout       = Timeout("unspecified", "operation timed out")
	ErrScriptTimeout = Timeout("script", "script execution timed out")
	ErrRateLimited   = TooBusy("rateLimit", "too many requests")
)

// Helper Functions

// From converts any error into a fault. Faults found in the chain are returned
// as-is; other errors become generic faults that keep err as their cause.
func From(err error) *Fault {
	if err == nil {
		return nil
	}
	var f *Fault
	if errors.As(err, &f) {
		return f
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrTimeout.Wrap(err)
	}
	return ErrUnspecified.Wrap(err)
}

// Cause returns the innermost wrapped cause of a fault, or err itself
func Cause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// InNamespace reports whether err is a fault under the given namespace
func InNamespace(err error, namespace string) bool {
	var f *Fault
	if !errors.As(err, &f) {
		return false
	}
	return f.Namespace() == namespace
}

// IsNotFound checks if an error is a cortex.notFound fault
func IsNotFound(err error) bool {
	return InNamespace(err, NamespaceNotFound)
}

// IsInvalidArgument checks if an error is a cortex.invalidArgument fault
func IsInvalidArgument(err error) bool {
	return InNamespace(err, NamespaceInvalidArgument)
}

// IsAccessDenied checks if an error is a cortex.accessDenied fault
func IsAccessDenied(err error) bool {
	return InNamespace(err, NamespaceAccessDenied)
}

// IsUnauthorized checks if an error is a cortex.unauthorized fault
func IsUnauthorized(err error) bool {
	return InNamespace(err, NamespaceUnauthorized)
}

// IsConflict checks if an error is a cortex.conflict fault
func IsConflict(err error) bool {
	return InNamespace(err, NamespaceConflict)
}

// IsSequencing checks if an error is a sequencing conflict
func IsSequencing(err error) bool {
	return errors.Is(err, ErrSequencing)
}

// IsTimeout checks if an error is a cortex.timeout fault
func IsTimeout(err error) bool {
	return InNamespace(err, NamespaceTimeout)
}

// NewCastError creates a cast fault for a property path
func NewCastError(path, expected string) *Fault {
	return InvalidArgument("castError", fmt.Sprintf("expected %s", expected)).WithPath(path)
}

func namespaceOf(errCode string) string {
	parts := strings.SplitN(errCode, ".", 3)
	if len(parts) < 2 {
		return errCode
	}
	return parts[0] + "." + parts[1]
}
