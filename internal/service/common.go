package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"cortex-backend/internal/acl"
	apperrors "cortex-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Paging bounds
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is a normalized page request
type Page struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// NewPage validates page (1-based) and pageSize. Zero values take the defaults.
func NewPage(page, pageSize int) (Page, error) {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 || pageSize < 1 || pageSize > MaxPageSize {
		return Page{}, apperrors.ErrInvalidPaging.WithReason(
			fmt.Sprintf("page must be >= 1 and pageSize between 1 and %d", MaxPageSize))
	}
	return Page{Page: page, PageSize: pageSize}, nil
}

// Offset returns the number of rows to skip
func (p Page) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ListMeta describes a returned page
type ListMeta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	HasMore  bool  `json:"hasMore"`
}

func (p Page) meta(total int64) ListMeta {
	return ListMeta{
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
		HasMore:  int64(p.Offset()+p.PageSize) < total,
	}
}

// NewValidator creates the request validator. Field errors are reported by JSON name.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateStruct runs v on req and converts failures into a validation fault
func validateStruct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.ErrInvalidBody.Wrap(err)
	}
	container := apperrors.NewValidation()
	for _, fe := range fieldErrs {
		container.Add(apperrors.InvalidArgument(fe.Tag(), fieldMessage(fe)).WithPath(fieldPath(fe)))
	}
	return container
}

// validationOf wraps children in a validation container
func validationOf(children ...*apperrors.Fault) *apperrors.Fault {
	container := apperrors.NewValidation()
	container.Add(children...)
	return container
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "a value is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	}
	return "failed the " + fe.Tag() + " check"
}

// notFound maps gorm.ErrRecordNotFound to fault and wraps anything else
func notFound(err error, fault *apperrors.Fault, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fault
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func requireAdmin(p acl.Principal) error {
	if !p.IsAdmin() {
		return apperrors.ErrRoleRequired.WithReason("the administrator role is required")
	}
	return nil
}

func requireDeveloper(p acl.Principal) error {
	if !p.IsDeveloper() {
		return apperrors.ErrRoleRequired.WithReason("the administrator or developer role is required")
	}
	return nil
}

// principalDoc is the PRINCIPAL variable seen by expressions and scripts
func principalDoc(p acl.Principal) map[string]interface{} {
	roles := make([]interface{}, 0, len(p.Roles))
	for _, r := range p.Roles {
		roles = append(roles, r)
	}
	return map[string]interface{}{
		"_id":       p.AccountID.String(),
		"email":     p.Email,
		"roles":     roles,
		"anonymous": p.Anonymous,
	}
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
