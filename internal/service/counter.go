package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"cortex-backend/internal/acl"
	"cortex-backend/internal/database/models"
	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/repository"
)

var counterNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]{1,100}$`)

// CounterResponse represents the response for counter operations
type CounterResponse struct {
	Object  string    `json:"object"`
	Name    string    `json:"name"`
	Value   int64     `json:"value"`
	Updated time.Time `json:"updated"`
}

// CounterListResponse represents a page of counters
type CounterListResponse struct {
	Data []CounterResponse `json:"data"`
	ListMeta
}

// CounterService administers the org's named counters
type CounterService struct {
	counters repository.CounterRepositoryInterface
}

// NewCounterService creates a new counter service
func NewCounterService(counters repository.CounterRepositoryInterface) *CounterService {
	return &CounterService{counters: counters}
}

// Next increments a counter by by and returns its new value. A missing counter starts at zero.
func (s *CounterService) Next(ctx context.Context, principal acl.Principal, name string, by int64) (*CounterResponse, error) {
	if err := s.check(principal, name); err != nil {
		return nil, err
	}
	if by == 0 {
		by = 1
	}
	value, err := s.counters.Next(ctx, principal.OrgID, name, by)
	if err != nil {
		return nil, fmt.Errorf("failed to increment counter: %w", err)
	}
	return &CounterResponse{Object: "counter", Name: name, Value: value, Updated: time.Now().UTC()}, nil
}

// Get reads a counter
func (s *CounterService) Get(ctx context.Context, principal acl.Principal, name string) (*CounterResponse, error) {
	if err := s.check(principal, name); err != nil {
		return nil, err
	}
	counter, err := s.counters.Get(ctx, principal.OrgID, name)
	if err != nil {
		return nil, notFound(err, apperrors.ErrCounterNotFound.WithResource(name), "get counter")
	}
	return toCounterResponse(counter), nil
}

// Reset removes a counter so that the next value starts over
func (s *CounterService) Reset(ctx context.Context, principal acl.Principal, name string) error {
	if err := s.check(principal, name); err != nil {
		return err
	}
	if err := s.counters.Reset(ctx, principal.OrgID, name); err != nil {
		return notFound(err, apperrors.ErrCounterNotFound.WithResource(name), "reset counter")
	}
	return nil
}

// List returns a page of counters whose names start with prefix
func (s *CounterService) List(ctx context.Context, principal acl.Principal, prefix string, page Page) (*CounterListResponse, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	counters, total, err := s.counters.List(ctx, principal.OrgID, prefix, page.PageSize, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list counters: %w", err)
	}
	data := make([]CounterResponse, 0, len(counters))
	for i := range counters {
		data = append(data, *toCounterResponse(&counters[i]))
	}
	return &CounterListResponse{Data: data, ListMeta: page.meta(total)}, nil
}

func (s *CounterService) check(principal acl.Principal, name string) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}
	if !counterNamePattern.MatchString(name) {
		return validationOf(apperrors.InvalidArgument("pattern", "counter names must match "+counterNamePattern.String()).WithPath("name"))
	}
	return nil
}

func toCounterResponse(c *models.Counter) *CounterResponse {
	return &CounterResponse{Object: "counter", Name: c.Name, Value: c.Value, Updated: c.UpdatedAt}
}
