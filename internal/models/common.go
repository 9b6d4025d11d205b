package models

import (
	"fmt"
	"strings"

	"romarchive/internal/shared"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// ListParams carries the pagination and sorting window of a list request.
// SortBy and SortOrder may be empty; the per-entity descriptor supplies the
// defaults. Page is 1-indexed.
type ListParams struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// DefaultListParams returns the window used when the caller specifies nothing.
func DefaultListParams() ListParams {
	return ListParams{Page: 1, PageSize: DefaultPageSize}
}

// Validate rejects out-of-range windows. Out-of-range values are a caller
// error, not something to clamp silently.
func (p ListParams) Validate() error {
	if p.Page < 1 {
		return fmt.Errorf("%w: page must be >= 1, got %d", shared.ErrInvalidInput, p.Page)
	}
	if p.PageSize < 1 || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: page_size must be between 1 and %d, got %d", shared.ErrInvalidInput, MaxPageSize, p.PageSize)
	}
	return nil
}

// Offset computes the row offset for the requested page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Descending reports whether the caller asked for descending order.
// Anything other than a case-insensitive "desc" means ascending.
func (p ListParams) Descending() bool {
	return strings.EqualFold(p.SortOrder, "desc")
}

// Paginated is the uniform envelope for all list endpoints.
type Paginated[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// NewPaginated wraps a page of items. TotalPages is ceil(total/pageSize) and
// zero when total is zero. Items is never nil so it marshals as [].
func NewPaginated[T any](items []T, total int, p ListParams) *Paginated[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if total > 0 {
		totalPages = (total + p.PageSize - 1) / p.PageSize
	}
	return &Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: totalPages,
	}
}

// HealthResponse reports connectivity of the archive database.
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
}
