package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"romarchive/internal/models"
	"romarchive/internal/shared"
)

// parseListParams reads page/page_size/sort_by/sort_order from the query
// string. Absent values fall back to the defaults; malformed or
// out-of-range numbers are a caller error, never clamped.
func parseListParams(r *http.Request) (models.ListParams, error) {
	params := models.DefaultListParams()
	q := r.URL.Query()

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return params, fmt.Errorf("%w: page must be an integer, got %q", shared.ErrInvalidInput, raw)
		}
		params.Page = page
	}
	if raw := q.Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return params, fmt.Errorf("%w: page_size must be an integer, got %q", shared.ErrInvalidInput, raw)
		}
		params.PageSize = size
	}
	params.SortBy = q.Get("sort_by")
	params.SortOrder = q.Get("sort_order")

	if err := params.Validate(); err != nil {
		return params, err
	}
	return params, nil
}

// parsePathID reads the numeric {id} path variable.
func parsePathID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id must be an integer, got %q", shared.ErrInvalidInput, raw)
	}
	return id, nil
}

// parseOptionalInt64 reads an optional numeric filter. Nil means absent.
func parseOptionalInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer, got %q", shared.ErrInvalidInput, name, raw)
	}
	return &v, nil
}

// parseOptionalBool reads an optional boolean filter. Nil means absent.
func parseOptionalBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a boolean, got %q", shared.ErrInvalidInput, name, raw)
	}
	return &v, nil
}
