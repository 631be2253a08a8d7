package pkg

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// QueryInt reads an optional positive integer query parameter.
// A missing parameter returns def; a malformed or non-positive one is an invalid input error.
func QueryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, NewInvalidInputError(key + " must be a positive integer")
	}
	return v, nil
}

// QueryIntPtr is QueryInt for filters, nil when absent.
func QueryIntPtr(r *http.Request, key string) (*int, error) {
	if r.URL.Query().Get(key) == "" {
		return nil, nil
	}
	v, err := QueryInt(r, key, 0)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// QueryTimePtr parses an optional date (2006-01-02) or RFC3339 query parameter.
func QueryTimePtr(r *http.Request, key string) (*time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	t, err := ParseDate(raw)
	if err != nil {
		return nil, NewInvalidInputError(key + " must be a date (YYYY-MM-DD) or RFC3339 timestamp")
	}
	return &t, nil
}

// ParseDate accepts either an RFC3339 timestamp or a plain 2006-01-02 date.
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, raw)
}

func Ptr[T any](v T) *T {
	return &v
}

// PathInt reads a positive integer route variable.
func PathInt(r *http.Request, key string) (int, error) {
	raw := mux.Vars(r)[key]
	if raw == "" {
		return 0, NewInvalidInputError(key + " is required")
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, NewInvalidInputError(key + " must be a positive integer")
	}
	return v, nil
}
