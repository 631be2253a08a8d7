package pkg

import (
	"errors"
	"net/http"
)

// Generic error kinds. Domain packages wrap these in their own sentinels,
// HTTPStatusFor maps them to status codes.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
)

// KindError attaches a generic kind to a specific message.
type KindError struct {
	Kind error
	Msg  string
}

func (e *KindError) Error() string { return e.Msg }
func (e *KindError) Unwrap() error { return e.Kind }

func NewInvalidInputError(msg string) error {
	return &KindError{Kind: ErrInvalidInput, Msg: msg}
}

func NewNotFoundError(msg string) error {
	return &KindError{Kind: ErrNotFound, Msg: msg}
}

func NewUnauthorizedError(msg string) error {
	return &KindError{Kind: ErrUnauthorized, Msg: msg}
}

func HTTPStatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrConflict):
		return http.StatusBadRequest
	case IsUniqueViolationError(err), IsForeignKeyViolationError(err), IsCheckViolationError(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
