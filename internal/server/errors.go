package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/staffsync/internal/extraction"
	"github.com/jonathan/staffsync/internal/session"
	"github.com/jonathan/staffsync/internal/wizard"
)

// ErrNotFound indicates a requested resource does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var notFound *ErrNotFound
	var validation *ErrValidation
	var extractionErr *extraction.ExtractionError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrEmptyMessage):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrBusy), errors.Is(err, wizard.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, wizard.ErrCompleted), errors.Is(err, wizard.ErrNotVerified):
		return http.StatusConflict
	case errors.Is(err, wizard.ErrCancelled):
		return http.StatusGone
	case errors.Is(err, session.ErrNotFound), errors.Is(err, wizard.ErrNotFound),
		errors.Is(err, wizard.ErrNoCandidate):
		return http.StatusNotFound
	case errors.As(err, &extractionErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
