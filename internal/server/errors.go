package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/cv-builder/internal/export"
	"github.com/jonathan/cv-builder/internal/store"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var decodeErr *store.DecodeError
	switch {
	case errors.As(err, &decodeErr):
		return http.StatusBadRequest
	case errors.Is(err, export.ErrInProgress):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
