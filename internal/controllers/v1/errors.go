package v1

import (
	"errors"
	"net/http"

	"github.com/envelope-zero/networth/internal/repository"
	"github.com/envelope-zero/networth/internal/storage"
)

type httpError struct {
	Error string `json:"error" example:"there is no savings source matching your query (id=8e7c1a0f-4a4b-4f0d-b3d3-4dd1d2b3a6c9)"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	switch {
	case errors.Is(err, storage.ErrGeneral), errors.Is(err, repository.ErrApplicationIntegrityError):
		return http.StatusInternalServerError
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, repository.ErrUnauthorized):
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)
