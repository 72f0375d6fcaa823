package http

import (
	"errors"
	"net/http"

	"egy-discovery/internal/agent"
	pkgErrors "egy-discovery/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, agent.ErrNoDefaultHandler):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "no agent available")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
