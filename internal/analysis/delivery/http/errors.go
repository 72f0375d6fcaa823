package http

import (
	"errors"

	"egy-discovery/internal/analysis"
	pkgErrors "egy-discovery/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analysis.ErrInvalidMetric):
		return pkgErrors.NewBadRequestError(err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
