package http

import (
	"net/http"

	pkgErrors "campus-lostfound/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Stats reads have no domain errors of their own.
func (h *handler) mapError(err error) error {
	return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
