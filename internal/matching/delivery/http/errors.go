package http

import (
	"net/http"

	"campus-lostfound/internal/matching"
	pkgErrors "campus-lostfound/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case matching.ErrItemNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "item not found")
	case matching.ErrMatchNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "match not found")
	case matching.ErrInvalidStatus:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid status, must be pending, confirmed or rejected")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
