package http

import (
	"net/http"

	"campus-lostfound/internal/item"
	pkgErrors "campus-lostfound/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case item.ErrItemNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "item not found")
	case item.ErrInvalidType:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "type must be lost or found")
	case item.ErrInvalidStatus:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "status must be active, matched or resolved")
	case item.ErrInvalidPayload:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid payload")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
