package http

import (
	"net/http"

	"campus-lostfound/internal/user"
	pkgErrors "campus-lostfound/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case user.ErrUserNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "user not found")
	case user.ErrEmailTaken:
		return pkgErrors.NewHTTPError(http.StatusConflict, "email already registered")
	case user.ErrInvalidCredentials:
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	case user.ErrInvalidPayload:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid payload")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
