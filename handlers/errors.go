package handlers

import (
	"errors"
	"law_link_app_go/models"
	"law_link_app_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

// httpError maps a service error to the HTTP status its kind deserves.
// Unknown errors become 500 without leaking internals.
func httpError(err error) error {
	switch {
	case errors.Is(err, services.ErrCaseNotFound),
		errors.Is(err, services.ErrInvitationNotFound),
		errors.Is(err, services.ErrApplicationNotFound),
		errors.Is(err, services.ErrCommentNotFound),
		errors.Is(err, services.ErrSpecialtyNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())

	case errors.Is(err, services.ErrOwnershipMismatch):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())

	case errors.Is(err, models.ErrInvalidTransition),
		errors.Is(err, services.ErrDuplicateInvitation),
		errors.Is(err, services.ErrStaleCase):
		return echo.NewHTTPError(http.StatusConflict, err.Error())

	case errors.Is(err, services.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())

	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}
