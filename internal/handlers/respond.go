package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"rentdesk/internal/common"
	"rentdesk/internal/services"

	"github.com/labstack/echo/v4"
)

// respondError maps service sentinel errors onto the HTTP error envelope.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return common.SendClientError(c, "Invalid input")
	case errors.Is(err, services.ErrNotFound):
		return common.SendNotFoundError(c, "Resource")
	case errors.Is(err, services.ErrForbidden):
		return common.SendForbiddenError(c, "Operation not permitted")
	case errors.Is(err, services.ErrNoRoomAssigned):
		return c.JSON(http.StatusNotFound, map[string]string{"detail": "No room assigned."})
	case errors.Is(err, services.ErrEmailTaken):
		return c.JSON(http.StatusConflict, common.CreateErrorResponse("CONFLICT", "Email already registered", nil))
	case errors.Is(err, services.ErrInvalidCredentials):
		return common.SendUnauthorizedError(c)
	case errors.Is(err, services.ErrRateLimited):
		return c.JSON(http.StatusTooManyRequests, common.CreateErrorResponse("RATE_LIMITED", "Too many attempts", nil))
	default:
		return common.SendServerError(c, "Internal server error")
	}
}

// pagination reads limit/offset query parameters with sane defaults.
func pagination(c echo.Context) (int, int) {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	return common.ValidatePaginationParams(limit, offset)
}
