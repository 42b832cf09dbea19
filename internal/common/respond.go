package common

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// Envelope is the uniform response body for every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// RespondData sends a successful response.
func RespondData(c echo.Context, status int, data any) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

// RespondMessage sends a successful response with only a message.
func RespondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: true, Message: message})
}

// RespondError sends a failed response with an explicit status.
func RespondError(c echo.Context, status int, msg string) error {
	return c.JSON(status, Envelope{Success: false, Error: msg})
}

// RespondServiceError maps a service-layer error onto the failure taxonomy:
// validation/duplicate/dependency -> 400, not found -> 404, everything
// else -> 500 with the message suppressed.
func RespondServiceError(c echo.Context, err error) error {
	var (
		validationErr *ValidationError
		notFoundErr   *NotFoundError
		duplicateErr  *DuplicateError
		dependencyErr *DependencyError
	)
	switch {
	case errors.As(err, &validationErr):
		return RespondError(c, http.StatusBadRequest, validationErr.Msg)
	case errors.As(err, &duplicateErr):
		return RespondError(c, http.StatusBadRequest, duplicateErr.Msg)
	case errors.As(err, &dependencyErr):
		return RespondError(c, http.StatusBadRequest, dependencyErr.Error())
	case errors.As(err, &notFoundErr):
		return RespondError(c, http.StatusNotFound, notFoundErr.Error())
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("unexpected data-layer failure")
		return RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
