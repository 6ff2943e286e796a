// Package handler contains the echo handlers for the REST API.
package handler

import (
	"strings"
	"time"

	"shelf/internal/delivery/api/middleware"
	"shelf/internal/delivery/api/response"
	domainerrors "shelf/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// userID returns the authenticated caller. Routes without Authenticate get ErrUnauthorized.
func userID(c echo.Context) (uuid.UUID, error) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return id, nil
}

// pathID parses a UUID path parameter, writing a 400 when it is malformed.
func pathID(c echo.Context, name string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false, response.BadRequest(c, "INVALID_ID", "Invalid "+name)
	}

	return id, true, nil
}

// bindAndValidate binds the request and runs the validator, writing the 400 itself.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "Malformed request body")
	}

	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, err)
	}

	return true, nil
}

// parseDate accepts RFC 3339 timestamps or bare YYYY-MM-DD dates.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}

	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("invalid date " + value)
	}

	return t, nil
}
