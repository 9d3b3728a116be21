package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	authuc "sils-backend/internal/usecase/auth"
	"sils-backend/internal/domain/check"
	"sils-backend/internal/domain/notification"
	"sils-backend/internal/domain/policy"
	"sils-backend/internal/domain/request"
	"sils-backend/internal/domain/tool"
	"sils-backend/internal/domain/user"
	"sils-backend/internal/domain/validation"
)

// writeDomainError maps usecase errors onto HTTP responses so every handler
// reports the same shapes for the same failures.
func writeDomainError(c echo.Context, err error) error {
	var missing *validation.MissingFieldsError
	if errors.As(err, &missing) {
		details := make([]FieldError, 0, len(missing.Fields))
		for _, f := range missing.Fields {
			details = append(details, FieldError{Field: f, Message: "is required"})
		}
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: details})
	}

	var incomplete *check.IncompleteChecklistError
	if errors.As(err, &incomplete) {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: incomplete.Error()})
	}

	switch {
	case errors.Is(err, policy.ErrPermissionDenied):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "access denied"})
	case errors.Is(err, authuc.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
	case errors.Is(err, tool.ErrNotFound),
		errors.Is(err, request.ErrNotFound),
		errors.Is(err, check.ErrNotFound),
		errors.Is(err, user.ErrNotFound),
		errors.Is(err, notification.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, tool.ErrDuplicateCode),
		errors.Is(err, user.ErrDuplicateEmail):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, request.ErrNotPending),
		errors.Is(err, check.ErrAlreadyDoneToday),
		errors.Is(err, check.ErrNoCompletedToday),
		errors.Is(err, check.ErrNotInProgress),
		errors.Is(err, check.ErrNoInProgress),
		errors.Is(err, check.ErrToolNotInCheck),
		errors.Is(err, user.ErrSelfEdit):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, check.ErrOutsideWindow),
		errors.Is(err, check.ErrEmptyZone),
		errors.Is(err, check.ErrEmptyReason),
		errors.Is(err, check.ErrInvalidFoundStatus):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
