package http

import (
	"strings"

	"github.com/labstack/echo/v4"

	"sils-backend/internal/adapter/middleware"
	"sils-backend/internal/domain/user"
)

// actor returns the authenticated user placed in context by the auth
// middleware, or nil on unauthenticated routes.
func actor(c echo.Context) *user.User {
	return middleware.CurrentUser(c)
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
