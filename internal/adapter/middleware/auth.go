package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"sils-backend/internal/domain/user"
)

const userContextKey = "currentUser"

// JWTAuth validates the bearer token and loads the mirrored user row into
// the request context. Role comes from the store, not the token, so a role
// change applies on the next request.
func JWTAuth(secret []byte, users user.Repository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing Authorization header"})
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid Authorization header"})
			}

			token, err := jwt.Parse(parts[1], func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token claims"})
			}
			sub, _ := claims["sub"].(string)
			if sub == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "token missing subject"})
			}

			usr, err := users.GetByUserID(c.Request().Context(), sub)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unknown user"})
			}
			c.Set(userContextKey, usr)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user set by JWTAuth, or nil.
func CurrentUser(c echo.Context) *user.User {
	if u, ok := c.Get(userContextKey).(*user.User); ok {
		return u
	}
	return nil
}

// RequireAssigned blocks users still waiting for a role assignment.
func RequireAssigned(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		u := CurrentUser(c)
		if u == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		}
		if !u.IsAssigned() {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "role assignment pending, contact an administrator"})
		}
		return next(c)
	}
}

// RequireAdmin guards the admin-only route groups.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		u := CurrentUser(c)
		if u == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		}
		if !u.IsAdmin() {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "access denied"})
		}
		return next(c)
	}
}
