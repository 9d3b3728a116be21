package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	domain "sils-backend/internal/domain/user"
	"sils-backend/internal/testutil/usermock"
)

const (
	authTestSecret = "middleware-test-secret"
	authTestUserID = "dddddddddddddddddddddddddddddddd"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func TestJWTAuth_SetsCurrentUser(t *testing.T) {
	e := echo.New()
	users := &usermock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*domain.User, error) {
			if userID != authTestUserID {
				t.Fatalf("lookup for %s, want %s", userID, authTestUserID)
			}
			return &domain.User{UserID: userID, Email: "tec@taller.es", Role: domain.RoleTechnician}, nil
		},
	}

	var seen *domain.User
	h := JWTAuth([]byte(authTestSecret), users)(func(c echo.Context) error {
		seen = CurrentUser(c)
		return okHandler(c)
	})

	token := signToken(t, authTestSecret, jwt.MapClaims{
		"sub": authTestUserID,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/herramientas", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if seen == nil || seen.UserID != authTestUserID || seen.Role != domain.RoleTechnician {
		t.Fatalf("currentUser = %+v", seen)
	}
}

func TestJWTAuth_Rejections(t *testing.T) {
	goodToken := func(t *testing.T) string {
		return signToken(t, authTestSecret, jwt.MapClaims{
			"sub": authTestUserID,
			"exp": time.Now().Add(time.Hour).Unix(),
		})
	}

	tests := []struct {
		name   string
		header func(t *testing.T) string
		lookup func(ctx context.Context, userID string) (*domain.User, error)
	}{
		{
			name:   "missing header",
			header: func(t *testing.T) string { return "" },
		},
		{
			name:   "not bearer",
			header: func(t *testing.T) string { return "Basic abc123" },
		},
		{
			name: "wrong signature",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, "otro-secreto", jwt.MapClaims{
					"sub": authTestUserID,
					"exp": time.Now().Add(time.Hour).Unix(),
				})
			},
		},
		{
			name: "expired",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, authTestSecret, jwt.MapClaims{
					"sub": authTestUserID,
					"exp": time.Now().Add(-time.Hour).Unix(),
				})
			},
		},
		{
			name: "missing subject",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, authTestSecret, jwt.MapClaims{
					"exp": time.Now().Add(time.Hour).Unix(),
				})
			},
		},
		{
			name:   "unknown user",
			header: func(t *testing.T) string { return "Bearer " + goodToken(t) },
			lookup: func(ctx context.Context, userID string) (*domain.User, error) {
				return nil, domain.ErrNotFound
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			users := &usermock.Repo{GetByUserIDFn: tc.lookup}
			h := JWTAuth([]byte(authTestSecret), users)(okHandler)

			req := httptest.NewRequest(http.MethodGet, "/herramientas", nil)
			if header := tc.header(t); header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()

			if err := h(e.NewContext(req, rec)); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401 (body %s)", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRequireAssigned(t *testing.T) {
	tests := []struct {
		name string
		user *domain.User
		want int
	}{
		{"technician passes", &domain.User{UserID: authTestUserID, Role: domain.RoleTechnician}, http.StatusOK},
		{"admin passes", &domain.User{UserID: authTestUserID, Role: domain.RoleAdmin}, http.StatusOK},
		{"unassigned blocked", &domain.User{UserID: authTestUserID, Role: domain.RoleUnassigned}, http.StatusForbidden},
		{"no user", nil, http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/checks", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tc.user != nil {
				c.Set(userContextKey, tc.user)
			}

			if err := RequireAssigned(okHandler)(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name string
		role domain.Role
		want int
	}{
		{"admin passes", domain.RoleAdmin, http.StatusOK},
		{"technician blocked", domain.RoleTechnician, http.StatusForbidden},
		{"unassigned blocked", domain.RoleUnassigned, http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/usuarios", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Set(userContextKey, &domain.User{UserID: authTestUserID, Role: tc.role})

			if err := RequireAdmin(okHandler)(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}
