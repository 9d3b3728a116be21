package http

import (
	"bytes"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"sils-backend/internal/domain/user"
)

// -------- shared helpers --------

const (
	testTechID  = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	testAdminID = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func jsonDecode(rec *httptest.ResponseRecorder, v any) error {
	return json.Unmarshal(rec.Body.Bytes(), v)
}

// ctxWithActor builds an echo context carrying the authenticated user the
// way the auth middleware would.
func ctxWithActor(e *echo.Echo, req *stdhttp.Request, rec *httptest.ResponseRecorder, u *user.User) echo.Context {
	c := e.NewContext(req, rec)
	if u != nil {
		c.Set("currentUser", u)
	}
	return c
}

func testTech() *user.User {
	return &user.User{UserID: testTechID, Role: user.RoleTechnician, Email: "tecnico@taller.es"}
}

func testAdmin() *user.User {
	return &user.User{UserID: testAdminID, Role: user.RoleAdmin, Email: "admin@taller.es"}
}

func TestHealth(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(stdhttp.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := NewHandler().Health(c); err != nil {
		t.Fatalf("Health error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("body = %v", body)
	}
}
