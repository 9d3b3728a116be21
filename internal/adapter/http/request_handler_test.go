package http

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"sils-backend/internal/domain/policy"
	domain "sils-backend/internal/domain/request"
	"sils-backend/internal/domain/tool"
	"sils-backend/internal/domain/uow"
	"sils-backend/internal/testutil/movementmock"
	"sils-backend/internal/testutil/requestmock"
	"sils-backend/internal/testutil/toolmock"
	"sils-backend/internal/testutil/uowmock"
	uc "sils-backend/internal/usecase/request"
)

const testToolID = "cccccccccccccccccccccccccccccccc"

func newRequestHandler(requests *requestmock.Repo, tools *toolmock.Repo) *RequestHandler {
	repos := uow.Repos{Requests: requests, Tools: tools, Movements: &movementmock.Repo{}}
	return NewRequestHandler(uc.NewUsecase(requests, tools, uowmock.Passthrough(repos), policy.Policy{}))
}

func TestCreateRequest_Success(t *testing.T) {
	e := newEchoWithValidator()
	tools := &toolmock.Repo{
		GetByToolIDFn: func(ctx context.Context, toolID string) (*tool.Tool, error) {
			return &tool.Tool{ToolID: toolID, Code: "MART-001", Name: "Martillo"}, nil
		},
	}
	h := newRequestHandler(&requestmock.Repo{}, tools)

	body := map[string]any{
		"tipo":           "REPARACION",
		"zona":           "TALLER",
		"prioridad":      3,
		"motivo":         "mango suelto",
		"herramienta_id": testToolID,
		"falla":          "cabeza floja",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/solicitudes", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := ctxWithActor(e, req, rec, testTech())

	if err := h.Create(c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	var got domain.Request
	if err := jsonDecode(rec, &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Status != domain.StatusPending || got.Type != domain.TypeRepair {
		t.Fatalf("dto = %+v", got)
	}
}

func TestCreateRequest_ValidationFailure(t *testing.T) {
	e := newEchoWithValidator()
	h := newRequestHandler(&requestmock.Repo{}, &toolmock.Repo{})

	body := map[string]any{
		"tipo":      "PRESTAMO", // not a request type
		"zona":      "TALLER",
		"prioridad": 2,
		"motivo":    "x",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/solicitudes", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := ctxWithActor(e, req, rec, testTech())

	if err := h.Create(c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var resp ErrorResponse
	if err := jsonDecode(rec, &resp); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !containsFieldMsg(resp.Details, "Type", "NUEVA") {
		t.Fatalf("details = %+v", resp.Details)
	}
}

func TestCreateRequest_MissingDomainFields(t *testing.T) {
	e := newEchoWithValidator()
	h := newRequestHandler(&requestmock.Repo{}, &toolmock.Repo{})

	// passes the wire validator but fails the workflow's per-type check
	body := map[string]any{
		"tipo":      "NUEVA",
		"zona":      "TALLER",
		"prioridad": 1,
		"motivo":    "hace falta",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/solicitudes", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := ctxWithActor(e, req, rec, testTech())

	if err := h.Create(c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var resp ErrorResponse
	if err := jsonDecode(rec, &resp); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !containsFieldMsg(resp.Details, "herramienta_nueva_nombre", "required") {
		t.Fatalf("details = %+v", resp.Details)
	}
}

func TestDecideRequest_NonAdminForbidden(t *testing.T) {
	e := newEchoWithValidator()
	h := newRequestHandler(&requestmock.Repo{}, &toolmock.Repo{})

	body := map[string]any{"aprobar": true}
	req := httptest.NewRequest(stdhttp.MethodPost, "/solicitudes/x/decidir", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := ctxWithActor(e, req, rec, testTech())
	c.SetParamNames("id")
	c.SetParamValues("dddddddddddddddddddddddddddddddd")

	if err := h.Decide(c); err != nil {
		t.Fatalf("Decide error: %v", err)
	}
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestCancelRequest_AlreadyDecidedConflict(t *testing.T) {
	e := newEchoWithValidator()
	requests := &requestmock.Repo{
		GetByRequestIDForUpdateFn: func(ctx context.Context, requestID string) (*domain.Request, error) {
			return &domain.Request{
				RequestID: requestID, Status: domain.StatusApproved,
				RequestedBy: testTechID,
			}, nil
		},
	}
	h := newRequestHandler(requests, &toolmock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/solicitudes/x/cancelar", nil)
	rec := httptest.NewRecorder()
	c := ctxWithActor(e, req, rec, testTech())
	c.SetParamNames("id")
	c.SetParamValues("dddddddddddddddddddddddddddddddd")

	if err := h.Cancel(c); err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestGetRequest_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	requests := &requestmock.Repo{
		GetByRequestIDFn: func(ctx context.Context, requestID string) (*domain.Request, error) {
			return nil, domain.ErrNotFound
		},
	}
	h := newRequestHandler(requests, &toolmock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodGet, "/solicitudes/x", nil)
	rec := httptest.NewRecorder()
	c := ctxWithActor(e, req, rec, testTech())
	c.SetParamNames("id")
	c.SetParamValues("dddddddddddddddddddddddddddddddd")

	if err := h.Get(c); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
