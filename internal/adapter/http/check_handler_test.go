package http

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	domain "sils-backend/internal/domain/check"
	"sils-backend/internal/domain/policy"
	"sils-backend/internal/domain/tool"
	"sils-backend/internal/domain/uow"
	"sils-backend/internal/testutil/checkmock"
	"sils-backend/internal/testutil/notificationmock"
	"sils-backend/internal/testutil/toolmock"
	"sils-backend/internal/testutil/uowmock"
	uc "sils-backend/internal/usecase/check"
)

// Monday inside the window.
var checkTestNow = time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)

func newCheckHandler(checks *checkmock.Repo, tools *toolmock.Repo) *CheckHandler {
	details := &checkmock.DetailRepo{}
	notifs := &notificationmock.Repo{}
	repos := uow.Repos{Checks: checks, CheckDetails: details, Tools: tools, Notifications: notifs}
	u := uc.NewUsecase(checks, details, tools, notifs, uowmock.Passthrough(repos),
		policy.Policy{}, time.UTC).WithClock(func() time.Time { return checkTestNow })
	return NewCheckHandler(u)
}

func TestStartCheck_Success(t *testing.T) {
	e := newEchoWithValidator()
	pending := &domain.DailyCheck{
		ID: 1, CheckID: "11111111111111111111111111111111",
		Zone: tool.ZoneWorkshop, Date: "2026-09-07", Cycle: 1,
		Status: domain.StatusPending,
	}
	checks := &checkmock.Repo{
		GetActiveForDayFn: func(ctx context.Context, zone tool.Zone, date string) (*domain.DailyCheck, error) {
			return pending, nil
		},
	}
	tools := &toolmock.Repo{
		ListForCheckFn: func(ctx context.Context, zone tool.Zone) ([]tool.Tool, error) {
			return []tool.Tool{{ToolID: "cccccccccccccccccccccccccccccccc", Code: "MART-001", Name: "Martillo"}}, nil
		},
	}
	h := newCheckHandler(checks, tools)

	req := httptest.NewRequest(stdhttp.MethodPost, "/checks/zonas/TALLER/iniciar", nil)
	rec := httptest.NewRecorder()
	c := ctxWithActor(e, req, rec, testTech())
	c.SetParamNames("zona")
	c.SetParamValues("TALLER")

	if err := h.Start(c); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var got uc.RunDTO
	if err := jsonDecode(rec, &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Check.Status != domain.StatusInProgress || len(got.Tools) != 1 {
		t.Fatalf("dto = %+v", got)
	}
}

func TestStartCheck_InvalidZone(t *testing.T) {
	e := newEchoWithValidator()
	h := newCheckHandler(&checkmock.Repo{}, &toolmock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/checks/zonas/PATIO/iniciar", nil)
	rec := httptest.NewRecorder()
	c := ctxWithActor(e, req, rec, testTech())
	c.SetParamNames("zona")
	c.SetParamValues("PATIO")

	if err := h.Start(c); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestStartCheck_AlreadyDone(t *testing.T) {
	e := newEchoWithValidator()
	checks := &checkmock.Repo{
		ListForDayFn: func(ctx context.Context, zone tool.Zone, date string) ([]domain.DailyCheck, error) {
			return []domain.DailyCheck{{Zone: zone, Date: date, Cycle: 1, Status: domain.StatusCompleted}}, nil
		},
	}
	h := newCheckHandler(checks, &toolmock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/checks/zonas/TALLER/iniciar", nil)
	rec := httptest.NewRecorder()
	c := ctxWithActor(e, req, rec, testTech())
	c.SetParamNames("zona")
	c.SetParamValues("TALLER")

	if err := h.Start(c); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestCompleteCheck_IncompleteConflict(t *testing.T) {
	e := newEchoWithValidator()
	started := &domain.DailyCheck{
		ID: 1, CheckID: "11111111111111111111111111111111",
		Zone: tool.ZoneWorkshop, Date: "2026-09-07", Cycle: 1,
		Status: domain.StatusInProgress,
	}
	checks := &checkmock.Repo{
		GetByCheckIDFn: func(ctx context.Context, checkID string) (*domain.DailyCheck, error) {
			return started, nil
		},
	}
	tools := &toolmock.Repo{
		ListForCheckFn: func(ctx context.Context, zone tool.Zone) ([]tool.Tool, error) {
			return []tool.Tool{
				{ToolID: "cccccccccccccccccccccccccccccccc", Code: "MART-001"},
				{ToolID: "dddddddddddddddddddddddddddddddd", Code: "DEST-001"},
			}, nil
		},
	}
	h := newCheckHandler(checks, tools)

	req := httptest.NewRequest(stdhttp.MethodPost, "/checks/x/completar", nil)
	rec := httptest.NewRecorder()
	c := ctxWithActor(e, req, rec, testTech())
	c.SetParamNames("id")
	c.SetParamValues(started.CheckID)

	if err := h.Complete(c); err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestSkipCheck_RequiresReason(t *testing.T) {
	e := newEchoWithValidator()
	h := newCheckHandler(&checkmock.Repo{}, &toolmock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/checks/x/omitir", mustJSON(map[string]any{}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := ctxWithActor(e, req, rec, testTech())
	c.SetParamNames("id")
	c.SetParamValues("11111111111111111111111111111111")

	if err := h.Skip(c); err != nil {
		t.Fatalf("Skip error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestCheckWindow(t *testing.T) {
	e := newEchoWithValidator()
	h := newCheckHandler(&checkmock.Repo{}, &toolmock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodGet, "/checks/ventana", nil)
	rec := httptest.NewRecorder()
	c := ctxWithActor(e, req, rec, testTech())

	if err := h.Window(c); err != nil {
		t.Fatalf("Window error: %v", err)
	}
	var got uc.Window
	if err := jsonDecode(rec, &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !got.Eligible {
		t.Fatalf("window = %+v, want eligible on a Monday morning", got)
	}
}
