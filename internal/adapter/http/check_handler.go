package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	domain "sils-backend/internal/domain/check"
	"sils-backend/internal/domain/tool"
	"sils-backend/internal/usecase/check"
)

type CheckHandler struct{ uc *check.Usecase }

func NewCheckHandler(uc *check.Usecase) *CheckHandler { return &CheckHandler{uc: uc} }

type recordDetailReq struct {
	ToolID       string `json:"herramienta_id"    validate:"required,hex32"`
	FoundStatus  string `json:"estado_encontrado" validate:"required,oneof=OK FALTANTE DANADA"`
	Observations string `json:"observaciones"`
}

type skipCheckReq struct {
	Reason string `json:"motivo" validate:"required"`
}

func zoneParam(c echo.Context) (tool.Zone, bool) {
	z := tool.Zone(c.Param("zona"))
	return z, tool.ValidZone(z)
}

func (h *CheckHandler) Window(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Window())
}

func (h *CheckHandler) List(c echo.Context) error {
	limit := 30
	if raw := c.QueryParam("limite"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 200 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limite"})
		}
		limit = n
	}
	checks, err := h.uc.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"checks": checks})
}

func (h *CheckHandler) Start(c echo.Context) error {
	zone, ok := zoneParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid zona"})
	}
	run, err := h.uc.Start(c.Request().Context(), actor(c), zone)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, run)
}

func (h *CheckHandler) RecordDetail(c echo.Context) error {
	checkID := c.Param("id")
	if !reHex32.MatchString(checkID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid check id"})
	}
	var req recordDetailReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	err := h.uc.RecordDetail(c.Request().Context(), actor(c), checkID, req.ToolID,
		domain.FoundStatus(req.FoundStatus), req.Observations)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CheckHandler) Details(c echo.Context) error {
	details, err := h.uc.Details(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"detalle": details})
}

func (h *CheckHandler) Complete(c echo.Context) error {
	checkID := c.Param("id")
	if !reHex32.MatchString(checkID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid check id"})
	}
	done, err := h.uc.Complete(c.Request().Context(), actor(c), checkID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, done)
}

func (h *CheckHandler) Skip(c echo.Context) error {
	checkID := c.Param("id")
	if !reHex32.MatchString(checkID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid check id"})
	}
	var req skipCheckReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	skipped, err := h.uc.Skip(c.Request().Context(), actor(c), checkID, req.Reason)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, skipped)
}

func (h *CheckHandler) Reset(c echo.Context) error {
	zone, ok := zoneParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid zona"})
	}
	reset, err := h.uc.Reset(c.Request().Context(), actor(c), zone)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, reset)
}

func (h *CheckHandler) Repeat(c echo.Context) error {
	zone, ok := zoneParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid zona"})
	}
	run, err := h.uc.Repeat(c.Request().Context(), actor(c), zone)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, run)
}

func (h *CheckHandler) Notifications(c echo.Context) error {
	notifs, err := h.uc.ListNotifications(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"notificaciones": notifs})
}

func (h *CheckHandler) MarkNotificationRead(c echo.Context) error {
	notifID := c.Param("id")
	if !reHex32.MatchString(notifID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid notification id"})
	}
	if err := h.uc.MarkNotificationRead(c.Request().Context(), notifID); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
