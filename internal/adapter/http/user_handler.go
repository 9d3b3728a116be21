package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"sils-backend/internal/domain/movement"
	domain "sils-backend/internal/domain/user"
	"sils-backend/internal/usecase/history"
	"sils-backend/internal/usecase/user"
)

type UserHandler struct {
	uc   *user.Usecase
	hist *history.Usecase
}

func NewUserHandler(uc *user.Usecase, hist *history.Usecase) *UserHandler {
	return &UserHandler{uc: uc, hist: hist}
}

type assignRoleReq struct {
	Role string `json:"rol" validate:"required,oneof=ADMIN TECNICO SIN_ASIGNAR"`
}

func (h *UserHandler) List(c echo.Context) error {
	users, stats, err := h.uc.List(c.Request().Context(), actor(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"usuarios":     users,
		"estadisticas": stats,
	})
}

func (h *UserHandler) AssignRole(c echo.Context) error {
	targetID := c.Param("id")
	if !reHex32.MatchString(targetID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
	}
	var req assignRoleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	usr, err := h.uc.AssignRole(c.Request().Context(), actor(c), targetID, domain.Role(req.Role))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, usr)
}

func (h *UserHandler) Delete(c echo.Context) error {
	targetID := c.Param("id")
	if !reHex32.MatchString(targetID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
	}
	if err := h.uc.Delete(c.Request().Context(), actor(c), targetID); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) History(c echo.Context) error {
	f := movement.Filter{
		ToolID: c.QueryParam("herramienta_id"),
		Type:   movement.Type(c.QueryParam("tipo")),
	}
	if raw := c.QueryParam("desde"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid desde date"})
		}
		f.From = t
	}
	if raw := c.QueryParam("hasta"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid hasta date"})
		}
		f.To = t.Add(24 * time.Hour)
	}
	moves, err := h.hist.List(c.Request().Context(), actor(c), f)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"historial": moves})
}
