package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domain "sils-backend/internal/domain/tool"
	"sils-backend/internal/usecase/tool"
)

type ToolHandler struct{ uc *tool.Usecase }

func NewToolHandler(uc *tool.Usecase) *ToolHandler { return &ToolHandler{uc: uc} }

type toolReq struct {
	Code              string `json:"codigo"`
	Name              string `json:"nombre"`
	Description       string `json:"descripcion"`
	Type              string `json:"tipo"`
	Zone              string `json:"zona" validate:"omitempty,zona"`
	Status            string `json:"estado" validate:"omitempty,estado_herramienta"`
	ConditionScore    int    `json:"puntuacion_estado" validate:"gte=0,lte=10"`
	TotalQuantity     int    `json:"cantidad_total" validate:"gte=0"`
	AvailableQuantity int    `json:"cantidad_disponible" validate:"gte=0"`
	Location          string `json:"ubicacion"`
}

func (r toolReq) createInput() tool.CreateToolInput {
	return tool.CreateToolInput{
		Code:              r.Code,
		Name:              r.Name,
		Description:       r.Description,
		Type:              domain.Type(r.Type),
		Zone:              domain.Zone(r.Zone),
		Status:            domain.Status(r.Status),
		ConditionScore:    r.ConditionScore,
		TotalQuantity:     r.TotalQuantity,
		AvailableQuantity: r.AvailableQuantity,
		Location:          r.Location,
	}
}

func (r toolReq) updateInput() tool.UpdateToolInput {
	return tool.UpdateToolInput(r.createInput())
}

func listFilter(c echo.Context) domain.Filter {
	return domain.Filter{
		Zone:   domain.Zone(c.QueryParam("zona")),
		Type:   domain.Type(c.QueryParam("tipo")),
		Status: domain.Status(c.QueryParam("estado")),
		Search: c.QueryParam("buscar"),
	}
}

func (h *ToolHandler) Create(c echo.Context) error {
	var req toolReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	t, err := h.uc.Create(c.Request().Context(), actor(c), req.createInput())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *ToolHandler) Update(c echo.Context) error {
	toolID := c.Param("id")
	if !reHex32.MatchString(toolID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid tool id"})
	}
	var req toolReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	t, err := h.uc.Update(c.Request().Context(), actor(c), toolID, req.updateInput())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *ToolHandler) Delete(c echo.Context) error {
	toolID := c.Param("id")
	if !reHex32.MatchString(toolID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid tool id"})
	}
	if err := h.uc.Delete(c.Request().Context(), actor(c), toolID); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ToolHandler) Get(c echo.Context) error {
	t, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *ToolHandler) List(c echo.Context) error {
	tools, err := h.uc.List(c.Request().Context(), listFilter(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"herramientas": tools})
}

func (h *ToolHandler) ListDegraded(c echo.Context) error {
	zone := domain.Zone(c.QueryParam("zona"))
	if !domain.ValidZone(zone) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid zona"})
	}
	tools, err := h.uc.ListDegraded(c.Request().Context(), zone)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"herramientas": tools})
}

func (h *ToolHandler) Stats(c echo.Context) error {
	stats, err := h.uc.StatsFor(c.Request().Context(), listFilter(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
