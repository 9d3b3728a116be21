package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domain "sils-backend/internal/domain/request"
	"sils-backend/internal/domain/tool"
	"sils-backend/internal/usecase/request"
)

type RequestHandler struct{ uc *request.Usecase }

func NewRequestHandler(uc *request.Usecase) *RequestHandler { return &RequestHandler{uc: uc} }

type createRequestReq struct {
	Type     string `json:"tipo"      validate:"required,tipo_solicitud"`
	Zone     string `json:"zona"      validate:"required,zona"`
	Priority int    `json:"prioridad" validate:"required,prioridad"`
	Motive   string `json:"motivo"`

	ToolID string `json:"herramienta_id" validate:"omitempty,hex32"`
	Fault  string `json:"falla"`

	NewToolName    string `json:"herramienta_nueva_nombre"`
	UseDescription string `json:"descripcion_uso"`
	Brand          string `json:"marca"`
}

type decideRequestReq struct {
	Approve bool   `json:"aprobar"`
	Comment string `json:"comentario"`

	CreateTool  bool   `json:"crear_herramienta"`
	NewToolCode string `json:"codigo_herramienta"`

	NewToolStatus string `json:"nuevo_estado" validate:"omitempty,estado_herramienta"`
}

func (h *RequestHandler) Create(c echo.Context) error {
	var req createRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	r, err := h.uc.Create(c.Request().Context(), actor(c), request.CreateInput{
		Type:           domain.Type(req.Type),
		Zone:           tool.Zone(req.Zone),
		Priority:       domain.Priority(req.Priority),
		Motive:         req.Motive,
		ToolID:         req.ToolID,
		Fault:          req.Fault,
		NewToolName:    req.NewToolName,
		UseDescription: req.UseDescription,
		Brand:          req.Brand,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *RequestHandler) Get(c echo.Context) error {
	r, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *RequestHandler) List(c echo.Context) error {
	f := domain.Filter{
		Zone:   tool.Zone(c.QueryParam("zona")),
		Type:   domain.Type(c.QueryParam("tipo")),
		Status: domain.Status(c.QueryParam("estado")),
		Search: c.QueryParam("buscar"),
	}
	if p := c.QueryParam("prioridad"); p != "" {
		switch p {
		case "1", "2", "3":
			f.Priority = domain.Priority(p[0] - '0')
		default:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid prioridad filter"})
		}
	}
	reqs, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"solicitudes": reqs})
}

func (h *RequestHandler) Cancel(c echo.Context) error {
	requestID := c.Param("id")
	if !reHex32.MatchString(requestID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request id"})
	}
	r, err := h.uc.Cancel(c.Request().Context(), actor(c), requestID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *RequestHandler) Decide(c echo.Context) error {
	requestID := c.Param("id")
	if !reHex32.MatchString(requestID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request id"})
	}
	var req decideRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	r, err := h.uc.Decide(c.Request().Context(), actor(c), requestID, request.DecideInput{
		Approve:       req.Approve,
		Comment:       req.Comment,
		CreateTool:    req.CreateTool,
		NewToolCode:   req.NewToolCode,
		NewToolStatus: tool.Status(req.NewToolStatus),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}
