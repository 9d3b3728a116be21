package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

// Health is the only unauthenticated route besides /auth.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":   "ok",
		"servicio": "sils-backend",
		"time":     time.Now().UTC().Format(time.RFC3339Nano),
	})
}
