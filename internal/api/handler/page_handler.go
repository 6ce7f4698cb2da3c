package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the static-ish public pages.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Landing handles GET / — the public landing page.
func (h *PageHandler) Landing(c echo.Context) error {
	return c.Render(http.StatusOK, "landing.html", nil)
}
