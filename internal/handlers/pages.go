package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/kstulgys/social-media-post-generator/views/generator"
)

type PageHandler struct {
	baseURL string
}

func NewPageHandler(baseURL string) *PageHandler {
	return &PageHandler{baseURL: baseURL}
}

// HandleGeneratorPage serves the post generator UI. The base URL is
// injected so the page's script knows where the API lives.
func (h *PageHandler) HandleGeneratorPage(c echo.Context) error {
	return Render(c, generator.Index(h.baseURL))
}
