package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HandleHealth answers the root probe. Always 200.
func HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"hello":     "world",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
