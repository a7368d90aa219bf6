package service

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kstulgys/social-media-post-generator/internal/apperr"
	"github.com/kstulgys/social-media-post-generator/internal/handlers"
	"github.com/kstulgys/social-media-post-generator/internal/openai"
	"github.com/kstulgys/social-media-post-generator/internal/research"
)

type Service struct {
	config          *Config
	generateHandler *handlers.GenerateHandler
	pageHandler     *handlers.PageHandler
}

// New wires the process-lifetime dependencies: one OpenAI client shared
// by the completion and research paths, injected into the handlers
// rather than living as package state.
func New(config *Config) *Service {
	if config.OpenAI.APIKey == "" {
		slog.Warn("OPENAI_API_KEY is not set; generation requests will fail with OPENAI_INVALID_KEY")
	}

	client := openai.NewClient(config.OpenAI.APIKey, config.OpenAI.Model)
	fetcher := research.NewFetcher(client)

	return &Service{
		config:          config,
		generateHandler: handlers.NewGenerateHandler(client, fetcher),
		pageHandler:     handlers.NewPageHandler(config.BaseURL),
	}
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	e.HTTPErrorHandler = s.handleError

	e.Static("/public", "public")

	e.GET("/", handlers.HandleHealth)
	e.GET("/app", s.pageHandler.HandleGeneratorPage)
	e.POST("/api/generate", s.generateHandler.HandleGenerate)
}

// handleError is the outermost boundary: whatever escapes a handler is
// reduced to a structured JSON error, never a raw stack trace.
func (s *Service) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	body := handlers.ErrorResponse{
		Error: "An unexpected error occurred",
		Code:  apperr.CodeInternal,
	}

	switch e := err.(type) {
	case *apperr.Error:
		status = e.Status
		body.Error = e.Message
		body.Code = e.Code
		body.Details = e.Details
	case *echo.HTTPError:
		status = e.Code
		body.Error = fmt.Sprintf("%v", e.Message)
	default:
		slog.Error("unhandled error reached the boundary", "error", err, "path", c.Request().URL.Path)
	}

	if writeErr := c.JSON(status, body); writeErr != nil {
		slog.Error("failed to write error response", "error", writeErr)
	}
}
