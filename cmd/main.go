package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/kstulgys/social-media-post-generator/service"
)

func main() {
	// slog is configured in slog.go via init()

	// Load .env if present; environment variables win.
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded environment from .env")
	}

	config, err := service.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Request logging with a per-request id.
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			requestID := uuid.NewString()
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			err := next(c)

			slog.Info("request handled",
				"request_id", requestID,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration", time.Since(start),
				"ip", c.RealIP(),
			)

			return err
		}
	})

	// Security headers.
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			c.Response().Header().Set("X-Content-Type-Options", "nosniff")
			c.Response().Header().Set("X-Frame-Options", "DENY")
			return next(c)
		}
	})

	svc := service.New(config)
	svc.RegisterRoutes(e)

	slog.Info("social media post generator starting",
		"url", config.BaseURL,
		"port", config.Port,
		"environment", config.Environment,
		"model", config.OpenAI.Model,
	)

	if err := e.Start(":" + config.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
