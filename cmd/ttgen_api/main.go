// Package main ttgen API
// @title ttgen API
// @version 1.0
// @description Truth tables and classification for propositional expressions
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	_ "github.com/DjordjeVuckovic/ttgen/docs"
	"github.com/DjordjeVuckovic/ttgen/internal/api/router"
	"github.com/DjordjeVuckovic/ttgen/internal/api/server"
	"github.com/DjordjeVuckovic/ttgen/pkg/config/env"
	pkgserver "github.com/DjordjeVuckovic/ttgen/pkg/server"
)

func main() {
	cfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	level, err := env.LogLevel("LOG_LEVEL", slog.LevelInfo)
	if err != nil {
		slog.Warn("Ignoring LOG_LEVEL", "error", err)
	}
	slog.SetLogLoggerLevel(level)

	s := server.New(cfg, pkgserver.CheckFunc(router.SelfTest)).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "ttgen API is running")
	})

	router.NewTablesRouter(s.Echo, cfg.MaxTableVariables).Bind()

	if err := s.Start(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
