package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DjordjeVuckovic/ttgen/internal/input"
	"github.com/DjordjeVuckovic/ttgen/internal/suite"
	"github.com/DjordjeVuckovic/ttgen/internal/ttgen"
	"github.com/DjordjeVuckovic/ttgen/pkg/config/env"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if err := env.LoadDotEnv(".env", false); err != nil {
		return 1
	}
	if err := setupLogger(stderr); err != nil {
		slog.Warn("Ignoring LOG_LEVEL", "error", err)
	}

	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.SuitePath != "" {
		return runSuite(ctx, cfg, stdout)
	}

	opts, err := cfg.options()
	if err != nil {
		slog.Error("Invalid options", "error", err)
		return 2
	}

	in, err := openInput(cfg.InputPath)
	if err != nil {
		slog.Error("Failed to open input", "path", cfg.InputPath, "error", err)
		return 1
	}
	defer in.Close()

	stats, err := ttgen.NewRunner(opts, stdout, stderr).Run(ctx, input.NewLineSource(in))
	if err != nil {
		slog.Error("Run failed", "error", err)
		return 1
	}
	slog.Info("Input processed", "lines", stats.Lines, "tables", stats.Tables, "errors", stats.Errors)
	return 0
}

func runSuite(ctx context.Context, cfg cliConfig, stdout io.Writer) int {
	loaded, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		return 1
	}

	report, err := suite.Run(ctx, loaded)
	if err != nil {
		slog.Error("Suite interrupted", "error", err)
		return 1
	}
	if err := suite.WriteTable(report, stdout); err != nil {
		slog.Error("Failed to write report", "error", err)
		return 1
	}
	if !report.OK() {
		return 1
	}
	return 0
}
