package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/ttgen/internal/table"
	"github.com/DjordjeVuckovic/ttgen/internal/ttgen"
	"github.com/DjordjeVuckovic/ttgen/pkg/config/env"
)

type cliConfig struct {
	Glyphs    string
	Format    string
	Classify  bool
	SuitePath string
	InputPath string
}

func parseFlags(args []string, stderr io.Writer) (cliConfig, error) {
	cfg := cliConfig{}

	fs := flag.NewFlagSet("ttgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Glyphs, "glyphs", env.String("TTGEN_GLYPHS", table.DefaultGlyphs), "Truth glyphs: 01 or FT")
	fs.StringVar(&cfg.Format, "format", "text", "Output format: text or json")
	fs.BoolVar(&cfg.Classify, "classify", false, "Print tautology, contradiction or contingent after each table")
	fs.StringVar(&cfg.SuitePath, "suite", "", "Run a YAML check suite instead of reading expressions")
	fs.StringVar(&cfg.InputPath, "input", "", "Read expressions from a file instead of stdin")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, nil
}

func (c cliConfig) options() (ttgen.Options, error) {
	opts := ttgen.DefaultOptions()

	g, err := table.ParseGlyphs(c.Glyphs)
	if err != nil {
		return opts, err
	}
	f, err := ttgen.ParseFormat(c.Format)
	if err != nil {
		return opts, err
	}

	opts.Glyphs = g
	opts.Format = f
	opts.Classify = c.Classify
	return opts, nil
}

// setupLogger routes slog to stderr so stdout carries only tables.
func setupLogger(w io.Writer) error {
	level, err := env.LogLevel("LOG_LEVEL", slog.LevelWarn)
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return err
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}
