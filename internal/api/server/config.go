package server

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/DjordjeVuckovic/ttgen/internal/table"
	"github.com/DjordjeVuckovic/ttgen/pkg/config/env"
)

// DefaultMaxTableVariables keeps listed tables at 65536 rows.
const DefaultMaxTableVariables = 16

type Config struct {
	Port              string
	UseHttp2          bool
	CorsOrigins       []string
	MaxTableVariables int
}

func LoadConfig() (*Config, error) {
	err := env.LoadDotEnv("cmd/ttgen_api/.env", false)
	if err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	useHttp2, err := env.Bool("USE_HTTP2", false)
	if err != nil {
		return nil, err
	}

	port := env.String("PORT", "8080")
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	maxVars, err := env.Int("MAX_TABLE_VARIABLES", DefaultMaxTableVariables)
	if err != nil {
		return nil, err
	}
	if maxVars < 1 || maxVars > table.MaxListedVariables {
		return nil, fmt.Errorf("MAX_TABLE_VARIABLES must be between 1 and %d, got %d", table.MaxListedVariables, maxVars)
	}

	origins := env.List("CORS_ORIGINS")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Port:              port,
		UseHttp2:          useHttp2,
		CorsOrigins:       origins,
		MaxTableVariables: maxVars,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
