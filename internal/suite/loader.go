package suite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/DjordjeVuckovic/ttgen/internal/symbol"
	"github.com/DjordjeVuckovic/ttgen/internal/table"
	"github.com/DjordjeVuckovic/ttgen/internal/token"
)

func LoadFromFile(path string) (*LoadedSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	parse := Parse
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		parse = ParseTOML
	}
	return parse(data)
}

// ParseTOML accepts the same layout as Parse written as TOML, with checks as an
// array of tables ([[checks]]).
func ParseTOML(data []byte) (*LoadedSuite, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse suite TOML: %w", err)
	}
	normalized, err := yaml.Marshal(tree.ToMap())
	if err != nil {
		return nil, fmt.Errorf("convert suite TOML: %w", err)
	}
	return Parse(normalized)
}

func Parse(data []byte) (*LoadedSuite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Checks) == 0 {
		return nil, fmt.Errorf("suite has no checks")
	}

	g, err := table.ParseGlyphs(s.Glyphs)
	if err != nil {
		return nil, fmt.Errorf("suite glyphs: %w", err)
	}

	seen := make(map[string]struct{}, len(s.Checks))
	for i, c := range s.Checks {
		if c.ID == "" {
			return nil, fmt.Errorf("check at index %d has no id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("duplicate check id %q", c.ID)
		}
		seen[c.ID] = struct{}{}

		if strings.TrimSpace(c.Expression) == "" {
			return nil, fmt.Errorf("check %q has no expression", c.ID)
		}
		if first, ok := token.NewLexer(c.Expression).Next(); ok && first.Type == token.DECLARE {
			return nil, fmt.Errorf("check %q: expression is a declaration line (use order)", c.ID)
		}
		if c.Expect == "" && c.Classify == nil {
			return nil, fmt.Errorf("check %q expects nothing (set expect or classify)", c.ID)
		}
		for j := 0; j < len(c.Expect); j++ {
			if _, ok := g.Value(c.Expect[j]); !ok {
				return nil, fmt.Errorf("check %q: expect contains %q, glyphs are %q", c.ID, c.Expect[j], g.String())
			}
		}
		if len(c.Order) > symbol.MaxVariables {
			return nil, fmt.Errorf("check %q declares %d variables, maximum is %d", c.ID, len(c.Order), symbol.MaxVariables)
		}
	}

	return &LoadedSuite{Suite: &s, Glyphs: g}, nil
}
