// Package suite runs YAML files of expressions with their expected truth tables.
package suite

import (
	"github.com/DjordjeVuckovic/ttgen/internal/sat"
	"github.com/DjordjeVuckovic/ttgen/internal/table"
)

type Suite struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Glyphs      string  `yaml:"glyphs"`
	Checks      []Check `yaml:"checks"`
}

// Check pins the result column and/or the classification of one expression.
type Check struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	// Order is applied as a declaration line before the expression.
	Order      []string   `yaml:"order,omitempty"`
	Expression string     `yaml:"expression"`
	Expect     string     `yaml:"expect,omitempty"`
	Classify   *sat.Class `yaml:"classify,omitempty"`
}

type LoadedSuite struct {
	Suite  *Suite
	Glyphs table.Glyphs
}
