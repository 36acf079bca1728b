// Package table enumerates variable assignments and renders truth tables.
package table

import (
	"math/bits"

	"github.com/DjordjeVuckovic/ttgen/internal/apperr"
	"github.com/DjordjeVuckovic/ttgen/internal/eval"
	"github.com/DjordjeVuckovic/ttgen/internal/rpn"
	"github.com/DjordjeVuckovic/ttgen/internal/symbol"
)

// Table is a checked program together with the variables it ranges over.
type Table struct {
	Variables []string
	Program   rpn.Program
}

// Row is one assignment and the value of the expression under it. Index is the row
// counter; variable 0 is its most significant bit, so rows read like a textbook table.
type Row struct {
	Index      uint64
	Assignment eval.Assignment
	Value      bool
}

// Bit returns the value of variable id in the row.
func (r Row) Bit(id int) bool {
	return r.Assignment.Bit(id)
}

// New dry-runs program so structural faults surface before anything is rendered.
func New(vars *symbol.Variables, program rpn.Program) (*Table, error) {
	if err := eval.Check(program); err != nil {
		return nil, err
	}
	return &Table{Variables: vars.Names(), Program: program}, nil
}

// Last returns the highest row index, 2^n - 1.
func (t *Table) Last() uint64 {
	n := len(t.Variables)
	if n >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(n) - 1
}

// AssignmentOf maps a row index to an assignment: bit n-1-b of index becomes the
// value of variable b.
func (t *Table) AssignmentOf(index uint64) eval.Assignment {
	n := len(t.Variables)
	if n == 0 {
		return 0
	}
	return eval.Assignment(bits.Reverse64(index) >> uint(64-n))
}

// Each calls fn for every row index from 2^n - 1 down to 0. With no variables it
// runs once for index 0.
func (t *Table) Each(fn func(Row) error) error {
	for i := t.Last(); ; i-- {
		a := t.AssignmentOf(i)
		v, err := eval.Evaluate(t.Program, a)
		if err != nil {
			return err
		}
		if err := fn(Row{Index: i, Assignment: a, Value: v}); err != nil {
			return err
		}
		if i == 0 {
			return nil
		}
	}
}

// Collect materializes all rows. Tables over more than maxVars variables are
// refused, and maxVars never exceeds MaxListedVariables.
func (t *Table) Collect(maxVars int) ([]Row, error) {
	maxVars = min(maxVars, MaxListedVariables)
	if len(t.Variables) > maxVars {
		return nil, apperr.Newf(apperr.Validation, "expression uses %d variables, at most %d can be listed", len(t.Variables), maxVars)
	}
	rows := make([]Row, 0, int(t.Last())+1)
	err := t.Each(func(r Row) error {
		rows = append(rows, r)
		return nil
	})
	return rows, err
}

// Column returns the result glyphs in row order, e.g. "1000" for A AND B.
func (t *Table) Column(g Glyphs, maxVars int) (string, error) {
	rows, err := t.Collect(maxVars)
	if err != nil {
		return "", err
	}
	col := make([]byte, len(rows))
	for i, r := range rows {
		col[i] = g.Of(r.Value)
	}
	return string(col), nil
}
