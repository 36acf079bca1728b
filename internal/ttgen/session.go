// Package ttgen turns a stream of expression lines into truth tables.
package ttgen

import (
	"strings"

	"github.com/DjordjeVuckovic/ttgen/internal/rpn"
	"github.com/DjordjeVuckovic/ttgen/internal/symbol"
	"github.com/DjordjeVuckovic/ttgen/internal/table"
)

// Session carries the variable order fixed by a declaration line into the next
// expression line. Nothing else survives from one line to the next.
type Session struct {
	declared *symbol.Variables
}

func NewSession() *Session {
	return &Session{}
}

// Process handles one line. It returns nil, nil for declaration lines and blank
// lines, which print nothing. A blank line is skipped outright and leaves a
// pending declaration in place for the next expression line.
func (s *Session) Process(line string) (*table.Table, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}

	vars := s.declared
	s.declared = nil

	res, err := rpn.Convert(line, vars)
	if err != nil {
		return nil, err
	}
	if res.Declaration {
		s.declared = res.Variables
		return nil, nil
	}
	return table.New(res.Variables, res.Program)
}

// Discard drops a pending declaration. Lines rejected before they reach Process
// call it so the declared order still applies to the next line only.
func (s *Session) Discard() {
	s.declared = nil
}

// Declared returns the pending declared order, if any.
func (s *Session) Declared() []string {
	if s.declared == nil {
		return nil
	}
	return s.declared.Names()
}
