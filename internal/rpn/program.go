// Package rpn converts infix token streams into flat postfix programs.
package rpn

import (
	"strings"

	"github.com/DjordjeVuckovic/ttgen/internal/symbol"
)

type OpCode int

const (
	PushVar OpCode = iota
	Apply
	Negate
)

func (c OpCode) String() string {
	switch c {
	case PushVar:
		return "PUSH"
	case Apply:
		return "APPLY"
	case Negate:
		return "NEGATE"
	default:
		return "UNKNOWN"
	}
}

// Instruction is one postfix step. Var is set for PushVar, Op for Apply.
type Instruction struct {
	Code OpCode
	Var  int
	Op   symbol.Operator
}

// Program is a postfix instruction sequence.
type Program []Instruction

// Format renders the program in postfix notation using the variable names indexed by
// id, e.g. "A B AND NOT".
func (p Program) Format(names []string) string {
	parts := make([]string, 0, len(p))
	for _, in := range p {
		switch in.Code {
		case PushVar:
			parts = append(parts, names[in.Var])
		case Apply:
			parts = append(parts, in.Op.String())
		case Negate:
			parts = append(parts, "NOT")
		}
	}
	return strings.Join(parts, " ")
}
