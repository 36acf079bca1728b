// Package eval executes postfix programs against variable assignments.
package eval

import (
	"github.com/DjordjeVuckovic/ttgen/internal/apperr"
	"github.com/DjordjeVuckovic/ttgen/internal/rpn"
)

// StackCapacity bounds the value stack.
const StackCapacity = 128

// Assignment holds the value of variable i in bit i.
type Assignment uint64

// Bit returns the value of variable id.
func (a Assignment) Bit(id int) bool {
	return a&(1<<uint(id)) != 0
}

var (
	errOverflow   = apperr.New(apperr.ValueStackOverflow, "stack overflow")
	errUnderflow  = apperr.New(apperr.ValueStackUnderflow, "stack underflow")
	errUnbalanced = apperr.New(apperr.UnbalancedProgram, "stack not empty")
)

// Evaluate runs program once. It has no state outside the call.
func Evaluate(program rpn.Program, a Assignment) (bool, error) {
	var stack [StackCapacity]bool
	sp := 0

	for _, in := range program {
		switch in.Code {
		case rpn.PushVar:
			if sp >= StackCapacity {
				return false, errOverflow
			}
			stack[sp] = a.Bit(in.Var)
			sp++
		case rpn.Apply:
			if sp < 2 {
				return false, errUnderflow
			}
			b := stack[sp-1]
			lhs := stack[sp-2]
			sp -= 2
			stack[sp] = in.Op.Apply(lhs, b)
			sp++
		case rpn.Negate:
			if sp < 1 {
				return false, errUnderflow
			}
			stack[sp-1] = !stack[sp-1]
		}
	}

	if sp != 1 {
		return false, errUnbalanced
	}
	return stack[0], nil
}

// Check surfaces structural faults without caring about the result. Faults do not
// depend on the assignment.
func Check(program rpn.Program) error {
	_, err := Evaluate(program, 0)
	return err
}
