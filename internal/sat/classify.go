// Package sat classifies expressions with a SAT solver instead of enumerating every
// assignment, so it works for any number of variables.
package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/DjordjeVuckovic/ttgen/internal/eval"
	"github.com/DjordjeVuckovic/ttgen/internal/rpn"
	"github.com/DjordjeVuckovic/ttgen/internal/symbol"
)

type Class int

const (
	Contingent Class = iota
	Tautology
	Contradiction
)

func (c Class) String() string {
	switch c {
	case Tautology:
		return "tautology"
	case Contradiction:
		return "contradiction"
	default:
		return "contingent"
	}
}

func ParseClass(s string) (Class, error) {
	switch s {
	case "tautology":
		return Tautology, nil
	case "contradiction":
		return Contradiction, nil
	case "contingent":
		return Contingent, nil
	default:
		return 0, fmt.Errorf("invalid classification: %q (must be tautology, contradiction or contingent)", s)
	}
}

// MarshalText implements encoding.TextMarshaler for JSON serialization
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON and YAML deserialization
func (c *Class) UnmarshalText(text []byte) error {
	parsed, err := ParseClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Classification reports the class and, where they exist, one assignment that makes
// the expression true and one that makes it false.
type Classification struct {
	Class      Class
	Satisfying *eval.Assignment
	Falsifying *eval.Assignment
}

// Classify builds an and-inverter circuit from program and checks whether the
// expression and its negation are satisfiable.
func Classify(program rpn.Program, nvars int) (*Classification, error) {
	if err := eval.Check(program); err != nil {
		return nil, err
	}

	c := logic.NewCCap(nvars + 2*len(program) + 2)
	inputs := make([]z.Lit, nvars)
	for i := range inputs {
		inputs[i] = c.Lit()
	}

	f, err := circuit(c, program, inputs)
	if err != nil {
		return nil, err
	}

	var zero eval.Assignment
	switch f {
	case c.T:
		return &Classification{Class: Tautology, Satisfying: &zero}, nil
	case c.F:
		return &Classification{Class: Contradiction, Falsifying: &zero}, nil
	}

	g := gini.New()
	c.ToCnf(g)

	res := &Classification{}
	g.Assume(f)
	if g.Solve() == 1 {
		w := witness(g, inputs)
		res.Satisfying = &w
	}
	g.Assume(f.Not())
	if g.Solve() == 1 {
		w := witness(g, inputs)
		res.Falsifying = &w
	}

	switch {
	case res.Satisfying == nil:
		res.Class = Contradiction
	case res.Falsifying == nil:
		res.Class = Tautology
	default:
		res.Class = Contingent
	}
	return res, nil
}

// circuit replays the postfix program on a stack of literals.
func circuit(c *logic.C, program rpn.Program, inputs []z.Lit) (z.Lit, error) {
	stack := make([]z.Lit, 0, eval.StackCapacity)
	for _, in := range program {
		switch in.Code {
		case rpn.PushVar:
			if in.Var >= len(inputs) {
				return z.LitNull, fmt.Errorf("variable id %d out of range", in.Var)
			}
			stack = append(stack, inputs[in.Var])
		case rpn.Apply:
			a, b := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]
			stack = append(stack, gate(c, in.Op, a, b))
		case rpn.Negate:
			stack[len(stack)-1] = stack[len(stack)-1].Not()
		}
	}
	return stack[0], nil
}

func gate(c *logic.C, op symbol.Operator, a, b z.Lit) z.Lit {
	switch op {
	case symbol.Or:
		return c.Or(a, b)
	case symbol.And:
		return c.And(a, b)
	case symbol.Xor:
		return c.Xor(a, b)
	case symbol.Nand:
		return c.And(a, b).Not()
	case symbol.Nor:
		return c.Or(a, b).Not()
	case symbol.Imp:
		return c.Implies(a, b)
	default:
		return c.Xor(a, b).Not()
	}
}

func witness(g *gini.Gini, inputs []z.Lit) eval.Assignment {
	var a eval.Assignment
	for i, m := range inputs {
		if g.Value(m) {
			a |= 1 << uint(i)
		}
	}
	return a
}
