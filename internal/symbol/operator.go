package symbol

import (
	"fmt"
	"strings"
)

// Operator identifies one of the fixed binary connectives.
//
// Usage:
//
//	op, ok := symbol.LookupOperator("->") // symbol.Imp, true
//	op.Apply(true, false)                 // false
type Operator int

const (
	Or Operator = iota
	And
	Xor
	Nand
	Nor
	Imp
	Equ
)

// Operators lists every operator in table order.
var Operators = []Operator{Or, And, Xor, Nand, Nor, Imp, Equ}

var longNames = [...]string{
	Or:   "OR",
	And:  "AND",
	Xor:  "XOR",
	Nand: "NAND",
	Nor:  "NOR",
	Imp:  "IMP",
	Equ:  "EQU",
}

// NAND and NOR have no symbolic spelling.
var shortNames = [...]string{
	Or:   "|",
	And:  "&",
	Xor:  "^",
	Nand: "",
	Nor:  "",
	Imp:  "->",
	Equ:  "=",
}

// String returns the canonical upper-case name of the operator.
func (o Operator) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Operator(%d)", int(o))
	}
	return longNames[o]
}

// Short returns the symbolic spelling, or "" when the operator has none.
func (o Operator) Short() string {
	if !o.Valid() {
		return ""
	}
	return shortNames[o]
}

func (o Operator) Valid() bool {
	return o >= Or && o <= Equ
}

// Apply computes the operator with a as the left-hand operand.
func (o Operator) Apply(a, b bool) bool {
	switch o {
	case Or:
		return a || b
	case And:
		return a && b
	case Xor:
		return a != b
	case Nand:
		return !(a && b)
	case Nor:
		return !(a || b)
	case Imp:
		return !a || b
	case Equ:
		return a == b
	default:
		return false
	}
}

// LookupOperator resolves a long name (case-insensitive) or a symbolic spelling.
func LookupOperator(text string) (Operator, bool) {
	if text == "" {
		return 0, false
	}
	for _, op := range Operators {
		if strings.EqualFold(text, longNames[op]) || text == shortNames[op] {
			return op, true
		}
	}
	return 0, false
}

// MatchShort reports the symbolic operator that prefixes s, preferring the longest
// spelling, together with the number of bytes it spans.
func MatchShort(s string) (Operator, int, bool) {
	best, bestLen := Operator(0), 0
	for _, op := range Operators {
		short := shortNames[op]
		if short == "" || len(short) <= bestLen {
			continue
		}
		if strings.HasPrefix(s, short) {
			best, bestLen = op, len(short)
		}
	}
	return best, bestLen, bestLen > 0
}

// IsLongName reports whether word case-insensitively spells an operator name.
func IsLongName(word string) bool {
	for _, name := range longNames {
		if strings.EqualFold(word, name) {
			return true
		}
	}
	return false
}
