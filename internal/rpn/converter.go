package rpn

import (
	"github.com/DjordjeVuckovic/ttgen/internal/apperr"
	"github.com/DjordjeVuckovic/ttgen/internal/symbol"
	"github.com/DjordjeVuckovic/ttgen/internal/token"
)

// StackCapacity bounds the operator stack.
const StackCapacity = 128

type mode int

const (
	expressionMode mode = iota
	declareMode
)

// Result is the outcome of converting one line.
type Result struct {
	// Program is empty for declaration lines.
	Program   Program
	Variables *symbol.Variables
	// Declaration is set when the line only fixed the variable order.
	Declaration bool
}

// Converter is a shunting-yard parser for one line. Every binary operator shares a
// single precedence level and groups left to right; a pending NOT is flushed by the
// next binary operator.
type Converter struct {
	vars    *symbol.Variables
	program Program
	stack   []token.Token
	mode    mode
	first   bool
}

// Convert parses line into a postfix program. vars carries the table left by a
// preceding declaration line and may be nil; a declaration line always starts a
// fresh table.
func Convert(line string, vars *symbol.Variables) (*Result, error) {
	if vars == nil {
		vars = symbol.NewVariables()
	}
	c := &Converter{
		vars:  vars,
		stack: make([]token.Token, 0, 16),
		first: true,
	}

	lexer := token.NewLexer(line)
	for {
		tok, ok := lexer.Next()
		if !ok {
			break
		}
		if err := c.consume(tok); err != nil {
			return nil, err
		}
		c.first = false
	}

	if c.mode == declareMode {
		return &Result{Variables: c.vars, Declaration: true}, nil
	}
	if err := c.flush(); err != nil {
		return nil, err
	}
	return &Result{Program: c.program, Variables: c.vars}, nil
}

func (c *Converter) consume(tok token.Token) error {
	if tok.Type == token.INVALID {
		return apperr.Newf(apperr.UnexpectedCharacter, "unexpected character '%s'", tok.Value)
	}

	if c.mode == declareMode {
		if tok.Type != token.VARIABLE {
			return apperr.Newf(apperr.DeclarationMisuse, "non-variable %q in declaration line", text(tok))
		}
		_, err := c.vars.ID(tok.Value)
		return err
	}

	switch tok.Type {
	case token.VARIABLE:
		return c.output(tok)
	case token.OPERATOR:
		for len(c.stack) > 0 {
			top := c.stack[len(c.stack)-1]
			if top.Type != token.OPERATOR && top.Type != token.NOT {
				break
			}
			c.stack = c.stack[:len(c.stack)-1]
			if err := c.output(top); err != nil {
				return err
			}
		}
		return c.push(tok)
	case token.NOT, token.LPAREN:
		return c.push(tok)
	case token.RPAREN:
		for len(c.stack) > 0 && c.stack[len(c.stack)-1].Type != token.LPAREN {
			top := c.stack[len(c.stack)-1]
			c.stack = c.stack[:len(c.stack)-1]
			if err := c.output(top); err != nil {
				return err
			}
		}
		if len(c.stack) == 0 {
			return apperr.New(apperr.UnbalancedParentheses, "mismatched parentheses")
		}
		c.stack = c.stack[:len(c.stack)-1]
		return nil
	case token.DECLARE:
		if !c.first {
			return apperr.New(apperr.DeclarationMisuse, "declaration marker can not be embedded in expressions")
		}
		c.vars = symbol.NewVariables()
		c.mode = declareMode
		return nil
	default:
		return apperr.Newf(apperr.UnexpectedCharacter, "unexpected token %s", tok.Type)
	}
}

// flush outputs whatever is left on the stack at end of line.
func (c *Converter) flush() error {
	for len(c.stack) > 0 {
		top := c.stack[len(c.stack)-1]
		if top.Type == token.LPAREN {
			return apperr.New(apperr.UnbalancedParentheses, "mismatched parentheses")
		}
		c.stack = c.stack[:len(c.stack)-1]
		if err := c.output(top); err != nil {
			return err
		}
	}
	return nil
}

func (c *Converter) push(tok token.Token) error {
	if len(c.stack) >= StackCapacity {
		return apperr.New(apperr.OperatorStackOverflow, "operator stack overflow")
	}
	c.stack = append(c.stack, tok)
	return nil
}

// output binds the token's identity and appends the matching instruction.
func (c *Converter) output(tok token.Token) error {
	switch tok.Type {
	case token.VARIABLE:
		id, err := c.vars.ID(tok.Value)
		if err != nil {
			return err
		}
		c.program = append(c.program, Instruction{Code: PushVar, Var: id})
	case token.OPERATOR:
		op, ok := symbol.LookupOperator(tok.Value)
		if !ok {
			return apperr.Newf(apperr.UnexpectedCharacter, "unknown operator %q", tok.Value)
		}
		c.program = append(c.program, Instruction{Code: Apply, Op: op})
	case token.NOT:
		c.program = append(c.program, Instruction{Code: Negate})
	}
	return nil
}

func text(tok token.Token) string {
	switch tok.Type {
	case token.LPAREN:
		return "("
	case token.RPAREN:
		return ")"
	case token.DECLARE:
		return "/"
	default:
		return tok.Value
	}
}
