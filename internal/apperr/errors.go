package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure that aborts the current expression line.
type Kind int

const (
	Unknown Kind = iota
	TooManyVariables
	UnexpectedCharacter
	UnbalancedParentheses
	OperatorStackOverflow
	ValueStackOverflow
	ValueStackUnderflow
	UnbalancedProgram
	DeclarationMisuse
	LineTooLong
	Validation
)

func (k Kind) String() string {
	switch k {
	case TooManyVariables:
		return "too_many_variables"
	case UnexpectedCharacter:
		return "unexpected_character"
	case UnbalancedParentheses:
		return "unbalanced_parentheses"
	case OperatorStackOverflow:
		return "operator_stack_overflow"
	case ValueStackOverflow:
		return "value_stack_overflow"
	case ValueStackUnderflow:
		return "value_stack_underflow"
	case UnbalancedProgram:
		return "unbalanced_program"
	case DeclarationMisuse:
		return "declaration_misuse"
	case LineTooLong:
		return "line_too_long"
	case Validation:
		return "validation"
	default:
		return "unknown"
	}
}

// IsFault reports whether the kind is raised while executing a postfix program
// rather than while parsing one.
func (k Kind) IsFault() bool {
	return k == ValueStackOverflow || k == ValueStackUnderflow || k == UnbalancedProgram
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func NewValidation(msg string) *Error {
	return New(Validation, msg)
}

// KindOf returns the kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return Unknown
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
