package token

type Type int

const (
	VARIABLE Type = iota
	OPERATOR
	NOT
	LPAREN
	RPAREN
	DECLARE
	INVALID
)

func (t Type) String() string {
	switch t {
	case VARIABLE:
		return "VARIABLE"
	case OPERATOR:
		return "OPERATOR"
	case NOT:
		return "NOT"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case DECLARE:
		return "DECLARE"
	case INVALID:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with its type and the exact text it matched.
// Pos is the byte offset of the token in the line.
type Token struct {
	Type  Type
	Value string
	Pos   int
}
