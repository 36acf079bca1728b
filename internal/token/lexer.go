package token

import (
	"strings"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/ttgen/internal/symbol"
)

// Lexer splits a single expression line into Tokens on demand.
type Lexer struct {
	input string
	pos   int
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize converts the whole input into a slice of Tokens.
// Example: Input: `/ B A` or `!(A -> B) xor C'`
func Tokenize(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok, ok := l.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// Next returns the next token, or false once the input is exhausted.
func (l *Lexer) Next() (Token, bool) {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return Token{}, false
	}

	start := l.pos
	ch := l.input[l.pos]
	switch ch {
	case '(':
		l.pos++
		return Token{Type: LPAREN, Pos: start}, true
	case ')':
		l.pos++
		return Token{Type: RPAREN, Pos: start}, true
	case '/':
		l.pos++
		return Token{Type: DECLARE, Pos: start}, true
	}

	if !isLetter(ch) {
		if ch == '!' {
			l.pos++
			return Token{Type: NOT, Value: "!", Pos: start}, true
		}
		if _, n, ok := symbol.MatchShort(l.input[l.pos:]); ok {
			l.pos += n
			return Token{Type: OPERATOR, Value: l.input[start:l.pos], Pos: start}, true
		}
	}

	word := l.readWord()
	if word == "" {
		_, size := utf8.DecodeRuneInString(l.input[l.pos:])
		l.pos += size
		return Token{Type: INVALID, Value: l.input[start:l.pos], Pos: start}, true
	}

	switch {
	case strings.EqualFold(word, "NOT"):
		return Token{Type: NOT, Value: word, Pos: start}, true
	case symbol.IsLongName(word):
		return Token{Type: OPERATOR, Value: word, Pos: start}, true
	default:
		return Token{Type: VARIABLE, Value: word, Pos: start}, true
	}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
}

func (l *Lexer) readWord() string {
	start := l.pos
	for l.pos < len(l.input) && isWordChar(l.input[l.pos]) {
		l.pos++
	}
	return l.input[start:l.pos]
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isWordChar(ch byte) bool {
	return isLetter(ch) || ('0' <= ch && ch <= '9') || ch == '_' || ch == '\''
}
