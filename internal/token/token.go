package token

import (
	"fmt"

	"github.com/leonardinius/golox/internal/value"
)

// Token represents a lexical token.
//
// Literal is set for NUMBER and STRING tokens only, nil otherwise.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal value.Value
	Line    int
}

func NewToken(t TokenType, lexeme string, literal value.Value, line int) Token {
	return Token{
		Type:    t,
		Lexeme:  lexeme,
		Literal: literal,
		Line:    line,
	}
}

func NewTokenHeap(t TokenType, lexeme string, literal value.Value, line int) *Token {
	tt := NewToken(t, lexeme, literal, line)
	return &tt
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return fmt.Sprintf("%s %s %s", t.Type, t.Lexeme, t.literal())
}

// GoString implements fmt.GoStringer.
func (t Token) GoString() string {
	return fmt.Sprintf("{Type: %s, Lexeme: %q, Literal: %s, Line: %d}", t.Type, t.Lexeme, t.literal(), t.Line)
}

func (t Token) literal() string {
	if t.Literal == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%#v", t.Literal)
}

var _ fmt.Stringer = (*Token)(nil)
var _ fmt.GoStringer = (*Token)(nil)
