package token_test

import (
	"testing"

	"github.com/leonardinius/golox/internal/token"
	"github.com/leonardinius/golox/internal/value"
	"github.com/stretchr/testify/assert"
)

func TestTokenFormatting(t *testing.T) {
	t.Parallel()

	num := token.NewToken(token.NUMBER, "12.50", value.Number(12.5), 3)
	str := token.NewTokenHeap(token.STRING, `"hi"`, value.String("hi"), 1)
	eof := token.NewToken(token.EOF, "", nil, 7)

	assert.Equal(t, `{Type: NUMBER, Lexeme: "12.50", Literal: 12.5, Line: 3}`, num.GoString())
	assert.Equal(t, `{Type: STRING, Lexeme: "\"hi\"", Literal: "hi", Line: 1}`, str.GoString())
	assert.Equal(t, `{Type: EOF, Lexeme: "", Literal: <nil>, Line: 7}`, eof.GoString())
	assert.Equal(t, "NUMBER 12.50 12.5", num.String())
}

func TestTokenTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "BANG_EQUAL", token.BANG_EQUAL.String())
	assert.Equal(t, "EOF", token.EOF.String())
	assert.Equal(t, "TokenType(-1)", token.TokenType(-1).String())
}
