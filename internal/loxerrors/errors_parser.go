package loxerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/golox/internal/token"
)

var (
	ErrParseError                                 = errors.New("parse error.")
	ErrParseUnexpectedToken                       = errors.New("expected expression.")
	ErrParseUnexpectedVariableName                = errors.New("expect variable name.")
	ErrParseUninitializedVariable                 = errors.New("expect '=' after variable name, variables must be initialized.")
	ErrParseInvalidAssignmentTarget               = errors.New("invalid assignment target.")
	ErrParseExpectedRightParenToken               = errors.New("expected ')' after expression.")
	ErrParseExpectedLeftParentIfToken             = errors.New("expected '(' after if.")
	ErrParseExpectedRightParentIfToken            = errors.New("expected ')' after if condition.")
	ErrParseExpectedRightCurlyBlockToken          = errors.New("expect '}' after block.")
	ErrParseExpectedSemicolonTokenAfterPrintValue = errors.New("expect ';' after print value.")
	ErrParseExpectedSemicolonTokenAfterExpr       = errors.New("expect ';' after value.")
	ErrParseExpectedSemicolonTokenAfterVar        = errors.New("expect ';' after variable declaration.")
	ErrParseExpectedEndOfExpression               = errors.New("expect end of expression.")
)

func NewParseError(tok *token.Token, cause error) error {
	return &ParserError{tok: tok, cause: cause}
}

type ParserError struct {
	tok   *token.Token
	cause error
}

// Token returns the token the error was detected at.
func (p *ParserError) Token() *token.Token {
	return p.tok
}

// Error implements error.
func (p *ParserError) Error() string {
	where := "at end"
	if p.tok.Type != token.EOF {
		where = fmt.Sprintf("at '%s'", p.tok.Lexeme)
	}
	return fmt.Sprintf("[line %d] parse error %s: %v", p.tok.Line, where, p.cause)
}

func (p *ParserError) Unwrap() error {
	return p.cause
}

// Is reports every ParserError as ErrParseError, so callers can test
// the kind without knowing the cause.
func (p *ParserError) Is(target error) bool {
	return target == ErrParseError
}

var _ error = (*ParserError)(nil)
var _ unwrapInterface = (*ParserError)(nil)
