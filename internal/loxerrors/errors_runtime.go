package loxerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/golox/internal/token"
)

var (
	ErrRuntimeError                        = errors.New("runtime error.")
	ErrRuntimeOperandMustBeNumber          = errors.New("Operand must be a number.")
	ErrRuntimeOperandsMustBeNumbers        = errors.New("Operands must be numbers.")
	ErrRuntimeOperandsMustNumbersOrStrings = errors.New("Operands must be two numbers or two strings.")
	ErrRuntimeDivisionByZero               = errors.New("Division by zero.")
	ErrRuntimeUndefinedVariable            = errors.New("Undefined variable")
)

func ErrRuntimeUndefinedVariableName(name string) error {
	return fmt.Errorf("%w '%s'.", ErrRuntimeUndefinedVariable, name)
}

func NewRuntimeError(tok *token.Token, cause error) error {
	return &RuntimeError{tok, cause}
}

type RuntimeError struct {
	tok   *token.Token
	cause error
}

// Token returns the token the failing operation was applied at.
func (r *RuntimeError) Token() *token.Token {
	return r.tok
}

// Error implements error.
func (r *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] runtime error at '%s': %v", r.tok.Line, r.tok.Lexeme, r.cause)
}

func (r *RuntimeError) Unwrap() error {
	return r.cause
}

func (r *RuntimeError) Is(target error) bool {
	return target == ErrRuntimeError
}

var _ error = (*RuntimeError)(nil)
var _ unwrapInterface = (*RuntimeError)(nil)
