package interpreter

import (
	"fmt"
	"io"
	"math"

	"github.com/leonardinius/golox/internal/loxerrors"
	"github.com/leonardinius/golox/internal/parser"
	"github.com/leonardinius/golox/internal/token"
	"github.com/leonardinius/golox/internal/value"
)

type Interpreter interface {
	// Interpret executes the statements in order.
	//
	// The first runtime error is reported, stops the execution and is
	// returned; no later statement runs. On success it returns the value
	// of the last statement if it is an expression statement (strings
	// quoted), or an empty string.
	//
	// Not thread safe. Variables persist between calls.
	Interpret(statements []parser.Stmt) (string, error)

	// Evaluate evaluates a single expression.
	// A runtime error is reported and returned.
	//
	// Not thread safe.
	Evaluate(expr parser.Expr) (value.Value, error)
}

type interpreter struct {
	env      *Environment
	stdout   io.Writer
	reporter loxerrors.ErrReporter
}

func NewInterpreter(options ...InterpreterOption) Interpreter {
	opts := newInterpreterOpts(options...)
	return &interpreter{
		env:      opts.env,
		stdout:   opts.stdout,
		reporter: opts.reporter,
	}
}

// Interpret implements Interpreter.
func (i *interpreter) Interpret(statements []parser.Stmt) (string, error) {
	var last value.Value

	for _, stmt := range statements {
		var err error
		if s, ok := stmt.(*parser.StmtExpression); ok {
			last, err = i.evaluate(s.Expression)
		} else {
			last, err = nil, i.execute(stmt)
		}

		if err != nil {
			i.reporter.ReportRuntimeError(err)
			return "", err
		}
	}

	if last == nil {
		return "", nil
	}
	return fmt.Sprintf("%#v", last), nil
}

// Evaluate implements Interpreter.
func (i *interpreter) Evaluate(expr parser.Expr) (value.Value, error) {
	v, err := i.evaluate(expr)
	if err != nil {
		i.reporter.ReportRuntimeError(err)
		return nil, err
	}
	return v, nil
}

func (i *interpreter) execute(stmt parser.Stmt) error {
	switch s := stmt.(type) {
	case *parser.StmtExpression:
		_, err := i.evaluate(s.Expression)
		return err
	case *parser.StmtPrint:
		return i.executePrint(s)
	case *parser.StmtVar:
		return i.executeVar(s)
	case *parser.StmtBlock:
		return i.executeBlock(s.Statements)
	case *parser.StmtIf:
		return i.executeIf(s)
	}

	return i.unreachable(stmt)
}

func (i *interpreter) executePrint(stmt *parser.StmtPrint) error {
	v, err := i.evaluate(stmt.Expression)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintln(i.stdout, v.String()); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	return nil
}

func (i *interpreter) executeVar(stmt *parser.StmtVar) error {
	var v value.Value = value.NilValue
	if stmt.Initializer != nil {
		var err error
		if v, err = i.evaluate(stmt.Initializer); err != nil {
			return err
		}
	}

	i.env.Define(stmt.Name.Lexeme, v)
	return nil
}

// executeBlock runs statements in a fresh child scope. The enclosing scope
// is current again once it returns, whether a statement failed or not.
func (i *interpreter) executeBlock(statements []parser.Stmt) error {
	previous := i.env.Nest()
	defer i.env.Restore(previous)

	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (i *interpreter) executeIf(stmt *parser.StmtIf) error {
	condition, err := i.evaluate(stmt.Condition)
	if err != nil {
		return err
	}

	if isTruthy(condition) {
		return i.execute(stmt.ThenBranch)
	}
	if stmt.ElseBranch != nil {
		return i.execute(stmt.ElseBranch)
	}
	return nil
}

func (i *interpreter) evaluate(expr parser.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *parser.ExprLiteral:
		if e.Value == nil {
			return value.NilValue, nil
		}
		return e.Value, nil
	case *parser.ExprGrouping:
		return i.evaluate(e.Expression)
	case *parser.ExprVariable:
		return i.env.Get(e.Name)
	case *parser.ExprAssign:
		return i.evaluateAssign(e)
	case *parser.ExprUnary:
		return i.evaluateUnary(e)
	case *parser.ExprLogical:
		return i.evaluateLogical(e)
	case *parser.ExprBinary:
		return i.evaluateBinary(e)
	}

	return nil, i.unreachable(expr)
}

func (i *interpreter) evaluateAssign(expr *parser.ExprAssign) (value.Value, error) {
	v, err := i.evaluate(expr.Value)
	if err != nil {
		return nil, err
	}

	if err = i.env.Assign(expr.Name, v); err != nil {
		return nil, err
	}

	return v, nil
}

func (i *interpreter) evaluateUnary(expr *parser.ExprUnary) (value.Value, error) {
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.MINUS:
		n, ok := right.(value.Number)
		if !ok {
			return nil, loxerrors.NewRuntimeError(expr.Operator, loxerrors.ErrRuntimeOperandMustBeNumber)
		}
		return -n, nil
	case token.BANG:
		return value.Of(!isTruthy(right)), nil
	}

	return nil, i.unreachable(expr.Operator)
}

// evaluateLogical returns the operand that decided the outcome;
// the right operand is evaluated only when the left one does not decide it.
func (i *interpreter) evaluateLogical(expr *parser.ExprLogical) (value.Value, error) {
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}

	if expr.Operator.Type == token.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else if !isTruthy(left) {
		return left, nil
	}

	return i.evaluate(expr.Right)
}

func (i *interpreter) evaluateBinary(expr *parser.ExprBinary) (value.Value, error) {
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.BANG_EQUAL:
		return value.Of(!isEqual(left, right)), nil
	case token.EQUAL_EQUAL:
		return value.Of(isEqual(left, right)), nil
	case token.PLUS:
		return i.add(expr.Operator, left, right)
	}

	l, r, err := i.checkNumberOperands(expr.Operator, left, right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.GREATER:
		return value.Of(l > r), nil
	case token.GREATER_EQUAL:
		return value.Of(l >= r), nil
	case token.LESS:
		return value.Of(l < r), nil
	case token.LESS_EQUAL:
		return value.Of(l <= r), nil
	case token.MINUS:
		return l - r, nil
	case token.STAR:
		return l * r, nil
	case token.SLASH:
		if r == 0 {
			return nil, loxerrors.NewRuntimeError(expr.Operator, loxerrors.ErrRuntimeDivisionByZero)
		}
		return l / r, nil
	}

	return nil, i.unreachable(expr.Operator)
}

func (i *interpreter) add(operator *token.Token, left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case value.Number:
		if r, ok := right.(value.Number); ok {
			return l + r, nil
		}
	case value.String:
		if r, ok := right.(value.String); ok {
			return l + r, nil
		}
	}

	return nil, loxerrors.NewRuntimeError(operator, loxerrors.ErrRuntimeOperandsMustNumbersOrStrings)
}

func (i *interpreter) checkNumberOperands(operator *token.Token, left, right value.Value) (value.Number, value.Number, error) {
	l, lok := left.(value.Number)
	r, rok := right.(value.Number)
	if !lok || !rok {
		return 0, 0, loxerrors.NewRuntimeError(operator, loxerrors.ErrRuntimeOperandsMustBeNumbers)
	}
	return l, r, nil
}

func (i *interpreter) unreachable(node any) error {
	panic(fmt.Sprintf("unreachable: %#v", node))
}

// isTruthy: nil and false are falsy, every other value is truthy.
func isTruthy(v value.Value) bool {
	switch v := v.(type) {
	case value.Nil:
		return false
	case value.Bool:
		return bool(v)
	}
	return true
}

// isEqual never fails: values of different types are simply not equal.
// NaN equals NaN so that every value equals itself.
func isEqual(left, right value.Value) bool {
	switch l := left.(type) {
	case value.Nil:
		_, ok := right.(value.Nil)
		return ok
	case value.Bool:
		r, ok := right.(value.Bool)
		return ok && l == r
	case value.Number:
		r, ok := right.(value.Number)
		return ok && (l == r || math.IsNaN(float64(l)) && math.IsNaN(float64(r)))
	case value.String:
		r, ok := right.(value.String)
		return ok && l == r
	}
	return false
}

var _ Interpreter = (*interpreter)(nil)
