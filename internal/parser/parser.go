package parser

import (
	"errors"
	"fmt"

	"github.com/leonardinius/golox/internal/loxerrors"
	"github.com/leonardinius/golox/internal/token"
	"github.com/leonardinius/golox/internal/value"
)

var (
	nilExpr       Expr   = nil
	nilStmt       Stmt   = nil
	nilStatements []Stmt = nil
)

type Parser interface {
	// Parse parses the whole token stream as a program.
	//
	// Syntax errors are reported as they are detected and parsing resumes
	// at the next statement boundary. If any error was found, Parse returns
	// nil statements and the joined errors.
	Parse() ([]Stmt, error)

	// ParseExpression parses the token stream as a single expression.
	ParseExpression() (Expr, error)
}

type parser struct {
	tokens   []token.Token
	current  int
	errs     []error
	reporter loxerrors.ErrReporter
}

// NewParser returns a Parser over tokens, which must end with EOF.
// A nil reporter discards diagnostics; they are still returned as errors.
func NewParser(tokens []token.Token, reporter loxerrors.ErrReporter) Parser {
	if len(tokens) == 0 {
		panic("tokens cannot be empty")
	}
	if tokens[len(tokens)-1].Type != token.EOF {
		panic("tokens must end with EOF")
	}

	return &parser{
		tokens:   tokens,
		current:  0,
		reporter: reporter,
	}
}

// GoString implements fmt.GoStringer.
func (p *parser) GoString() string {
	return fmt.Sprintf("parser{tokens: %#v, current: %d, errs: %#v}", p.tokens, p.current, p.errs)
}

// String implements fmt.Stringer.
func (p *parser) String() string {
	return fmt.Sprintf("parser{tokens: %d, errs: %d}", len(p.tokens), len(p.errs))
}

// Parse implements Parser.
func (p *parser) Parse() ([]Stmt, error) {
	statements := p.declarations(token.EOF)

	// an ast with holes in it must never reach the interpreter
	if len(p.errs) > 0 {
		return nilStatements, errors.Join(p.errs...)
	}

	return statements, nil
}

// ParseExpression implements Parser.
func (p *parser) ParseExpression() (Expr, error) {
	expr, err := p.expression()
	if err == nil && !p.isAtEnd() {
		_ = p.report(p.peek(), loxerrors.ErrParseExpectedEndOfExpression)
	}

	if len(p.errs) > 0 {
		return nilExpr, errors.Join(p.errs...)
	}

	return expr, nil
}

// declarations parses declarations until the terminator (or EOF).
// A declaration that fails is dropped and the parser resynchronizes,
// so one broken statement yields one diagnostic.
func (p *parser) declarations(terminator token.TokenType) []Stmt {
	var stmts []Stmt

	for !p.check(terminator) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.synchronize(terminator)
			continue
		}
		stmts = append(stmts, stmt)
	}

	return stmts
}

func (p *parser) declaration() (Stmt, error) {
	if p.match(token.VAR) {
		return p.varDeclaration()
	}

	return p.statement()
}

func (p *parser) varDeclaration() (Stmt, error) {
	name, err := p.consume(token.IDENTIFIER, loxerrors.ErrParseUnexpectedVariableName)
	if err != nil {
		return nilStmt, err
	}

	if !p.match(token.EQUAL) {
		return nilStmt, p.report(p.peek(), loxerrors.ErrParseUninitializedVariable)
	}

	initializer, err := p.expression()
	if err != nil {
		return nilStmt, err
	}

	if _, err = p.consume(token.SEMICOLON, loxerrors.ErrParseExpectedSemicolonTokenAfterVar); err != nil {
		return nilStmt, err
	}

	return &StmtVar{Name: name, Initializer: initializer}, nil
}

func (p *parser) statement() (Stmt, error) {
	if p.match(token.IF) {
		return p.ifStatement()
	}

	if p.match(token.PRINT) {
		return p.printStatement()
	}

	if p.match(token.LEFT_BRACE) {
		return p.blockStatement()
	}

	return p.expressionStatement()
}

func (p *parser) ifStatement() (Stmt, error) {
	if _, err := p.consume(token.LEFT_PAREN, loxerrors.ErrParseExpectedLeftParentIfToken); err != nil {
		return nilStmt, err
	}

	condition, err := p.expression()
	if err != nil {
		return nilStmt, err
	}

	if _, err = p.consume(token.RIGHT_PAREN, loxerrors.ErrParseExpectedRightParentIfToken); err != nil {
		return nilStmt, err
	}

	thenBranch, err := p.statement()
	if err != nil {
		return nilStmt, err
	}

	var elseBranch Stmt
	if p.match(token.ELSE) {
		if elseBranch, err = p.statement(); err != nil {
			return nilStmt, err
		}
	}

	return &StmtIf{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}, nil
}

func (p *parser) printStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nilStmt, err
	}

	if _, err = p.consume(token.SEMICOLON, loxerrors.ErrParseExpectedSemicolonTokenAfterPrintValue); err != nil {
		return nilStmt, err
	}

	return &StmtPrint{Expression: expr}, nil
}

func (p *parser) blockStatement() (Stmt, error) {
	stmts := p.declarations(token.RIGHT_BRACE)

	if _, err := p.consume(token.RIGHT_BRACE, loxerrors.ErrParseExpectedRightCurlyBlockToken); err != nil {
		return nilStmt, err
	}

	return &StmtBlock{Statements: stmts}, nil
}

func (p *parser) expressionStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nilStmt, err
	}

	if _, err = p.consume(token.SEMICOLON, loxerrors.ErrParseExpectedSemicolonTokenAfterExpr); err != nil {
		return nilStmt, err
	}

	return &StmtExpression{Expression: expr}, nil
}

func (p *parser) expression() (Expr, error) {
	return p.assignment()
}

func (p *parser) assignment() (Expr, error) {
	expr, err := p.logicOr()
	if err != nil {
		return nilExpr, err
	}

	if p.match(token.EQUAL) {
		equals := p.previous()
		rhs, err := p.assignment()
		if err != nil {
			return nilExpr, err
		}

		if v, ok := expr.(*ExprVariable); ok {
			return &ExprAssign{Name: v.Name, Value: rhs}, nil
		}

		// Reported, but the parser is not confused: no need to synchronize.
		_ = p.report(equals, loxerrors.ErrParseInvalidAssignmentTarget)
	}

	return expr, nil
}

func (p *parser) logicOr() (Expr, error) {
	return p.logical(p.logicAnd, token.OR)
}

func (p *parser) logicAnd() (Expr, error) {
	return p.logical(p.equality, token.AND)
}

func (p *parser) equality() (Expr, error) {
	return p.binary(p.comparison, token.BANG_EQUAL, token.EQUAL_EQUAL)
}

func (p *parser) comparison() (Expr, error) {
	return p.binary(p.term, token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL)
}

func (p *parser) term() (Expr, error) {
	return p.binary(p.factor, token.MINUS, token.PLUS)
}

func (p *parser) factor() (Expr, error) {
	return p.binary(p.unary, token.SLASH, token.STAR)
}

// binary parses a left-associative tier: operand ( operator operand )*.
func (p *parser) binary(operand func() (Expr, error), operators ...token.TokenType) (Expr, error) {
	expr, err := operand()
	if err != nil {
		return nilExpr, err
	}

	for p.anyMatch(operators...) {
		operator := p.previous()
		right, err := operand()
		if err != nil {
			return nilExpr, err
		}
		expr = &ExprBinary{Left: expr, Operator: operator, Right: right}
	}

	return expr, nil
}

func (p *parser) logical(operand func() (Expr, error), operatorType token.TokenType) (Expr, error) {
	expr, err := operand()
	if err != nil {
		return nilExpr, err
	}

	for p.match(operatorType) {
		operator := p.previous()
		right, err := operand()
		if err != nil {
			return nilExpr, err
		}
		expr = &ExprLogical{Left: expr, Operator: operator, Right: right}
	}

	return expr, nil
}

func (p *parser) unary() (Expr, error) {
	if p.anyMatch(token.BANG, token.MINUS) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nilExpr, err
		}
		return &ExprUnary{Operator: operator, Right: right}, nil
	}

	return p.primary()
}

func (p *parser) primary() (Expr, error) {
	if p.match(token.FALSE) {
		return &ExprLiteral{Value: value.FalseValue}, nil
	}
	if p.match(token.TRUE) {
		return &ExprLiteral{Value: value.TrueValue}, nil
	}
	if p.match(token.NIL) {
		return &ExprLiteral{Value: value.NilValue}, nil
	}

	if p.anyMatch(token.NUMBER, token.STRING) {
		return &ExprLiteral{Value: p.previous().Literal}, nil
	}

	if p.match(token.IDENTIFIER) {
		return &ExprVariable{Name: p.previous()}, nil
	}

	return p.grouping()
}

func (p *parser) grouping() (Expr, error) {
	if !p.match(token.LEFT_PAREN) {
		return nilExpr, p.report(p.peek(), loxerrors.ErrParseUnexpectedToken)
	}

	expr, err := p.expression()
	if err != nil {
		return nilExpr, err
	}

	if _, err = p.consume(token.RIGHT_PAREN, loxerrors.ErrParseExpectedRightParenToken); err != nil {
		return nilExpr, err
	}

	return &ExprGrouping{Expression: expr}, nil
}

func (p *parser) consume(tokenType token.TokenType, cause error) (*token.Token, error) {
	if p.check(tokenType) {
		return p.advance(), nil
	}

	return nil, p.report(p.peek(), cause)
}

func (p *parser) anyMatch(types ...token.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) match(tokType token.TokenType) bool {
	if p.check(tokType) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) check(tokenType token.TokenType) bool {
	return !p.isAtEnd() && p.peek().Type == tokenType
}

func (p *parser) peek() *token.Token {
	return &p.tokens[p.current]
}

func (p *parser) previous() *token.Token {
	return &p.tokens[p.current-1]
}

func (p *parser) advance() *token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

// report records and reports a syntax error at tok and returns it.
func (p *parser) report(tok *token.Token, cause error) error {
	err := loxerrors.NewParseError(tok, cause)
	p.errs = append(p.errs, err)
	if p.reporter != nil {
		p.reporter.ReportError(err)
	}
	return err
}

// synchronize discards tokens until the next statement boundary: just past
// a ';', or right before a keyword that starts a statement. It never
// consumes the terminator of the enclosing declaration list, so a block
// still closes on its own '}'.
func (p *parser) synchronize(terminator token.TokenType) {
	if p.check(terminator) {
		return
	}

	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case token.CLASS,
			token.FUN,
			token.VAR,
			token.FOR,
			token.IF,
			token.WHILE,
			token.PRINT,
			token.RETURN,
			terminator:
			return
		}

		p.advance()
	}
}

var _ Parser = (*parser)(nil)
var _ fmt.Stringer = (*parser)(nil)
var _ fmt.GoStringer = (*parser)(nil)
