package parser

import (
	"fmt"
	"strings"
)

// AstPrinter renders syntax trees in a parenthesized prefix form,
// e.g. "(* (- 123) (group 45.67))".
type AstPrinter struct{}

func NewAstPrinter() *AstPrinter {
	return &AstPrinter{}
}

// Print renders a single expression.
func (p *AstPrinter) Print(expr Expr) string {
	out := new(strings.Builder)
	p.expr(out, expr)
	return out.String()
}

// PrintStmt renders a single statement.
func (p *AstPrinter) PrintStmt(stmt Stmt) string {
	out := new(strings.Builder)
	p.stmt(out, stmt)
	return out.String()
}

// PrintProgram renders statements one per line.
func (p *AstPrinter) PrintProgram(statements []Stmt) string {
	out := new(strings.Builder)
	for _, stmt := range statements {
		p.stmt(out, stmt)
		_, _ = out.WriteString("\n")
	}
	return out.String()
}

func (p *AstPrinter) expr(out *strings.Builder, expr Expr) {
	switch e := expr.(type) {
	case *ExprLiteral:
		if e.Value == nil {
			_, _ = out.WriteString("nil")
			return
		}
		_, _ = fmt.Fprintf(out, "%#v", e.Value)
	case *ExprVariable:
		_, _ = out.WriteString(e.Name.Lexeme)
	case *ExprAssign:
		p.parenthesize(out, "= "+e.Name.Lexeme, e.Value)
	case *ExprGrouping:
		p.parenthesize(out, "group", e.Expression)
	case *ExprUnary:
		p.parenthesize(out, e.Operator.Lexeme, e.Right)
	case *ExprBinary:
		p.parenthesize(out, e.Operator.Lexeme, e.Left, e.Right)
	case *ExprLogical:
		p.parenthesize(out, e.Operator.Lexeme, e.Left, e.Right)
	default:
		panic(fmt.Sprintf("unexpected expression %T", expr))
	}
}

func (p *AstPrinter) stmt(out *strings.Builder, stmt Stmt) {
	switch s := stmt.(type) {
	case *StmtExpression:
		p.parenthesize(out, ";", s.Expression)
	case *StmtPrint:
		p.parenthesize(out, "print", s.Expression)
	case *StmtVar:
		if s.Initializer == nil {
			_, _ = fmt.Fprintf(out, "(var %s)", s.Name.Lexeme)
			return
		}
		p.parenthesize(out, "var "+s.Name.Lexeme, s.Initializer)
	case *StmtBlock:
		_, _ = out.WriteString("(block")
		for _, inner := range s.Statements {
			_, _ = out.WriteString(" ")
			p.stmt(out, inner)
		}
		_, _ = out.WriteString(")")
	case *StmtIf:
		_, _ = out.WriteString("(if ")
		p.expr(out, s.Condition)
		_, _ = out.WriteString(" ")
		p.stmt(out, s.ThenBranch)
		if s.ElseBranch != nil {
			_, _ = out.WriteString(" ")
			p.stmt(out, s.ElseBranch)
		}
		_, _ = out.WriteString(")")
	default:
		panic(fmt.Sprintf("unexpected statement %T", stmt))
	}
}

func (p *AstPrinter) parenthesize(out *strings.Builder, name string, exprs ...Expr) {
	_, _ = out.WriteString("(")
	_, _ = out.WriteString(name)
	for _, expr := range exprs {
		_, _ = out.WriteString(" ")
		p.expr(out, expr)
	}
	_, _ = out.WriteString(")")
}
