package parser

import (
	"github.com/leonardinius/golox/internal/token"
	"github.com/leonardinius/golox/internal/value"
)

// Expr is an expression node. The set of implementations is closed;
// consumers dispatch with a type switch over the Expr* types below.
type Expr interface {
	expr()
}

// Stmt is a statement node. The set of implementations is closed;
// consumers dispatch with a type switch over the Stmt* types below.
type Stmt interface {
	stmt()
}

type ExprLiteral struct {
	Value value.Value
}

type ExprVariable struct {
	Name *token.Token
}

type ExprAssign struct {
	Name  *token.Token
	Value Expr
}

type ExprGrouping struct {
	Expression Expr
}

type ExprUnary struct {
	Operator *token.Token
	Right    Expr
}

type ExprBinary struct {
	Left     Expr
	Operator *token.Token
	Right    Expr
}

// ExprLogical is a short-circuiting 'and' / 'or'.
type ExprLogical struct {
	Left     Expr
	Operator *token.Token
	Right    Expr
}

type StmtExpression struct {
	Expression Expr
}

type StmtPrint struct {
	Expression Expr
}

// StmtVar declares a variable in the current scope.
// A nil Initializer defines the variable as nil.
type StmtVar struct {
	Name        *token.Token
	Initializer Expr
}

type StmtBlock struct {
	Statements []Stmt
}

// StmtIf has an optional ElseBranch.
type StmtIf struct {
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt
}

func (*ExprLiteral) expr()  {}
func (*ExprVariable) expr() {}
func (*ExprAssign) expr()   {}
func (*ExprGrouping) expr() {}
func (*ExprUnary) expr()    {}
func (*ExprBinary) expr()   {}
func (*ExprLogical) expr()  {}

func (*StmtExpression) stmt() {}
func (*StmtPrint) stmt()      {}
func (*StmtVar) stmt()        {}
func (*StmtBlock) stmt()      {}
func (*StmtIf) stmt()         {}

var (
	_ Expr = (*ExprLiteral)(nil)
	_ Expr = (*ExprVariable)(nil)
	_ Expr = (*ExprAssign)(nil)
	_ Expr = (*ExprGrouping)(nil)
	_ Expr = (*ExprUnary)(nil)
	_ Expr = (*ExprBinary)(nil)
	_ Expr = (*ExprLogical)(nil)

	_ Stmt = (*StmtExpression)(nil)
	_ Stmt = (*StmtPrint)(nil)
	_ Stmt = (*StmtVar)(nil)
	_ Stmt = (*StmtBlock)(nil)
	_ Stmt = (*StmtIf)(nil)
)
