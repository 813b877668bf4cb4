package parser

import "minty/scanner"

// Stmt is one of *Assignment, *Print, *Return, *If, *While or *For.
type Stmt interface {
	stmtNode()
}

// Expr is one of *IntLiteral, *Ident, *Arithmetic, *Call or *Ternary.
// A *Comparison is not an Expr: it only ever appears as a condition.
type Expr interface {
	exprNode()
}

type Program struct {
	Functions []*Function
}

type Function struct {
	Name   string
	Params []string
	Body   []Stmt
}

type Assignment struct {
	Target string
	Value  Expr
}

type Print struct{ Value Expr }

type Return struct{ Value Expr }

// If always has an else branch in source, but the branch may be empty.
type If struct {
	Cond *Comparison
	Then []Stmt
	Else []Stmt
}

type While struct {
	Cond *Comparison
	Body []Stmt
}

type For struct {
	Init *Assignment
	Cond *Comparison
	Step *Assignment
	Body []Stmt
}

type IntLiteral struct{ Value int64 }

type Ident struct{ Name string }

// Arithmetic applies one of + - * / % to two operands.
type Arithmetic struct {
	Left  Expr
	Op    scanner.Kind
	Right Expr
}

type Call struct {
	Name string
	Args []Expr
}

type Ternary struct {
	Cond *Comparison
	Then Expr
	Else Expr
}

// Comparison applies one of = != < > <= >= to two operands.
type Comparison struct {
	Left  Expr
	Op    scanner.Kind
	Right Expr
}

func (*Assignment) stmtNode() {}
func (*Print) stmtNode()      {}
func (*Return) stmtNode()     {}
func (*If) stmtNode()         {}
func (*While) stmtNode()      {}
func (*For) stmtNode()        {}

func (*IntLiteral) exprNode() {}
func (*Ident) exprNode()      {}
func (*Arithmetic) exprNode() {}
func (*Call) exprNode()       {}
func (*Ternary) exprNode()    {}
