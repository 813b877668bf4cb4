package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kr/text"
)

// Format renders prog as source text that parses back to an equal tree.
// Operands are parenthesised only where the grammar would otherwise group
// them differently.
func Format(prog *Program) string {
	var b strings.Builder
	for i, fn := range prog.Functions {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "fn %s(%s) %s\n", fn.Name, strings.Join(fn.Params, ", "), formatBlock(fn.Body))
	}
	return b.String()
}

func formatBlock(stmts []Stmt) string {
	if len(stmts) == 0 {
		return "{}"
	}
	var b strings.Builder
	for _, stmt := range stmts {
		b.WriteString(formatStmt(stmt))
		b.WriteByte('\n')
	}
	return "{\n" + text.Indent(b.String(), "\t") + "}"
}

func formatStmt(stmt Stmt) string {
	switch s := stmt.(type) {
	case *Assignment:
		return formatAssignment(s) + ";"
	case *Print:
		return "print " + FormatExpr(s.Value) + ";"
	case *Return:
		return "return " + FormatExpr(s.Value) + ";"
	case *If:
		return fmt.Sprintf("if %s %s else %s", FormatComparison(s.Cond), formatBlock(s.Then), formatBlock(s.Else))
	case *While:
		return fmt.Sprintf("while %s %s", FormatComparison(s.Cond), formatBlock(s.Body))
	case *For:
		return fmt.Sprintf("for %s, %s, %s %s",
			formatAssignment(s.Init), FormatComparison(s.Cond), formatAssignment(s.Step), formatBlock(s.Body))
	default:
		panic(fmt.Sprintf("parser: unexpected statement %T", stmt))
	}
}

func formatAssignment(a *Assignment) string {
	return a.Target + " <- " + FormatExpr(a.Value)
}

// FormatExpr renders a single expression.
func FormatExpr(expr Expr) string {
	switch e := expr.(type) {
	case *IntLiteral:
		return strconv.FormatInt(e.Value, 10)
	case *Ident:
		return e.Name
	case *Call:
		args := make([]string, len(e.Args))
		for i, arg := range e.Args {
			args[i] = FormatExpr(arg)
		}
		return e.Name + "(" + strings.Join(args, ", ") + ")"
	case *Arithmetic:
		return formatOperand(e.Left) + " " + e.Op.String() + " " + FormatExpr(e.Right)
	case *Ternary:
		return FormatComparison(e.Cond) + " ? " + FormatExpr(e.Then) + " : " + FormatExpr(e.Else)
	default:
		panic(fmt.Sprintf("parser: unexpected expression %T", expr))
	}
}

// FormatComparison renders a condition.
func FormatComparison(c *Comparison) string {
	right := FormatExpr(c.Right)
	if endsInTernary(c.Right) {
		right = "(" + right + ")"
	}
	return formatOperand(c.Left) + " " + c.Op.String() + " " + right
}

// formatOperand renders the left side of an operator. Operators take
// everything to their right, so a compound left side needs grouping.
func formatOperand(expr Expr) string {
	switch expr.(type) {
	case *Arithmetic, *Ternary:
		return "(" + FormatExpr(expr) + ")"
	}
	return FormatExpr(expr)
}

func endsInTernary(expr Expr) bool {
	for {
		switch e := expr.(type) {
		case *Ternary:
			return true
		case *Arithmetic:
			expr = e.Right
		default:
			return false
		}
	}
}
