package analysis

import (
	"fmt"

	"minty/parser"
)

// Diagnostic is a problem found without running the program. Calls are only
// resolved when executed, so a Diagnostic is a warning: the offending call
// may sit on a path that never runs.
type Diagnostic struct {
	Function string
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("in %s: %s", d.Function, d.Message)
}

// CheckCalls reports calls to undeclared functions and calls whose argument
// count does not match the callee, in declaration order.
func (t *Table) CheckCalls(prog *parser.Program) []Diagnostic {
	c := &callChecker{table: t}
	for _, fn := range prog.Functions {
		c.function = fn.Name
		c.stmts(fn.Body)
	}
	return c.diags
}

type callChecker struct {
	table    *Table
	function string
	diags    []Diagnostic
}

func (c *callChecker) report(format string, args ...interface{}) {
	c.diags = append(c.diags, Diagnostic{Function: c.function, Message: fmt.Sprintf(format, args...)})
}

func (c *callChecker) stmts(stmts []parser.Stmt) {
	for _, stmt := range stmts {
		c.stmt(stmt)
	}
}

func (c *callChecker) stmt(stmt parser.Stmt) {
	switch s := stmt.(type) {
	case *parser.Assignment:
		c.expr(s.Value)
	case *parser.Print:
		c.expr(s.Value)
	case *parser.Return:
		c.expr(s.Value)
	case *parser.If:
		c.comparison(s.Cond)
		c.stmts(s.Then)
		c.stmts(s.Else)
	case *parser.While:
		c.comparison(s.Cond)
		c.stmts(s.Body)
	case *parser.For:
		c.stmt(s.Init)
		c.comparison(s.Cond)
		c.stmt(s.Step)
		c.stmts(s.Body)
	}
}

func (c *callChecker) comparison(cmp *parser.Comparison) {
	c.expr(cmp.Left)
	c.expr(cmp.Right)
}

func (c *callChecker) expr(expr parser.Expr) {
	switch e := expr.(type) {
	case *parser.Arithmetic:
		c.expr(e.Left)
		c.expr(e.Right)
	case *parser.Ternary:
		c.comparison(e.Cond)
		c.expr(e.Then)
		c.expr(e.Else)
	case *parser.Call:
		for _, arg := range e.Args {
			c.expr(arg)
		}
		fn, ok := c.table.Lookup(e.Name)
		if !ok {
			c.report("call to undeclared function %q", e.Name)
			return
		}
		if len(e.Args) != len(fn.Params) {
			c.report("%s takes %d arguments, %d given", e.Name, len(fn.Params), len(e.Args))
		}
	}
}
