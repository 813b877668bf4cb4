package parser

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minty/scanner"
)

func parse(t *testing.T, src string) *Program {
	t.Helper()
	tokens, err := scanner.Scan(src)
	require.NoError(t, err)
	prog, err := Parse(tokens)
	require.NoError(t, err, "source:\n%s", src)
	return prog
}

func parseErr(t *testing.T, src string) *SyntaxError {
	t.Helper()
	tokens, err := scanner.Scan(src)
	require.NoError(t, err)
	prog, err := Parse(tokens)
	require.Nil(t, prog)
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	return se
}

// body parses src as the body of a function and returns its statements.
func body(t *testing.T, src string) []Stmt {
	t.Helper()
	prog := parse(t, "fn main() {"+src+"}")
	require.Len(t, prog.Functions, 1)
	return prog.Functions[0].Body
}

func expr(t *testing.T, src string) Expr {
	t.Helper()
	stmts := body(t, "return "+src+";")
	require.Len(t, stmts, 1)
	return stmts[0].(*Return).Value
}

func assertTree(t *testing.T, want, got interface{}) {
	t.Helper()
	if diff := pretty.Diff(want, got); len(diff) > 0 {
		t.Errorf("tree mismatch:\n%s", pretty.Sprint(diff))
	}
}

func lit(v int64) *IntLiteral { return &IntLiteral{Value: v} }
func id(name string) *Ident   { return &Ident{Name: name} }
func arith(l Expr, op scanner.Kind, r Expr) *Arithmetic {
	return &Arithmetic{Left: l, Op: op, Right: r}
}
func cmp(l Expr, op scanner.Kind, r Expr) *Comparison {
	return &Comparison{Left: l, Op: op, Right: r}
}

func TestParseFunctions(t *testing.T) {
	prog := parse(t, `
		fn main() {
			return hundred();
		}

		fn add(a, b) {
			return a + b;
		}

		fn empty() {}
	`)
	assertTree(t, &Program{Functions: []*Function{
		{Name: "main", Body: []Stmt{&Return{Value: &Call{Name: "hundred"}}}},
		{Name: "add", Params: []string{"a", "b"}, Body: []Stmt{
			&Return{Value: arith(id("a"), scanner.Plus, id("b"))},
		}},
		{Name: "empty"},
	}}, prog)
}

func TestParseEmptyProgram(t *testing.T) {
	prog, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, prog.Functions)
}

func TestParseAssignments(t *testing.T) {
	stmts := body(t, `x++; x--; x += 2; x -= y; x <- 7;`)
	x := id("x")
	assertTree(t, []Stmt{
		&Assignment{Target: "x", Value: arith(x, scanner.Plus, lit(1))},
		&Assignment{Target: "x", Value: arith(x, scanner.Minus, lit(1))},
		&Assignment{Target: "x", Value: arith(x, scanner.Plus, lit(2))},
		&Assignment{Target: "x", Value: arith(x, scanner.Minus, id("y"))},
		&Assignment{Target: "x", Value: lit(7)},
	}, stmts)
}

func TestParseArithmeticIsRightAssociative(t *testing.T) {
	tests := []struct {
		src  string
		want Expr
	}{
		{"1 + 2 + 3", arith(lit(1), scanner.Plus, arith(lit(2), scanner.Plus, lit(3)))},
		{"10 - 2 - 3", arith(lit(10), scanner.Minus, arith(lit(2), scanner.Minus, lit(3)))},
		{"2 * 3 + 4", arith(lit(2), scanner.Star, arith(lit(3), scanner.Plus, lit(4)))},
		{"(1 + 2) * 3", arith(arith(lit(1), scanner.Plus, lit(2)), scanner.Star, lit(3))},
		{"a % (b)", arith(id("a"), scanner.Percent, id("b"))},
		{"f(1, g(x) / 2)", &Call{Name: "f", Args: []Expr{
			lit(1), arith(&Call{Name: "g", Args: []Expr{id("x")}}, scanner.Slash, lit(2)),
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assertTree(t, tt.want, expr(t, tt.src))
		})
	}
}

func TestParseTernary(t *testing.T) {
	assertTree(t, arith(lit(1), scanner.Plus, arith(lit(2), scanner.Plus, &Ternary{
		Cond: cmp(lit(3), scanner.Lt, lit(4)),
		Then: lit(1),
		Else: arith(lit(2), scanner.Star, arith(lit(2), scanner.Slash, arith(lit(7), scanner.Percent, lit(6)))),
	})), expr(t, "1 + 2 + 3 < 4 ? 1 : 2 * 2 / 7 % 6"))

	assertTree(t, &Ternary{
		Cond: cmp(id("a"), scanner.Eq, lit(0)),
		Then: &Ternary{Cond: cmp(id("b"), scanner.Ne, lit(0)), Then: lit(1), Else: lit(2)},
		Else: lit(3),
	}, expr(t, "a = 0 ? b != 0 ? 1 : 2 : 3"))

	assertTree(t, arith(lit(1), scanner.Plus, &Ternary{
		Cond: cmp(id("a"), scanner.Gte, id("b")), Then: id("a"), Else: id("b"),
	}), expr(t, "1 + (a >= b ? a : b)"))
}

func TestParseComparatorBindsInnermost(t *testing.T) {
	tests := []struct {
		src  string
		want Expr
	}{
		{"1 + 1 < 3 ? 10 : 20", arith(lit(1), scanner.Plus,
			&Ternary{Cond: cmp(lit(1), scanner.Lt, lit(3)), Then: lit(10), Else: lit(20)})},
		{"(1 + 1) < 3 ? 10 : 20",
			&Ternary{Cond: cmp(arith(lit(1), scanner.Plus, lit(1)), scanner.Lt, lit(3)), Then: lit(10), Else: lit(20)}},
		{"a < b + 1 ? x : y",
			&Ternary{Cond: cmp(id("a"), scanner.Lt, arith(id("b"), scanner.Plus, lit(1))), Then: id("x"), Else: id("y")}},
		{"(a < b) ? x : y",
			&Ternary{Cond: cmp(id("a"), scanner.Lt, id("b")), Then: id("x"), Else: id("y")}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assertTree(t, tt.want, expr(t, tt.src))
		})
	}
}

func TestParseControlStatements(t *testing.T) {
	stmts := body(t, `
		if x = 0 { print 1; } else {}
		while (n < 10) { n += 3; }
		for i <- 0, i <= 9, i++ { print i; }
		return n;
	`)
	assertTree(t, []Stmt{
		&If{Cond: cmp(id("x"), scanner.Eq, lit(0)), Then: []Stmt{&Print{Value: lit(1)}}},
		&While{Cond: cmp(id("n"), scanner.Lt, lit(10)), Body: []Stmt{
			&Assignment{Target: "n", Value: arith(id("n"), scanner.Plus, lit(3))},
		}},
		&For{
			Init: &Assignment{Target: "i", Value: lit(0)},
			Cond: cmp(id("i"), scanner.Lte, lit(9)),
			Step: &Assignment{Target: "i", Value: arith(id("i"), scanner.Plus, lit(1))},
			Body: []Stmt{&Print{Value: id("i")}},
		},
		&Return{Value: id("n")},
	}, stmts)
}

func TestParseConditionWithParenthesisedOperand(t *testing.T) {
	stmts := body(t, `while (a + 1) > b * 2 { a++; } if ((a + 1) * 2) > b + 1 {} else {}`)
	require.Len(t, stmts, 2)
	assertTree(t, cmp(arith(id("a"), scanner.Plus, lit(1)), scanner.Gt, arith(id("b"), scanner.Star, lit(2))),
		stmts[0].(*While).Cond)
	assertTree(t, cmp(arith(arith(id("a"), scanner.Plus, lit(1)), scanner.Star, lit(2)), scanner.Gt,
		arith(id("b"), scanner.Plus, lit(1))), stmts[1].(*If).Cond)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		found    scanner.Kind
		expected []scanner.Kind
	}{
		{"missing fn", "main() {}", scanner.Ident, []scanner.Kind{scanner.Fn}},
		{"missing name", "fn () {}", scanner.LParen, []scanner.Kind{scanner.Ident}},
		{"bad parameter list", "fn f(a b) {}", scanner.Ident, []scanner.Kind{scanner.Comma, scanner.RParen}},
		{"trailing comma", "fn f(a,) {}", scanner.RParen, []scanner.Kind{scanner.Ident}},
		{"missing semicolon", "fn f() { return 1 }", scanner.RBrace, []scanner.Kind{scanner.Semicolon}},
		{"semicolon after if", "fn f() { if a < b {} else {}; }", scanner.Semicolon,
			[]scanner.Kind{scanner.Print, scanner.Return, scanner.If, scanner.While, scanner.For, scanner.Ident, scanner.RBrace}},
		{"missing else", "fn f() { if a < b {} return 1; }", scanner.Return, []scanner.Kind{scanner.Else}},
		{"bare comparison value", "fn f() { return a < b; }", scanner.Semicolon, []scanner.Kind{scanner.Question}},
		{"condition without comparator", "fn f() { while a + 1 {} }", scanner.LBrace,
			[]scanner.Kind{scanner.Eq, scanner.Ne, scanner.Lt, scanner.Gt, scanner.Lte, scanner.Gte}},
		{"ternary as condition", "fn f() { if a < b ? 1 : 2 {} else {} }", scanner.LBrace,
			[]scanner.Kind{scanner.Eq, scanner.Ne, scanner.Lt, scanner.Gt, scanner.Lte, scanner.Gte}},
		{"chained comparison", "fn f() { if a < b < c {} else {} }", scanner.LBrace, []scanner.Kind{scanner.Question}},
		{"comparison inside arithmetic condition", "fn f() { if x + 1 < 3 {} else {} }", scanner.LBrace,
			[]scanner.Kind{scanner.Question}},
		{"parenthesised comparison in arithmetic", "fn f() { return (a < b) + 1; }", scanner.Plus,
			[]scanner.Kind{scanner.Question}},
		{"bad assignment operator", "fn f() { x = 1; }", scanner.Eq,
			[]scanner.Kind{scanner.Inc, scanner.Dec, scanner.PlusAssign, scanner.MinusAssign, scanner.Assign}},
		{"missing operand", "fn f() { return 1 + ; }", scanner.Semicolon,
			[]scanner.Kind{scanner.Int, scanner.Ident, scanner.LParen}},
		{"unclosed call", "fn f() { return g(1 2); }", scanner.Int, []scanner.Kind{scanner.Comma, scanner.RParen}},
		{"missing colon", "fn f() { return a < b ? 1 2; }", scanner.Int, []scanner.Kind{scanner.Colon}},
		{"unexpected end", "fn f() { return 1;", scanner.EOF,
			[]scanner.Kind{scanner.Print, scanner.Return, scanner.If, scanner.While, scanner.For, scanner.Ident, scanner.RBrace}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			se := parseErr(t, tt.src)
			assert.Equal(t, tt.found, se.Found.Kind)
			assert.Equal(t, tt.expected, se.Expected)
			assert.Empty(t, se.Reason)
		})
	}
}

func TestParseForClauseMustAssign(t *testing.T) {
	se := parseErr(t, "fn f() { for print 1, i < 3, i++ {} }")
	assert.Equal(t, scanner.Print, se.Found.Kind)
	assert.Equal(t, "assignment required in for-loop initialiser", se.Reason)

	se = parseErr(t, "fn f() { for i <- 0, i < 3, return 1 {} }")
	assert.Equal(t, scanner.Return, se.Found.Kind)
	assert.Equal(t, "assignment required in for-loop step", se.Reason)
}

func TestParseLiteralOutOfRange(t *testing.T) {
	se := parseErr(t, "fn f() { return 99999999999999999999; }")
	assert.Equal(t, "integer literal out of range", se.Reason)
	assert.Equal(t, "99999999999999999999", se.Found.Lexeme)
}

func TestSyntaxErrorMessage(t *testing.T) {
	se := parseErr(t, "fn f() {\n  return 1 }")
	assert.Equal(t, `2:12: syntax error: "}" found, ";" expected`, se.Error())

	se = parseErr(t, "fn f(")
	assert.Equal(t, `syntax error: end of input found, identifier or ")" expected`, se.Error())
}

func TestParseDoesNotConsumeCallerTokens(t *testing.T) {
	tokens, err := scanner.Scan("fn main() { return 0; }")
	require.NoError(t, err)
	n := len(tokens)
	_, err = Parse(tokens)
	require.NoError(t, err)
	assert.Len(t, tokens, n)
	assert.Equal(t, scanner.Fn, tokens[0].Kind)
}
