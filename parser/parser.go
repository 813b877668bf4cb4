package parser

import (
	"strconv"

	"minty/scanner"
)

// Parser consumes tokens from the front of its queue. It never backtracks
// and looks at most one token ahead.
type Parser struct {
	tokens []scanner.Token
}

var (
	statementStarts = []scanner.Kind{scanner.Print, scanner.Return, scanner.If, scanner.While, scanner.For, scanner.Ident}
	assignOps       = []scanner.Kind{scanner.Inc, scanner.Dec, scanner.PlusAssign, scanner.MinusAssign, scanner.Assign}
	comparisons     = []scanner.Kind{scanner.Eq, scanner.Ne, scanner.Lt, scanner.Gt, scanner.Lte, scanner.Gte}
)

// Parse builds the program described by tokens. The first syntax error stops
// parsing and is returned as a *SyntaxError.
func Parse(tokens []scanner.Token) (prog *Program, err error) {
	p := &Parser{tokens: append([]scanner.Token(nil), tokens...)}
	defer func() {
		if r := recover(); r != nil {
			se, ok := r.(*SyntaxError)
			if !ok {
				panic(r)
			}
			prog, err = nil, se
		}
	}()
	return p.consumeProgram(), nil
}

func (p *Parser) fail(found scanner.Token, expected ...scanner.Kind) {
	panic(&SyntaxError{Found: found, Expected: expected})
}

func (p *Parser) failReason(found scanner.Token, reason string) {
	panic(&SyntaxError{Found: found, Reason: reason})
}

// peek returns the next token, or an EOF token once the queue is empty.
func (p *Parser) peek() scanner.Token {
	if len(p.tokens) == 0 {
		return scanner.Token{Kind: scanner.EOF}
	}
	return p.tokens[0]
}

func (p *Parser) consumeOne() scanner.Token {
	t := p.peek()
	if len(p.tokens) > 0 {
		p.tokens = p.tokens[1:]
	}
	return t
}

func (p *Parser) match(kinds ...scanner.Kind) bool {
	t := p.peek()
	for _, kind := range kinds {
		if t.Kind == kind {
			return true
		}
	}
	return false
}

// consume pops the next token, which must be one of kinds.
func (p *Parser) consume(kinds ...scanner.Kind) scanner.Token {
	if !p.match(kinds...) {
		p.fail(p.peek(), kinds...)
	}
	return p.consumeOne()
}

func (p *Parser) consumeProgram() *Program {
	prog := &Program{}
	for len(p.tokens) > 0 {
		prog.Functions = append(prog.Functions, p.consumeFunction())
	}
	return prog
}

func (p *Parser) consumeFunction() *Function {
	p.consume(scanner.Fn)
	fn := &Function{Name: p.consume(scanner.Ident).Lexeme}
	p.consume(scanner.LParen)
	t := p.consume(scanner.Ident, scanner.RParen)
	for t.Kind == scanner.Ident {
		fn.Params = append(fn.Params, t.Lexeme)
		if p.consume(scanner.Comma, scanner.RParen).Kind == scanner.RParen {
			break
		}
		t = p.consume(scanner.Ident)
	}
	fn.Body = p.consumeBlock()
	return fn
}

// consumeBlock parses '{' Stmt* '}'. Only print, return and assignment
// statements are terminated by ';'; the others end with their own '}'.
func (p *Parser) consumeBlock() []Stmt {
	var stmts []Stmt
	p.consume(scanner.LBrace)
	for !p.match(scanner.RBrace) {
		if !p.match(statementStarts...) {
			p.fail(p.peek(), append(statementStarts, scanner.RBrace)...)
		}
		needSemicolon := p.match(scanner.Print, scanner.Return, scanner.Ident)
		stmts = append(stmts, p.consumeStmt())
		if needSemicolon {
			p.consume(scanner.Semicolon)
		}
	}
	p.consumeOne()
	return stmts
}

func (p *Parser) consumeStmt() Stmt {
	t := p.consume(statementStarts...)
	switch t.Kind {
	case scanner.Print:
		return &Print{Value: p.consumeExpr()}
	case scanner.Return:
		return &Return{Value: p.consumeExpr()}
	case scanner.If:
		stmt := &If{Cond: p.consumeCondition()}
		stmt.Then = p.consumeBlock()
		p.consume(scanner.Else)
		stmt.Else = p.consumeBlock()
		return stmt
	case scanner.While:
		stmt := &While{Cond: p.consumeCondition()}
		stmt.Body = p.consumeBlock()
		return stmt
	case scanner.For:
		stmt := &For{Init: p.consumeForClause("assignment required in for-loop initialiser")}
		p.consume(scanner.Comma)
		stmt.Cond = p.consumeCondition()
		p.consume(scanner.Comma)
		stmt.Step = p.consumeForClause("assignment required in for-loop step")
		stmt.Body = p.consumeBlock()
		return stmt
	default:
		return p.consumeAssignment(t.Lexeme)
	}
}

// consumeForClause parses a full statement and then insists that it was an
// assignment.
func (p *Parser) consumeForClause(reason string) *Assignment {
	start := p.peek()
	stmt := p.consumeStmt()
	assign, ok := stmt.(*Assignment)
	if !ok {
		p.failReason(start, reason)
	}
	return assign
}

func (p *Parser) consumeAssignment(target string) *Assignment {
	op := p.consume(assignOps...)
	self := &Ident{Name: target}
	switch op.Kind {
	case scanner.Inc:
		return &Assignment{Target: target, Value: &Arithmetic{Left: self, Op: scanner.Plus, Right: &IntLiteral{Value: 1}}}
	case scanner.Dec:
		return &Assignment{Target: target, Value: &Arithmetic{Left: self, Op: scanner.Minus, Right: &IntLiteral{Value: 1}}}
	case scanner.PlusAssign:
		return &Assignment{Target: target, Value: &Arithmetic{Left: self, Op: scanner.Plus, Right: p.consumeExpr()}}
	case scanner.MinusAssign:
		return &Assignment{Target: target, Value: &Arithmetic{Left: self, Op: scanner.Minus, Right: p.consumeExpr()}}
	default:
		return &Assignment{Target: target, Value: p.consumeExpr()}
	}
}

// clause is an expression whose position is not yet known: either a value or
// a bare comparison, which is only legal as a condition.
type clause struct {
	value Expr
	cond  *Comparison
}

// consumeExpr parses an expression in a value position, where a comparison
// has to be the condition of a ternary.
func (p *Parser) consumeExpr() Expr {
	c := p.consumeClause()
	if c.cond != nil {
		p.fail(p.peek(), scanner.Question)
	}
	return c.value
}

func (p *Parser) consumeCondition() *Comparison {
	c := p.consumeClause()
	if c.cond == nil {
		p.fail(p.peek(), comparisons...)
	}
	return c.cond
}

// consumeClause parses Operand followed by an optional continuation. An
// arithmetic operator takes the whole expression on its right, so 1-2-3 is
// 1-(2-3) and 1+a<b?x:y is 1+(a<b?x:y). A comparator does the same and may
// then be followed by the branches of a ternary.
func (p *Parser) consumeClause() clause {
	left := p.consumeOperand()
	switch next := p.peek().Kind; {
	case left.cond != nil:
		if next == scanner.Question {
			return p.consumeTernary(left.cond)
		}
		return left
	case next.IsArithmetic():
		op := p.consumeOne().Kind
		return clause{value: &Arithmetic{Left: left.value, Op: op, Right: p.consumeExpr()}}
	case next.IsComparison():
		op := p.consumeOne().Kind
		cmp := &Comparison{Left: left.value, Op: op, Right: p.consumeExpr()}
		if p.match(scanner.Question) {
			return p.consumeTernary(cmp)
		}
		return clause{cond: cmp}
	default:
		return left
	}
}

func (p *Parser) consumeTernary(cond *Comparison) clause {
	p.consume(scanner.Question)
	then := p.consumeExpr()
	p.consume(scanner.Colon)
	return clause{value: &Ternary{Cond: cond, Then: then, Else: p.consumeExpr()}}
}

func (p *Parser) consumeOperand() clause {
	t := p.consume(scanner.Int, scanner.Ident, scanner.LParen)
	switch t.Kind {
	case scanner.Int:
		v, err := strconv.ParseInt(t.Lexeme, 10, 64)
		if err != nil {
			p.failReason(t, "integer literal out of range")
		}
		return clause{value: &IntLiteral{Value: v}}
	case scanner.Ident:
		if !p.match(scanner.LParen) {
			return clause{value: &Ident{Name: t.Lexeme}}
		}
		p.consumeOne()
		return clause{value: &Call{Name: t.Lexeme, Args: p.consumeArgs()}}
	default:
		inner := p.consumeClause()
		p.consume(scanner.RParen)
		return inner
	}
}

func (p *Parser) consumeArgs() []Expr {
	if p.match(scanner.RParen) {
		p.consumeOne()
		return nil
	}
	var args []Expr
	for {
		args = append(args, p.consumeExpr())
		if p.consume(scanner.Comma, scanner.RParen).Kind == scanner.RParen {
			return args
		}
	}
}
