package scanner

import "fmt"

// Error is a run of source text that does not start a valid lexeme.
type Error struct {
	Text string
	Row  int
	Col  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: lexical error: %q is not a valid lexeme", e.Row, e.Col, e.Text)
}

// ErrorList is every lexical error found by one Scan, in source order.
type ErrorList []*Error

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no lexical errors"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0], len(l)-1)
}

type cursor struct {
	src string
	pos int
	row int
	col int
}

func (c *cursor) advance() {
	if c.src[c.pos] == '\n' {
		c.row++
		c.col = 1
	} else {
		c.col++
	}
	c.pos++
}

func (c *cursor) skipWhitespace() {
	for c.pos < len(c.src) && isSpace(c.src[c.pos]) {
		c.advance()
	}
}

// scanOne walks the automaton from the current position as far as it can go
// and classifies what was consumed.
func (c *cursor) scanOne() (Token, *Error) {
	begin, row, col := c.pos, c.row, c.col
	cur := startState
	for c.pos < len(c.src) {
		nxt := machine.step(cur, c.src[c.pos])
		if nxt == noState {
			break
		}
		cur = nxt
		c.advance()
	}

	if machine.accepting[cur] {
		tok := Token{Kind: machine.kinds[cur], Row: row, Col: col}
		if tok.Kind.HasPayload() {
			tok.Lexeme = c.src[begin:c.pos]
		}
		return tok, nil
	}

	for c.pos < len(c.src) && !inAlphabet(c.src[c.pos]) && !isSpace(c.src[c.pos]) {
		c.advance()
	}
	return Token{}, &Error{Text: c.src[begin:c.pos], Row: row, Col: col}
}

// Scan splits src into tokens using maximal munch. If any part of src is not
// lexically valid, the tokens are discarded and every error is returned as an
// ErrorList instead.
func Scan(src string) ([]Token, error) {
	var (
		tokens []Token
		errs   ErrorList
		c      = cursor{src: src, row: 1, col: 1}
	)
	for {
		c.skipWhitespace()
		if c.pos >= len(c.src) {
			break
		}
		tok, err := c.scanOne()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		tokens = append(tokens, tok)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return tokens, nil
}
