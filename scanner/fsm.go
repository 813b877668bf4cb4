package scanner

import "sort"

// state indexes a row of the transition table. noState marks a missing
// transition.
type state int

const noState state = -1

// automaton is the deterministic finite-state machine behind Scan. Fixed
// lexemes form a trie rooted at the start state; trie states spelled only
// with identifier characters fall through to the identifier state, which is
// how keywords and identifiers are told apart.
type automaton struct {
	next      [][128]state
	accepting []bool
	kinds     []Kind
	word      []bool
}

const (
	startState state = iota
	identState
	intState
)

var machine = buildAutomaton()

func (a *automaton) add(accepting bool, kind Kind, word bool) state {
	var row [128]state
	for i := range row {
		row[i] = noState
	}
	a.next = append(a.next, row)
	a.accepting = append(a.accepting, accepting)
	a.kinds = append(a.kinds, kind)
	a.word = append(a.word, word)
	return state(len(a.next) - 1)
}

func buildAutomaton() *automaton {
	a := &automaton{}
	a.add(false, 0, false)
	a.add(true, Ident, true)
	a.add(true, Int, false)

	lexemes := make([]string, 0, len(fixed))
	for lexeme := range fixed {
		lexemes = append(lexemes, lexeme)
	}
	sort.Strings(lexemes)

	for _, lexeme := range lexemes {
		cur := startState
		for i := 0; i < len(lexeme); i++ {
			ch := lexeme[i]
			nxt := a.next[cur][ch]
			if nxt == noState {
				nxt = a.add(false, 0, a.word[cur] || cur == startState && isLetter(ch))
				a.next[cur][ch] = nxt
			}
			cur = nxt
		}
		a.accepting[cur] = true
		a.kinds[cur] = fixed[lexeme]
	}

	for s := range a.next {
		if !a.word[s] {
			continue
		}
		if !a.accepting[s] {
			a.accepting[s] = true
			a.kinds[s] = Ident
		}
		for ch := 0; ch < 128; ch++ {
			if isIdentChar(byte(ch)) && a.next[s][ch] == noState {
				a.next[s][ch] = identState
			}
		}
	}

	for ch := 0; ch < 128; ch++ {
		c := byte(ch)
		switch {
		case isLetter(c) && a.next[startState][ch] == noState:
			a.next[startState][ch] = identState
		case isDigit(c):
			a.next[startState][ch] = intState
			a.next[intState][ch] = intState
		}
	}
	return a
}

func (a *automaton) step(s state, ch byte) state {
	if ch >= 128 {
		return noState
	}
	return a.next[s][ch]
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

// inAlphabet reports whether ch may appear in some lexeme.
func inAlphabet(ch byte) bool {
	if isIdentChar(ch) {
		return true
	}
	switch ch {
	case '{', '}', '(', ')', '*', '/', '%', ':', ';', '?', ',', '<', '>', '=', '+', '-', '!':
		return true
	}
	return false
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
