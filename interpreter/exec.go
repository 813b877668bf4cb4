package interpreter

import (
	"fmt"

	"golang.org/x/xerrors"

	"minty/parser"
)

// flow tells a statement list whether to carry on with its next statement
// or to unwind because the activation returned value.
type flow struct {
	returned bool
	value    int64
}

var proceed = flow{}

func (i *Interpreter) execBlock(stmts []parser.Stmt, sc *scope) (flow, error) {
	for _, stmt := range stmts {
		f, err := i.exec(stmt, sc)
		if err != nil || f.returned {
			return f, err
		}
	}
	return proceed, nil
}

func (i *Interpreter) exec(stmt parser.Stmt, sc *scope) (flow, error) {
	switch s := stmt.(type) {
	case *parser.Assignment:
		return proceed, i.assign(s, sc)
	case *parser.Print:
		v, err := i.eval(s.Value, sc)
		if err != nil {
			return proceed, err
		}
		if err := i.out.Print(v); err != nil {
			return proceed, xerrors.Errorf("print: %w", err)
		}
		return proceed, nil
	case *parser.Return:
		v, err := i.eval(s.Value, sc)
		if err != nil {
			return proceed, err
		}
		return flow{returned: true, value: v}, nil
	case *parser.If:
		inner := sc.child()
		ok, err := i.test(s.Cond, inner)
		if err != nil {
			return proceed, err
		}
		if ok {
			return i.execBlock(s.Then, inner)
		}
		return i.execBlock(s.Else, inner)
	case *parser.While:
		inner := sc.child()
		for {
			ok, err := i.test(s.Cond, inner)
			if err != nil || !ok {
				return proceed, err
			}
			f, err := i.execBlock(s.Body, inner)
			if err != nil || f.returned {
				return f, err
			}
		}
	case *parser.For:
		inner := sc.child()
		if err := i.assign(s.Init, inner); err != nil {
			return proceed, err
		}
		for {
			ok, err := i.test(s.Cond, inner)
			if err != nil || !ok {
				return proceed, err
			}
			f, err := i.execBlock(s.Body, inner)
			if err != nil || f.returned {
				return f, err
			}
			if err := i.assign(s.Step, inner); err != nil {
				return proceed, err
			}
		}
	default:
		panic(fmt.Sprintf("interpreter: unexpected statement %T", stmt))
	}
}

func (i *Interpreter) assign(a *parser.Assignment, sc *scope) error {
	v, err := i.eval(a.Value, sc)
	if err != nil {
		return err
	}
	sc.set(a.Target, v)
	return nil
}
