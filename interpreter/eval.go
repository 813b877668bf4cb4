package interpreter

import (
	"fmt"

	"minty/parser"
	"minty/scanner"
)

func (i *Interpreter) eval(expr parser.Expr, sc *scope) (int64, error) {
	switch e := expr.(type) {
	case *parser.IntLiteral:
		return e.Value, nil
	case *parser.Ident:
		v, ok := sc.get(e.Name)
		if !ok {
			return 0, &UndeclaredVariableError{Name: e.Name, Trace: i.trace()}
		}
		return v, nil
	case *parser.Arithmetic:
		left, err := i.eval(e.Left, sc)
		if err != nil {
			return 0, err
		}
		right, err := i.eval(e.Right, sc)
		if err != nil {
			return 0, err
		}
		return i.arithmetic(e.Op, left, right)
	case *parser.Call:
		args := make([]int64, len(e.Args))
		for n, arg := range e.Args {
			v, err := i.eval(arg, sc)
			if err != nil {
				return 0, err
			}
			args[n] = v
		}
		return i.call(e.Name, args)
	case *parser.Ternary:
		ok, err := i.test(e.Cond, sc)
		if err != nil {
			return 0, err
		}
		if ok {
			return i.eval(e.Then, sc)
		}
		return i.eval(e.Else, sc)
	default:
		panic(fmt.Sprintf("interpreter: unexpected expression %T", expr))
	}
}

// arithmetic follows Go's int64 semantics: results wrap on overflow,
// division truncates toward zero and a remainder takes the dividend's sign.
func (i *Interpreter) arithmetic(op scanner.Kind, left, right int64) (int64, error) {
	switch op {
	case scanner.Plus:
		return left + right, nil
	case scanner.Minus:
		return left - right, nil
	case scanner.Star:
		return left * right, nil
	case scanner.Slash, scanner.Percent:
		if right == 0 {
			return 0, &ArithmeticError{Op: op, Trace: i.trace()}
		}
		if op == scanner.Slash {
			return left / right, nil
		}
		return left % right, nil
	default:
		panic(fmt.Sprintf("interpreter: unexpected arithmetic operator %s", op))
	}
}

func (i *Interpreter) test(cmp *parser.Comparison, sc *scope) (bool, error) {
	left, err := i.eval(cmp.Left, sc)
	if err != nil {
		return false, err
	}
	right, err := i.eval(cmp.Right, sc)
	if err != nil {
		return false, err
	}
	switch cmp.Op {
	case scanner.Eq:
		return left == right, nil
	case scanner.Ne:
		return left != right, nil
	case scanner.Lt:
		return left < right, nil
	case scanner.Gt:
		return left > right, nil
	case scanner.Lte:
		return left <= right, nil
	case scanner.Gte:
		return left >= right, nil
	default:
		panic(fmt.Sprintf("interpreter: unexpected comparison operator %s", cmp.Op))
	}
}
