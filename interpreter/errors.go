package interpreter

import (
	"fmt"
	"strings"

	"golang.org/x/xerrors"

	"minty/scanner"
)

// Trace locates a runtime error: Stack holds the names of the active calls,
// outermost first, when the error was raised.
type Trace struct {
	Stack []string
	frame xerrors.Frame
}

// Function returns the innermost active function, or "" outside any call.
func (t Trace) Function() string {
	if len(t.Stack) == 0 {
		return ""
	}
	return t.Stack[len(t.Stack)-1]
}

func (t Trace) prefix(p xerrors.Printer) {
	if fn := t.Function(); fn != "" {
		p.Printf("%s: ", fn)
	}
}

func (t Trace) detail(p xerrors.Printer) {
	if !p.Detail() {
		return
	}
	if len(t.Stack) > 0 {
		p.Printf("\ncall stack: %s", strings.Join(t.Stack, " -> "))
	}
	t.frame.Format(p)
}

// UndeclaredFunctionError reports a call to a name with no declaration.
type UndeclaredFunctionError struct {
	Name string
	Trace
}

func (e *UndeclaredFunctionError) Error() string              { return fmt.Sprint(e) }
func (e *UndeclaredFunctionError) Format(s fmt.State, v rune) { xerrors.FormatError(e, s, v) }

func (e *UndeclaredFunctionError) FormatError(p xerrors.Printer) error {
	e.prefix(p)
	p.Printf("call to undeclared function %q", e.Name)
	e.detail(p)
	return nil
}

// ArityError reports a call with the wrong number of arguments.
type ArityError struct {
	Name string
	Want int
	Got  int
	Trace
}

func (e *ArityError) Error() string              { return fmt.Sprint(e) }
func (e *ArityError) Format(s fmt.State, v rune) { xerrors.FormatError(e, s, v) }

func (e *ArityError) FormatError(p xerrors.Printer) error {
	e.prefix(p)
	p.Printf("%s takes %d arguments, %d given", e.Name, e.Want, e.Got)
	e.detail(p)
	return nil
}

// UndeclaredVariableError reports a read of a name not bound in scope.
type UndeclaredVariableError struct {
	Name string
	Trace
}

func (e *UndeclaredVariableError) Error() string              { return fmt.Sprint(e) }
func (e *UndeclaredVariableError) Format(s fmt.State, v rune) { xerrors.FormatError(e, s, v) }

func (e *UndeclaredVariableError) FormatError(p xerrors.Printer) error {
	e.prefix(p)
	p.Printf("variable %q is not declared in this scope", e.Name)
	e.detail(p)
	return nil
}

// MissingReturnError reports a function body that finished without
// executing a return statement.
type MissingReturnError struct {
	Name string
	Trace
}

func (e *MissingReturnError) Error() string              { return fmt.Sprint(e) }
func (e *MissingReturnError) Format(s fmt.State, v rune) { xerrors.FormatError(e, s, v) }

func (e *MissingReturnError) FormatError(p xerrors.Printer) error {
	e.prefix(p)
	p.Printf("function %s did not return", e.Name)
	e.detail(p)
	return nil
}

// ArithmeticError reports division or modulo by zero.
type ArithmeticError struct {
	Op scanner.Kind
	Trace
}

func (e *ArithmeticError) Error() string              { return fmt.Sprint(e) }
func (e *ArithmeticError) Format(s fmt.State, v rune) { xerrors.FormatError(e, s, v) }

func (e *ArithmeticError) FormatError(p xerrors.Printer) error {
	e.prefix(p)
	if e.Op == scanner.Percent {
		p.Print("modulo by zero")
	} else {
		p.Print("division by zero")
	}
	e.detail(p)
	return nil
}

// DepthError reports a call that would exceed the configured maximum call
// depth.
type DepthError struct {
	Limit int
	Trace
}

func (e *DepthError) Error() string              { return fmt.Sprint(e) }
func (e *DepthError) Format(s fmt.State, v rune) { xerrors.FormatError(e, s, v) }

func (e *DepthError) FormatError(p xerrors.Printer) error {
	e.prefix(p)
	p.Printf("maximum call depth %d exceeded", e.Limit)
	e.detail(p)
	return nil
}
