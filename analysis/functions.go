package analysis

import (
	"fmt"
	"sort"

	"golang.org/x/xerrors"

	"minty/parser"
)

// Main is the name of the function a program starts in.
const Main = "main"

// ErrNoMain is returned by Load for programs without a main function.
var ErrNoMain = xerrors.New("no main function declared")

// DuplicateFunctionError reports a second declaration of a function name.
type DuplicateFunctionError struct {
	Name string
}

func (e *DuplicateFunctionError) Error() string {
	return fmt.Sprintf("function %q declared more than once", e.Name)
}

// Table maps function names to declarations. It is filled once by Load and
// is read-only afterwards, so one Table may back any number of runs.
type Table struct {
	functions map[string]*parser.Function
}

// Load registers every function of prog.
func Load(prog *parser.Program) (*Table, error) {
	t := &Table{functions: make(map[string]*parser.Function, len(prog.Functions))}
	for _, fn := range prog.Functions {
		if err := t.addFunction(fn); err != nil {
			return nil, err
		}
	}
	if _, ok := t.functions[Main]; !ok {
		return nil, ErrNoMain
	}
	return t, nil
}

func (t *Table) addFunction(fn *parser.Function) error {
	if _, ok := t.functions[fn.Name]; ok {
		return &DuplicateFunctionError{Name: fn.Name}
	}
	t.functions[fn.Name] = fn
	return nil
}

// Lookup returns the function declared as name.
func (t *Table) Lookup(name string) (*parser.Function, bool) {
	fn, ok := t.functions[name]
	return fn, ok
}

// Names returns the declared function names in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.functions))
	for name := range t.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
