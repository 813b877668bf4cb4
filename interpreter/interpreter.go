// Package interpreter executes parsed programs by walking their syntax trees.
package interpreter

import (
	"os"

	"golang.org/x/xerrors"

	"minty/analysis"
	"minty/parser"
)

// Interpreter runs the functions of one Table. It is not safe for concurrent
// use; distinct Interpreters may share a Table.
type Interpreter struct {
	table  *analysis.Table
	out    Output
	config Config
	stack  []string
}

type Option func(*Interpreter)

// WithOutput sends printed values to out instead of standard output.
func WithOutput(out Output) Option {
	return func(i *Interpreter) { i.out = out }
}

// WithMaxDepth bounds the call depth; see Config.MaxDepth.
func WithMaxDepth(n int) Option {
	return func(i *Interpreter) { i.config.MaxDepth = n }
}

func WithConfig(cfg Config) Option {
	return func(i *Interpreter) { i.config = cfg }
}

func New(table *analysis.Table, opts ...Option) *Interpreter {
	i := &Interpreter{
		table: table,
		out:   Lines{W: os.Stdout},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Run calls main with args and returns its result.
func (i *Interpreter) Run(args []int64) (int64, error) {
	if err := i.config.validate(); err != nil {
		return 0, err
	}
	i.stack = i.stack[:0]
	return i.call(analysis.Main, args)
}

// Run calls main of table with args, sending printed values to out.
func Run(table *analysis.Table, args []int64, out Output) (int64, error) {
	return New(table, WithOutput(out)).Run(args)
}

// RunProgram loads prog into a fresh Table and runs it.
func RunProgram(prog *parser.Program, args []int64, out Output) (int64, error) {
	table, err := analysis.Load(prog)
	if err != nil {
		return 0, xerrors.Errorf("load: %w", err)
	}
	return Run(table, args, out)
}

func (i *Interpreter) trace() Trace {
	return Trace{
		Stack: append([]string(nil), i.stack...),
		frame: xerrors.Caller(1),
	}
}

func (i *Interpreter) call(name string, args []int64) (int64, error) {
	fn, ok := i.table.Lookup(name)
	if !ok {
		return 0, &UndeclaredFunctionError{Name: name, Trace: i.trace()}
	}
	if len(args) != len(fn.Params) {
		return 0, &ArityError{Name: name, Want: len(fn.Params), Got: len(args), Trace: i.trace()}
	}
	if limit := i.config.MaxDepth; limit > 0 && len(i.stack) >= limit {
		return 0, &DepthError{Limit: limit, Trace: i.trace()}
	}

	i.stack = append(i.stack, name)
	defer func() { i.stack = i.stack[:len(i.stack)-1] }()

	f, err := i.execBlock(fn.Body, newScope(fn.Params, args))
	if err != nil {
		return 0, err
	}
	if !f.returned {
		return 0, &MissingReturnError{Name: name, Trace: i.trace()}
	}
	return f.value, nil
}
