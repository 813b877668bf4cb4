// Command minty runs a minty program:
//
//	minty [flags] file.mty [int args...]
//
// The values of print statements go to standard output one per line,
// followed by the value main returns.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/kr/pretty"
	"golang.org/x/xerrors"

	"minty/analysis"
	"minty/interpreter"
	"minty/parser"
	"minty/scanner"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	tokens   bool
	ast      bool
	format   bool
	vet      bool
	config   string
	maxDepth int
}

func run(argv []string, stdout, stderr io.Writer) int {
	var opts options
	flags := flag.NewFlagSet("minty", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVar(&opts.tokens, "tokens", false, "print the token stream and exit")
	flags.BoolVar(&opts.ast, "ast", false, "dump the syntax tree and exit")
	flags.BoolVar(&opts.format, "fmt", false, "print the program in canonical form and exit")
	flags.BoolVar(&opts.vet, "vet", false, "check calls against declarations before running")
	flags.StringVar(&opts.config, "config", "", "read interpreter settings from a YAML `file`")
	flags.IntVar(&opts.maxDepth, "max-depth", -1, "maximum call depth, 0 for unbounded (overrides -config)")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: minty [flags] file.mty [int args...]")
		flags.PrintDefaults()
	}
	if err := flags.Parse(argv); err != nil {
		return exitUsage
	}
	if flags.NArg() < 1 {
		flags.Usage()
		return exitUsage
	}

	path := flags.Arg(0)
	args := make([]int64, 0, flags.NArg()-1)
	for _, a := range flags.Args()[1:] {
		v, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			fmt.Fprintf(stderr, "minty: argument %q is not an integer\n", a)
			return exitUsage
		}
		args = append(args, v)
	}

	src, err := ioutil.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "minty: %v\n", err)
		return exitError
	}

	tokens, err := scanner.Scan(string(src))
	if err != nil {
		var list scanner.ErrorList
		if xerrors.As(err, &list) {
			for _, e := range list {
				fmt.Fprintf(stderr, "%s: %v\n", path, e)
			}
		} else {
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
		}
		return exitError
	}
	if opts.tokens {
		for _, t := range tokens {
			fmt.Fprintf(stdout, "%d:%d\t%s\n", t.Row, t.Col, t)
		}
		return exitOK
	}

	prog, err := parser.Parse(tokens)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", path, err)
		return exitError
	}
	switch {
	case opts.ast:
		pretty.Fprintf(stdout, "%# v\n", prog)
		return exitOK
	case opts.format:
		fmt.Fprint(stdout, parser.Format(prog))
		return exitOK
	}

	table, err := analysis.Load(prog)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", path, err)
		return exitError
	}
	if opts.vet {
		diags := table.CheckCalls(prog)
		for _, d := range diags {
			fmt.Fprintf(stderr, "%s: %s\n", path, d)
		}
		if len(diags) > 0 {
			return exitError
		}
		names := table.Names()
		fmt.Fprintf(stderr, "%s: %d functions checked: %s\n", path, len(names), strings.Join(names, ", "))
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "minty: %v\n", err)
		return exitError
	}
	interp := interpreter.New(table,
		interpreter.WithOutput(interpreter.Lines{W: stdout}),
		interpreter.WithConfig(cfg),
	)
	result, err := interp.Run(args)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", path, err)
		return exitError
	}
	fmt.Fprintln(stdout, result)
	return exitOK
}

func loadConfig(opts options) (interpreter.Config, error) {
	var cfg interpreter.Config
	if opts.config != "" {
		var err error
		if cfg, err = interpreter.LoadConfig(opts.config); err != nil {
			return cfg, err
		}
	}
	if opts.maxDepth >= 0 {
		cfg.MaxDepth = opts.maxDepth
	}
	return cfg, nil
}
