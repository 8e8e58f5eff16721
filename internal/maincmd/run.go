package maincmd

import (
	"context"
	"os"
	"time"

	"github.com/mna/mainer"

	"github.com/mna/golox/lang/errs"
	"github.com/mna/golox/lang/interpreter"
	"github.com/mna/golox/lang/parser"
	"github.com/mna/golox/lang/resolver"
	"github.com/mna/golox/lang/scanner"
)

// Run executes the file named by args[0] through the full scanner → parser
// → resolver → interpreter pipeline, stopping at the first phase boundary
// that reports an error, per spec.md §6/§7.
func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var sink errs.List
	start := time.Now()
	toks := scanner.New(string(src), &sink).ScanTokens()
	if sink.HadError {
		printStaticErrors(stdio, &sink)
		return exitCode(64)
	}
	c.log.Debugf("scanned %d tokens in %s", len(toks), time.Since(start))

	stmts := parser.New(toks, &sink).Parse()
	if sink.HadError {
		printStaticErrors(stdio, &sink)
		return exitCode(64)
	}

	r := resolver.New(&sink)
	r.Resolve(stmts)
	if sink.HadError {
		printStaticErrors(stdio, &sink)
		return exitCode(64)
	}

	in := interpreter.New(stdio.Stdout, &sink, c.cfg.MaxCallDepth)
	in.Interpret(stmts, r.Locals)
	if sink.HadRuntimeError {
		printStaticErrors(stdio, &sink)
		return exitCode(70)
	}
	return nil
}
