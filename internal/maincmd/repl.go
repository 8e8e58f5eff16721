package maincmd

import (
	"context"
	"io"

	"github.com/chzyer/readline"
	"github.com/mna/mainer"

	"github.com/mna/golox/lang/errs"
	"github.com/mna/golox/lang/interpreter"
	"github.com/mna/golox/lang/parser"
	"github.com/mna/golox/lang/resolver"
	"github.com/mna/golox/lang/scanner"
)

// Repl runs an interactive read-eval-print loop over a persistent global
// environment, per spec.md §6/§7: each line is scanned, parsed, resolved
// and interpreted independently, and a static or runtime error on one line
// does not stop the loop.
func (c *Cmd) Repl(ctx context.Context, stdio mainer.Stdio, args []string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		Stdin:       io.NopCloser(stdio.Stdin),
		Stdout:      stdio.Stdout,
		Stderr:      stdio.Stderr,
		HistoryFile: "",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	var sink errs.List
	in := interpreter.New(stdio.Stdout, &sink, c.cfg.MaxCallDepth)
	in.IsREPL = c.cfg.ReplEcho
	r := resolver.New(&sink)

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		sink.Reset()
		toks := scanner.New(line, &sink).ScanTokens()
		stmts := parser.New(toks, &sink).Parse()
		if sink.HadError {
			printStaticErrors(stdio, &sink)
			continue
		}

		r.Resolve(stmts)
		if sink.HadError {
			printStaticErrors(stdio, &sink)
			continue
		}

		in.Interpret(stmts, r.Locals)
		if sink.HadRuntimeError {
			printStaticErrors(stdio, &sink)
		}
	}
}
