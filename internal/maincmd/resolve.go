package maincmd

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/mna/mainer"

	"github.com/mna/golox/lang/ast"
	"github.com/mna/golox/lang/errs"
	"github.com/mna/golox/lang/parser"
	"github.com/mna/golox/lang/resolver"
	"github.com/mna/golox/lang/scanner"
)

// Resolve scans, parses and resolves each file in args, printing the syntax
// tree followed by the scope distance recorded for every resolved
// variable/assignment/this/super expression — useful for inspecting the
// resolver's side table directly, per SPEC_FULL.md §10.1.
func (c *Cmd) Resolve(ctx context.Context, stdio mainer.Stdio, args []string) error {
	printer := ast.Printer{Output: stdio.Stdout, Lines: true}
	var sink errs.List
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		sink.Reset()
		toks := scanner.New(string(src), &sink).ScanTokens()
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

		for _, stmt := range stmts {
			if stmt == nil {
				continue
			}
			if err := printer.Print(stmt); err != nil {
				return err
			}
		}
		printLocals(stdio, r)
	}
	return nil
}

func printLocals(stdio mainer.Stdio, r *resolver.Resolver) {
	type entry struct {
		line int
		text string
	}
	entries := make([]entry, 0, len(r.Locals))
	for node, dist := range r.Locals {
		start, _ := node.Span()
		entries = append(entries, entry{line: start, text: fmt.Sprintf("[line %d] %v -> distance %d", start, node, dist)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].line < entries[j].line })
	for _, e := range entries {
		fmt.Fprintln(stdio.Stdout, e.text)
	}
}
