package maincmd

import (
	"context"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/golox/lang/ast"
	"github.com/mna/golox/lang/errs"
	"github.com/mna/golox/lang/parser"
	"github.com/mna/golox/lang/scanner"
)

// Parse scans and parses each file in args and prints the resulting syntax
// tree, one top-level declaration at a time.
func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
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
		for _, stmt := range stmts {
			if stmt == nil {
				continue
			}
			if err := printer.Print(stmt); err != nil {
				return err
			}
		}
		if sink.HadError {
			printStaticErrors(stdio, &sink)
			return exitCode(64)
		}
	}
	return nil
}
