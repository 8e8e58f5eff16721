package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/golox/lang/errs"
	"github.com/mna/golox/lang/scanner"
)

// Tokenize scans each file in args and prints its tokens, one per line.
func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	var sink errs.List
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		sink.Reset()
		toks := scanner.New(string(src), &sink).ScanTokens()
		for _, tok := range toks {
			fmt.Fprintln(stdio.Stdout, tok)
		}
		if sink.HadError {
			printStaticErrors(stdio, &sink)
			return exitCode(64)
		}
	}
	return nil
}

// printStaticErrors writes every accumulated error to stderr, static or
// runtime, each in its spec.md §6 wire format (produced by
// StaticError.Error() or RuntimeError.Error()).
func printStaticErrors(stdio mainer.Stdio, sink *errs.List) {
	sink.Each(func(err error) {
		fmt.Fprintln(stdio.Stderr, err)
	})
}
