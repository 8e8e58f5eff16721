package interpreter_test

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/golox/internal/filetest"
	"github.com/mna/golox/lang/errs"
	"github.com/mna/golox/lang/interpreter"
	"github.com/mna/golox/lang/parser"
	"github.com/mna/golox/lang/resolver"
	"github.com/mna/golox/lang/scanner"
)

var testUpdateInterpreterTests = flag.Bool("test.update-interpreter-tests", false,
	"If set, replace expected interpreter golden files with actual results.")

func TestGoldenPrograms(t *testing.T) {
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".lox") {
		t.Run(fi.Name(), func(t *testing.T) {
			src, err := os.ReadFile(filepath.Join(srcDir, fi.Name()))
			if err != nil {
				t.Fatal(err)
			}

			var sink errs.List
			toks := scanner.New(string(src), &sink).ScanTokens()
			stmts := parser.New(toks, &sink).Parse()
			r := resolver.New(&sink)
			r.Resolve(stmts)

			var out, errOut bytes.Buffer
			if !sink.HadError {
				in := interpreter.New(&out, &sink, 0)
				in.Interpret(stmts, r.Locals)
			}
			sink.Each(func(err error) { errOut.WriteString(err.Error() + "\n") })

			filetest.DiffOutput(t, fi, out.String(), resultDir, testUpdateInterpreterTests)
			filetest.DiffErrors(t, fi, errOut.String(), resultDir, testUpdateInterpreterTests)
		})
	}
}
