package maincmd_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/require"

	"github.com/mna/golox/internal/maincmd"
)

func writeFile(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.lox")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestTokenizePrintsTokens(t *testing.T) {
	path := writeFile(t, `print 1;`)
	var out, errOut bytes.Buffer
	stdio := mainer.Stdio{Stdout: &out, Stderr: &errOut}

	var c maincmd.Cmd
	err := c.Tokenize(context.Background(), stdio, []string{path})
	require.NoError(t, err)
	require.Contains(t, out.String(), "print")
	require.Contains(t, out.String(), "end of file")
}

func TestParsePrintsSyntaxTree(t *testing.T) {
	path := writeFile(t, `var a = 1 + 2;`)
	var out, errOut bytes.Buffer
	stdio := mainer.Stdio{Stdout: &out, Stderr: &errOut}

	var c maincmd.Cmd
	err := c.Parse(context.Background(), stdio, []string{path})
	require.NoError(t, err)
	require.Contains(t, out.String(), "var a")
}

func TestRunExecutesFile(t *testing.T) {
	path := writeFile(t, `print 1 + 2;`)
	var out, errOut bytes.Buffer
	stdio := mainer.Stdio{Stdout: &out, Stderr: &errOut}

	var c maincmd.Cmd
	require.NoError(t, c.Validate()) // loads config needed by Run's logger
	err := c.Run(context.Background(), stdio, []string{path})
	require.NoError(t, err)
	require.Equal(t, "3\n", out.String())
}

func TestRunReportsStaticErrorExitCode(t *testing.T) {
	path := writeFile(t, `var a = ;`)
	var out, errOut bytes.Buffer
	stdio := mainer.Stdio{Stdout: &out, Stderr: &errOut}

	var c maincmd.Cmd
	require.NoError(t, c.Validate())
	err := c.Run(context.Background(), stdio, []string{path})
	require.Error(t, err)
	require.NotEmpty(t, errOut.String())
}

func TestRunReportsRuntimeErrorExitCode(t *testing.T) {
	path := writeFile(t, `"a" + 1;`)
	var out, errOut bytes.Buffer
	stdio := mainer.Stdio{Stdout: &out, Stderr: &errOut}

	var c maincmd.Cmd
	require.NoError(t, c.Validate())
	err := c.Run(context.Background(), stdio, []string{path})
	require.Error(t, err)
	require.Contains(t, errOut.String(), "Operands must be two numbers or two strings.")
}

// TestMainDispatchesFileModeWithFilePath guards against Main forwarding the
// wrong argument slice to the resolved subcommand: file mode must receive
// the path itself as args[0], not an empty slice sliced past it.
func TestMainDispatchesFileModeWithFilePath(t *testing.T) {
	path := writeFile(t, `print 1 + 2;`)
	var out, errOut bytes.Buffer
	stdio := mainer.Stdio{Stdin: bytes.NewReader(nil), Stdout: &out, Stderr: &errOut}

	var c maincmd.Cmd
	ec := c.Main([]string{"golox", path}, stdio)
	require.Equal(t, mainer.Success, ec)
	require.Equal(t, "3\n", out.String())
}

// TestMainDispatchesDebugSubcommandWithFilePath guards the same forwarding
// for the tokenize/parse/resolve debug subcommands, which must receive the
// path as args[0] (args[1:] of the full command line).
func TestMainDispatchesDebugSubcommandWithFilePath(t *testing.T) {
	path := writeFile(t, `print 1;`)
	var out, errOut bytes.Buffer
	stdio := mainer.Stdio{Stdin: bytes.NewReader(nil), Stdout: &out, Stderr: &errOut}

	var c maincmd.Cmd
	ec := c.Main([]string{"golox", "tokenize", path}, stdio)
	require.Equal(t, mainer.Success, ec)
	require.Contains(t, out.String(), "print")
}
