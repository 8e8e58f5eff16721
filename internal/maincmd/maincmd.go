// Package maincmd implements the golox command-line driver: zero-argument
// REPL, one-argument file run, and the tokenize/parse/resolve debug
// subcommands inherited from the pipeline-inspection shape SPEC_FULL.md
// §10.1 calls for.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/mna/mainer"
	"github.com/sirupsen/logrus"
	easy "github.com/t-tomalak/logrus-easy-formatter"

	"github.com/mna/golox/internal/config"
)

const binName = "golox"

var shortUsage = fmt.Sprintf("usage: %s [<option>...] [<path>]\nRun '%[1]s --help' for details.\n", binName)

var longUsage = heredoc.Docf(`
	usage: %s [<option>...] [<path>]
	       %[1]s <command> <path>...
	       %[1]s -h|--help
	       %[1]s --version

	Tree-walking interpreter for the Lox programming language.

	With no <path>, runs an interactive REPL. With one <path>, runs that
	file. Two or more positional arguments are a usage error.

	The <command> can be one of:
	       tokenize                  Print the tokens the scanner produces.
	       parse                     Print the parsed syntax tree.
	       resolve                   Print the syntax tree annotated with
	                                 resolved variable scope distances.

	Valid flag options are:
	       -h --help                 Show this help and exit.
	          --version              Print version and exit.
	       -v --verbose              Enable verbose diagnostic logging.

	More information on the %[1]s repository:
	       https://github.com/mna/golox
	`, binName)

// Cmd is the golox CLI entry point, driven by github.com/mna/mainer's
// struct-tag flag parsing, the same shape nenuphar's own Cmd uses.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"version"`
	Verbose bool `flag:"v,verbose"`

	args    []string
	cmdArgs []string
	flags   map[string]bool
	cmdFn   func(context.Context, mainer.Stdio, []string) error

	cfg config.Config
	log *logrus.Logger
}

func (c *Cmd) SetArgs(args []string)          { c.args = args }
func (c *Cmd) SetFlags(flags map[string]bool) { c.flags = flags }

// Validate resolves which subcommand to run: a debug subcommand
// (tokenize/parse/resolve) if args[0] names one, else file-mode dispatch
// by positional argument count per spec.md §6 (0 = repl, 1 = run, 2+ =
// usage error).
func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	c.cfg = cfg
	c.log = newLogger(c.cfg.LogLevel, c.Verbose)

	if len(c.args) > 0 {
		name := c.args[0]
		if name == "tokenize" || name == "parse" || name == "resolve" {
			if len(c.args[1:]) == 0 {
				return fmt.Errorf("%s: at least one file must be provided", name)
			}
			c.cmdFn = buildCmds(c)[name]
			c.cmdArgs = c.args[1:]
			return nil
		}
	}

	switch len(c.args) {
	case 0:
		c.cmdFn = c.Repl
	case 1:
		c.cmdFn = c.Run
	default:
		return errors.New("at most one file path may be given")
	}
	c.cmdArgs = c.args
	return nil
}

func newLogger(level string, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.Formatter = &easy.Formatter{LogFormat: "%lvl%: %msg%\n"}
	if verbose {
		log.SetLevel(logrus.DebugLevel)
		return log
	}
	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	}
	return log
}

// exitCode is returned by a subcommand to request a specific process exit
// code, per spec.md §6: 0 success, 64 usage/static error, 70 runtime error.
type exitCode int

func (e exitCode) Error() string { return fmt.Sprintf("exit code %d", int(e)) }

// Main parses args, dispatches to the resolved subcommand, and translates
// its result into a mainer.ExitCode.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false, EnvPrefix: binName + "_"}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stdout, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.ExitCode(64)
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	err := c.cmdFn(ctx, stdio, c.cmdArgs)
	var ec exitCode
	if errors.As(err, &ec) {
		return mainer.ExitCode(ec)
	}
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return mainer.Failure
	}
	return mainer.Success
}

// buildCmds reflects over v's methods to find the ones matching the
// subcommand signature, keyed by lowercased method name — the same
// dispatch-table trick nenuphar's own maincmd.go uses.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
