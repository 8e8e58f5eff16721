// Package errs implements the error sink described in spec.md §6/§7: static
// errors (scan, parse, resolve) accumulate and are reported together, while a
// runtime error aborts execution and is reported once at the interpret top
// level. Both kinds of diagnostic are formatted exactly as spec.md §6
// specifies, which is why the formatting lives here rather than being
// delegated to a general-purpose error-printing library.
package errs

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/mna/golox/lang/token"
)

// StaticError is a scan, parse, or resolve time diagnostic tied to a source
// line, printed as "[line N] Error<where>: <msg>" where where is empty for
// scan errors, " at end" at EOF, or " at 'lexeme'" otherwise.
type StaticError struct {
	Line  int
	Where string
	Msg   string
}

func (e *StaticError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Msg)
}

// RuntimeError is a dynamic evaluation failure carrying the offending token,
// per spec.md §4.6/§7. It is the error value propagated up through the
// interpreter's call stack; it is never used for the non-local Return signal
// (spec.md §7 is explicit that those are distinct mechanisms).
type RuntimeError struct {
	Token token.Token
	Msg   string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Msg, e.Token.Line)
}

// List accumulates static errors across a single scan/parse/resolve phase and
// tracks the "had (runtime) error" flags spec.md §6 calls the error sink's
// contract. The zero value is ready to use.
type List struct {
	errs            *multierror.Error
	HadError        bool
	HadRuntimeError bool
}

// ReportStatic records a static error at the given line, matching the
// reportStatic(line, where, msg) sink signature from spec.md §6.
func (l *List) ReportStatic(line int, where, msg string) {
	l.HadError = true
	l.errs = multierror.Append(l.errs, &StaticError{Line: line, Where: where, Msg: msg})
}

// ReportAt is a convenience wrapper that derives the "where" clause from a
// token, per spec.md §6: " at end" at EOF, " at 'lexeme'" otherwise.
func (l *List) ReportAt(tok token.Token, msg string) {
	where := fmt.Sprintf(" at '%s'", tok.Lexeme)
	if tok.Type == token.EOF {
		where = " at end"
	}
	l.ReportStatic(tok.Line, where, msg)
}

// ReportRuntime records that a runtime error occurred, matching the
// reportRuntime(token, msg) sink signature from spec.md §6.
func (l *List) ReportRuntime(tok token.Token, msg string) {
	l.HadRuntimeError = true
	l.errs = multierror.Append(l.errs, &RuntimeError{Token: tok, Msg: msg})
}

// Err returns the accumulated static/runtime errors, or nil if none were
// reported.
func (l *List) Err() error {
	return l.errs.ErrorOrNil()
}

// Reset clears the list and both flags, for reuse between REPL lines (spec.md
// §7: "In REPL mode each line is independent").
func (l *List) Reset() {
	l.errs = nil
	l.HadError = false
	l.HadRuntimeError = false
}

// Each calls fn once per accumulated error, in report order.
func (l *List) Each(fn func(error)) {
	if l.errs == nil {
		return
	}
	for _, e := range l.errs.Errors {
		fn(e)
	}
}
