// Package parser implements the recursive-descent parser that turns a
// token stream into the statement list making up a Lox program.
package parser

import (
	"errors"

	"github.com/mna/golox/lang/ast"
	"github.com/mna/golox/lang/errs"
	"github.com/mna/golox/lang/token"
	"golang.org/x/exp/slices"
)

// Parser consumes a flat token slice (as produced by the scanner) and
// builds an AST one statement at a time. Parse errors are recorded on the
// error sink and do not stop parsing: the parser synchronizes to the next
// statement boundary and keeps going, so a single pass surfaces every
// syntax error in the source.
type Parser struct {
	toks    []token.Token
	current int
	errs    *errs.List
}

// New returns a Parser ready to parse toks, reporting errors to sink.
func New(toks []token.Token, sink *errs.List) *Parser {
	return &Parser{toks: toks, errs: sink}
}

// Parse parses the entire token stream as a program and returns its
// statements. A declaration that fails to parse is omitted from the
// result, since the error has already been reported on the sink and there
// is nothing useful to evaluate in its place.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// ParseExpression parses a single expression from the token stream. It
// does not synchronize on error: a malformed single expression has nothing
// to synchronize past.
func (p *Parser) ParseExpression() (ast.Expr, error) {
	var expr ast.Expr
	err := p.guard(func() { expr = p.expression() })
	if err != nil {
		return nil, err
	}
	return expr, nil
}

// errParseFailure is the sentinel panicked with by expect/consume failures,
// recovered at the declaration level to synchronize and resume parsing.
var errParseFailure = errors.New("parse failure")

// guard runs fn and converts an errParseFailure panic into a returned
// error, without running synchronize (used by ParseExpression, which has no
// statement boundary to resynchronize to).
func (p *Parser) guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if r == errParseFailure {
				err = errParseFailure
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}

func (p *Parser) check(typ token.Type) bool {
	return !p.atEnd() && p.peek().Type == typ
}

// match advances and returns true if the current token is one of typs.
func (p *Parser) match(typs ...token.Type) bool {
	if p.atEnd() {
		return false
	}
	if slices.Contains(typs, p.peek().Type) {
		p.advance()
		return true
	}
	return false
}

// consume advances past the current token if it is typ, otherwise reports
// msg against the current token and panics with errParseFailure.
func (p *Parser) consume(typ token.Type, msg string) token.Token {
	if p.check(typ) {
		return p.advance()
	}
	p.errs.ReportAt(p.peek(), msg)
	panic(errParseFailure)
}

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) atEnd() bool { return p.peek().Type == token.EOF }

func (p *Parser) peek() token.Token { return p.toks[p.current] }

func (p *Parser) previous() token.Token { return p.toks[p.current-1] }

// synchronize discards tokens until it reaches what looks like the start of
// the next statement, so that one syntax error does not cascade into
// spurious follow-on errors.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}
