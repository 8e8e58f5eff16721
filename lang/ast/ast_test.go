package ast_test

import (
	stdfmt "fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mna/golox/lang/ast"
	"github.com/mna/golox/lang/token"
)

func TestFormatAndSpan(t *testing.T) {
	left := &ast.LiteralExpr{Token: token.Token{Type: token.NUMBER, Line: 1}, Value: 1.0}
	right := &ast.LiteralExpr{Token: token.Token{Type: token.NUMBER, Line: 2}, Value: 2.0}
	bin := &ast.BinaryExpr{Left: left, Op: token.Token{Type: token.PLUS, Lexeme: "+", Line: 2}, Right: right}

	require.Equal(t, "binary +", describe(bin))

	start, end := bin.Span()
	require.Equal(t, 1, start)
	require.Equal(t, 2, end)
}

func TestWalkVisitsChildrenInOrder(t *testing.T) {
	block := &ast.Block{Stmts: []ast.Stmt{
		&ast.VarStmt{Name: token.Token{Lexeme: "a"}},
		&ast.PrintStmt{Expr: &ast.VariableExpr{Name: token.Token{Lexeme: "a"}}},
	}}

	var seen []string
	var visit ast.VisitorFunc
	visit = func(n ast.Node, dir ast.VisitDirection) ast.Visitor {
		if dir == ast.VisitExit {
			return nil
		}
		seen = append(seen, describe(n))
		return visit
	}
	ast.Walk(visit, block)

	require.Equal(t, []string{"block", "var a", "print", "a"}, seen)
}

func TestPrinterIndentsNestedNodes(t *testing.T) {
	var sb strings.Builder
	p := &ast.Printer{Output: &sb}
	block := &ast.Block{Stmts: []ast.Stmt{
		&ast.PrintStmt{Expr: &ast.LiteralExpr{Value: nil}},
	}}

	require.NoError(t, p.Print(block))
	out := sb.String()
	require.Contains(t, out, "block")
	require.Contains(t, out, ". print")
}

// describe renders just n's own label, ignoring any children the printer
// would otherwise recurse into.
func describe(n ast.Node) string {
	var sb strings.Builder
	stdfmt.Fprintf(&sb, "%v", n)
	line, _, _ := strings.Cut(sb.String(), "\n")
	return line
}
