package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mna/golox/lang/ast"
	"github.com/mna/golox/lang/errs"
	"github.com/mna/golox/lang/parser"
	"github.com/mna/golox/lang/scanner"
)

func parse(t *testing.T, src string) ([]ast.Stmt, *errs.List) {
	t.Helper()
	var sink errs.List
	toks := scanner.New(src, &sink).ScanTokens()
	stmts := parser.New(toks, &sink).Parse()
	return stmts, &sink
}

func TestVarDeclAndPrint(t *testing.T) {
	stmts, sink := parse(t, `var x = 1 + 2; print x;`)
	require.False(t, sink.HadError)
	require.Len(t, stmts, 2)
	require.IsType(t, &ast.VarStmt{}, stmts[0])
	require.IsType(t, &ast.PrintStmt{}, stmts[1])
}

func TestAssignmentTargetMustBeAssignable(t *testing.T) {
	_, sink := parse(t, `1 = 2;`)
	require.True(t, sink.HadError)
}

func TestForLoopDesugarsToWhileInBlock(t *testing.T) {
	stmts, sink := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.False(t, sink.HadError)
	require.Len(t, stmts, 1)

	outer, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, outer.Block.Stmts, 2)
	require.IsType(t, &ast.VarStmt{}, outer.Block.Stmts[0])

	while, ok := outer.Block.Stmts[1].(*ast.WhileStmt)
	require.True(t, ok)
	body, ok := while.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, body.Block.Stmts, 2)
}

func TestClassWithSuperclassAndMethods(t *testing.T) {
	stmts, sink := parse(t, `
		class Base {}
		class Derived < Base {
			greet() { return "hi"; }
		}
	`)
	require.False(t, sink.HadError)
	require.Len(t, stmts, 2)

	derived, ok := stmts[1].(*ast.ClassStmt)
	require.True(t, ok)
	require.NotNil(t, derived.Superclass)
	require.Equal(t, "Base", derived.Superclass.Name.Lexeme)
	require.Len(t, derived.Methods, 1)
	require.Equal(t, "greet", derived.Methods[0].Name.Lexeme)
}

func TestCallAndGetChaining(t *testing.T) {
	stmts, sink := parse(t, `a.b.c(1, 2);`)
	require.False(t, sink.HadError)
	require.Len(t, stmts, 1)

	exprStmt, ok := stmts[0].(*ast.ExpressionStmt)
	require.True(t, ok)
	call, ok := exprStmt.Expr.(*ast.CallExpr)
	require.True(t, ok)
	require.Len(t, call.Args, 2)

	get, ok := call.Callee.(*ast.GetExpr)
	require.True(t, ok)
	require.Equal(t, "c", get.Name.Lexeme)
}

func TestMissingSemicolonRecoversWithoutPanicking(t *testing.T) {
	_, sink := parse(t, `
		var a = 1
		var b = 2;
		print b;
	`)
	require.True(t, sink.HadError)
}

func TestParseExpression(t *testing.T) {
	var sink errs.List
	toks := scanner.New(`1 + 2 * 3`, &sink).ScanTokens()
	expr, err := parser.New(toks, &sink).ParseExpression()
	require.NoError(t, err)
	require.IsType(t, &ast.BinaryExpr{}, expr)
}
