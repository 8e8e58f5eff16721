package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mna/golox/lang/ast"
	"github.com/mna/golox/lang/errs"
	"github.com/mna/golox/lang/parser"
	"github.com/mna/golox/lang/resolver"
	"github.com/mna/golox/lang/scanner"
)

func resolve(t *testing.T, src string) ([]ast.Stmt, *resolver.Resolver, *errs.List) {
	t.Helper()
	var sink errs.List
	toks := scanner.New(src, &sink).ScanTokens()
	stmts := parser.New(toks, &sink).Parse()
	r := resolver.New(&sink)
	r.Resolve(stmts)
	return stmts, r, &sink
}

func TestBlockLocalResolvesAtDistanceZero(t *testing.T) {
	stmts, r, sink := resolve(t, `
		var a = "global";
		{
			var a = "block";
			print a;
		}
	`)
	require.False(t, sink.HadError)

	block := stmts[1].(*ast.BlockStmt)
	printStmt := block.Block.Stmts[1].(*ast.PrintStmt)
	variable := printStmt.Expr.(*ast.VariableExpr)

	dist, ok := r.Locals[variable]
	require.True(t, ok)
	require.Equal(t, 0, dist)
}

func TestSelfReferenceInInitializerIsAnError(t *testing.T) {
	_, _, sink := resolve(t, `
		var a = "outer";
		{
			var a = a;
		}
	`)
	require.True(t, sink.HadError)
}

func TestReturnOutsideFunctionIsAnError(t *testing.T) {
	_, _, sink := resolve(t, `return 1;`)
	require.True(t, sink.HadError)
}

func TestReturnValueFromInitializerIsAnError(t *testing.T) {
	_, _, sink := resolve(t, `
		class Foo {
			init() { return 1; }
		}
	`)
	require.True(t, sink.HadError)
}

func TestThisOutsideClassIsAnError(t *testing.T) {
	_, _, sink := resolve(t, `print this;`)
	require.True(t, sink.HadError)
}

func TestSuperWithoutSuperclassIsAnError(t *testing.T) {
	_, _, sink := resolve(t, `
		class Foo {
			bar() { return super.bar(); }
		}
	`)
	require.True(t, sink.HadError)
}

func TestMethodResolvesThisAtDistanceOne(t *testing.T) {
	stmts, r, sink := resolve(t, `
		class Foo {
			bar() { return this; }
		}
	`)
	require.False(t, sink.HadError)

	class := stmts[0].(*ast.ClassStmt)
	method := class.Methods[0]
	ret := method.Body.Stmts[0].(*ast.ReturnStmt)
	this := ret.Value.(*ast.ThisExpr)

	dist, ok := r.Locals[this]
	require.True(t, ok)
	require.Equal(t, 1, dist)
}
