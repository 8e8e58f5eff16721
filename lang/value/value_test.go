package value_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mna/golox/lang/token"
	"github.com/mna/golox/lang/value"
)

func tokenNamed(name string) token.Token {
	return token.Token{Type: token.IDENT, Lexeme: name, Line: 1}
}

func TestTruthy(t *testing.T) {
	require.False(t, value.Truthy(nil))
	require.False(t, value.Truthy(false))
	require.True(t, value.Truthy(true))
	require.True(t, value.Truthy(0.0))
	require.True(t, value.Truthy(""))
}

func TestEqual(t *testing.T) {
	require.True(t, value.Equal(nil, nil))
	require.False(t, value.Equal(nil, false))
	require.True(t, value.Equal(1.0, 1.0))
	require.False(t, value.Equal(math.NaN(), math.NaN()))
	require.True(t, value.Equal("a", "a"))
	require.False(t, value.Equal("a", "b"))
}

func TestStringify(t *testing.T) {
	require.Equal(t, "nil", value.Stringify(nil))
	require.Equal(t, "true", value.Stringify(true))
	require.Equal(t, "3", value.Stringify(3.0))
	require.Equal(t, "3.5", value.Stringify(3.5))
	require.Equal(t, "hi", value.Stringify("hi"))
}

func TestEnvironmentGetAssignChain(t *testing.T) {
	globals := value.NewEnvironment(nil)
	globals.Define("a", "global")

	child := value.NewEnvironment(globals)
	child.Define("a", "local")

	tok := tokenNamed("a")
	v, err := child.Get(tok)
	require.NoError(t, err)
	require.Equal(t, "local", v)

	require.NoError(t, child.Assign(tok, "changed"))
	v, err = child.Get(tok)
	require.NoError(t, err)
	require.Equal(t, "changed", v)

	v, err = globals.Get(tok)
	require.NoError(t, err)
	require.Equal(t, "global", v)
}

func TestEnvironmentGetUndefinedIsRuntimeError(t *testing.T) {
	env := value.NewEnvironment(nil)
	_, err := env.Get(tokenNamed("missing"))
	require.Error(t, err)
}

func TestEnvironmentGetAtAssignAt(t *testing.T) {
	globals := value.NewEnvironment(nil)
	child := value.NewEnvironment(globals)
	grandchild := value.NewEnvironment(child)
	child.Define("x", 1.0)

	require.Equal(t, 1.0, grandchild.GetAt(1, "x"))
	grandchild.AssignAt(1, "x", 2.0)
	require.Equal(t, 2.0, grandchild.GetAt(1, "x"))
}
