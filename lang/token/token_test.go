package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeString(t *testing.T) {
	for typ := Type(0); typ < maxType; typ++ {
		require.NotEmpty(t, typ.String())
	}
}

func TestLookupIdent(t *testing.T) {
	for typ := AND; typ < maxType; typ++ {
		require.Equal(t, typ, LookupIdent(typ.String()))
	}
	require.Equal(t, IDENT, LookupIdent("notAKeyword"))
	require.Equal(t, IDENT, LookupIdent("printer"))
}

func TestGoString(t *testing.T) {
	require.Equal(t, "'+'", PLUS.GoString())
	require.Equal(t, "identifier", IDENT.GoString())
	require.Equal(t, "and", AND.GoString())
}

func TestTokenString(t *testing.T) {
	tok := Token{Type: NUMBER, Lexeme: "3.14", Literal: 3.14, Line: 1}
	require.Contains(t, tok.String(), "3.14")

	tok = Token{Type: IDENT, Lexeme: "x", Line: 1}
	require.Equal(t, `identifier "x"`, tok.String())
}
