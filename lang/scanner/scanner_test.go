package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mna/golox/lang/errs"
	"github.com/mna/golox/lang/scanner"
	"github.com/mna/golox/lang/token"
)

func scan(t *testing.T, src string) ([]token.Token, *errs.List) {
	t.Helper()
	var sink errs.List
	toks := scanner.New(src, &sink).ScanTokens()
	return toks, &sink
}

func TestEmptySourceEndsInEOF(t *testing.T) {
	toks, sink := scan(t, "")
	require.False(t, sink.HadError)
	require.Len(t, toks, 1)
	require.Equal(t, token.EOF, toks[0].Type)
}

func TestPunctuationAndOperators(t *testing.T) {
	toks, sink := scan(t, "(){}, . - + ; * != = == < <= > >= /")
	require.False(t, sink.HadError)

	var types []token.Type
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	require.Equal(t, []token.Type{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.COMMA,
		token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG_EQUAL, token.EQUAL, token.EQUAL_EQUAL, token.LESS,
		token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL, token.SLASH,
		token.EOF,
	}, types)
}

func TestLineCommentIsSkipped(t *testing.T) {
	toks, sink := scan(t, "// a comment\nvar")
	require.False(t, sink.HadError)
	require.Len(t, toks, 2)
	require.Equal(t, token.VAR, toks[0].Type)
	require.Equal(t, 2, toks[0].Line)
}

func TestStringLiteral(t *testing.T) {
	toks, sink := scan(t, `"hello\nworld"`)
	require.False(t, sink.HadError)
	require.Equal(t, token.STRING, toks[0].Type)
	require.Equal(t, `hello\nworld`, toks[0].Literal)
}

func TestMultilineString(t *testing.T) {
	toks, sink := scan(t, "\"a\nb\"\nvar")
	require.False(t, sink.HadError)
	require.Equal(t, token.STRING, toks[0].Type)
	require.Equal(t, token.VAR, toks[1].Type)
	require.Equal(t, 1, toks[0].Line)
	require.Equal(t, 3, toks[1].Line)
}

func TestUnterminatedString(t *testing.T) {
	_, sink := scan(t, `"unterminated`)
	require.True(t, sink.HadError)
}

func TestNumberLiterals(t *testing.T) {
	toks, sink := scan(t, "123 123.456 .5 123.")
	require.False(t, sink.HadError)
	require.Equal(t, token.NUMBER, toks[0].Type)
	require.Equal(t, 123.0, toks[0].Literal)
	require.Equal(t, 123.456, toks[1].Literal)
	// ".5" is DOT then NUMBER: a leading dot is not part of a number.
	require.Equal(t, token.DOT, toks[2].Type)
	require.Equal(t, token.NUMBER, toks[3].Type)
	require.Equal(t, 5.0, toks[3].Literal)
	// "123." is NUMBER(123) then DOT: a trailing dot needs a digit after it.
	require.Equal(t, token.NUMBER, toks[4].Type)
	require.Equal(t, 123.0, toks[4].Literal)
	require.Equal(t, token.DOT, toks[5].Type)
}

func TestIdentifiersAndKeywords(t *testing.T) {
	toks, sink := scan(t, "orchid and_all classy fun class")
	require.False(t, sink.HadError)
	require.Equal(t, token.IDENT, toks[0].Type)
	require.Equal(t, token.IDENT, toks[1].Type)
	require.Equal(t, token.IDENT, toks[2].Type)
	require.Equal(t, token.FUN, toks[3].Type)
	require.Equal(t, token.CLASS, toks[4].Type)
}

func TestUnexpectedCharacterContinuesScanning(t *testing.T) {
	toks, sink := scan(t, "var @ x")
	require.True(t, sink.HadError)
	require.Equal(t, token.VAR, toks[0].Type)
	require.Equal(t, token.IDENT, toks[1].Type)
	require.Equal(t, token.EOF, toks[2].Type)
}
