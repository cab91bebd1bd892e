package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupGrammar(t *testing.T) {
	for _, g := range Grammars {
		found, err := LookupGrammar(g.String())
		require.NoError(t, err)
		require.Equal(t, g, found)
	}

	_, err := LookupGrammar("float")
	require.ErrorIs(t, err, ErrUnknownGrammar)
}

func TestGrammarScan(t *testing.T) {
	tests := []struct {
		grammar Grammar
		input   string
		want    string
	}{
		{GrammarInt, "+45", "45"},
		{GrammarInt, "-078", "-78"},
		{GrammarNZInt, "-78", "-78"},
		{GrammarID, "j34ggh54dfGFD3", "j34ggh54dfGFD3"},
		{GrammarAlter, "g5h6", "g5h6"},
		{GrammarList, "a,b;c", "abc"},
	}

	for _, test := range tests {
		got, err := test.grammar.Scan(test.input)
		require.NoError(t, err, "%s %q", test.grammar, test.input)
		require.Equal(t, test.want, got)
	}
}

func TestGrammarScanRejects(t *testing.T) {
	for _, g := range Grammars {
		_, err := g.Scan("")
		require.True(t, IsLexerError(err), g.String())
	}
}

func TestGrammarUnknown(t *testing.T) {
	g := Grammar(42)
	require.Equal(t, "Grammar(42)", g.String())
	_, err := g.Scan("a")
	require.ErrorIs(t, err, ErrUnknownGrammar)
}
