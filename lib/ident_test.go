package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDLexer(t *testing.T) {
	for _, input := range []string{"fg", "g14", "tiger", "j", "j34ggh54dfGFD3", "ÿber2"} {
		l := NewIDLexer(input)
		id, err := l.Parse()
		require.NoError(t, err, input)
		require.Equal(t, input, id)
		require.Equal(t, input, l.Result)
	}
}

func TestIDLexerLeadingDigit(t *testing.T) {
	for _, input := range []string{"5", "154216", "1abc"} {
		_, err := NewIDLexer(input).Parse()
		lexErr := requireRejected(t, err)
		require.Equal(t, 1, lexErr.Position, input)
	}
}

func TestIDLexerRejects(t *testing.T) {
	for _, input := range []string{"", "+45", "-78", "ab_c", "a b", "x-1"} {
		_, err := NewIDLexer(input).Parse()
		requireRejected(t, err)
	}
}

func TestIDLexerReportsOffendingSymbol(t *testing.T) {
	_, err := NewIDLexer("abc$d").Parse()
	lexErr := requireRejected(t, err)
	require.Equal(t, 4, lexErr.Position)
	require.Equal(t, "abc$d\n   ^\nError in symbol $", lexErr.Error())
}

func TestAlterLexer(t *testing.T) {
	for _, input := range []string{"f6", "g", "g5h6g4g3n8h5", "a1b"} {
		l := NewAlterLexer(input)
		tok, err := l.Parse()
		require.NoError(t, err, input)
		require.Equal(t, input, tok)
		require.Equal(t, input, l.Result)
	}
}

func TestAlterLexerRejects(t *testing.T) {
	for _, input := range []string{"", "154216", "+45", "-78", "4g5h6g4g3n8h5", "dfg", "a12", "a1bb"} {
		_, err := NewAlterLexer(input).Parse()
		requireRejected(t, err)
	}
}

func TestAlterLexerBrokenAlternation(t *testing.T) {
	_, err := NewAlterLexer("g5h6gg").Parse()
	lexErr := requireRejected(t, err)
	require.Equal(t, 6, lexErr.Position)
	require.Equal(t, 'g', lexErr.Char)
}
