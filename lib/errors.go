package lib

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAlreadyParsed  = errors.New("input has already been parsed")
	ErrUnknownGrammar = errors.New("unknown grammar")
)

// LexerError is the only failure a recognizer reports for input that does
// not match its grammar. Position is 1-based and counts reads, so it points
// one past the input when the end of input was the offending symbol.
type LexerError struct {
	Source   string
	Position int
	Char     rune
	EOF      bool
	Line     int
	Col      int
}

func (e *LexerError) Error() string {
	var b strings.Builder
	b.WriteString(e.Source)
	b.WriteByte('\n')
	if e.Position > 1 {
		b.WriteString(strings.Repeat(" ", e.Position-1))
	}
	b.WriteString("^\n")
	fmt.Fprintf(&b, "Error in symbol %s", e.symbol())
	return b.String()
}

func (e *LexerError) symbol() string {
	if e.EOF {
		return "<end of input>"
	}
	return string(e.Char)
}

// Summary is a single-line form of the error, for logs.
func (e *LexerError) Summary() string {
	return fmt.Sprintf("Error at line %d:%d: unexpected %s", e.Line, e.Col, e.symbol())
}

func IsLexerError(err error) bool {
	var lexErr *LexerError
	return errors.As(err, &lexErr)
}
