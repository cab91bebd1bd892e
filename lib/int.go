package lib

import (
	"strconv"
	"strings"
)

// IntLexer recognizes an optionally signed decimal integer.
type IntLexer struct {
	scanner
	digits strings.Builder
	Result int
}

func NewIntLexer(input string) *IntLexer {
	return &IntLexer{scanner: newScanner(input)}
}

func (l *IntLexer) Parse() (int, error) {
	if err := l.begin(); err != nil {
		return 0, err
	}

	if l.cur.is(isSign) {
		l.digits.WriteRune(l.cur.current.ch)
		l.next()
	}

	if !l.cur.is(isDigit) {
		return 0, l.cur.errorHere()
	}
	for l.cur.is(isDigit) {
		l.digits.WriteRune(l.cur.current.ch)
		l.next()
	}

	if err := l.requireEnd(); err != nil {
		return 0, err
	}

	// No range check of our own: out of range values fail the way
	// strconv does.
	n, err := strconv.Atoi(l.digits.String())
	if err != nil {
		return 0, err
	}
	l.Result = n
	return n, nil
}
