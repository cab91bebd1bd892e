package lib

import (
	"strconv"
	"strings"
)

// NZIntLexer recognizes a signed integer whose first digit is not zero. The
// sign is mandatory, so "154216" is rejected.
type NZIntLexer struct {
	scanner
	digits strings.Builder
	Result int
}

func NewNZIntLexer(input string) *NZIntLexer {
	return &NZIntLexer{scanner: newScanner(input)}
}

func (l *NZIntLexer) Parse() (int, error) {
	if err := l.begin(); err != nil {
		return 0, err
	}

	if !l.cur.is(isSign) {
		return 0, l.cur.errorHere()
	}
	l.digits.WriteRune(l.cur.current.ch)
	l.next()

	if !l.cur.is(isNonZeroDigit) {
		return 0, l.cur.errorHere()
	}
	for l.cur.is(isDigit) {
		l.digits.WriteRune(l.cur.current.ch)
		l.next()
	}

	if err := l.requireEnd(); err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(l.digits.String())
	if err != nil {
		return 0, err
	}
	l.Result = n
	return n, nil
}
