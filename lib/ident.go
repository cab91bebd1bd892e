package lib

import "strings"

// IDLexer recognizes a letter followed by any number of letters and digits.
type IDLexer struct {
	scanner
	id     strings.Builder
	Result string
}

func NewIDLexer(input string) *IDLexer {
	return &IDLexer{scanner: newScanner(input)}
}

func (l *IDLexer) Parse() (string, error) {
	if err := l.begin(); err != nil {
		return "", err
	}

	if !l.cur.is(isLetter) {
		return "", l.cur.errorHere()
	}
	for l.cur.is(isLetterOrDigit) {
		l.id.WriteRune(l.cur.current.ch)
		l.next()
	}

	if err := l.requireEnd(); err != nil {
		return "", err
	}
	l.Result = l.id.String()
	return l.Result, nil
}
