package lib

import "strings"

// AlterLexer recognizes a letter followed by a strict digit, letter, digit...
// alternation, e.g. "g5h6". The whole input must take part in the alternation.
type AlterLexer struct {
	scanner
	token  strings.Builder
	Result string
}

func NewAlterLexer(input string) *AlterLexer {
	return &AlterLexer{scanner: newScanner(input)}
}

func (l *AlterLexer) Parse() (string, error) {
	if err := l.begin(); err != nil {
		return "", err
	}

	if !l.cur.is(isLetter) {
		return "", l.cur.errorHere()
	}
	l.token.WriteRune(l.cur.current.ch)
	l.next()

	wantDigit := true
	for wantDigit && l.cur.is(isDigit) || !wantDigit && l.cur.is(isLetter) {
		l.token.WriteRune(l.cur.current.ch)
		l.next()
		wantDigit = !wantDigit
	}

	if err := l.requireEnd(); err != nil {
		return "", err
	}
	l.Result = l.token.String()
	return l.Result, nil
}
