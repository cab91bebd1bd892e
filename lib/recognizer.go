package lib

import "unicode"

// Recognizer accepts or rejects one whole input against a fixed grammar.
// A rejected input yields a *LexerError.
type Recognizer[T any] interface {
	Parse() (T, error)
}

// scanner is the state every recognizer owns: one cursor over one input,
// read in a single pass.
type scanner struct {
	cur    *cursor
	parsed bool
}

func newScanner(input string) scanner {
	return scanner{cur: newCursor(input)}
}

func (s *scanner) begin() error {
	if s.parsed {
		return ErrAlreadyParsed
	}
	s.parsed = true
	s.cur.advance()
	return nil
}

func (s *scanner) next() {
	s.cur.advance()
}

// requireEnd fails unless every rune of the input has been consumed.
func (s *scanner) requireEnd() error {
	if !s.cur.atEnd() {
		return s.cur.errorHere()
	}
	return nil
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isNonZeroDigit(ch rune) bool {
	return ch >= '1' && ch <= '9'
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch)
}

func isLetterOrDigit(ch rune) bool {
	return isLetter(ch) || isDigit(ch)
}

func isSign(ch rune) bool {
	return ch == '+' || ch == '-'
}

func isDelimiter(ch rune) bool {
	return ch == ',' || ch == ';'
}
