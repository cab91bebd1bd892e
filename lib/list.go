package lib

// ListLexer recognizes letters separated by ',' or ';', e.g. "a,b;c". Only
// the letters end up in the result, in input order.
type ListLexer struct {
	scanner
	Result []rune
}

func NewListLexer(input string) *ListLexer {
	return &ListLexer{scanner: newScanner(input)}
}

func (l *ListLexer) Parse() ([]rune, error) {
	if err := l.begin(); err != nil {
		return nil, err
	}

	letters := []rune{}

	if !l.cur.is(isLetter) {
		return nil, l.cur.errorHere()
	}
	letters = append(letters, l.cur.current.ch)
	l.next()

	wantDelimiter := true
	for wantDelimiter && l.cur.is(isDelimiter) || !wantDelimiter && l.cur.is(isLetter) {
		if !wantDelimiter {
			letters = append(letters, l.cur.current.ch)
		}
		l.next()
		wantDelimiter = !wantDelimiter
	}

	// Ending right after a delimiter means a letter is still owed.
	if err := l.requireEnd(); err != nil {
		return nil, err
	}
	if !wantDelimiter {
		return nil, l.cur.errorHere()
	}

	l.Result = letters
	return letters, nil
}
