package lib

import (
	"errors"
	"fmt"
	"slices"
)

// TableError names the first row of a table that did not behave as
// expected.
type TableError struct {
	Index      int
	Recognizer string
	Input      string
	Err        error
}

func (e *TableError) Error() string {
	return fmt.Sprintf("test %d failed in %s", e.Index, e.Recognizer)
}

func (e *TableError) Unwrap() error {
	return e.Err
}

// RunTable checks every input against its expected outcome. A present
// expectation needs a successful parse with an equal result; an absent one
// needs a *LexerError. Any other error fails the row.
func RunTable[T any](
	name string,
	newRecognizer func(string) Recognizer[T],
	inputs []string,
	expected []Option[T],
	equal func(a, b T) bool,
) error {
	if len(inputs) != len(expected) {
		return fmt.Errorf("%s: %d inputs but %d expected results", name, len(inputs), len(expected))
	}

	for i, input := range inputs {
		got, err := newRecognizer(input).Parse()

		want, accept := expected[i].Get()
		var passed bool
		if accept {
			passed = err == nil && equal(got, want)
		} else {
			passed = err != nil && IsLexerError(err)
		}

		if !passed {
			if err == nil && !accept {
				err = errors.New("input was accepted")
			} else if err == nil {
				err = fmt.Errorf("got %v, want %v", got, want)
			}
			return &TableError{Index: i, Recognizer: name, Input: input, Err: err}
		}
	}
	return nil
}

func Equal[T comparable](a, b T) bool {
	return a == b
}

// EqualRunes compares element by element, in order.
func EqualRunes(a, b []rune) bool {
	return slices.Equal(a, b)
}
