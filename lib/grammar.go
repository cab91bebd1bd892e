package lib

import (
	"fmt"
	"strconv"
)

type Grammar int

const (
	GrammarInt Grammar = iota
	GrammarID
	GrammarNZInt
	GrammarAlter
	GrammarList
)

var grammarNames = map[Grammar]string{
	GrammarInt:   "int",
	GrammarID:    "id",
	GrammarNZInt: "nzint",
	GrammarAlter: "alter",
	GrammarList:  "list",
}

var Grammars = []Grammar{GrammarInt, GrammarID, GrammarNZInt, GrammarAlter, GrammarList}

func LookupGrammar(name string) (Grammar, error) {
	for g, n := range grammarNames {
		if n == name {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGrammar, name)
}

func (g Grammar) String() string {
	name, ok := grammarNames[g]
	if !ok {
		return fmt.Sprintf("Grammar(%d)", int(g))
	}
	return name
}

// Scan runs the grammar's recognizer over input and renders the result:
// integers in decimal, strings as they are, letter lists concatenated.
func (g Grammar) Scan(input string) (string, error) {
	switch g {
	case GrammarInt:
		return scanInt(NewIntLexer(input))
	case GrammarNZInt:
		return scanInt(NewNZIntLexer(input))
	case GrammarID:
		return NewIDLexer(input).Parse()
	case GrammarAlter:
		return NewAlterLexer(input).Parse()
	case GrammarList:
		letters, err := NewListLexer(input).Parse()
		if err != nil {
			return "", err
		}
		return string(letters), nil
	default:
		return "", fmt.Errorf("%w: %v", ErrUnknownGrammar, g)
	}
}

func scanInt(r Recognizer[int]) (string, error) {
	n, err := r.Parse()
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}
