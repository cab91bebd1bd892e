package lib

import (
	"context"
	"fmt"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// A case file holds input/expected tables in plain text:
//
//	# integers
//	grammar int
//	"154216" => 154216
//	"fg"     => !
//
// "!" marks an input that must be rejected.
type caseFileAST struct {
	Sections []*caseSectionAST `parser:"@@*"`
}

type caseSectionAST struct {
	Pos     lexer.Position
	Grammar string         `parser:"'grammar':Ident @Ident"`
	Cases   []*caseLineAST `parser:"@@*"`
}

type caseLineAST struct {
	Pos   lexer.Position
	Input string       `parser:"@String '=>':Arrow"`
	Want  *expectedAST `parser:"@@"`
}

type expectedAST struct {
	Reject bool    `parser:"  @'!':Bang"`
	Value  *string `parser:"| @(String | Int | Ident)"`
}

var caseLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Arrow", Pattern: `=>`},
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
	{Name: "Bang", Pattern: `!`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var caseParser = participle.MustBuild[caseFileAST](
	participle.Lexer(caseLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.Unquote("String"),
)

// Case is one row of a case file. Want holds the rendered result Grammar.Scan
// must produce, or None when the input must be rejected.
type Case struct {
	File    string
	Line    int
	Index   int
	Grammar Grammar
	Input   string
	Want    Option[string]
}

func ParseCases(name string, text string) ([]Case, error) {
	ast, err := caseParser.ParseString(name, text)
	if err != nil {
		return nil, err
	}

	cases := []Case{}
	for _, section := range ast.Sections {
		g, err := LookupGrammar(section.Grammar)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", section.Pos, err)
		}

		for i, line := range section.Cases {
			c := Case{
				File:    name,
				Line:    line.Pos.Line,
				Index:   i,
				Grammar: g,
				Input:   line.Input,
				Want:    None[string](),
			}
			if !line.Want.Reject {
				c.Want = Some(*line.Want.Value)
			}
			cases = append(cases, c)
		}
	}
	return cases, nil
}

// ReadCasesFromDir loads every *.cases file in dir, in file name order.
func ReadCasesFromDir(dir string) ([]Case, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".cases") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	result := []Case{}
	for _, name := range names {
		bytes, err := os.ReadFile(path.Join(dir, name))
		if err != nil {
			return nil, err
		}
		cases, err := ParseCases(name, string(bytes))
		if err != nil {
			return nil, err
		}
		result = append(result, cases...)
	}
	return result, nil
}

type Outcome struct {
	Case   Case
	Passed bool
	Got    string
	Err    error
}

func (o Outcome) String() string {
	status := "ok"
	if !o.Passed {
		status = "FAIL"
	}
	return fmt.Sprintf("%s:%d: %s %s %q", o.Case.File, o.Case.Line, status, o.Case.Grammar, o.Case.Input)
}

func checkCase(c Case) Outcome {
	got, err := c.Grammar.Scan(c.Input)
	out := Outcome{Case: c, Got: got, Err: err}

	if want, accept := c.Want.Get(); accept {
		out.Passed = err == nil && sameResult(c.Grammar, got, want)
	} else {
		out.Passed = err != nil && IsLexerError(err)
	}
	return out
}

// sameResult compares integer results by value, so "+45" and "045" both
// match 45.
func sameResult(g Grammar, got string, want string) bool {
	if g != GrammarInt && g != GrammarNZInt {
		return got == want
	}
	n, err := strconv.Atoi(want)
	if err != nil {
		return false
	}
	return strconv.Itoa(n) == got
}

// RunCases checks cases on up to workers goroutines. Outcomes come back in
// the order of cases. Cases not started before ctx is done fail with the
// context's error.
func RunCases(ctx context.Context, cases []Case, workers int) []Outcome {
	if workers < 1 {
		workers = 1
	}

	outcomes := make([]Outcome, len(cases))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcomes[i] = checkCase(cases[i])
			}
		}()
	}

	next := 0
feed:
	for ; next < len(cases); next++ {
		if ctx.Err() != nil {
			break
		}
		select {
		case jobs <- next:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	for i := next; i < len(cases); i++ {
		outcomes[i] = Outcome{Case: cases[i], Err: ctx.Err()}
	}
	return outcomes
}

func CountFailures(outcomes []Outcome) int {
	failures := 0
	for _, o := range outcomes {
		if !o.Passed {
			failures++
		}
	}
	return failures
}
