package lib

var noInt = None[int]()
var noString = None[string]()
var noList = None[[]rune]()

func intRecognizer(s string) Recognizer[int]      { return NewIntLexer(s) }
func nzIntRecognizer(s string) Recognizer[int]    { return NewNZIntLexer(s) }
func idRecognizer(s string) Recognizer[string]    { return NewIDLexer(s) }
func alterRecognizer(s string) Recognizer[string] { return NewAlterLexer(s) }
func listRecognizer(s string) Recognizer[[]rune]  { return NewListLexer(s) }

// RunBuiltinTables checks all five recognizers against the reference
// tables and stops at the first failing row.
func RunBuiltinTables() error {
	err := RunTable("IntLexer", intRecognizer,
		[]string{"154216", "+45", "-78", "fg", "", "5"},
		[]Option[int]{Some(154216), Some(45), Some(-78), noInt, noInt, Some(5)},
		Equal[int])
	if err != nil {
		return err
	}

	err = RunTable("IDLexer", idRecognizer,
		[]string{"154216", "+45", "-78", "fg", "", "5", "g14", "tiger", "j", "j34ggh54dfGFD3"},
		[]Option[string]{noString, noString, noString, Some("fg"), noString, noString,
			Some("g14"), Some("tiger"), Some("j"), Some("j34ggh54dfGFD3")},
		Equal[string])
	if err != nil {
		return err
	}

	err = RunTable("NZIntLexer", nzIntRecognizer,
		[]string{"154216", "+45", "-78", "fg", "", "5", "0998", "+055"},
		[]Option[int]{noInt, Some(45), Some(-78), noInt, noInt, noInt, noInt, noInt},
		Equal[int])
	if err != nil {
		return err
	}

	err = RunTable("AlterLexer", alterRecognizer,
		[]string{"154216", "+45", "-78", "f6", "", "g", "g5h6g4g3n8h5", "4g5h6g4g3n8h5", "dfg"},
		[]Option[string]{noString, noString, noString, Some("f6"), noString, Some("g"),
			Some("g5h6g4g3n8h5"), noString, noString},
		Equal[string])
	if err != nil {
		return err
	}

	return RunTable("ListLexer", listRecognizer,
		[]string{"a,b;c,d;e,f,g,h", "a", "", "a,", "123", "dfg"},
		[]Option[[]rune]{Some([]rune{'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h'}), Some([]rune{'a'}),
			noList, noList, noList, noList},
		EqualRunes)
}
