package lib

type charLocation struct {
	line int
	col  int
}

type charInfo struct {
	ch       rune
	location charLocation
}

// cursor hands out one rune at a time. Reading past the end is allowed and
// keeps returning the end sentinel.
type cursor struct {
	input           string
	src             []rune
	length          int
	nextIndex       int
	position        int
	current         charInfo
	atEOF           bool
	currentLocation charLocation
}

func newCursor(input string) *cursor {
	src := []rune(input)
	return &cursor{
		input:           input,
		src:             src,
		length:          len(src),
		nextIndex:       0,
		position:        0,
		currentLocation: charLocation{line: 1, col: 1},
	}
}

func (c *cursor) advance() (charInfo, bool) {
	info, ok := charInfo{location: c.currentLocation}, false
	if c.nextIndex < c.length {
		info.ch, ok = c.src[c.nextIndex], true
	}
	c.position++
	c.current = info
	c.atEOF = !ok
	if !ok {
		return info, false
	}

	c.nextIndex++
	if info.ch == '\n' {
		c.currentLocation.line++
		c.currentLocation.col = 1
	} else {
		c.currentLocation.col++
	}
	return info, true
}

func (c *cursor) atEnd() bool {
	return c.atEOF
}

// is reports whether the current rune is present and satisfies pred.
func (c *cursor) is(pred func(rune) bool) bool {
	return !c.atEOF && c.position > 0 && pred(c.current.ch)
}

func (c *cursor) errorHere() error {
	return &LexerError{
		Source:   c.input,
		Position: c.position,
		Char:     c.current.ch,
		EOF:      c.atEOF,
		Line:     c.current.location.line,
		Col:      c.current.location.col,
	}
}
