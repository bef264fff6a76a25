package htmltok

// Location describes the source span of a token. Lines and columns are
// 1-based; columns and offsets count code points, not bytes. End positions
// are half-open: they point at the code point just past the span.
type Location struct {
	StartLine   int
	StartCol    int
	StartOffset int
	EndLine     int
	EndCol      int
	EndOffset   int
}

// position is a single point in the input, used internally while a token
// is still under construction.
type position struct {
	line, col, offset int
}

func (l *Location) setStart(p position) {
	l.StartLine, l.StartCol, l.StartOffset = p.line, p.col, p.offset
}

func (l *Location) setEnd(p position) {
	l.EndLine, l.EndCol, l.EndOffset = p.line, p.col, p.offset
}
