package htmltok

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPreprocessor() (*preprocessor, *[]ErrorCode) {
	var codes []ErrorCode
	p := newPreprocessor(func(code ErrorCode) { codes = append(codes, code) })
	return p, &codes
}

func drain(p *preprocessor) []rune {
	var out []rune
	for {
		cp := p.advance()
		if cp == eofMarker {
			return out
		}
		out = append(out, cp)
	}
}

func TestNewlineNormalization(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		want   string
	}{
		{"crlf", []string{"a\r\nb"}, "a\nb"},
		{"lone cr", []string{"a\rb"}, "a\nb"},
		{"cr at eof", []string{"a\r"}, "a\n"},
		{"crlf across chunks", []string{"a\r", "\nb"}, "a\nb"},
		{"cr cr lf", []string{"a\r\r\nb"}, "a\n\nb"},
		{"cr then cr across chunks", []string{"a\r", "\rb"}, "a\n\nb"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, _ := newTestPreprocessor()
			for i, c := range tc.chunks {
				p.write(c, i == len(tc.chunks)-1)
			}
			require.Equal(t, tc.want, string(drain(p)))
		})
	}
}

func TestLineColumnTracking(t *testing.T) {
	p, _ := newTestPreprocessor()
	p.write("ab\ncd", true)

	p.advance() // a
	loc := p.location()
	assert.Equal(t, position{line: 1, col: 1, offset: 0}, loc)

	p.advance() // b
	p.advance() // \n
	loc = p.location()
	assert.Equal(t, position{line: 1, col: 3, offset: 2}, loc, "the LF itself belongs to the old line")

	p.advance() // c
	loc = p.location()
	assert.Equal(t, position{line: 2, col: 1, offset: 3}, loc)

	p.advance() // d
	assert.Equal(t, position{line: 2, col: 2, offset: 4}, p.location())
}

func TestRetreatAcrossNewline(t *testing.T) {
	p, _ := newTestPreprocessor()
	p.write("a\nb\nc", true)
	for i := 0; i < 5; i++ {
		p.advance()
	}
	require.Equal(t, position{line: 3, col: 1, offset: 4}, p.location())

	p.retreat(2) // back onto 'b'
	require.Equal(t, position{line: 2, col: 1, offset: 2}, p.location())

	// Re-advancing restores the same positions.
	require.Equal(t, '\n', p.advance())
	require.Equal(t, 'c', p.advance())
	require.Equal(t, position{line: 3, col: 1, offset: 4}, p.location())
}

func TestEndOfChunkVsEOF(t *testing.T) {
	p, _ := newTestPreprocessor()
	p.write("ab", false)
	p.advance()
	p.advance()

	require.Equal(t, eofMarker, p.advance())
	assert.True(t, p.endOfChunkHit, "non-terminal exhaustion must signal hibernation")

	p.retreat(1)
	p.write("c", true)
	require.Equal(t, 'c', p.advance())
	require.Equal(t, eofMarker, p.advance())
	assert.False(t, p.endOfChunkHit, "terminal exhaustion is a real EOF")
}

func TestPeekAndStartsWith(t *testing.T) {
	p, _ := newTestPreprocessor()
	p.write("DOCTYPE html", false)
	p.advance() // cursor on 'D'

	assert.Equal(t, 'O', p.peek(1))
	assert.Equal(t, 'C', p.peek(2))

	assert.True(t, p.startsWith("DOCTYPE", true))
	assert.True(t, p.startsWith("doctype", false))
	assert.False(t, p.startsWith("doctype", true))

	assert.False(t, p.startsWith("DOCTYPE html extra", false))
	assert.True(t, p.endOfChunkHit, "an unsatisfiable window without a terminal chunk asks for more input")

	p.endOfChunkHit = false
	p.write("", true)
	assert.False(t, p.startsWith("DOCTYPE html extra", false))
	assert.False(t, p.endOfChunkHit)
}

func TestInsertAtCurrentPos(t *testing.T) {
	p, _ := newTestPreprocessor()
	p.write("ab", true)
	require.Equal(t, 'a', p.advance())
	p.insertAtCurrentPos("XY")
	require.Equal(t, "XYb", string(drain(p)))
}

func TestDropParsedChunk(t *testing.T) {
	p, _ := newTestPreprocessor()
	p.write("abcdef", true)
	for i := 0; i < 4; i++ {
		p.advance()
	}
	before := p.location()
	p.dropParsedChunk()
	require.Equal(t, before, p.location(), "dropping the parsed prefix must not move the logical position")
	require.Equal(t, "ef", string(drain(p)))
}

func TestProblematicCharacterChecks(t *testing.T) {
	p, codes := newTestPreprocessor()
	p.write("\x01a﷐b", true)
	drain(p)
	require.Equal(t, []ErrorCode{ErrControlCharacterInInputStream, ErrNoncharacterInInputStream}, *codes)
}

func TestProblematicChecksNotRepeatedAfterRetreat(t *testing.T) {
	p, codes := newTestPreprocessor()
	p.write("\x01ab", true)
	p.advance()
	p.advance()
	p.retreat(2)
	drain(p)
	require.Equal(t, []ErrorCode{ErrControlCharacterInInputStream}, *codes,
		"a hibernation-style rewind must not re-report input errors")
}

func TestRetreatToStart(t *testing.T) {
	// A hibernation rewind before anything was consumed must land on the
	// virtual pre-input position without disturbing line tracking.
	p, _ := newTestPreprocessor()
	p.write("", false)
	require.Equal(t, eofMarker, p.advance())
	p.retreat(1)
	assert.Equal(t, -1, p.pos)
	assert.Equal(t, 1, p.line)

	p.write("a", true)
	require.Equal(t, 'a', p.advance())
	assert.Equal(t, position{line: 1, col: 1, offset: 0}, p.location())
}

func TestGetErrorLocation(t *testing.T) {
	p, _ := newTestPreprocessor()
	p.write("a\nbc", true)
	for i := 0; i < 3; i++ {
		p.advance()
	}
	e := p.getError(ErrUnexpectedNullCharacter)
	assert.Equal(t, 2, e.Line)
	assert.Equal(t, 1, e.Col)
	assert.Equal(t, 2, e.Offset)
}
