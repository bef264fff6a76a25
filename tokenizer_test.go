package htmltok

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textModes emulates the tree constructor's mode switching: after these
// start tags the parser flips the tokenizer into a text state.
var textModes = map[string]State{
	"title":     StateRCDATA,
	"textarea":  StateRCDATA,
	"style":     StateRawtext,
	"iframe":    StateRawtext,
	"script":    StateScriptData,
	"plaintext": StatePlaintext,
}

// sink collects the token stream as compact strings, with parse errors
// kept separately so chunk-invariance comparisons can check both.
type sink struct {
	tok    *Tokenizer
	events []string
	errs   []ParseError
	locs   []Location

	pauseOn string
	onStart func(*TagToken)
}

func newSink(tok *Tokenizer) *sink {
	s := &sink{tok: tok}
	tok.handler = s
	return s
}

func renderStartTag(t *TagToken) string {
	var b strings.Builder
	b.WriteString("<" + t.Name)
	for _, a := range t.Attrs {
		fmt.Fprintf(&b, " %s=%q", a.Name, a.Value)
	}
	if t.SelfClosing {
		b.WriteString("/")
	}
	b.WriteString(">")
	return b.String()
}

func (s *sink) record(ev string, loc *Location) {
	s.events = append(s.events, ev)
	if loc != nil {
		s.locs = append(s.locs, *loc)
	}
}

func (s *sink) OnStartTag(t *TagToken) {
	s.record(renderStartTag(t), t.Loc)
	if st, ok := textModes[t.Name]; ok {
		s.tok.State = st
	}
	if s.onStart != nil {
		s.onStart(t)
	}
	if t.Name == s.pauseOn {
		s.tok.Pause()
	}
}

func (s *sink) OnEndTag(t *TagToken) {
	s.record("</"+t.Name+">", t.Loc)
}

func (s *sink) OnComment(t *CommentToken) {
	s.record("<!--"+t.Data+"-->", t.Loc)
}

func (s *sink) OnDoctype(t *DoctypeToken) {
	str := func(p *string) string {
		if p == nil {
			return "<nil>"
		}
		return strconv.Quote(*p)
	}
	s.record(fmt.Sprintf("#doctype %s %s %s quirks=%v",
		str(t.Name), str(t.PublicID), str(t.SystemID), t.ForceQuirks), t.Loc)
}

func (s *sink) OnCharacter(t *CharacterToken) {
	s.record(strconv.Quote(t.Chars), t.Loc)
}

func (s *sink) OnNullCharacter(t *CharacterToken) {
	s.record("null"+strconv.Quote(t.Chars), t.Loc)
}

func (s *sink) OnWhitespaceCharacter(t *CharacterToken) {
	s.record("ws"+strconv.Quote(t.Chars), t.Loc)
}

func (s *sink) OnEOF(t *EOFToken) {
	s.record("#eof", t.Loc)
}

func (s *sink) OnParseError(e *ParseError) {
	s.errs = append(s.errs, *e)
}

func errCodes(errs []ParseError) []ErrorCode {
	var codes []ErrorCode
	for _, e := range errs {
		codes = append(codes, e.Code)
	}
	return codes
}

// tokenize feeds the chunks in order, the last one terminal, and returns
// the collected stream.
func tokenize(opts Options, foreign bool, chunks ...string) *sink {
	tok := New(opts, nil)
	s := newSink(tok)
	tok.InForeignNode = foreign
	for i, c := range chunks {
		tok.Write(c, i == len(chunks)-1, nil)
	}
	return s
}

func TestStartTagWithAttributes(t *testing.T) {
	s := tokenize(Options{}, false, `<p class="a">hi</p>`)
	want := []string{`<p class="a">`, `"hi"`, `</p>`, `#eof`}
	if diff := cmp.Diff(want, s.events); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, s.errs)
}

func TestComment(t *testing.T) {
	s := tokenize(Options{}, false, `<!-- x -->`)
	require.Equal(t, []string{`<!-- x -->`, `#eof`}, s.events)
	assert.Empty(t, s.errs)
}

func TestNamedCharacterReferences(t *testing.T) {
	s := tokenize(Options{}, false, `&amp;&notin;&notit;`)
	// &amp; and &notin; decode cleanly; &notit; matches the legacy "not"
	// prefix, leaving "it;" as plain text with a missing-semicolon error.
	require.Equal(t, []string{`"&∉¬it;"`, `#eof`}, s.events)
	require.Equal(t, []ErrorCode{ErrMissingSemicolonAfterCharacterReference}, errCodes(s.errs))
}

func TestDoctype(t *testing.T) {
	s := tokenize(Options{}, false, `<!DOCTYPE html>`)
	require.Equal(t, []string{`#doctype "html" <nil> <nil> quirks=false`, `#eof`}, s.events)
	assert.Empty(t, s.errs)
}

func TestScriptDoubleEscape(t *testing.T) {
	s := tokenize(Options{}, false, `<script><!--<script>x</script>--></script>`)
	want := []string{
		`<script>`,
		`"<!--<script>x</script>-->"`,
		`</script>`,
		`#eof`,
	}
	require.Equal(t, want, s.events)
	assert.Empty(t, s.errs)
}

func TestDuplicateAttributeFirstWins(t *testing.T) {
	s := tokenize(Options{}, false, `<a x=1 x=2>`)
	require.Equal(t, []string{`<a x="1">`, `#eof`}, s.events)
	require.Len(t, s.errs, 1)
	e := s.errs[0]
	assert.Equal(t, ErrDuplicateAttribute, e.Code)
	assert.Equal(t, 1, e.Line)
	assert.Equal(t, 9, e.Col)
	assert.Equal(t, 8, e.Offset)
}

func TestAppropriateEndTag(t *testing.T) {
	s := tokenize(Options{}, false, `<title>a</tit</title >b`)
	want := []string{`<title>`, `"a</tit"`, `</title>`, `"b"`, `#eof`}
	require.Equal(t, want, s.events)
	assert.Empty(t, s.errs)
}

func TestRCDATACharacterReference(t *testing.T) {
	s := tokenize(Options{}, false, `<textarea>a&lt;b</textarea>`)
	require.Equal(t, []string{`<textarea>`, `"a<b"`, `</textarea>`, `#eof`}, s.events)
}

func TestRawtextIgnoresMarkup(t *testing.T) {
	s := tokenize(Options{}, false, `<style><b>&amp;</style>`)
	require.Equal(t, []string{`<style>`, `"<b>&amp;"`, `</style>`, `#eof`}, s.events)
}

func TestPlaintextNeverEnds(t *testing.T) {
	s := tokenize(Options{}, false, `<plaintext></plaintext>`)
	require.Equal(t, []string{`<plaintext>`, `"</plaintext>"`, `#eof`}, s.events)
}

func TestCoalescingByKind(t *testing.T) {
	s := tokenize(Options{}, false, "a  b\nc")
	require.Equal(t, []string{`"a"`, `ws"  "`, `"b"`, "ws\"\\n\"", `"c"`, `#eof`}, s.events)

	// No two adjacent character tokens share a kind.
	prev := ""
	kind := func(ev string) string {
		switch {
		case strings.HasPrefix(ev, "ws"):
			return "ws"
		case strings.HasPrefix(ev, "null"):
			return "null"
		case strings.HasPrefix(ev, `"`):
			return "char"
		}
		return ""
	}
	for _, ev := range s.events {
		k := kind(ev)
		if k != "" && prev != "" {
			assert.NotEqual(t, prev, k, "adjacent character tokens share kind: %v", s.events)
		}
		prev = k
	}
}

func TestNullCharacterInData(t *testing.T) {
	s := tokenize(Options{}, false, "a\x00b")
	require.Equal(t, []string{`"a"`, `null"\x00"`, `"b"`, `#eof`}, s.events)
	require.Equal(t, []ErrorCode{ErrUnexpectedNullCharacter}, errCodes(s.errs))
}

func TestNumericReferenceFolding(t *testing.T) {
	tests := []struct {
		in      string
		out     string
		errs    []ErrorCode
	}{
		{"&#x41;&#66;", `"AB"`, nil},
		{"&#0;", `"�"`, []ErrorCode{ErrNullCharacterReference}},
		{"&#x110000;", `"�"`, []ErrorCode{ErrCharacterReferenceOutsideUnicodeRange}},
		{"&#xD800;", `"�"`, []ErrorCode{ErrSurrogateCharacterReference}},
		{"&#x80;", `"€"`, []ErrorCode{ErrControlCharacterReference}},
		{"&#x99;", `"™"`, []ErrorCode{ErrControlCharacterReference}},
		{"&#xFDD0;", `"\ufdd0"`, []ErrorCode{ErrNoncharacterCharacterReference}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			s := tokenize(Options{}, false, tc.in)
			require.Equal(t, []string{tc.out, `#eof`}, s.events)
			require.Equal(t, tc.errs, errCodes(s.errs))
		})
	}
}

func TestNumericReferenceMissingSemicolon(t *testing.T) {
	s := tokenize(Options{}, false, "&#65 ")
	require.Equal(t, []string{`"A"`, `ws" "`, `#eof`}, s.events)
	require.Equal(t, []ErrorCode{ErrMissingSemicolonAfterCharacterReference}, errCodes(s.errs))
}

func TestAbsenceOfDigits(t *testing.T) {
	s := tokenize(Options{}, false, "&#z&#xg")
	require.Equal(t, []string{`"&#z&#xg"`, `#eof`}, s.events)
	require.Equal(t, []ErrorCode{
		ErrAbsenceOfDigitsInNumericCharacterReference,
		ErrAbsenceOfDigitsInNumericCharacterReference,
	}, errCodes(s.errs))
}

func TestLegacyReferenceInAttribute(t *testing.T) {
	// A semicolon-less match followed by "=" or an alphanumeric decodes
	// as literal text inside attribute values.
	s := tokenize(Options{}, false, `<a href="a&notb" x="a&not;b" y="a&not b">`)
	require.Equal(t, []string{`<a href="a&notb" x="a¬b" y="a¬ b">`, `#eof`}, s.events)
	require.Equal(t, []ErrorCode{ErrMissingSemicolonAfterCharacterReference}, errCodes(s.errs))
}

func TestCDATAInForeignContent(t *testing.T) {
	s := tokenize(Options{}, true, `<![CDATA[x]]>`)
	require.Equal(t, []string{`"x"`, `#eof`}, s.events)
	assert.Empty(t, s.errs)
}

func TestCDATAInHTMLContent(t *testing.T) {
	s := tokenize(Options{}, false, `<![CDATA[x]]>`)
	require.Equal(t, []string{`<!--[CDATA[x]]-->`, `#eof`}, s.events)
	require.Equal(t, []ErrorCode{ErrCDATAInHTMLContent}, errCodes(s.errs))
}

func TestCDATABrackets(t *testing.T) {
	s := tokenize(Options{}, true, `<![CDATA[a]b]]c]]]>`)
	// "]" runs that do not close the section are re-emitted literally.
	require.Equal(t, []string{`"a]b]]c]"`, `#eof`}, s.events)
}

func TestEndTagWithAttributes(t *testing.T) {
	s := tokenize(Options{}, false, `</p x=1>`)
	require.Equal(t, []string{`</p>`, `#eof`}, s.events)
	require.Equal(t, []ErrorCode{ErrEndTagWithAttributes}, errCodes(s.errs))
}

func TestChunkInvariance(t *testing.T) {
	inputs := []string{
		`<p class="a">hi</p>`,
		`<!-- x -->`,
		`&amp;&notin;&notit;`,
		`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`,
		`<script><!--<script>x</script>--></script>`,
		`<a x=1 x=2>`,
		`<title>a&lt;b</title>`,
		"line1\r\nline2\rline3\n<hr>",
		`&#x41;&#65;&#x80;&#0;&#x2014;`,
		`<a href="a&notb" y='&gt'>text`,
		`</p x=1>`,
		`<?pi data?><!x><![CDATA[y]]>`,
		`<style>a { content: "</sty"; }</style>`,
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			whole := tokenize(Options{}, false, input)
			for i := 1; i < len(input); i++ {
				split := tokenize(Options{}, false, input[:i], input[i:])
				if diff := cmp.Diff(whole.events, split.events); diff != "" {
					t.Fatalf("split at %d: token stream diverged (-whole +split):\n%s", i, diff)
				}
				if diff := cmp.Diff(whole.errs, split.errs); diff != "" {
					t.Fatalf("split at %d: parse errors diverged (-whole +split):\n%s", i, diff)
				}
			}
		})
	}
}

func TestChunkInvarianceThreeWay(t *testing.T) {
	input := `<title>a</tit</title><a x="&amp;1" x=2>&#x26;<!--c--><!DOCTYPE html>`
	whole := tokenize(Options{}, false, input)
	for i := 1; i < len(input)-1; i += 3 {
		for j := i + 1; j < len(input); j += 4 {
			split := tokenize(Options{}, false, input[:i], input[i:j], input[j:])
			require.Equal(t, whole.events, split.events, "split at %d,%d", i, j)
			require.Equal(t, whole.errs, split.errs, "split at %d,%d", i, j)
		}
	}
}

func TestSourceLocations(t *testing.T) {
	input := `<p class="a">hi</p>`
	s := tokenize(Options{SourceCodeLocationInfo: true}, false, input)
	require.Equal(t, []string{`<p class="a">`, `"hi"`, `</p>`, `#eof`}, s.events)
	require.Len(t, s.locs, 4)

	runes := []rune(input)
	want := []struct {
		src                  string
		startLine, startCol  int
		endLine, endCol      int
	}{
		{`<p class="a">`, 1, 1, 1, 14},
		{`hi`, 1, 14, 1, 16},
		{`</p>`, 1, 16, 1, 20},
		{``, 1, 20, 1, 20},
	}
	for i, w := range want {
		loc := s.locs[i]
		assert.LessOrEqual(t, loc.StartOffset, loc.EndOffset)
		assert.Equal(t, w.startLine, loc.StartLine, "token %d", i)
		assert.Equal(t, w.startCol, loc.StartCol, "token %d", i)
		assert.Equal(t, w.endLine, loc.EndLine, "token %d", i)
		assert.Equal(t, w.endCol, loc.EndCol, "token %d", i)
		assert.Equal(t, w.src, string(runes[loc.StartOffset:loc.EndOffset]), "token %d", i)
	}
}

func TestMultiLineLocations(t *testing.T) {
	input := "ab\n<!--c\nd-->\n<p>"
	s := tokenize(Options{SourceCodeLocationInfo: true}, false, input)
	require.Equal(t, []string{`"ab"`, "ws\"\\n\"", "<!--c\nd-->", "ws\"\\n\"", `<p>`, `#eof`}, s.events)

	runes := []rune(input)
	comment := s.locs[2]
	assert.Equal(t, 2, comment.StartLine)
	assert.Equal(t, 1, comment.StartCol)
	assert.Equal(t, 3, comment.EndLine)
	assert.Equal(t, 5, comment.EndCol)
	assert.Equal(t, "<!--c\nd-->", string(runes[comment.StartOffset:comment.EndOffset]))

	p := s.locs[4]
	assert.Equal(t, 4, p.StartLine)
	assert.Equal(t, 1, p.StartCol)
	assert.Equal(t, "<p>", string(runes[p.StartOffset:p.EndOffset]))
}

func TestLocationsDisabled(t *testing.T) {
	s := tokenize(Options{}, false, `<p>x</p>`)
	assert.Empty(t, s.locs)
	// Parse errors still carry positions.
	s2 := tokenize(Options{}, false, `<a x=1 x=2>`)
	require.Len(t, s2.errs, 1)
	assert.NotZero(t, s2.errs[0].Line)
}

func TestHibernationCallback(t *testing.T) {
	tok := New(Options{}, nil)
	s := newSink(tok)

	var calls []string
	tok.Write("<!DOCT", false, func() { calls = append(calls, "first") })
	assert.Empty(t, s.events, "no token may be emitted from a partial chunk")
	require.Equal(t, []string{"first"}, calls)

	tok.Write("YPE html>", true, func() { calls = append(calls, "second") })
	require.Equal(t, []string{`#doctype "html" <nil> <nil> quirks=false`, `#eof`}, s.events)
	require.Equal(t, []string{"first", "second"}, calls)
	assert.Empty(t, s.errs)
}

func TestPauseResume(t *testing.T) {
	tok := New(Options{}, nil)
	s := newSink(tok)
	s.pauseOn = "p"

	var cbCalled bool
	tok.Write(`<p>x</p>`, true, func() { cbCalled = true })
	require.Equal(t, []string{`<p>`}, s.events, "loop must stop at the pause")
	assert.False(t, cbCalled, "write callback deferred while paused")

	tok.Resume(nil)
	require.Equal(t, []string{`<p>`, `"x"`, `</p>`, `#eof`}, s.events)
	assert.True(t, cbCalled)
}

func TestInsertHTMLAtCurrentPos(t *testing.T) {
	tok := New(Options{}, nil)
	s := newSink(tok)
	s.onStart = func(tag *TagToken) {
		if tag.Name == "x-include" {
			tok.InsertHTMLAtCurrentPos(`<b>inner</b>`)
		}
	}
	tok.Write(`<x-include>after`, true, nil)
	want := []string{`<x-include>`, `<b>`, `"inner"`, `</b>`, `"after"`, `#eof`}
	require.Equal(t, want, s.events)
}

func TestInsertHTMLDuringLookahead(t *testing.T) {
	// A hibernated "<!" lookahead must re-run cleanly over content spliced
	// in at the cursor.
	tok := New(Options{}, nil)
	s := newSink(tok)
	tok.Write("x<!", false, nil)
	// The pending character run is not flushed by hibernation; doing so
	// would make coalescing depend on chunk boundaries.
	assert.Empty(t, s.events)

	tok.InsertHTMLAtCurrentPos("--c-->")
	tok.Write("", true, nil)
	require.Equal(t, []string{`"x"`, `<!--c-->`, `#eof`}, s.events)
	assert.Empty(t, s.errs)
}

func TestLastStartTagAfterAppropriateEndTag(t *testing.T) {
	tok := New(Options{}, nil)
	s := newSink(tok)
	tok.Write(`<title>x</title>`, true, nil)
	require.Equal(t, []string{`<title>`, `"x"`, `</title>`, `#eof`}, s.events)
	assert.Equal(t, "title", tok.LastStartTagName)
}

func TestEmptyFirstChunk(t *testing.T) {
	tok := New(Options{}, nil)
	s := newSink(tok)
	tok.Write("", false, nil)
	tok.Write("<p>", true, nil)
	require.Equal(t, []string{`<p>`, `#eof`}, s.events)
}

func TestSingleCharacterDocument(t *testing.T) {
	tok := New(Options{}, nil)
	s := newSink(tok)
	tok.Write("a", true, nil)
	require.Equal(t, []string{`"a"`, `#eof`}, s.events)
}

func TestSurrogateInInput(t *testing.T) {
	// WTF-8 encoded lone surrogate: ED A0 80 -> U+D800.
	s := tokenize(Options{}, false, "a\xed\xa0\x80b")
	require.Equal(t, []ErrorCode{ErrSurrogateInInputStream}, errCodes(s.errs))
}

func TestControlAndNoncharacterInInput(t *testing.T) {
	s := tokenize(Options{}, false, "a\x01b\uFDD1c")
	require.Equal(t, []ErrorCode{
		ErrControlCharacterInInputStream,
		ErrNoncharacterInInputStream,
	}, errCodes(s.errs))
}

func TestCRLFNormalization(t *testing.T) {
	whole := tokenize(Options{}, false, "a\r\nb")
	require.Equal(t, []string{`"a"`, "ws\"\\n\"", `"b"`, `#eof`}, whole.events)

	// The CR/LF pair split across chunks still folds to one newline.
	split := tokenize(Options{}, false, "a\r", "\nb")
	require.Equal(t, whole.events, split.events)
}
