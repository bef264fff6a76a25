package htmltok

import (
	"fmt"

	"github.com/Goodwine/triemap"
	"golang.org/x/net/html/atom"
)

// State identifies a tokenizer state. The numeric values are stable: the
// tree constructor switches the machine between the exported ones after
// emitting start tags for text-mode elements.
type State int

// States the tree constructor is expected to set directly. The unexported
// ones in between are reachable only through tokenization itself.
const (
	StateData         State = 0
	StateRCDATA       State = 1
	StateRawtext      State = 2
	StateScriptData   State = 3
	StatePlaintext    State = 4
	StateCDATASection State = 68
)

const (
	stateTagOpen State = iota + 5
	stateEndTagOpen
	stateTagName
	stateRCDATALessThanSign
	stateRCDATAEndTagOpen
	stateRCDATAEndTagName
	stateRawtextLessThanSign
	stateRawtextEndTagOpen
	stateRawtextEndTagName
	stateScriptDataLessThanSign
	stateScriptDataEndTagOpen
	stateScriptDataEndTagName
	stateScriptDataEscapeStart
	stateScriptDataEscapeStartDash
	stateScriptDataEscaped
	stateScriptDataEscapedDash
	stateScriptDataEscapedDashDash
	stateScriptDataEscapedLessThanSign
	stateScriptDataEscapedEndTagOpen
	stateScriptDataEscapedEndTagName
	stateScriptDataDoubleEscapeStart
	stateScriptDataDoubleEscaped
	stateScriptDataDoubleEscapedDash
	stateScriptDataDoubleEscapedDashDash
	stateScriptDataDoubleEscapedLessThanSign
	stateScriptDataDoubleEscapeEnd
	stateBeforeAttributeName
	stateAttributeName
	stateAfterAttributeName
	stateBeforeAttributeValue
	stateAttributeValueDoubleQuoted
	stateAttributeValueSingleQuoted
	stateAttributeValueUnquoted
	stateAfterAttributeValueQuoted
	stateSelfClosingStartTag
	stateBogusComment
	stateMarkupDeclarationOpen
	stateCommentStart
	stateCommentStartDash
	stateComment
	stateCommentLessThanSign
	stateCommentLessThanSignBang
	stateCommentLessThanSignBangDash
	stateCommentLessThanSignBangDashDash
	stateCommentEndDash
	stateCommentEnd
	stateCommentEndBang
	stateDoctype
	stateBeforeDoctypeName
	stateDoctypeName
	stateAfterDoctypeName
	stateAfterDoctypePublicKeyword
	stateBeforeDoctypePublicIdentifier
	stateDoctypePublicIdentifierDoubleQuoted
	stateDoctypePublicIdentifierSingleQuoted
	stateAfterDoctypePublicIdentifier
	stateBetweenDoctypePublicAndSystemIdentifiers
	stateAfterDoctypeSystemKeyword
	stateBeforeDoctypeSystemIdentifier
	stateDoctypeSystemIdentifierDoubleQuoted
	stateDoctypeSystemIdentifierSingleQuoted
	stateAfterDoctypeSystemIdentifier
	stateBogusDoctype // 67, StateCDATASection is 68
)

const (
	stateCDATASectionBracket State = iota + 69
	stateCDATASectionEnd
	stateCharacterReference
	stateNamedCharacterReference
	stateAmbiguousAmpersand
	stateNumericCharacterReference
	stateHexCharacterReferenceStart
	stateHexCharacterReference
	stateDecimalCharacterReference
	stateNumericCharacterReferenceEnd
)

// Options configure a Tokenizer at construction.
type Options struct {
	// SourceCodeLocationInfo enables Loc on emitted tokens. Parse errors
	// carry line/col/offset regardless.
	SourceCodeLocationInfo bool
}

// Tokenizer is the push-driven HTML5 tokenization state machine. It is not
// safe for concurrent use; all suspension is cooperative (hibernation on
// chunk exhaustion, Pause/Resume at the loop head).
type Tokenizer struct {
	// Fields the tree constructor mutates between tokens.
	State            State
	ReturnState      State
	InForeignNode    bool
	LastStartTagName string

	opts    Options
	handler TokenHandler
	pre     *preprocessor

	paused    bool
	active    bool
	inLoop    bool
	pendingCb func()

	consumedAfterSnapshot int

	// Current token scratch, reused across tokens. Which one is live is
	// tracked by curType.
	curType    TokenType
	curTag     TagToken
	curComment CommentToken
	curDoctype DoctypeToken

	tagNameBuf  []rune
	commentBuf  []rune
	doctypeName []rune
	publicID    []rune
	systemID    []rune

	attrNameBuf  []rune
	attrValueBuf []rune
	attrPushed   bool
	skipAttr     bool

	// Coalesced character run.
	charBuf  []rune
	charKind CharacterKind
	hasChar  bool
	charLoc  Location

	// Start anchor of the token under construction (the position of its
	// opening "<", or of the DOCTYPE/comment opener).
	tokenStart position

	// Character reference machinery.
	charRefBuf  []rune
	charRefCode int

	// Temp buffer for the script double-escape "script" check.
	seqBuf []rune

	names triemap.RuneSliceMap
}

// New constructs a tokenizer pushing tokens into handler. The zero State
// is StateData; the parser may reassign it before the first Write.
func New(opts Options, handler TokenHandler) *Tokenizer {
	t := &Tokenizer{
		opts:    opts,
		handler: handler,
	}
	t.pre = newPreprocessor(func(code ErrorCode) { t.err(code) })
	return t
}

// Write feeds a chunk of input and runs the machine until it hibernates,
// pauses or reaches end of stream. cb, when non-nil, is invoked once the
// loop exits without being paused; under a pause it is deferred to the
// matching Resume.
func (t *Tokenizer) Write(chunk string, isLast bool, cb func()) {
	if t.pre.pos > bufferWaterline {
		t.pre.dropParsedChunk()
	}
	t.active = true
	t.pre.write(chunk, isLast)
	if cb != nil {
		if prev := t.pendingCb; prev != nil {
			t.pendingCb = func() { prev(); cb() }
		} else {
			t.pendingCb = cb
		}
	}
	t.runParsingLoop()
	t.fireCallback()
}

// InsertHTMLAtCurrentPos splices a chunk into the input immediately after
// the cursor and continues tokenizing. This is the document.write path:
// handlers call it from inside a callback.
func (t *Tokenizer) InsertHTMLAtCurrentPos(chunk string) {
	t.active = true
	t.pre.insertAtCurrentPos(chunk)
	t.runParsingLoop()
}

// Pause stops the loop before the next state dispatch. Safe to call from
// inside a handler callback.
func (t *Tokenizer) Pause() {
	t.paused = true
}

// Resume clears the pause flag and re-enters the loop unless it is already
// running further up the stack.
func (t *Tokenizer) Resume(cb func()) {
	if !t.paused {
		return
	}
	t.paused = false
	if cb != nil {
		prev := t.pendingCb
		t.pendingCb = func() {
			if prev != nil {
				prev()
			}
			cb()
		}
	}
	t.runParsingLoop()
	t.fireCallback()
}

func (t *Tokenizer) fireCallback() {
	if t.paused || t.inLoop {
		return
	}
	if cb := t.pendingCb; cb != nil {
		t.pendingCb = nil
		cb()
	}
}

// runParsingLoop is the single dispatch loop. The inLoop guard makes it
// re-entrancy safe: a handler feeding input synchronously from a callback
// does not nest a second loop, the outer one simply continues.
func (t *Tokenizer) runParsingLoop() {
	if t.inLoop {
		return
	}
	t.inLoop = true
	for t.active && !t.paused {
		t.consumedAfterSnapshot = 0
		cp := t.consume()
		if !t.ensureHibernation() {
			t.callState(cp)
		}
	}
	t.inLoop = false
}

func (t *Tokenizer) consume() rune {
	t.consumedAfterSnapshot++
	return t.pre.advance()
}

func (t *Tokenizer) unconsume(n int) {
	if n > 0 {
		t.consumedAfterSnapshot -= n
		t.pre.retreat(n)
	}
}

// ensureHibernation checks whether the last consume ran out of buffered
// input mid-token. If so, everything consumed since the state snapshot is
// rewound and the loop is told to stop; the next Write re-runs the state
// from the committed cursor. Partial chunks therefore never produce
// partial tokens, and sequence lookaheads are retried wholesale.
func (t *Tokenizer) ensureHibernation() bool {
	if !t.pre.endOfChunkHit {
		return false
	}
	t.unconsume(t.consumedAfterSnapshot)
	t.active = false
	return true
}

// reconsumeInState reprocesses the current code point in a new state
// without touching the cursor.
func (t *Tokenizer) reconsumeInState(s State, cp rune) {
	t.State = s
	t.callState(cp)
}

// advanceBy consumes count code points that a lookahead has already
// verified to be buffered.
func (t *Tokenizer) advanceBy(count int) {
	for i := 0; i < count; i++ {
		t.consume()
	}
}

// consumeSequenceIfMatch consumes pattern if the input starting at the
// current code point matches it. The current code point counts as the
// first pattern position. On a chunk-boundary miss, endOfChunkHit is left
// set for ensureHibernation.
func (t *Tokenizer) consumeSequenceIfMatch(pattern string, caseSensitive bool) bool {
	if t.pre.startsWith(pattern, caseSensitive) {
		n := 0
		for range pattern {
			n++
		}
		t.advanceBy(n - 1)
		return true
	}
	return false
}

func (t *Tokenizer) err(code ErrorCode) {
	t.handler.OnParseError(t.pre.getError(code))
}

// intern maps a scratch rune slice to a canonical string, deduplicating
// tag and attribute names across the document.
func (t *Tokenizer) intern(runes []rune) string {
	if v, ok := t.names.Get(runes); ok {
		return v.(string)
	}
	s := string(runes)
	t.names.Put(append([]rune(nil), runes...), s)
	return s
}

// --- token construction -------------------------------------------------

func (t *Tokenizer) markTokenStart() {
	t.tokenStart = t.pre.location()
}

func (t *Tokenizer) createStartTagToken() {
	t.curType = TokenStartTag
	t.curTag.Name = ""
	t.curTag.ID = 0
	t.curTag.SelfClosing = false
	t.curTag.AckSelfClosing = false
	t.curTag.Attrs = t.curTag.Attrs[:0]
	t.curTag.Loc = nil
	t.tagNameBuf = t.tagNameBuf[:0]
	t.attrPushed = false
	t.skipAttr = false
}

func (t *Tokenizer) createEndTagToken() {
	t.createStartTagToken()
	t.curType = TokenEndTag
}

func (t *Tokenizer) createCommentToken() {
	t.curType = TokenComment
	t.curComment.Data = ""
	t.curComment.Loc = nil
	t.commentBuf = t.commentBuf[:0]
}

func (t *Tokenizer) createDoctypeToken() {
	t.curType = TokenDoctype
	t.curDoctype = DoctypeToken{}
	t.doctypeName = t.doctypeName[:0]
	t.publicID = t.publicID[:0]
	t.systemID = t.systemID[:0]
}

func (t *Tokenizer) appendToTagName(cp rune) {
	t.tagNameBuf = append(t.tagNameBuf, cp)
}

func (t *Tokenizer) finishTagName() {
	t.curTag.Name = t.intern(t.tagNameBuf)
	t.curTag.ID = atom.Lookup([]byte(t.curTag.Name))
}

// --- attributes ---------------------------------------------------------

func (t *Tokenizer) createAttr(initial ...rune) {
	t.commitPendingAttr()
	t.attrNameBuf = append(t.attrNameBuf[:0], initial...)
	t.attrValueBuf = t.attrValueBuf[:0]
	t.skipAttr = false
}

// leaveAttrName resolves the attribute name. The first occurrence wins:
// a name already present drops the attribute with a duplicate-attribute
// error, and its value characters are discarded as they arrive.
func (t *Tokenizer) leaveAttrName() {
	name := t.intern(t.attrNameBuf)
	if _, dup := t.curTag.Attr(name); dup {
		t.err(ErrDuplicateAttribute)
		t.skipAttr = true
		return
	}
	t.curTag.Attrs = append(t.curTag.Attrs, Attribute{Name: name})
	t.attrPushed = true
}

func (t *Tokenizer) appendToAttrName(cp rune) {
	t.attrNameBuf = append(t.attrNameBuf, cp)
}

func (t *Tokenizer) appendToAttrValue(cp rune) {
	t.attrValueBuf = append(t.attrValueBuf, cp)
}

func (t *Tokenizer) commitPendingAttr() {
	if t.attrPushed {
		if !t.skipAttr {
			t.curTag.Attrs[len(t.curTag.Attrs)-1].Value = string(t.attrValueBuf)
		}
		t.attrPushed = false
	}
}

// --- emission -----------------------------------------------------------

func (t *Tokenizer) tokenLoc(end position) *Location {
	if !t.opts.SourceCodeLocationInfo {
		return nil
	}
	loc := &Location{}
	loc.setStart(t.tokenStart)
	loc.setEnd(end)
	return loc
}

// emitCurrentTagToken hands the tag under construction to the handler.
// The cursor is expected to sit on the closing ">".
func (t *Tokenizer) emitCurrentTagToken() {
	t.flushCharacterToken()
	t.commitPendingAttr()
	t.finishTagName()
	t.curTag.Loc = t.tokenLoc(t.pre.locationAfter())
	switch t.curType {
	case TokenStartTag:
		t.LastStartTagName = t.curTag.Name
		t.handler.OnStartTag(&t.curTag)
	case TokenEndTag:
		if len(t.curTag.Attrs) > 0 {
			t.err(ErrEndTagWithAttributes)
		}
		if t.curTag.SelfClosing {
			t.err(ErrEndTagWithTrailingSolidus)
		}
		t.handler.OnEndTag(&t.curTag)
	default:
		panic(fmt.Sprintf("htmltok: emitCurrentTagToken with token type %d", t.curType))
	}
	t.curType = TokenNone
}

func (t *Tokenizer) emitCurrentComment() {
	t.flushCharacterToken()
	t.curComment.Data = string(t.commentBuf)
	t.curComment.Loc = t.tokenLoc(t.pre.locationAfter())
	t.handler.OnComment(&t.curComment)
	t.curType = TokenNone
}

// emitCurrentCommentAtEOF emits the partial comment when the stream ends
// inside it; the span closes at the EOF position.
func (t *Tokenizer) emitCurrentCommentAtEOF() {
	t.flushCharacterToken()
	t.curComment.Data = string(t.commentBuf)
	t.curComment.Loc = t.tokenLoc(t.pre.location())
	t.handler.OnComment(&t.curComment)
	t.curType = TokenNone
}

func (t *Tokenizer) emitCurrentDoctype(atEOF bool) {
	t.flushCharacterToken()
	if len(t.doctypeName) > 0 || t.curDoctype.Name != nil {
		s := string(t.doctypeName)
		t.curDoctype.Name = &s
	}
	if t.curDoctype.PublicID != nil {
		s := string(t.publicID)
		t.curDoctype.PublicID = &s
	}
	if t.curDoctype.SystemID != nil {
		s := string(t.systemID)
		t.curDoctype.SystemID = &s
	}
	end := t.pre.locationAfter()
	if atEOF {
		end = t.pre.location()
	}
	t.curDoctype.Loc = t.tokenLoc(end)
	t.handler.OnDoctype(&t.curDoctype)
	t.curType = TokenNone
}

func (t *Tokenizer) emitEOFToken() {
	t.flushCharacterToken()
	var loc *Location
	if t.opts.SourceCodeLocationInfo {
		p := t.pre.location()
		loc = &Location{}
		loc.setStart(p)
		loc.setEnd(p)
	}
	t.handler.OnEOF(&EOFToken{Loc: loc})
	t.active = false
}

// emitCodePoint classifies a code point and appends it to the pending
// character run, flushing first on a kind change.
func (t *Tokenizer) emitCodePoint(cp rune) {
	kind := CharacterData
	switch {
	case cp == 0:
		kind = CharacterNull
	case isWhitespace(cp):
		kind = CharacterWhitespace
	}
	t.appendCharacter(kind, cp)
}

// emitChars emits literal text (e.g. "</" fallbacks) as CharacterData.
func (t *Tokenizer) emitChars(s string) {
	for _, cp := range s {
		t.appendCharacter(CharacterData, cp)
	}
}

func (t *Tokenizer) appendCharacter(kind CharacterKind, cp rune) {
	if t.hasChar && t.charKind != kind {
		t.flushCharacterToken()
	}
	if !t.hasChar {
		t.hasChar = true
		t.charKind = kind
		t.charLoc.setStart(t.pre.location())
	}
	t.charBuf = append(t.charBuf, cp)
	t.charLoc.setEnd(t.pre.locationAfter())
}

// flushCharacterToken emits the pending character run, if any. It runs
// implicitly before every non-character token and EOF so stream order is
// preserved.
func (t *Tokenizer) flushCharacterToken() {
	if !t.hasChar {
		return
	}
	tok := CharacterToken{Kind: t.charKind, Chars: string(t.charBuf)}
	if t.opts.SourceCodeLocationInfo {
		loc := t.charLoc
		tok.Loc = &loc
	}
	switch t.charKind {
	case CharacterWhitespace:
		t.handler.OnWhitespaceCharacter(&tok)
	case CharacterNull:
		t.handler.OnNullCharacter(&tok)
	default:
		t.handler.OnCharacter(&tok)
	}
	t.charBuf = t.charBuf[:0]
	t.hasChar = false
}
