package htmltok

import "github.com/dpotapov/go-htmltok/entity"

// c1Remap substitutes the Windows-1252 interpretations for numeric
// references into the C1 control block. Values without an entry pass
// through unchanged.
var c1Remap = map[int]rune{
	0x80: '€',
	0x82: '‚',
	0x83: 'ƒ',
	0x84: '„',
	0x85: '…',
	0x86: '†',
	0x87: '‡',
	0x88: 'ˆ',
	0x89: '‰',
	0x8a: 'Š',
	0x8b: '‹',
	0x8c: 'Œ',
	0x8e: 'Ž',
	0x91: '‘',
	0x92: '’',
	0x93: '“',
	0x94: '”',
	0x95: '•',
	0x96: '–',
	0x97: '—',
	0x98: '˜',
	0x99: '™',
	0x9a: 'š',
	0x9b: '›',
	0x9c: 'œ',
	0x9e: 'ž',
	0x9f: 'Ÿ',
}

// isCharRefInAttribute reports whether the pending character reference
// was entered from an attribute value state. It decides where decoded
// characters are flushed to and whether the legacy no-semicolon match is
// suppressed.
func (t *Tokenizer) isCharRefInAttribute() bool {
	return t.ReturnState == stateAttributeValueDoubleQuoted ||
		t.ReturnState == stateAttributeValueSingleQuoted ||
		t.ReturnState == stateAttributeValueUnquoted
}

// flushCodePoint routes one decoded or literal code point either into the
// current attribute value or out as a character token, depending on where
// the reference started.
func (t *Tokenizer) flushCodePoint(cp rune) {
	if t.isCharRefInAttribute() {
		t.appendToAttrValue(cp)
	} else {
		t.emitCodePoint(cp)
	}
}

// flushCharRefBuf flushes the raw code points consumed as part of an
// unfinished character reference ("&", "&#", "&#x").
func (t *Tokenizer) flushCharRefBuf() {
	for _, cp := range t.charRefBuf {
		t.flushCodePoint(cp)
	}
	t.charRefBuf = t.charRefBuf[:0]
}

func (t *Tokenizer) stateCharacterReference(cp rune) {
	switch {
	case isASCIIAlphaNumeric(cp):
		t.reconsumeInState(stateNamedCharacterReference, cp)
	case cp == '#':
		t.charRefBuf = append(t.charRefBuf, cp)
		t.charRefCode = 0
		t.State = stateNumericCharacterReference
	default:
		t.flushCharRefBuf()
		t.State = t.ReturnState
		t.callState(cp)
	}
}

func (t *Tokenizer) stateNamedCharacterReference(cp rune) {
	matched := t.matchNamedCharacterReference(cp)
	if t.ensureHibernation() {
		// The whole walk is rewound and re-run on the next chunk.
		return
	}
	if matched == nil {
		t.flushCharRefBuf() // just the "&"
		t.State = stateAmbiguousAmpersand
		return
	}
	for _, r := range matched {
		t.flushCodePoint(r)
	}
	t.charRefBuf = t.charRefBuf[:0]
	t.State = t.ReturnState
}

// isEntityInAttributeInvalidEnd implements the legacy attribute rule: a
// semicolon-less match followed by "=" or an alphanumeric decodes as
// literal text instead.
func isEntityInAttributeInvalidEnd(cp rune) bool {
	return cp == '=' || isASCIIAlphaNumeric(cp)
}

// matchNamedCharacterReference walks the packed entity trie, one node per
// consumed code point, remembering the most recent terminal. On exit the
// cursor is rewound to the last code point of the match (or to the first
// name character on a total miss, where nil is returned and the caller
// falls back to the ambiguous-ampersand state).
func (t *Tokenizer) matchNamedCharacterReference(cp rune) []rune {
	// excess counts consumed code points past the most recent terminal
	// match; it starts at 1 so a total miss rewinds the first name
	// character for the ambiguous-ampersand state to re-consume.
	var result []rune
	excess := 1
	withoutSemicolon := false

	i := 0
	w := entity.Tree[0]
	for {
		i = entity.DetermineBranch(entity.Tree, w, i+1+entity.ValueLength(w), cp)
		if i < 0 {
			break
		}
		w = entity.Tree[i]

		if entity.ValueLength(w) > 0 {
			// Semicolon-less matches inside attribute values are dropped
			// when followed by "=" or an alphanumeric; the name is then
			// re-consumed as plain attribute text.
			if cp == ';' || !t.isCharRefInAttribute() ||
				!isEntityInAttributeInvalidEnd(t.pre.peek(1)) {
				result = entity.Value(entity.Tree, i)
				excess = 0
				withoutSemicolon = cp != ';'
			}
			if !entity.HasBranches(w) {
				break
			}
		}

		cp = t.consume()
		excess++
		if cp == eofMarker {
			break
		}
	}

	t.unconsume(excess)
	if t.pre.endOfChunkHit {
		return nil
	}
	if result != nil && withoutSemicolon {
		t.err(ErrMissingSemicolonAfterCharacterReference)
	}
	return result
}

func (t *Tokenizer) stateAmbiguousAmpersand(cp rune) {
	switch {
	case isASCIIAlphaNumeric(cp):
		t.flushCodePoint(cp)
	case cp == ';':
		t.err(ErrUnknownNamedCharacterReference)
		t.State = t.ReturnState
		t.callState(cp)
	default:
		t.State = t.ReturnState
		t.callState(cp)
	}
}

func (t *Tokenizer) stateNumericCharacterReference(cp rune) {
	switch {
	case cp == 'x' || cp == 'X':
		t.charRefBuf = append(t.charRefBuf, cp)
		t.State = stateHexCharacterReferenceStart
	case isASCIIDigit(cp):
		t.reconsumeInState(stateDecimalCharacterReference, cp)
	default:
		t.err(ErrAbsenceOfDigitsInNumericCharacterReference)
		t.flushCharRefBuf() // "&#"
		t.State = t.ReturnState
		t.callState(cp)
	}
}

func (t *Tokenizer) stateHexCharacterReferenceStart(cp rune) {
	if isASCIIHexDigit(cp) {
		t.reconsumeInState(stateHexCharacterReference, cp)
		return
	}
	t.err(ErrAbsenceOfDigitsInNumericCharacterReference)
	t.flushCharRefBuf() // "&#x"
	t.State = t.ReturnState
	t.callState(cp)
}

func (t *Tokenizer) stateHexCharacterReference(cp rune) {
	switch {
	case isASCIIHexDigit(cp):
		if t.charRefCode <= 0x10ffff {
			t.charRefCode = t.charRefCode*16 + hexDigitValue(cp)
		}
	case cp == ';':
		t.numericCharacterReferenceEnd()
	default:
		t.err(ErrMissingSemicolonAfterCharacterReference)
		t.numericCharacterReferenceEnd()
		t.callState(cp)
	}
}

func (t *Tokenizer) stateDecimalCharacterReference(cp rune) {
	switch {
	case isASCIIDigit(cp):
		if t.charRefCode <= 0x10ffff {
			t.charRefCode = t.charRefCode*10 + int(cp-'0')
		}
	case cp == ';':
		t.numericCharacterReferenceEnd()
	default:
		t.err(ErrMissingSemicolonAfterCharacterReference)
		t.numericCharacterReferenceEnd()
		t.callState(cp)
	}
}

// numericCharacterReferenceEnd post-processes the accumulated number and
// flushes the resulting code point. This is the NUMERIC_CHARACTER_
// REFERENCE_END state of the machine; it consumes no input of its own.
func (t *Tokenizer) numericCharacterReferenceEnd() {
	code := t.charRefCode
	switch {
	case code == 0:
		t.err(ErrNullCharacterReference)
		code = int(replacementChar)
	case code > 0x10ffff:
		t.err(ErrCharacterReferenceOutsideUnicodeRange)
		code = int(replacementChar)
	case isSurrogate(rune(code)):
		t.err(ErrSurrogateCharacterReference)
		code = int(replacementChar)
	case isNoncharacter(rune(code)):
		t.err(ErrNoncharacterCharacterReference)
	case code == 0x0d || isControlCodePoint(rune(code)):
		t.err(ErrControlCharacterReference)
		if mapped, ok := c1Remap[code]; ok {
			code = int(mapped)
		}
	}
	t.charRefBuf = t.charRefBuf[:0]
	t.flushCodePoint(rune(code))
	t.State = t.ReturnState
}
