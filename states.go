package htmltok

import "fmt"

const replacementChar = '�'

// callState dispatches one consumed code point to the current state. The
// dense switch keeps dispatch a computed jump; per-step indirection
// through function values would defeat branch prediction.
func (t *Tokenizer) callState(cp rune) {
	switch t.State {
	case StateData:
		t.stateData(cp)
	case StateRCDATA:
		t.stateRCDATA(cp)
	case StateRawtext:
		t.stateRawtext(cp)
	case StateScriptData:
		t.stateScriptData(cp)
	case StatePlaintext:
		t.statePlaintext(cp)
	case stateTagOpen:
		t.stateTagOpen(cp)
	case stateEndTagOpen:
		t.stateEndTagOpen(cp)
	case stateTagName:
		t.stateTagName(cp)
	case stateRCDATALessThanSign:
		t.stateRCDATALessThanSign(cp)
	case stateRCDATAEndTagOpen:
		t.stateRCDATAEndTagOpen(cp)
	case stateRCDATAEndTagName:
		t.stateRCDATAEndTagName(cp)
	case stateRawtextLessThanSign:
		t.stateRawtextLessThanSign(cp)
	case stateRawtextEndTagOpen:
		t.stateRawtextEndTagOpen(cp)
	case stateRawtextEndTagName:
		t.stateRawtextEndTagName(cp)
	case stateScriptDataLessThanSign:
		t.stateScriptDataLessThanSign(cp)
	case stateScriptDataEndTagOpen:
		t.stateScriptDataEndTagOpen(cp)
	case stateScriptDataEndTagName:
		t.stateScriptDataEndTagName(cp)
	case stateScriptDataEscapeStart:
		t.stateScriptDataEscapeStart(cp)
	case stateScriptDataEscapeStartDash:
		t.stateScriptDataEscapeStartDash(cp)
	case stateScriptDataEscaped:
		t.stateScriptDataEscaped(cp)
	case stateScriptDataEscapedDash:
		t.stateScriptDataEscapedDash(cp)
	case stateScriptDataEscapedDashDash:
		t.stateScriptDataEscapedDashDash(cp)
	case stateScriptDataEscapedLessThanSign:
		t.stateScriptDataEscapedLessThanSign(cp)
	case stateScriptDataEscapedEndTagOpen:
		t.stateScriptDataEscapedEndTagOpen(cp)
	case stateScriptDataEscapedEndTagName:
		t.stateScriptDataEscapedEndTagName(cp)
	case stateScriptDataDoubleEscapeStart:
		t.stateScriptDataDoubleEscapeStart(cp)
	case stateScriptDataDoubleEscaped:
		t.stateScriptDataDoubleEscaped(cp)
	case stateScriptDataDoubleEscapedDash:
		t.stateScriptDataDoubleEscapedDash(cp)
	case stateScriptDataDoubleEscapedDashDash:
		t.stateScriptDataDoubleEscapedDashDash(cp)
	case stateScriptDataDoubleEscapedLessThanSign:
		t.stateScriptDataDoubleEscapedLessThanSign(cp)
	case stateScriptDataDoubleEscapeEnd:
		t.stateScriptDataDoubleEscapeEnd(cp)
	case stateBeforeAttributeName:
		t.stateBeforeAttributeName(cp)
	case stateAttributeName:
		t.stateAttributeName(cp)
	case stateAfterAttributeName:
		t.stateAfterAttributeName(cp)
	case stateBeforeAttributeValue:
		t.stateBeforeAttributeValue(cp)
	case stateAttributeValueDoubleQuoted:
		t.stateAttributeValueDoubleQuoted(cp)
	case stateAttributeValueSingleQuoted:
		t.stateAttributeValueSingleQuoted(cp)
	case stateAttributeValueUnquoted:
		t.stateAttributeValueUnquoted(cp)
	case stateAfterAttributeValueQuoted:
		t.stateAfterAttributeValueQuoted(cp)
	case stateSelfClosingStartTag:
		t.stateSelfClosingStartTag(cp)
	case stateBogusComment:
		t.stateBogusComment(cp)
	case stateMarkupDeclarationOpen:
		t.stateMarkupDeclarationOpen(cp)
	case stateCommentStart:
		t.stateCommentStart(cp)
	case stateCommentStartDash:
		t.stateCommentStartDash(cp)
	case stateComment:
		t.stateComment(cp)
	case stateCommentLessThanSign:
		t.stateCommentLessThanSign(cp)
	case stateCommentLessThanSignBang:
		t.stateCommentLessThanSignBang(cp)
	case stateCommentLessThanSignBangDash:
		t.stateCommentLessThanSignBangDash(cp)
	case stateCommentLessThanSignBangDashDash:
		t.stateCommentLessThanSignBangDashDash(cp)
	case stateCommentEndDash:
		t.stateCommentEndDash(cp)
	case stateCommentEnd:
		t.stateCommentEnd(cp)
	case stateCommentEndBang:
		t.stateCommentEndBang(cp)
	case stateDoctype:
		t.stateDoctype(cp)
	case stateBeforeDoctypeName:
		t.stateBeforeDoctypeName(cp)
	case stateDoctypeName:
		t.stateDoctypeName(cp)
	case stateAfterDoctypeName:
		t.stateAfterDoctypeName(cp)
	case stateAfterDoctypePublicKeyword:
		t.stateAfterDoctypePublicKeyword(cp)
	case stateBeforeDoctypePublicIdentifier:
		t.stateBeforeDoctypePublicIdentifier(cp)
	case stateDoctypePublicIdentifierDoubleQuoted:
		t.stateDoctypePublicIdentifierQuoted(cp, '"')
	case stateDoctypePublicIdentifierSingleQuoted:
		t.stateDoctypePublicIdentifierQuoted(cp, '\'')
	case stateAfterDoctypePublicIdentifier:
		t.stateAfterDoctypePublicIdentifier(cp)
	case stateBetweenDoctypePublicAndSystemIdentifiers:
		t.stateBetweenDoctypePublicAndSystemIdentifiers(cp)
	case stateAfterDoctypeSystemKeyword:
		t.stateAfterDoctypeSystemKeyword(cp)
	case stateBeforeDoctypeSystemIdentifier:
		t.stateBeforeDoctypeSystemIdentifier(cp)
	case stateDoctypeSystemIdentifierDoubleQuoted:
		t.stateDoctypeSystemIdentifierQuoted(cp, '"')
	case stateDoctypeSystemIdentifierSingleQuoted:
		t.stateDoctypeSystemIdentifierQuoted(cp, '\'')
	case stateAfterDoctypeSystemIdentifier:
		t.stateAfterDoctypeSystemIdentifier(cp)
	case stateBogusDoctype:
		t.stateBogusDoctype(cp)
	case StateCDATASection:
		t.stateCDATASection(cp)
	case stateCDATASectionBracket:
		t.stateCDATASectionBracket(cp)
	case stateCDATASectionEnd:
		t.stateCDATASectionEnd(cp)
	case stateCharacterReference:
		t.stateCharacterReference(cp)
	case stateNamedCharacterReference:
		t.stateNamedCharacterReference(cp)
	case stateAmbiguousAmpersand:
		t.stateAmbiguousAmpersand(cp)
	case stateNumericCharacterReference:
		t.stateNumericCharacterReference(cp)
	case stateHexCharacterReferenceStart:
		t.stateHexCharacterReferenceStart(cp)
	case stateHexCharacterReference:
		t.stateHexCharacterReference(cp)
	case stateDecimalCharacterReference:
		t.stateDecimalCharacterReference(cp)
	default:
		panic(fmt.Sprintf("htmltok: unreachable state %d", t.State))
	}
}

// --- text states --------------------------------------------------------

func (t *Tokenizer) stateData(cp rune) {
	switch {
	case cp == '<':
		t.markTokenStart()
		t.State = stateTagOpen
	case cp == '&':
		t.ReturnState = StateData
		t.State = stateCharacterReference
		t.charRefBuf = append(t.charRefBuf[:0], '&')
	case cp == 0:
		t.err(ErrUnexpectedNullCharacter)
		t.emitCodePoint(cp)
	case cp == eofMarker:
		t.emitEOFToken()
	default:
		t.emitCodePoint(cp)
	}
}

func (t *Tokenizer) stateRCDATA(cp rune) {
	switch {
	case cp == '&':
		t.ReturnState = StateRCDATA
		t.State = stateCharacterReference
		t.charRefBuf = append(t.charRefBuf[:0], '&')
	case cp == '<':
		t.markTokenStart()
		t.State = stateRCDATALessThanSign
	case cp == 0:
		t.err(ErrUnexpectedNullCharacter)
		t.emitCodePoint(replacementChar)
	case cp == eofMarker:
		t.emitEOFToken()
	default:
		t.emitCodePoint(cp)
	}
}

func (t *Tokenizer) stateRawtext(cp rune) {
	switch {
	case cp == '<':
		t.markTokenStart()
		t.State = stateRawtextLessThanSign
	case cp == 0:
		t.err(ErrUnexpectedNullCharacter)
		t.emitCodePoint(replacementChar)
	case cp == eofMarker:
		t.emitEOFToken()
	default:
		t.emitCodePoint(cp)
	}
}

func (t *Tokenizer) stateScriptData(cp rune) {
	switch {
	case cp == '<':
		t.markTokenStart()
		t.State = stateScriptDataLessThanSign
	case cp == 0:
		t.err(ErrUnexpectedNullCharacter)
		t.emitCodePoint(replacementChar)
	case cp == eofMarker:
		t.emitEOFToken()
	default:
		t.emitCodePoint(cp)
	}
}

func (t *Tokenizer) statePlaintext(cp rune) {
	switch {
	case cp == 0:
		t.err(ErrUnexpectedNullCharacter)
		t.emitCodePoint(replacementChar)
	case cp == eofMarker:
		t.emitEOFToken()
	default:
		t.emitCodePoint(cp)
	}
}

// --- tag states ---------------------------------------------------------

func (t *Tokenizer) stateTagOpen(cp rune) {
	switch {
	case cp == '!':
		t.State = stateMarkupDeclarationOpen
	case cp == '/':
		t.State = stateEndTagOpen
	case isASCIILetter(cp):
		t.createStartTagToken()
		t.reconsumeInState(stateTagName, cp)
	case cp == '?':
		t.err(ErrUnexpectedQuestionMarkInsteadOfTagName)
		t.createCommentToken()
		t.reconsumeInState(stateBogusComment, cp)
	case cp == eofMarker:
		t.err(ErrEOFBeforeTagName)
		t.emitChars("<")
		t.emitEOFToken()
	default:
		t.err(ErrInvalidFirstCharacterOfTagName)
		t.emitChars("<")
		t.reconsumeInState(StateData, cp)
	}
}

func (t *Tokenizer) stateEndTagOpen(cp rune) {
	switch {
	case isASCIILetter(cp):
		t.createEndTagToken()
		t.reconsumeInState(stateTagName, cp)
	case cp == '>':
		t.err(ErrMissingEndTagName)
		t.State = StateData
	case cp == eofMarker:
		t.err(ErrEOFBeforeTagName)
		t.emitChars("</")
		t.emitEOFToken()
	default:
		t.err(ErrInvalidFirstCharacterOfTagName)
		t.createCommentToken()
		t.reconsumeInState(stateBogusComment, cp)
	}
}

func (t *Tokenizer) stateTagName(cp rune) {
	switch {
	case isWhitespace(cp):
		t.State = stateBeforeAttributeName
	case cp == '/':
		t.State = stateSelfClosingStartTag
	case cp == '>':
		t.State = StateData
		t.emitCurrentTagToken()
	case isASCIIUpper(cp):
		t.appendToTagName(toASCIILower(cp))
	case cp == 0:
		t.err(ErrUnexpectedNullCharacter)
		t.appendToTagName(replacementChar)
	case cp == eofMarker:
		t.err(ErrEOFInTag)
		t.emitEOFToken()
	default:
		t.appendToTagName(cp)
	}
}

// --- RCDATA / RAWTEXT / script end-tag recognition ----------------------

// handleSpecialEndTag implements the "appropriate end tag" check shared by
// the RCDATA, RAWTEXT and script end-tag-name states. The cursor sits on
// the first letter of the candidate name. On a match the cursor is moved
// past the name and the machine proceeds into normal tag states; on a
// mismatch "</" is emitted as text and cp reprocessed in fallback.
func (t *Tokenizer) handleSpecialEndTag(cp rune, fallback State) {
	name := t.LastStartTagName
	if name == "" || !t.pre.startsWith(name, false) {
		if t.ensureHibernation() {
			return
		}
		t.emitChars("</")
		t.reconsumeInState(fallback, cp)
		return
	}
	n := 0
	for range name {
		n++
	}
	next := t.pre.peek(n)
	if t.ensureHibernation() {
		return
	}
	switch {
	case isWhitespace(next):
		t.createEndTagToken()
		t.tagNameBuf = append(t.tagNameBuf, []rune(name)...)
		t.advanceBy(n) // through the whitespace
		t.State = stateBeforeAttributeName
	case next == '/':
		t.createEndTagToken()
		t.tagNameBuf = append(t.tagNameBuf, []rune(name)...)
		t.advanceBy(n)
		t.State = stateSelfClosingStartTag
	case next == '>':
		t.createEndTagToken()
		t.tagNameBuf = append(t.tagNameBuf, []rune(name)...)
		t.advanceBy(n) // cursor lands on '>'
		t.State = StateData
		t.emitCurrentTagToken()
	default:
		t.emitChars("</")
		t.reconsumeInState(fallback, cp)
	}
}

func (t *Tokenizer) stateRCDATALessThanSign(cp rune) {
	if cp == '/' {
		t.State = stateRCDATAEndTagOpen
		return
	}
	t.emitChars("<")
	t.reconsumeInState(StateRCDATA, cp)
}

func (t *Tokenizer) stateRCDATAEndTagOpen(cp rune) {
	if isASCIILetter(cp) {
		t.reconsumeInState(stateRCDATAEndTagName, cp)
		return
	}
	t.emitChars("</")
	t.reconsumeInState(StateRCDATA, cp)
}

func (t *Tokenizer) stateRCDATAEndTagName(cp rune) {
	t.handleSpecialEndTag(cp, StateRCDATA)
}

func (t *Tokenizer) stateRawtextLessThanSign(cp rune) {
	if cp == '/' {
		t.State = stateRawtextEndTagOpen
		return
	}
	t.emitChars("<")
	t.reconsumeInState(StateRawtext, cp)
}

func (t *Tokenizer) stateRawtextEndTagOpen(cp rune) {
	if isASCIILetter(cp) {
		t.reconsumeInState(stateRawtextEndTagName, cp)
		return
	}
	t.emitChars("</")
	t.reconsumeInState(StateRawtext, cp)
}

func (t *Tokenizer) stateRawtextEndTagName(cp rune) {
	t.handleSpecialEndTag(cp, StateRawtext)
}

// --- script data --------------------------------------------------------

func (t *Tokenizer) stateScriptDataLessThanSign(cp rune) {
	switch {
	case cp == '/':
		t.State = stateScriptDataEndTagOpen
	case cp == '!':
		t.emitChars("<!")
		t.State = stateScriptDataEscapeStart
	default:
		t.emitChars("<")
		t.reconsumeInState(StateScriptData, cp)
	}
}

func (t *Tokenizer) stateScriptDataEndTagOpen(cp rune) {
	if isASCIILetter(cp) {
		t.reconsumeInState(stateScriptDataEndTagName, cp)
		return
	}
	t.emitChars("</")
	t.reconsumeInState(StateScriptData, cp)
}

func (t *Tokenizer) stateScriptDataEndTagName(cp rune) {
	t.handleSpecialEndTag(cp, StateScriptData)
}

func (t *Tokenizer) stateScriptDataEscapeStart(cp rune) {
	if cp == '-' {
		t.emitChars("-")
		t.State = stateScriptDataEscapeStartDash
		return
	}
	t.reconsumeInState(StateScriptData, cp)
}

func (t *Tokenizer) stateScriptDataEscapeStartDash(cp rune) {
	if cp == '-' {
		t.emitChars("-")
		t.State = stateScriptDataEscapedDashDash
		return
	}
	t.reconsumeInState(StateScriptData, cp)
}

func (t *Tokenizer) stateScriptDataEscaped(cp rune) {
	switch {
	case cp == '-':
		t.emitChars("-")
		t.State = stateScriptDataEscapedDash
	case cp == '<':
		t.markTokenStart()
		t.State = stateScriptDataEscapedLessThanSign
	case cp == 0:
		t.err(ErrUnexpectedNullCharacter)
		t.emitCodePoint(replacementChar)
	case cp == eofMarker:
		t.err(ErrEOFInScriptHTMLCommentLikeText)
		t.emitEOFToken()
	default:
		t.emitCodePoint(cp)
	}
}

func (t *Tokenizer) stateScriptDataEscapedDash(cp rune) {
	switch {
	case cp == '-':
		t.emitChars("-")
		t.State = stateScriptDataEscapedDashDash
	case cp == '<':
		t.markTokenStart()
		t.State = stateScriptDataEscapedLessThanSign
	case cp == 0:
		t.err(ErrUnexpectedNullCharacter)
		t.emitCodePoint(replacementChar)
		t.State = stateScriptDataEscaped
	case cp == eofMarker:
		t.err(ErrEOFInScriptHTMLCommentLikeText)
		t.emitEOFToken()
	default:
		t.emitCodePoint(cp)
		t.State = stateScriptDataEscaped
	}
}

func (t *Tokenizer) stateScriptDataEscapedDashDash(cp rune) {
	switch {
	case cp == '-':
		t.emitChars("-")
	case cp == '<':
		t.markTokenStart()
		t.State = stateScriptDataEscapedLessThanSign
	case cp == '>':
		t.emitChars(">")
		t.State = StateScriptData
	case cp == 0:
		t.err(ErrUnexpectedNullCharacter)
		t.emitCodePoint(replacementChar)
		t.State = stateScriptDataEscaped
	case cp == eofMarker:
		t.err(ErrEOFInScriptHTMLCommentLikeText)
		t.emitEOFToken()
	default:
		t.emitCodePoint(cp)
		t.State = stateScriptDataEscaped
	}
}

func (t *Tokenizer) stateScriptDataEscapedLessThanSign(cp rune) {
	switch {
	case cp == '/':
		t.seqBuf = t.seqBuf[:0]
		t.State = stateScriptDataEscapedEndTagOpen
	case isASCIILetter(cp):
		t.seqBuf = t.seqBuf[:0]
		t.emitChars("<")
		t.reconsumeInState(stateScriptDataDoubleEscapeStart, cp)
	default:
		t.emitChars("<")
		t.reconsumeInState(stateScriptDataEscaped, cp)
	}
}

func (t *Tokenizer) stateScriptDataEscapedEndTagOpen(cp rune) {
	if isASCIILetter(cp) {
		t.reconsumeInState(stateScriptDataEscapedEndTagName, cp)
		return
	}
	t.emitChars("</")
	t.reconsumeInState(stateScriptDataEscaped, cp)
}

func (t *Tokenizer) stateScriptDataEscapedEndTagName(cp rune) {
	t.handleSpecialEndTag(cp, stateScriptDataEscaped)
}

func (t *Tokenizer) stateScriptDataDoubleEscapeStart(cp rune) {
	switch {
	case isWhitespace(cp) || cp == '/' || cp == '>':
		if string(t.seqBuf) == "script" {
			t.State = stateScriptDataDoubleEscaped
		} else {
			t.State = stateScriptDataEscaped
		}
		t.emitCodePoint(cp)
	case isASCIIUpper(cp):
		t.seqBuf = append(t.seqBuf, toASCIILower(cp))
		t.emitCodePoint(cp)
	case isASCIILetter(cp):
		t.seqBuf = append(t.seqBuf, cp)
		t.emitCodePoint(cp)
	default:
		t.reconsumeInState(stateScriptDataEscaped, cp)
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscaped(cp rune) {
	switch {
	case cp == '-':
		t.emitChars("-")
		t.State = stateScriptDataDoubleEscapedDash
	case cp == '<':
		t.emitChars("<")
		t.State = stateScriptDataDoubleEscapedLessThanSign
	case cp == 0:
		t.err(ErrUnexpectedNullCharacter)
		t.emitCodePoint(replacementChar)
	case cp == eofMarker:
		t.err(ErrEOFInScriptHTMLCommentLikeText)
		t.emitEOFToken()
	default:
		t.emitCodePoint(cp)
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscapedDash(cp rune) {
	switch {
	case cp == '-':
		t.emitChars("-")
		t.State = stateScriptDataDoubleEscapedDashDash
	case cp == '<':
		t.emitChars("<")
		t.State = stateScriptDataDoubleEscapedLessThanSign
	case cp == 0:
		t.err(ErrUnexpectedNullCharacter)
		t.emitCodePoint(replacementChar)
		t.State = stateScriptDataDoubleEscaped
	case cp == eofMarker:
		t.err(ErrEOFInScriptHTMLCommentLikeText)
		t.emitEOFToken()
	default:
		t.emitCodePoint(cp)
		t.State = stateScriptDataDoubleEscaped
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscapedDashDash(cp rune) {
	switch {
	case cp == '-':
		t.emitChars("-")
	case cp == '<':
		t.emitChars("<")
		t.State = stateScriptDataDoubleEscapedLessThanSign
	case cp == '>':
		t.emitChars(">")
		t.State = StateScriptData
	case cp == 0:
		t.err(ErrUnexpectedNullCharacter)
		t.emitCodePoint(replacementChar)
		t.State = stateScriptDataDoubleEscaped
	case cp == eofMarker:
		t.err(ErrEOFInScriptHTMLCommentLikeText)
		t.emitEOFToken()
	default:
		t.emitCodePoint(cp)
		t.State = stateScriptDataDoubleEscaped
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscapedLessThanSign(cp rune) {
	if cp == '/' {
		t.seqBuf = t.seqBuf[:0]
		t.emitChars("/")
		t.State = stateScriptDataDoubleEscapeEnd
		return
	}
	t.reconsumeInState(stateScriptDataDoubleEscaped, cp)
}

func (t *Tokenizer) stateScriptDataDoubleEscapeEnd(cp rune) {
	switch {
	case isWhitespace(cp) || cp == '/' || cp == '>':
		if string(t.seqBuf) == "script" {
			t.State = stateScriptDataEscaped
		} else {
			t.State = stateScriptDataDoubleEscaped
		}
		t.emitCodePoint(cp)
	case isASCIIUpper(cp):
		t.seqBuf = append(t.seqBuf, toASCIILower(cp))
		t.emitCodePoint(cp)
	case isASCIILetter(cp):
		t.seqBuf = append(t.seqBuf, cp)
		t.emitCodePoint(cp)
	default:
		t.reconsumeInState(stateScriptDataDoubleEscaped, cp)
	}
}

// --- attribute states ---------------------------------------------------

func (t *Tokenizer) stateBeforeAttributeName(cp rune) {
	switch {
	case isWhitespace(cp):
		// ignore
	case cp == '/' || cp == '>' || cp == eofMarker:
		t.reconsumeInState(stateAfterAttributeName, cp)
	case cp == '=':
		t.err(ErrUnexpectedEqualsSignBeforeAttributeName)
		t.createAttr('=')
		t.State = stateAttributeName
	default:
		t.createAttr()
		t.reconsumeInState(stateAttributeName, cp)
	}
}

func (t *Tokenizer) stateAttributeName(cp rune) {
	switch {
	case isWhitespace(cp) || cp == '/' || cp == '>' || cp == eofMarker:
		t.leaveAttrName()
		t.reconsumeInState(stateAfterAttributeName, cp)
	case cp == '=':
		t.leaveAttrName()
		t.State = stateBeforeAttributeValue
	case isASCIIUpper(cp):
		t.appendToAttrName(toASCIILower(cp))
	case cp == '"' || cp == '\'' || cp == '<':
		t.err(ErrUnexpectedCharacterInAttributeName)
		t.appendToAttrName(cp)
	case cp == 0:
		t.err(ErrUnexpectedNullCharacter)
		t.appendToAttrName(replacementChar)
	default:
		t.appendToAttrName(cp)
	}
}

func (t *Tokenizer) stateAfterAttributeName(cp rune) {
	switch {
	case isWhitespace(cp):
		// ignore
	case cp == '/':
		t.State = stateSelfClosingStartTag
	case cp == '=':
		t.State = stateBeforeAttributeValue
	case cp == '>':
		t.State = StateData
		t.emitCurrentTagToken()
	case cp == eofMarker:
		t.err(ErrEOFInTag)
		t.emitEOFToken()
	default:
		t.createAttr()
		t.reconsumeInState(stateAttributeName, cp)
	}
}

func (t *Tokenizer) stateBeforeAttributeValue(cp rune) {
	switch {
	case isWhitespace(cp):
		// ignore
	case cp == '"':
		t.State = stateAttributeValueDoubleQuoted
	case cp == '\'':
		t.State = stateAttributeValueSingleQuoted
	case cp == '>':
		t.err(ErrMissingAttributeValue)
		t.State = StateData
		t.emitCurrentTagToken()
	default:
		t.reconsumeInState(stateAttributeValueUnquoted, cp)
	}
}

func (t *Tokenizer) stateAttributeValueDoubleQuoted(cp rune) {
	switch {
	case cp == '"':
		t.State = stateAfterAttributeValueQuoted
	case cp == '&':
		t.ReturnState = stateAttributeValueDoubleQuoted
		t.State = stateCharacterReference
		t.charRefBuf = append(t.charRefBuf[:0], '&')
	case cp == 0:
		t.err(ErrUnexpectedNullCharacter)
		t.appendToAttrValue(replacementChar)
	case cp == eofMarker:
		t.err(ErrEOFInTag)
		t.emitEOFToken()
	default:
		t.appendToAttrValue(cp)
	}
}

func (t *Tokenizer) stateAttributeValueSingleQuoted(cp rune) {
	switch {
	case cp == '\'':
		t.State = stateAfterAttributeValueQuoted
	case cp == '&':
		t.ReturnState = stateAttributeValueSingleQuoted
		t.State = stateCharacterReference
		t.charRefBuf = append(t.charRefBuf[:0], '&')
	case cp == 0:
		t.err(ErrUnexpectedNullCharacter)
		t.appendToAttrValue(replacementChar)
	case cp == eofMarker:
		t.err(ErrEOFInTag)
		t.emitEOFToken()
	default:
		t.appendToAttrValue(cp)
	}
}

func (t *Tokenizer) stateAttributeValueUnquoted(cp rune) {
	switch {
	case isWhitespace(cp):
		t.State = stateBeforeAttributeName
	case cp == '&':
		t.ReturnState = stateAttributeValueUnquoted
		t.State = stateCharacterReference
		t.charRefBuf = append(t.charRefBuf[:0], '&')
	case cp == '>':
		t.State = StateData
		t.emitCurrentTagToken()
	case cp == 0:
		t.err(ErrUnexpectedNullCharacter)
		t.appendToAttrValue(replacementChar)
	case cp == '"' || cp == '\'' || cp == '<' || cp == '=' || cp == '`':
		t.err(ErrUnexpectedCharacterInUnquotedAttributeValue)
		t.appendToAttrValue(cp)
	case cp == eofMarker:
		t.err(ErrEOFInTag)
		t.emitEOFToken()
	default:
		t.appendToAttrValue(cp)
	}
}

func (t *Tokenizer) stateAfterAttributeValueQuoted(cp rune) {
	switch {
	case isWhitespace(cp):
		t.State = stateBeforeAttributeName
	case cp == '/':
		t.State = stateSelfClosingStartTag
	case cp == '>':
		t.State = StateData
		t.emitCurrentTagToken()
	case cp == eofMarker:
		t.err(ErrEOFInTag)
		t.emitEOFToken()
	default:
		t.err(ErrMissingWhitespaceBetweenAttributes)
		t.reconsumeInState(stateBeforeAttributeName, cp)
	}
}

func (t *Tokenizer) stateSelfClosingStartTag(cp rune) {
	switch {
	case cp == '>':
		t.curTag.SelfClosing = true
		t.State = StateData
		t.emitCurrentTagToken()
	case cp == eofMarker:
		t.err(ErrEOFInTag)
		t.emitEOFToken()
	default:
		t.err(ErrUnexpectedSolidusInTag)
		t.reconsumeInState(stateBeforeAttributeName, cp)
	}
}

// --- comment states -----------------------------------------------------

func (t *Tokenizer) appendToComment(s string) {
	t.commentBuf = append(t.commentBuf, []rune(s)...)
}

func (t *Tokenizer) stateBogusComment(cp rune) {
	switch {
	case cp == '>':
		t.State = StateData
		t.emitCurrentComment()
	case cp == eofMarker:
		t.emitCurrentCommentAtEOF()
		t.emitEOFToken()
	case cp == 0:
		t.err(ErrUnexpectedNullCharacter)
		t.commentBuf = append(t.commentBuf, replacementChar)
	default:
		t.commentBuf = append(t.commentBuf, cp)
	}
}

func (t *Tokenizer) stateMarkupDeclarationOpen(cp rune) {
	switch {
	case t.consumeSequenceIfMatch("--", true):
		t.createCommentToken()
		t.State = stateCommentStart
	case t.consumeSequenceIfMatch("DOCTYPE", false):
		t.State = stateDoctype
	case t.consumeSequenceIfMatch("[CDATA[", true):
		if t.InForeignNode {
			t.State = StateCDATASection
		} else {
			t.err(ErrCDATAInHTMLContent)
			t.createCommentToken()
			t.appendToComment("[CDATA[")
			t.State = stateBogusComment
		}
	default:
		if !t.ensureHibernation() {
			t.err(ErrIncorrectlyOpenedComment)
			t.createCommentToken()
			t.reconsumeInState(stateBogusComment, cp)
		}
	}
}

func (t *Tokenizer) stateCommentStart(cp rune) {
	switch {
	case cp == '-':
		t.State = stateCommentStartDash
	case cp == '>':
		t.err(ErrAbruptClosingOfEmptyComment)
		t.State = StateData
		t.emitCurrentComment()
	default:
		t.reconsumeInState(stateComment, cp)
	}
}

func (t *Tokenizer) stateCommentStartDash(cp rune) {
	switch {
	case cp == '-':
		t.State = stateCommentEnd
	case cp == '>':
		t.err(ErrAbruptClosingOfEmptyComment)
		t.State = StateData
		t.emitCurrentComment()
	case cp == eofMarker:
		t.err(ErrEOFInComment)
		t.emitCurrentCommentAtEOF()
		t.emitEOFToken()
	default:
		t.appendToComment("-")
		t.reconsumeInState(stateComment, cp)
	}
}

func (t *Tokenizer) stateComment(cp rune) {
	switch {
	case cp == '<':
		t.commentBuf = append(t.commentBuf, cp)
		t.State = stateCommentLessThanSign
	case cp == '-':
		t.State = stateCommentEndDash
	case cp == 0:
		t.err(ErrUnexpectedNullCharacter)
		t.commentBuf = append(t.commentBuf, replacementChar)
	case cp == eofMarker:
		t.err(ErrEOFInComment)
		t.emitCurrentCommentAtEOF()
		t.emitEOFToken()
	default:
		t.commentBuf = append(t.commentBuf, cp)
	}
}

func (t *Tokenizer) stateCommentLessThanSign(cp rune) {
	switch {
	case cp == '!':
		t.commentBuf = append(t.commentBuf, cp)
		t.State = stateCommentLessThanSignBang
	case cp == '<':
		t.commentBuf = append(t.commentBuf, cp)
	default:
		t.reconsumeInState(stateComment, cp)
	}
}

func (t *Tokenizer) stateCommentLessThanSignBang(cp rune) {
	if cp == '-' {
		t.State = stateCommentLessThanSignBangDash
		return
	}
	t.reconsumeInState(stateComment, cp)
}

func (t *Tokenizer) stateCommentLessThanSignBangDash(cp rune) {
	if cp == '-' {
		t.State = stateCommentLessThanSignBangDashDash
		return
	}
	t.reconsumeInState(stateCommentEndDash, cp)
}

func (t *Tokenizer) stateCommentLessThanSignBangDashDash(cp rune) {
	if cp != '>' && cp != eofMarker {
		t.err(ErrNestedComment)
	}
	t.reconsumeInState(stateCommentEnd, cp)
}

func (t *Tokenizer) stateCommentEndDash(cp rune) {
	switch {
	case cp == '-':
		t.State = stateCommentEnd
	case cp == eofMarker:
		t.err(ErrEOFInComment)
		t.emitCurrentCommentAtEOF()
		t.emitEOFToken()
	default:
		t.appendToComment("-")
		t.reconsumeInState(stateComment, cp)
	}
}

func (t *Tokenizer) stateCommentEnd(cp rune) {
	switch {
	case cp == '>':
		t.State = StateData
		t.emitCurrentComment()
	case cp == '!':
		t.State = stateCommentEndBang
	case cp == '-':
		t.appendToComment("-")
	case cp == eofMarker:
		t.err(ErrEOFInComment)
		t.emitCurrentCommentAtEOF()
		t.emitEOFToken()
	default:
		t.appendToComment("--")
		t.reconsumeInState(stateComment, cp)
	}
}

func (t *Tokenizer) stateCommentEndBang(cp rune) {
	switch {
	case cp == '-':
		t.appendToComment("--!")
		t.State = stateCommentEndDash
	case cp == '>':
		t.err(ErrIncorrectlyClosedComment)
		t.State = StateData
		t.emitCurrentComment()
	case cp == eofMarker:
		t.err(ErrEOFInComment)
		t.emitCurrentCommentAtEOF()
		t.emitEOFToken()
	default:
		t.appendToComment("--!")
		t.reconsumeInState(stateComment, cp)
	}
}

// --- DOCTYPE states -----------------------------------------------------

func (t *Tokenizer) markPublicID() {
	var s string
	t.curDoctype.PublicID = &s
}

func (t *Tokenizer) markSystemID() {
	var s string
	t.curDoctype.SystemID = &s
}

func (t *Tokenizer) emitForceQuirksDoctypeAtEOF() {
	t.err(ErrEOFInDoctype)
	t.curDoctype.ForceQuirks = true
	t.emitCurrentDoctype(true)
	t.emitEOFToken()
}

func (t *Tokenizer) stateDoctype(cp rune) {
	switch {
	case isWhitespace(cp):
		t.State = stateBeforeDoctypeName
	case cp == '>':
		t.reconsumeInState(stateBeforeDoctypeName, cp)
	case cp == eofMarker:
		t.createDoctypeToken()
		t.emitForceQuirksDoctypeAtEOF()
	default:
		t.err(ErrMissingWhitespaceBeforeDoctypeName)
		t.reconsumeInState(stateBeforeDoctypeName, cp)
	}
}

func (t *Tokenizer) stateBeforeDoctypeName(cp rune) {
	switch {
	case isWhitespace(cp):
		// ignore
	case isASCIIUpper(cp):
		t.createDoctypeToken()
		t.doctypeName = append(t.doctypeName, toASCIILower(cp))
		t.State = stateDoctypeName
	case cp == 0:
		t.err(ErrUnexpectedNullCharacter)
		t.createDoctypeToken()
		t.doctypeName = append(t.doctypeName, replacementChar)
		t.State = stateDoctypeName
	case cp == '>':
		t.err(ErrMissingDoctypeName)
		t.createDoctypeToken()
		t.curDoctype.ForceQuirks = true
		t.State = StateData
		t.emitCurrentDoctype(false)
	case cp == eofMarker:
		t.createDoctypeToken()
		t.emitForceQuirksDoctypeAtEOF()
	default:
		t.createDoctypeToken()
		t.doctypeName = append(t.doctypeName, cp)
		t.State = stateDoctypeName
	}
}

func (t *Tokenizer) stateDoctypeName(cp rune) {
	switch {
	case isWhitespace(cp):
		t.State = stateAfterDoctypeName
	case cp == '>':
		t.State = StateData
		t.emitCurrentDoctype(false)
	case isASCIIUpper(cp):
		t.doctypeName = append(t.doctypeName, toASCIILower(cp))
	case cp == 0:
		t.err(ErrUnexpectedNullCharacter)
		t.doctypeName = append(t.doctypeName, replacementChar)
	case cp == eofMarker:
		t.emitForceQuirksDoctypeAtEOF()
	default:
		t.doctypeName = append(t.doctypeName, cp)
	}
}

func (t *Tokenizer) stateAfterDoctypeName(cp rune) {
	switch {
	case isWhitespace(cp):
		// ignore
	case cp == '>':
		t.State = StateData
		t.emitCurrentDoctype(false)
	case cp == eofMarker:
		t.emitForceQuirksDoctypeAtEOF()
	case t.consumeSequenceIfMatch("PUBLIC", false):
		t.State = stateAfterDoctypePublicKeyword
	case t.consumeSequenceIfMatch("SYSTEM", false):
		t.State = stateAfterDoctypeSystemKeyword
	default:
		if !t.ensureHibernation() {
			t.err(ErrInvalidCharacterSequenceAfterDoctypeName)
			t.curDoctype.ForceQuirks = true
			t.reconsumeInState(stateBogusDoctype, cp)
		}
	}
}

func (t *Tokenizer) stateAfterDoctypePublicKeyword(cp rune) {
	switch {
	case isWhitespace(cp):
		t.State = stateBeforeDoctypePublicIdentifier
	case cp == '"':
		t.err(ErrMissingWhitespaceAfterDoctypePublicKeyword)
		t.markPublicID()
		t.State = stateDoctypePublicIdentifierDoubleQuoted
	case cp == '\'':
		t.err(ErrMissingWhitespaceAfterDoctypePublicKeyword)
		t.markPublicID()
		t.State = stateDoctypePublicIdentifierSingleQuoted
	case cp == '>':
		t.err(ErrMissingDoctypePublicIdentifier)
		t.curDoctype.ForceQuirks = true
		t.State = StateData
		t.emitCurrentDoctype(false)
	case cp == eofMarker:
		t.emitForceQuirksDoctypeAtEOF()
	default:
		t.err(ErrMissingQuoteBeforeDoctypePublicIdentifier)
		t.curDoctype.ForceQuirks = true
		t.reconsumeInState(stateBogusDoctype, cp)
	}
}

func (t *Tokenizer) stateBeforeDoctypePublicIdentifier(cp rune) {
	switch {
	case isWhitespace(cp):
		// ignore
	case cp == '"':
		t.markPublicID()
		t.State = stateDoctypePublicIdentifierDoubleQuoted
	case cp == '\'':
		t.markPublicID()
		t.State = stateDoctypePublicIdentifierSingleQuoted
	case cp == '>':
		t.err(ErrMissingDoctypePublicIdentifier)
		t.curDoctype.ForceQuirks = true
		t.State = StateData
		t.emitCurrentDoctype(false)
	case cp == eofMarker:
		t.emitForceQuirksDoctypeAtEOF()
	default:
		t.err(ErrMissingQuoteBeforeDoctypePublicIdentifier)
		t.curDoctype.ForceQuirks = true
		t.reconsumeInState(stateBogusDoctype, cp)
	}
}

func (t *Tokenizer) stateDoctypePublicIdentifierQuoted(cp rune, quote rune) {
	switch {
	case cp == quote:
		t.State = stateAfterDoctypePublicIdentifier
	case cp == 0:
		t.err(ErrUnexpectedNullCharacter)
		t.publicID = append(t.publicID, replacementChar)
	case cp == '>':
		t.err(ErrAbruptDoctypePublicIdentifier)
		t.curDoctype.ForceQuirks = true
		t.State = StateData
		t.emitCurrentDoctype(false)
	case cp == eofMarker:
		t.emitForceQuirksDoctypeAtEOF()
	default:
		t.publicID = append(t.publicID, cp)
	}
}

func (t *Tokenizer) stateAfterDoctypePublicIdentifier(cp rune) {
	switch {
	case isWhitespace(cp):
		t.State = stateBetweenDoctypePublicAndSystemIdentifiers
	case cp == '>':
		t.State = StateData
		t.emitCurrentDoctype(false)
	case cp == '"':
		t.err(ErrMissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
		t.markSystemID()
		t.State = stateDoctypeSystemIdentifierDoubleQuoted
	case cp == '\'':
		t.err(ErrMissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
		t.markSystemID()
		t.State = stateDoctypeSystemIdentifierSingleQuoted
	case cp == eofMarker:
		t.emitForceQuirksDoctypeAtEOF()
	default:
		t.err(ErrMissingQuoteBeforeDoctypeSystemIdentifier)
		t.curDoctype.ForceQuirks = true
		t.reconsumeInState(stateBogusDoctype, cp)
	}
}

func (t *Tokenizer) stateBetweenDoctypePublicAndSystemIdentifiers(cp rune) {
	switch {
	case isWhitespace(cp):
		// ignore
	case cp == '>':
		t.State = StateData
		t.emitCurrentDoctype(false)
	case cp == '"':
		t.markSystemID()
		t.State = stateDoctypeSystemIdentifierDoubleQuoted
	case cp == '\'':
		t.markSystemID()
		t.State = stateDoctypeSystemIdentifierSingleQuoted
	case cp == eofMarker:
		t.emitForceQuirksDoctypeAtEOF()
	default:
		t.err(ErrMissingQuoteBeforeDoctypeSystemIdentifier)
		t.curDoctype.ForceQuirks = true
		t.reconsumeInState(stateBogusDoctype, cp)
	}
}

func (t *Tokenizer) stateAfterDoctypeSystemKeyword(cp rune) {
	switch {
	case isWhitespace(cp):
		t.State = stateBeforeDoctypeSystemIdentifier
	case cp == '"':
		t.err(ErrMissingWhitespaceAfterDoctypeSystemKeyword)
		t.markSystemID()
		t.State = stateDoctypeSystemIdentifierDoubleQuoted
	case cp == '\'':
		t.err(ErrMissingWhitespaceAfterDoctypeSystemKeyword)
		t.markSystemID()
		t.State = stateDoctypeSystemIdentifierSingleQuoted
	case cp == '>':
		t.err(ErrMissingDoctypeSystemIdentifier)
		t.curDoctype.ForceQuirks = true
		t.State = StateData
		t.emitCurrentDoctype(false)
	case cp == eofMarker:
		t.emitForceQuirksDoctypeAtEOF()
	default:
		t.err(ErrMissingQuoteBeforeDoctypeSystemIdentifier)
		t.curDoctype.ForceQuirks = true
		t.reconsumeInState(stateBogusDoctype, cp)
	}
}

func (t *Tokenizer) stateBeforeDoctypeSystemIdentifier(cp rune) {
	switch {
	case isWhitespace(cp):
		// ignore
	case cp == '"':
		t.markSystemID()
		t.State = stateDoctypeSystemIdentifierDoubleQuoted
	case cp == '\'':
		t.markSystemID()
		t.State = stateDoctypeSystemIdentifierSingleQuoted
	case cp == '>':
		t.err(ErrMissingDoctypeSystemIdentifier)
		t.curDoctype.ForceQuirks = true
		t.State = StateData
		t.emitCurrentDoctype(false)
	case cp == eofMarker:
		t.emitForceQuirksDoctypeAtEOF()
	default:
		t.err(ErrMissingQuoteBeforeDoctypeSystemIdentifier)
		t.curDoctype.ForceQuirks = true
		t.reconsumeInState(stateBogusDoctype, cp)
	}
}

func (t *Tokenizer) stateDoctypeSystemIdentifierQuoted(cp rune, quote rune) {
	switch {
	case cp == quote:
		t.State = stateAfterDoctypeSystemIdentifier
	case cp == 0:
		t.err(ErrUnexpectedNullCharacter)
		t.systemID = append(t.systemID, replacementChar)
	case cp == '>':
		t.err(ErrAbruptDoctypeSystemIdentifier)
		t.curDoctype.ForceQuirks = true
		t.State = StateData
		t.emitCurrentDoctype(false)
	case cp == eofMarker:
		t.emitForceQuirksDoctypeAtEOF()
	default:
		t.systemID = append(t.systemID, cp)
	}
}

func (t *Tokenizer) stateAfterDoctypeSystemIdentifier(cp rune) {
	switch {
	case isWhitespace(cp):
		// ignore
	case cp == '>':
		t.State = StateData
		t.emitCurrentDoctype(false)
	case cp == eofMarker:
		t.emitForceQuirksDoctypeAtEOF()
	default:
		t.err(ErrUnexpectedCharacterAfterDoctypeSystemIdentifier)
		t.reconsumeInState(stateBogusDoctype, cp)
	}
}

func (t *Tokenizer) stateBogusDoctype(cp rune) {
	switch {
	case cp == '>':
		t.State = StateData
		t.emitCurrentDoctype(false)
	case cp == 0:
		t.err(ErrUnexpectedNullCharacter)
	case cp == eofMarker:
		t.emitCurrentDoctype(true)
		t.emitEOFToken()
	default:
		// ignore
	}
}

// --- CDATA states -------------------------------------------------------

func (t *Tokenizer) stateCDATASection(cp rune) {
	switch {
	case cp == ']':
		t.State = stateCDATASectionBracket
	case cp == eofMarker:
		t.err(ErrEOFInCDATA)
		t.emitEOFToken()
	default:
		t.emitCodePoint(cp)
	}
}

func (t *Tokenizer) stateCDATASectionBracket(cp rune) {
	if cp == ']' {
		t.State = stateCDATASectionEnd
		return
	}
	t.emitChars("]")
	t.reconsumeInState(StateCDATASection, cp)
}

func (t *Tokenizer) stateCDATASectionEnd(cp rune) {
	switch {
	case cp == '>':
		t.State = StateData
	case cp == ']':
		t.emitChars("]")
	default:
		t.emitChars("]]")
		t.reconsumeInState(StateCDATASection, cp)
	}
}
