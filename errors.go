package htmltok

import "fmt"

// ErrorCode identifies a parse error from the WHATWG tokenization spec.
// The string form matches the spec's kebab-case error names.
type ErrorCode string

// Input preprocessing errors.
const (
	ErrControlCharacterInInputStream ErrorCode = "control-character-in-input-stream"
	ErrNoncharacterInInputStream     ErrorCode = "noncharacter-in-input-stream"
	ErrSurrogateInInputStream        ErrorCode = "surrogate-in-input-stream"
)

// Tag, comment and text errors.
const (
	ErrAbruptClosingOfEmptyComment      ErrorCode = "abrupt-closing-of-empty-comment"
	ErrEndTagWithAttributes             ErrorCode = "end-tag-with-attributes"
	ErrEndTagWithTrailingSolidus        ErrorCode = "end-tag-with-trailing-solidus"
	ErrEOFBeforeTagName                 ErrorCode = "eof-before-tag-name"
	ErrEOFInComment                     ErrorCode = "eof-in-comment"
	ErrEOFInScriptHTMLCommentLikeText   ErrorCode = "eof-in-script-html-comment-like-text"
	ErrEOFInTag                         ErrorCode = "eof-in-tag"
	ErrIncorrectlyClosedComment         ErrorCode = "incorrectly-closed-comment"
	ErrIncorrectlyOpenedComment         ErrorCode = "incorrectly-opened-comment"
	ErrInvalidFirstCharacterOfTagName   ErrorCode = "invalid-first-character-of-tag-name"
	ErrMissingEndTagName                ErrorCode = "missing-end-tag-name"
	ErrNestedComment                    ErrorCode = "nested-comment"
	ErrUnexpectedNullCharacter          ErrorCode = "unexpected-null-character"
	ErrUnexpectedQuestionMarkInsteadOfTagName ErrorCode = "unexpected-question-mark-instead-of-tag-name"
	ErrUnexpectedSolidusInTag           ErrorCode = "unexpected-solidus-in-tag"
)

// Attribute errors.
const (
	ErrDuplicateAttribute                        ErrorCode = "duplicate-attribute"
	ErrMissingAttributeValue                     ErrorCode = "missing-attribute-value"
	ErrMissingWhitespaceBetweenAttributes        ErrorCode = "missing-whitespace-between-attributes"
	ErrUnexpectedCharacterInAttributeName        ErrorCode = "unexpected-character-in-attribute-name"
	ErrUnexpectedCharacterInUnquotedAttributeValue ErrorCode = "unexpected-character-in-unquoted-attribute-value"
	ErrUnexpectedEqualsSignBeforeAttributeName   ErrorCode = "unexpected-equals-sign-before-attribute-name"
)

// DOCTYPE errors.
const (
	ErrAbruptDoctypePublicIdentifier   ErrorCode = "abrupt-doctype-public-identifier"
	ErrAbruptDoctypeSystemIdentifier   ErrorCode = "abrupt-doctype-system-identifier"
	ErrEOFInDoctype                    ErrorCode = "eof-in-doctype"
	ErrInvalidCharacterSequenceAfterDoctypeName ErrorCode = "invalid-character-sequence-after-doctype-name"
	ErrMissingDoctypeName              ErrorCode = "missing-doctype-name"
	ErrMissingDoctypePublicIdentifier  ErrorCode = "missing-doctype-public-identifier"
	ErrMissingDoctypeSystemIdentifier  ErrorCode = "missing-doctype-system-identifier"
	ErrMissingQuoteBeforeDoctypePublicIdentifier ErrorCode = "missing-quote-before-doctype-public-identifier"
	ErrMissingQuoteBeforeDoctypeSystemIdentifier ErrorCode = "missing-quote-before-doctype-system-identifier"
	ErrMissingWhitespaceAfterDoctypePublicKeyword ErrorCode = "missing-whitespace-after-doctype-public-keyword"
	ErrMissingWhitespaceAfterDoctypeSystemKeyword ErrorCode = "missing-whitespace-after-doctype-system-keyword"
	ErrMissingWhitespaceBeforeDoctypeName ErrorCode = "missing-whitespace-before-doctype-name"
	ErrMissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers ErrorCode = "missing-whitespace-between-doctype-public-and-system-identifiers"
	ErrUnexpectedCharacterAfterDoctypeSystemIdentifier ErrorCode = "unexpected-character-after-doctype-system-identifier"
)

// CDATA errors.
const (
	ErrCDATAInHTMLContent ErrorCode = "cdata-in-html-content"
	ErrEOFInCDATA         ErrorCode = "eof-in-cdata"
)

// Character reference errors.
const (
	ErrAbsenceOfDigitsInNumericCharacterReference ErrorCode = "absence-of-digits-in-numeric-character-reference"
	ErrCharacterReferenceOutsideUnicodeRange      ErrorCode = "character-reference-outside-unicode-range"
	ErrControlCharacterReference                  ErrorCode = "control-character-reference"
	ErrMissingSemicolonAfterCharacterReference    ErrorCode = "missing-semicolon-after-character-reference"
	ErrNoncharacterCharacterReference             ErrorCode = "noncharacter-character-reference"
	ErrNullCharacterReference                     ErrorCode = "null-character-reference"
	ErrSurrogateCharacterReference                ErrorCode = "surrogate-character-reference"
	ErrUnknownNamedCharacterReference             ErrorCode = "unknown-named-character-reference"
)

// ParseError is a non-fatal tokenization error reported at the position of
// the offending code point. It implements error for embedders that collect
// parse errors alongside real failures, but it never interrupts the stream.
type ParseError struct {
	Code   ErrorCode
	Line   int // 1-based
	Col    int // 1-based, in code points
	Offset int // absolute code-point offset into the document
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Code, e.Line, e.Col)
}
