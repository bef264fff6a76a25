package htmltok

import "log/slog"

// TokenHandler receives tokens and parse errors in strict stream order.
// Callbacks run synchronously from inside the parsing loop; a handler may
// feed more input or flip the tokenizer's State, ReturnState,
// InForeignNode and LastStartTagName fields before returning.
//
// Token references are only valid for the duration of the callback; the
// tokenizer reuses the underlying storage. Handlers that retain a token
// must copy it.
type TokenHandler interface {
	OnStartTag(*TagToken)
	OnEndTag(*TagToken)
	OnComment(*CommentToken)
	OnDoctype(*DoctypeToken)
	OnCharacter(*CharacterToken)
	OnNullCharacter(*CharacterToken)
	OnWhitespaceCharacter(*CharacterToken)
	OnEOF(*EOFToken)
	OnParseError(*ParseError)
}

// TraceHandler forwards every callback to Next, logging each token and
// parse error through Logger on the way. It is what `htmltok dump --trace`
// wires in.
type TraceHandler struct {
	Next   TokenHandler
	Logger *slog.Logger
}

func (h *TraceHandler) OnStartTag(t *TagToken) {
	h.Logger.Debug("start tag", "name", t.Name, "attrs", len(t.Attrs), "selfClosing", t.SelfClosing)
	h.Next.OnStartTag(t)
}

func (h *TraceHandler) OnEndTag(t *TagToken) {
	h.Logger.Debug("end tag", "name", t.Name)
	h.Next.OnEndTag(t)
}

func (h *TraceHandler) OnComment(t *CommentToken) {
	h.Logger.Debug("comment", "data", t.Data)
	h.Next.OnComment(t)
}

func (h *TraceHandler) OnDoctype(t *DoctypeToken) {
	h.Logger.Debug("doctype", "forceQuirks", t.ForceQuirks)
	h.Next.OnDoctype(t)
}

func (h *TraceHandler) OnCharacter(t *CharacterToken) {
	h.Logger.Debug("characters", "chars", t.Chars)
	h.Next.OnCharacter(t)
}

func (h *TraceHandler) OnNullCharacter(t *CharacterToken) {
	h.Logger.Debug("null characters", "len", len(t.Chars))
	h.Next.OnNullCharacter(t)
}

func (h *TraceHandler) OnWhitespaceCharacter(t *CharacterToken) {
	h.Logger.Debug("whitespace", "len", len(t.Chars))
	h.Next.OnWhitespaceCharacter(t)
}

func (h *TraceHandler) OnEOF(t *EOFToken) {
	h.Logger.Debug("eof")
	h.Next.OnEOF(t)
}

func (h *TraceHandler) OnParseError(e *ParseError) {
	h.Logger.Debug("parse error", "code", string(e.Code), "line", e.Line, "col", e.Col)
	h.Next.OnParseError(e)
}
