package main

import (
	htmltok "github.com/dpotapov/go-htmltok"
)

// attrRecord is the flat attribute form used by the dump formats and the
// websocket inspector.
type attrRecord struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// tokenRecord is the flat, format-agnostic rendering of a token or parse
// error. Its exported fields double as the expression environment for
// --filter.
type tokenRecord struct {
	Type        string       `json:"type"`
	Name        string       `json:"name,omitempty"`
	Data        string       `json:"data,omitempty"`
	Kind        string       `json:"kind,omitempty"`
	SelfClosing bool         `json:"selfClosing,omitempty"`
	ForceQuirks bool         `json:"forceQuirks,omitempty"`
	PublicID    string       `json:"publicId,omitempty"`
	SystemID    string       `json:"systemId,omitempty"`
	Attrs       []attrRecord `json:"attrs,omitempty"`
	Code        string       `json:"code,omitempty"`
	Line        int          `json:"line,omitempty"`
	Col         int          `json:"col,omitempty"`
	Offset      int          `json:"offset,omitempty"`
}

// recorder collects the token stream as records. It is the TokenHandler
// behind both the dump command and the websocket inspector.
type recorder struct {
	records []tokenRecord
	locInfo bool
}

func (r *recorder) add(rec tokenRecord, loc *htmltok.Location) {
	if r.locInfo && loc != nil {
		rec.Line = loc.StartLine
		rec.Col = loc.StartCol
		rec.Offset = loc.StartOffset
	}
	r.records = append(r.records, rec)
}

func (r *recorder) tagRecord(typ string, t *htmltok.TagToken) tokenRecord {
	rec := tokenRecord{Type: typ, Name: t.Name, SelfClosing: t.SelfClosing}
	for _, a := range t.Attrs {
		rec.Attrs = append(rec.Attrs, attrRecord{Name: a.Name, Value: a.Value})
	}
	return rec
}

func (r *recorder) OnStartTag(t *htmltok.TagToken) {
	r.add(r.tagRecord("StartTag", t), t.Loc)
}

func (r *recorder) OnEndTag(t *htmltok.TagToken) {
	r.add(r.tagRecord("EndTag", t), t.Loc)
}

func (r *recorder) OnComment(t *htmltok.CommentToken) {
	r.add(tokenRecord{Type: "Comment", Data: t.Data}, t.Loc)
}

func (r *recorder) OnDoctype(t *htmltok.DoctypeToken) {
	rec := tokenRecord{Type: "Doctype", ForceQuirks: t.ForceQuirks}
	if t.Name != nil {
		rec.Name = *t.Name
	}
	if t.PublicID != nil {
		rec.PublicID = *t.PublicID
	}
	if t.SystemID != nil {
		rec.SystemID = *t.SystemID
	}
	r.add(rec, t.Loc)
}

func (r *recorder) character(t *htmltok.CharacterToken) {
	r.add(tokenRecord{Type: "Character", Data: t.Chars, Kind: t.Kind.String()}, t.Loc)
}

func (r *recorder) OnCharacter(t *htmltok.CharacterToken)           { r.character(t) }
func (r *recorder) OnNullCharacter(t *htmltok.CharacterToken)      { r.character(t) }
func (r *recorder) OnWhitespaceCharacter(t *htmltok.CharacterToken) { r.character(t) }

func (r *recorder) OnEOF(t *htmltok.EOFToken) {
	r.add(tokenRecord{Type: "EOF"}, t.Loc)
}

func (r *recorder) OnParseError(e *htmltok.ParseError) {
	r.records = append(r.records, tokenRecord{
		Type:   "ParseError",
		Code:   string(e.Code),
		Line:   e.Line,
		Col:    e.Col,
		Offset: e.Offset,
	})
}
