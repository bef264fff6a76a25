package htmltok

import "golang.org/x/net/html/atom"

// TokenType discriminates the token variants produced by the tokenizer.
type TokenType int

const (
	TokenNone TokenType = iota
	TokenStartTag
	TokenEndTag
	TokenComment
	TokenDoctype
	TokenCharacter
	TokenEOF
)

// CharacterKind classifies a coalesced character run. Consecutive code
// points of the same kind are merged into a single token; a kind change
// forces a flush.
type CharacterKind int

const (
	CharacterData CharacterKind = iota
	CharacterWhitespace
	CharacterNull
)

func (k CharacterKind) String() string {
	switch k {
	case CharacterWhitespace:
		return "whitespace"
	case CharacterNull:
		return "null"
	default:
		return "character"
	}
}

// Attribute is a single tag attribute. Namespace and Prefix are filled in
// by the tree constructor when it adjusts foreign attributes; the tokenizer
// itself leaves them empty.
type Attribute struct {
	Name      string
	Value     string
	Namespace string
	Prefix    string
}

// TagToken is a start or end tag. The name is lowercased on ingest; ID is
// the interned atom for the name, or zero for unknown elements. Attrs keeps
// first-occurrence order; duplicates after case folding are dropped with a
// duplicate-attribute parse error.
type TagToken struct {
	Name        string
	ID          atom.Atom
	SelfClosing bool
	// AckSelfClosing is set by the tree constructor when it acknowledges
	// the self-closing flag. The tokenizer only ever resets it.
	AckSelfClosing bool
	Attrs          []Attribute
	Loc            *Location
}

// Attr returns the value of the named attribute and whether it is present.
func (t *TagToken) Attr(name string) (string, bool) {
	for i := range t.Attrs {
		if t.Attrs[i].Name == name {
			return t.Attrs[i].Value, true
		}
	}
	return "", false
}

// CommentToken carries the comment data without the <!-- --> delimiters.
type CommentToken struct {
	Data string
	Loc  *Location
}

// DoctypeToken mirrors the DOCTYPE token of the spec. Name, PublicID and
// SystemID are nil when the corresponding part was absent, which is
// distinct from being empty.
type DoctypeToken struct {
	Name        *string
	PublicID    *string
	SystemID    *string
	ForceQuirks bool
	Loc         *Location
}

// CharacterToken is a coalesced run of same-kind code points.
type CharacterToken struct {
	Kind  CharacterKind
	Chars string
	Loc   *Location
}

// EOFToken marks the end of the stream. Its location, when tracked, is the
// zero-width position just past the last code point.
type EOFToken struct {
	Loc *Location
}
