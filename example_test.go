package htmltok_test

import (
	"fmt"

	htmltok "github.com/dpotapov/go-htmltok"
)

type printHandler struct{}

func (printHandler) OnStartTag(t *htmltok.TagToken) {
	fmt.Printf("<%s> with %d attribute(s)\n", t.Name, len(t.Attrs))
}

func (printHandler) OnEndTag(t *htmltok.TagToken) {
	fmt.Printf("</%s>\n", t.Name)
}

func (printHandler) OnCharacter(t *htmltok.CharacterToken) {
	fmt.Printf("text %q\n", t.Chars)
}

func (printHandler) OnEOF(*htmltok.EOFToken) {
	fmt.Println("eof")
}

func (printHandler) OnComment(*htmltok.CommentToken)             {}
func (printHandler) OnDoctype(*htmltok.DoctypeToken)             {}
func (printHandler) OnNullCharacter(*htmltok.CharacterToken)     {}
func (printHandler) OnWhitespaceCharacter(*htmltok.CharacterToken) {}
func (printHandler) OnParseError(*htmltok.ParseError)            {}

func ExampleNew() {
	tok := htmltok.New(htmltok.Options{}, printHandler{})
	tok.Write(`<p class="a">hi</p>`, true, nil)
	// Output:
	// <p> with 1 attribute(s)
	// text "hi"
	// </p>
	// eof
}
