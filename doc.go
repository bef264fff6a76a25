// Package htmltok implements a streaming, push-driven HTML5 tokenizer
// conformant to the WHATWG tokenization algorithm.
//
// Input is fed in chunks through Tokenizer.Write; tokens and parse errors
// are pushed synchronously to a TokenHandler supplied at construction.
// The tokenizer suspends itself ("hibernates") when a chunk ends in the
// middle of a token and transparently resumes on the next Write, so the
// observed token stream is independent of how the input is chunked.
//
// The tree constructor driving the tokenizer may flip its State,
// ReturnState, InForeignNode and LastStartTagName fields from inside a
// handler callback; this is how <title>, <script> and friends switch the
// machine into RCDATA, RAWTEXT and the other text modes.
package htmltok
