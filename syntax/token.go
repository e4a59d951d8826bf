package syntax

import "fmt"

// Token is one classified span of source text.
//
// Offset and Length are byte positions into the UTF-8 input the producing
// scanner was given. Tokens are plain values: they carry no reference to the
// scanner or configuration that produced them and are safe to copy and share.
type Token struct {
	// Offset is the byte offset of the first character of the span.
	Offset int

	// Length is the byte length of the span. Scanners never emit
	// zero-length tokens; an empty partition yields an empty sequence.
	Length int

	// Class is the syntactic classification of the span.
	Class Class
}

// End returns the byte offset one past the last character of the span.
func (t Token) End() int {
	return t.Offset + t.Length
}

// Contains reports whether the byte offset falls within the span.
func (t Token) Contains(off int) bool {
	return off >= t.Offset && off < t.End()
}

// Translate returns a copy of the token shifted by delta bytes.
func (t Token) Translate(delta int) Token {
	t.Offset += delta
	return t
}

// String renders the token for debugging and test failure messages.
func (t Token) String() string {
	return fmt.Sprintf("[%d:%d %s]", t.Offset, t.End(), t.Class)
}

// Translate shifts every token in the slice by delta bytes, in place, and
// returns the slice for chaining.
func Translate(tokens []Token, delta int) []Token {
	if delta == 0 {
		return tokens
	}
	for i := range tokens {
		tokens[i].Offset += delta
	}
	return tokens
}

// Contiguous reports whether the tokens exactly cover [start, end) in
// increasing offset order with no gaps or overlaps. An empty slice covers
// only the empty range.
func Contiguous(tokens []Token, start, end int) bool {
	at := start
	for _, t := range tokens {
		if t.Offset != at || t.Length <= 0 {
			return false
		}
		at = t.End()
	}
	return at == end
}
