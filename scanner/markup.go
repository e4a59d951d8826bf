package scanner

import (
	"github.com/dshills/glint/partition"
	"github.com/dshills/glint/syntax"
)

// Tag scans markup tag partitions. With detail enabled it separates
// attribute names from attribute values and the tag punctuation;
// otherwise the whole tag is one markup token. Quoted attribute values
// are reported with the string class, unquoted values and whitespace
// with the default class.
type Tag struct {
	detail bool
}

// NewTag creates a tag scanner. detail selects attribute-level output.
func NewTag(detail bool) *Tag {
	return &Tag{detail: detail}
}

// Scan implements Scanner.
func (t *Tag) Scan(src string, p partition.Partition) []syntax.Token {
	if p.Length <= 0 {
		return nil
	}
	if !t.detail {
		return []syntax.Token{{Offset: p.Offset, Length: p.Length, Class: syntax.MarkupTag}}
	}

	var out []syntax.Token
	// add appends a span, extending the previous token when the class
	// matches so delimiter and name runs stay single tokens.
	add := func(from, to int, class syntax.Class) {
		if to <= from {
			return
		}
		if n := len(out) - 1; n >= 0 && out[n].Class == class && out[n].End() == from {
			out[n].Length = to - out[n].Offset
			return
		}
		out = append(out, syntax.Token{Offset: from, Length: to - from, Class: class})
	}

	pos := p.Offset
	end := p.End()
	seenName := false
	afterEq := false
	for pos < end {
		c := src[pos]
		switch {
		case c == '<' || c == '>' || c == '/' || c == '=' || c == '!' || c == '?':
			add(pos, pos+1, syntax.MarkupTag)
			afterEq = c == '='
			pos++
		case c == '"' || c == '\'':
			stop := quotedEnd(src, pos, end)
			add(pos, stop, syntax.String)
			afterEq = false
			pos = stop
		case isSpaceByte(c):
			start := pos
			for pos < end && isSpaceByte(src[pos]) {
				pos++
			}
			add(start, pos, syntax.Default)
		case isNameByte(c):
			start := pos
			for pos < end && isNameByte(src[pos]) {
				pos++
			}
			switch {
			case !seenName:
				add(start, pos, syntax.MarkupTag)
				seenName = true
			case afterEq:
				add(start, pos, syntax.Default)
				afterEq = false
			default:
				add(start, pos, syntax.MarkupAttribute)
			}
		default:
			add(pos, pos+1, syntax.Default)
			pos++
		}
	}
	return out
}

// quotedEnd returns the offset one past the closing quote, or end for
// an unterminated value.
func quotedEnd(src string, pos, end int) int {
	q := src[pos]
	for i := pos + 1; i < end; i++ {
		if src[i] == q {
			return i + 1
		}
	}
	return end
}

// isNameByte reports whether c can appear in a markup name.
func isNameByte(c byte) bool {
	return isWordByte(c) || c == '-' || c == ':' || c == '.'
}
