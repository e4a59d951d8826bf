package scanner

import (
	"github.com/dshills/glint/lexer"
	"github.com/dshills/glint/partition"
	"github.com/dshills/glint/syntax"
)

// Code scans code partitions by delegating to a lexer and re-tagging
// its lexemes with syntax classes. The lexer's offsets are preserved
// unchanged; gaps a lexer leaves (some skip whitespace) are filled
// with the default class so the output still covers the partition.
type Code struct {
	lex lexer.Lexer
}

// NewCode creates a scanner around the given lexer.
func NewCode(lex lexer.Lexer) *Code {
	return &Code{lex: lex}
}

// Scan implements Scanner.
func (c *Code) Scan(src string, p partition.Partition) []syntax.Token {
	if p.Length <= 0 {
		return nil
	}
	lexemes := c.lex.Lex(src[p.Offset:p.End()], p.Offset)
	out := make([]syntax.Token, 0, len(lexemes))
	pos := p.Offset
	for _, l := range lexemes {
		if l.End() <= pos || l.End() > p.End() {
			continue // out-of-contract lexeme, keep coverage intact
		}
		start := l.Offset
		if start < pos {
			start = pos
		}
		if start > pos {
			out = appendDefault(out, pos, start)
		}
		class := classFor(l.Category)
		if class == syntax.Default {
			out = appendDefault(out, start, l.End())
		} else {
			out = append(out, syntax.Token{Offset: start, Length: l.End() - start, Class: class})
		}
		pos = l.End()
	}
	if pos < p.End() {
		out = appendDefault(out, pos, p.End())
	}
	return out
}

// classFor maps a lexeme category onto a syntax class.
func classFor(cat lexer.Category) syntax.Class {
	switch cat {
	case lexer.Keyword:
		return syntax.Keyword
	case lexer.Identifier:
		return syntax.Identifier
	case lexer.Operator:
		return syntax.Operator
	case lexer.Bracket:
		return syntax.Bracket
	case lexer.Number:
		return syntax.Number
	default:
		return syntax.Default
	}
}

// appendDefault adds a default-class token, extending the previous one
// when they touch so filler runs stay single tokens.
func appendDefault(out []syntax.Token, from, to int) []syntax.Token {
	if to <= from {
		return out
	}
	if n := len(out) - 1; n >= 0 && out[n].Class == syntax.Default && out[n].End() == from {
		out[n].Length = to - out[n].Offset
		return out
	}
	return append(out, syntax.Token{Offset: from, Length: to - from, Class: syntax.Default})
}
