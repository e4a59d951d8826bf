package scanner

import (
	"unicode/utf8"

	"github.com/dshills/glint/partition"
	"github.com/dshills/glint/syntax"
)

// Literal scans string and character partitions, carving escape
// sequences out of the literal body. Recognized forms are the single
// character escapes (\n, \", \\, ...), octal escapes of up to three
// digits, and \u followed by up to four hex digits. An escape cut
// short by the end of the region is still reported as an escape,
// covering only the bytes that are present.
type Literal struct {
	base syntax.Class
}

// NewLiteral creates a literal scanner with the given base class.
func NewLiteral(base syntax.Class) *Literal {
	return &Literal{base: base}
}

// Scan implements Scanner.
func (l *Literal) Scan(src string, p partition.Partition) []syntax.Token {
	if p.Length <= 0 {
		return nil
	}
	var out []syntax.Token
	mark := p.Offset
	pos := p.Offset
	end := p.End()
	for pos < end {
		if src[pos] != '\\' {
			pos++
			continue
		}
		stop := escapeEnd(src, pos, end)
		if pos > mark {
			out = append(out, syntax.Token{Offset: mark, Length: pos - mark, Class: l.base})
		}
		out = append(out, syntax.Token{Offset: pos, Length: stop - pos, Class: syntax.Escape})
		mark = stop
		pos = stop
	}
	if end > mark {
		out = append(out, syntax.Token{Offset: mark, Length: end - mark, Class: l.base})
	}
	return out
}

// escapeEnd returns the offset one past the escape starting at pos.
func escapeEnd(src string, pos, end int) int {
	i := pos + 1
	if i >= end {
		return end // lone backslash at the edge of the region
	}
	switch c := src[i]; {
	case c == 'u':
		i++
		for n := 0; n < 4 && i < end && isHexByte(src[i]); n++ {
			i++
		}
		return i
	case c >= '0' && c <= '7':
		i++
		for n := 1; n < 3 && i < end && src[i] >= '0' && src[i] <= '7'; n++ {
			i++
		}
		return i
	default:
		_, size := utf8.DecodeRuneInString(src[i:end])
		return i + size
	}
}
