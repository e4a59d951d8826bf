package scanner

import (
	"github.com/dshills/glint/config"
	"github.com/dshills/glint/partition"
	"github.com/dshills/glint/syntax"
)

// Doc scans documentation comment partitions. On top of the task-tag
// handling of a plain comment scanner it recognizes annotation markers
// such as @param and inline macros such as {@code x}. A recognized
// construct consumes its span whole, so a tag word inside a macro is
// not reported again.
type Doc struct {
	tags config.TagSet
}

// NewDoc creates a doc-comment scanner with the given task tags.
func NewDoc(tags config.TagSet) *Doc {
	return &Doc{tags: tags}
}

// Scan implements Scanner.
func (d *Doc) Scan(src string, p partition.Partition) []syntax.Token {
	if p.Length <= 0 {
		return nil
	}
	var out []syntax.Token
	mark := p.Offset
	pos := p.Offset
	end := p.End()

	// emit closes the pending base run and appends tok after it.
	emit := func(tok syntax.Token) {
		if tok.Offset > mark {
			out = append(out, syntax.Token{Offset: mark, Length: tok.Offset - mark, Class: syntax.DocComment})
		}
		out = append(out, tok)
		mark = tok.End()
	}

	for pos < end {
		c := src[pos]
		switch {
		case c == '{' && pos+1 < end && src[pos+1] == '@':
			stop := macroEnd(src, pos, end)
			emit(syntax.Token{Offset: pos, Length: stop - pos, Class: syntax.DocMacro})
			pos = stop
		case c == '@' && pos+1 < end && isWordByte(src[pos+1]) && d.atBoundary(src, p.Offset, pos):
			stop := pos + 1
			for stop < end && isWordByte(src[stop]) {
				stop++
			}
			emit(syntax.Token{Offset: pos, Length: stop - pos, Class: syntax.DocAnnotation})
			pos = stop
		case isWordByte(c):
			wordStart := pos
			for pos < end && isWordByte(src[pos]) {
				pos++
			}
			if d.tags.Match(src[wordStart:pos]) {
				emit(syntax.Token{Offset: wordStart, Length: pos - wordStart, Class: syntax.TaskTag})
			}
		default:
			pos++
		}
	}
	if end > mark {
		out = append(out, syntax.Token{Offset: mark, Length: end - mark, Class: syntax.DocComment})
	}
	return out
}

// atBoundary reports whether the @ at pos starts a word rather than
// trailing one, which keeps addresses like a@b from reading as
// annotations.
func (d *Doc) atBoundary(src string, start, pos int) bool {
	return pos == start || !isWordByte(src[pos-1])
}

// macroEnd returns the offset one past the brace that balances the
// macro opening at pos, or end when the macro is unterminated.
func macroEnd(src string, pos, end int) int {
	depth := 0
	for i := pos; i < end; i++ {
		switch src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return end
}
