package scanner

import (
	"github.com/dshills/glint/config"
	"github.com/dshills/glint/partition"
	"github.com/dshills/glint/syntax"
)

// Comment scans plain comment partitions, carving task-tag words such
// as TODO out of the comment body. Matching is whole-word: a tag
// embedded in a longer word is not reported.
type Comment struct {
	base syntax.Class
	tags config.TagSet
}

// NewComment creates a comment scanner with the given base class and
// task tags.
func NewComment(base syntax.Class, tags config.TagSet) *Comment {
	return &Comment{base: base, tags: tags}
}

// Scan implements Scanner.
func (c *Comment) Scan(src string, p partition.Partition) []syntax.Token {
	if p.Length <= 0 {
		return nil
	}
	var out []syntax.Token
	mark := p.Offset
	pos := p.Offset
	end := p.End()
	for pos < end {
		if !isWordByte(src[pos]) {
			pos++
			continue
		}
		wordStart := pos
		for pos < end && isWordByte(src[pos]) {
			pos++
		}
		if c.tags.Match(src[wordStart:pos]) {
			if wordStart > mark {
				out = append(out, syntax.Token{Offset: mark, Length: wordStart - mark, Class: c.base})
			}
			out = append(out, syntax.Token{Offset: wordStart, Length: pos - wordStart, Class: syntax.TaskTag})
			mark = pos
		}
	}
	if end > mark {
		out = append(out, syntax.Token{Offset: mark, Length: end - mark, Class: c.base})
	}
	return out
}
