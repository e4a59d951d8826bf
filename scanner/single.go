package scanner

import (
	"github.com/dshills/glint/partition"
	"github.com/dshills/glint/syntax"
)

// Single reports an entire partition as one token of a fixed class.
// It serves the kinds whose interior needs no further distinction,
// such as CDATA sections or doc-comment code blocks.
type Single struct {
	class syntax.Class
}

// NewSingle creates a scanner that emits the given class.
func NewSingle(class syntax.Class) *Single {
	return &Single{class: class}
}

// Scan implements Scanner.
func (s *Single) Scan(_ string, p partition.Partition) []syntax.Token {
	if p.Length <= 0 {
		return nil
	}
	return []syntax.Token{{Offset: p.Offset, Length: p.Length, Class: s.class}}
}
