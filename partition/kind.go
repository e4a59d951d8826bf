package partition

import (
	"errors"
	"fmt"
)

// Kind identifies the lexical category of a document region. The
// scanner table is keyed by Kind: every kind produced by a partitioner
// must have a scanner registered for it before tokenization starts.
type Kind string

// The built-in partition kinds. Partitioners may mint additional kinds
// for host-specific regions as long as a scanner is registered for
// them at table construction time.
const (
	KindCode              Kind = "code"
	KindCommentLine       Kind = "comment.line"
	KindCommentBlock      Kind = "comment.block"
	KindDocComment        Kind = "comment.doc"
	KindDocCodeBlock      Kind = "comment.doc.code"
	KindString            Kind = "string"
	KindMultilineString   Kind = "string.multiline"
	KindCharacter         Kind = "character"
	KindMarkupTag         Kind = "markup.tag"
	KindMarkupComment     Kind = "markup.comment"
	KindMarkupCDATA       Kind = "markup.cdata"
	KindMarkupText        Kind = "markup.text"
	KindMarkupInstruction Kind = "markup.instruction"
)

var builtinKinds = []Kind{
	KindCode,
	KindCommentLine,
	KindCommentBlock,
	KindDocComment,
	KindDocCodeBlock,
	KindString,
	KindMultilineString,
	KindCharacter,
	KindMarkupTag,
	KindMarkupComment,
	KindMarkupCDATA,
	KindMarkupText,
	KindMarkupInstruction,
}

// Kinds returns the built-in partition kinds in declaration order.
// The returned slice is a copy and may be modified by the caller.
func Kinds() []Kind {
	out := make([]Kind, len(builtinKinds))
	copy(out, builtinKinds)
	return out
}

// ErrOutOfRange reports a partition that does not fit inside the
// document it claims to describe.
var ErrOutOfRange = errors.New("partition out of document range")

// Partition is a contiguous typed region of a document, expressed in
// byte offsets from the start of the document.
type Partition struct {
	Kind   Kind
	Offset int
	Length int
}

// End returns the offset one past the last byte of the partition.
func (p Partition) End() int {
	return p.Offset + p.Length
}

// Validate reports whether the partition lies within a document of
// docLen bytes. A negative offset or length is always invalid.
func (p Partition) Validate(docLen int) error {
	if p.Offset < 0 || p.Length < 0 || p.End() > docLen {
		return fmt.Errorf("%w: %v in %d byte document", ErrOutOfRange, p, docLen)
	}
	return nil
}

// String returns a compact form such as "[4:10 string]" for test
// output and error messages.
func (p Partition) String() string {
	return fmt.Sprintf("[%d:%d %s]", p.Offset, p.End(), p.Kind)
}
