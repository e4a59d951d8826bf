// Package partition splits source documents into contiguous typed
// regions. Partitioning is the coarse first pass of tokenization: it
// separates code from comments, literals, and embedded markup so each
// region can be scanned by a scanner specialized for its kind.
//
// A conforming partitioner produces regions that are ordered by
// offset, non-overlapping, and gapless over the input. The default
// partitioner returned by New always satisfies this contract, even for
// malformed input: unterminated constructs extend to the end of the
// document (or line, for single-line literals) rather than failing.
package partition

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Partitioner splits a document into typed regions. Implementations
// must be safe for concurrent use and must cover the document exactly:
// ordered, non-overlapping, no gaps, no zero-length regions.
type Partitioner interface {
	Partition(text string) []Partition
}

// Options select which lexical features the default partitioner
// recognizes. The zero value recognizes only line comments, block
// comments, doc comments, strings, and character literals.
type Options struct {
	// NestedComments makes block comments nest: each /* inside a
	// block comment must be balanced by its own */.
	NestedComments bool

	// TripleQuoted recognizes """...""" multi-line string literals.
	// The closing delimiter is the last three quotes of a quote run,
	// so `"""a""""` contains the text `a"`.
	TripleQuoted bool

	// MarkupRegions recognizes markup literals embedded in code: a <
	// in expression position followed by a name, "!", or "?" opens a
	// markup region that lasts until its tag nesting returns to zero.
	MarkupRegions bool

	// DocCodeBlocks carves {{{...}}} spans inside doc comments into
	// their own partitions.
	DocCodeBlocks bool
}

// DefaultOptions enables every optional feature.
func DefaultOptions() Options {
	return Options{
		NestedComments: true,
		TripleQuoted:   true,
		MarkupRegions:  true,
		DocCodeBlocks:  true,
	}
}

// New returns the default partitioner for the given options.
func New(opts Options) Partitioner {
	return &defaultPartitioner{opts: opts}
}

type defaultPartitioner struct {
	opts Options
}

// Partition splits text into typed regions. The scan state lives in a
// per-call value, so a single partitioner may be shared freely.
func (d *defaultPartitioner) Partition(text string) []Partition {
	s := &scan{src: text, opts: d.opts}
	s.run()
	return s.parts
}

// Whole returns a partitioner that reports the entire document as a
// single region of the given kind. It is the degenerate partitioner
// for self-contained snippets known to hold only one kind of content.
func Whole(kind Kind) Partitioner {
	return wholePartitioner(kind)
}

type wholePartitioner Kind

func (w wholePartitioner) Partition(text string) []Partition {
	if len(text) == 0 {
		return nil
	}
	return []Partition{{Kind: Kind(w), Offset: 0, Length: len(text)}}
}

// scan walks a document once, accumulating partitions. mark trails pos
// and points at the start of the pending code run; special regions
// flush the pending code before emitting themselves.
type scan struct {
	src   string
	opts  Options
	pos   int
	mark  int
	parts []Partition
}

func (s *scan) run() {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '/' && s.at(s.pos+1) == '/':
			s.lineComment()
		case c == '/' && s.at(s.pos+1) == '*':
			s.blockComment()
		case c == '"':
			s.stringLit()
		case c == '\'':
			s.charLit()
		case c == '<' && s.opts.MarkupRegions && s.markupStarts():
			s.markup()
		default:
			s.pos++
		}
	}
	s.add(KindCode, s.mark, len(s.src))
}

// at returns the byte at absolute index i, or 0 past the end.
func (s *scan) at(i int) byte {
	if i < len(s.src) {
		return s.src[i]
	}
	return 0
}

// add appends a partition covering [from, to). Zero-length regions are
// dropped so the output never contains them.
func (s *scan) add(kind Kind, from, to int) {
	if to > from {
		s.parts = append(s.parts, Partition{Kind: kind, Offset: from, Length: to - from})
	}
}

// emit closes the region [from, to) with the given kind and moves both
// cursors past it.
func (s *scan) emit(kind Kind, from, to int) {
	s.add(kind, from, to)
	s.mark = to
	s.pos = to
}

// flushCode emits the pending code run ending at end, if any.
func (s *scan) flushCode(end int) {
	s.add(KindCode, s.mark, end)
}

func (s *scan) lineComment() {
	start := s.pos
	s.flushCode(start)
	end := start + 2
	for end < len(s.src) && s.src[end] != '\n' {
		end++
	}
	// The line delimiter stays outside the comment.
	if end > start+2 && s.src[end-1] == '\r' {
		end--
	}
	s.emit(KindCommentLine, start, end)
}

func (s *scan) blockComment() {
	start := s.pos
	s.flushCode(start)
	if s.at(start+2) == '*' && s.at(start+3) != '/' {
		s.docComment(start)
		return
	}
	end := start + 2
	depth := 1
	for end < len(s.src) && depth > 0 {
		switch {
		case s.src[end] == '*' && s.at(end+1) == '/':
			depth--
			end += 2
		case s.opts.NestedComments && s.src[end] == '/' && s.at(end+1) == '*':
			depth++
			end += 2
		default:
			end++
		}
	}
	s.emit(KindCommentBlock, start, end)
}

// docComment handles a /** ... */ comment starting at start. The body
// runs to the first */ regardless of nesting. With DocCodeBlocks
// enabled, {{{...}}} spans inside the body become their own
// partitions, splitting the comment into alternating regions.
func (s *scan) docComment(start int) {
	bodyEnd := len(s.src)
	end := len(s.src)
	if i := strings.Index(s.src[start+3:], "*/"); i >= 0 {
		bodyEnd = start + 3 + i
		end = bodyEnd + 2
	}
	if !s.opts.DocCodeBlocks {
		s.emit(KindDocComment, start, end)
		return
	}
	cur := start
	for {
		open := strings.Index(s.src[cur:bodyEnd], "{{{")
		if open < 0 {
			break
		}
		open += cur
		blockEnd := bodyEnd
		if i := strings.Index(s.src[open+3:bodyEnd], "}}}"); i >= 0 {
			blockEnd = open + 3 + i + 3
		}
		s.add(KindDocComment, cur, open)
		s.add(KindDocCodeBlock, open, blockEnd)
		cur = blockEnd
	}
	s.add(KindDocComment, cur, end)
	s.mark = end
	s.pos = end
}

func (s *scan) stringLit() {
	start := s.pos
	if s.opts.TripleQuoted && s.at(start+1) == '"' && s.at(start+2) == '"' {
		s.flushCode(start)
		s.multilineString(start)
		return
	}
	s.flushCode(start)
	end := start + 1
	for end < len(s.src) {
		c := s.src[end]
		if c == '\\' && end+1 < len(s.src) {
			end += 2
			continue
		}
		if c == '"' {
			end++
			break
		}
		if c == '\n' {
			// Unterminated: the literal stops at the line end.
			if s.src[end-1] == '\r' {
				end--
			}
			break
		}
		end++
	}
	s.emit(KindString, start, end)
}

func (s *scan) multilineString(start int) {
	end := start + 3
	for end < len(s.src) {
		if s.src[end] == '"' && s.at(end+1) == '"' && s.at(end+2) == '"' {
			end += 3
			// Quotes beyond the third belong to the literal.
			for end < len(s.src) && s.src[end] == '"' {
				end++
			}
			s.emit(KindMultilineString, start, end)
			return
		}
		end++
	}
	s.emit(KindMultilineString, start, len(s.src))
}

// charLit recognizes 'x' and escape forms such as '\n' and 'A'.
// A quote that does not open a well-formed character literal stays in
// the surrounding code run, which covers symbol and lifetime uses of
// the quote character.
func (s *scan) charLit() {
	start := s.pos
	if s.at(start+1) == '\\' {
		s.flushCode(start)
		end := start + 2
		if end < len(s.src) {
			end++ // escape head
		}
		for end < len(s.src) && s.src[end] != '\'' && s.src[end] != '\n' {
			end++
		}
		if s.at(end) == '\'' {
			end++
		}
		s.emit(KindCharacter, start, end)
		return
	}
	r, size := utf8.DecodeRuneInString(s.src[start+1:])
	if size == 0 || r == '\n' || (r == utf8.RuneError && size == 1) {
		s.pos++
		return
	}
	if s.at(start+1+size) != '\'' {
		s.pos++
		return
	}
	s.flushCode(start)
	s.emit(KindCharacter, start, start+size+2)
}

// markupStarts reports whether the < at the cursor opens a markup
// region: it must be followed by a name start, "!", or "?", and the
// preceding character must put it in expression position.
func (s *scan) markupStarts() bool {
	next := s.at(s.pos + 1)
	if next != '!' && next != '?' && !isNameStart(next) {
		return false
	}
	if s.pos == 0 {
		return true
	}
	switch s.src[s.pos-1] {
	case ' ', '\t', '\n', '\r', '(', '{', '=', ',':
		return true
	}
	return false
}

// markup consumes an embedded markup region: tags, text between tags,
// comments, CDATA sections, and processing instructions. The region
// ends when tag nesting returns to zero or the document runs out.
func (s *scan) markup() {
	s.flushCode(s.pos)
	depth := 0
	for s.pos < len(s.src) {
		rest := s.src[s.pos:]
		switch {
		case strings.HasPrefix(rest, "<!--"):
			s.emit(KindMarkupComment, s.pos, s.findClose(s.pos+4, "-->"))
		case strings.HasPrefix(rest, "<![CDATA["):
			s.emit(KindMarkupCDATA, s.pos, s.findClose(s.pos+9, "]]>"))
		case strings.HasPrefix(rest, "<?"):
			s.emit(KindMarkupInstruction, s.pos, s.findClose(s.pos+2, "?>"))
		case rest[0] == '<':
			depth += s.tag()
		default:
			s.text()
		}
		if depth <= 0 {
			return
		}
	}
}

// findClose returns the offset one past the closing delimiter, or the
// end of the document when the construct is unterminated.
func (s *scan) findClose(from int, close string) int {
	if i := strings.Index(s.src[from:], close); i >= 0 {
		return from + i + len(close)
	}
	return len(s.src)
}

// tag consumes one tag and returns its effect on nesting depth: +1
// for an opening tag, -1 for a closing tag, 0 for a self-closing one.
// Quoted attribute values may contain ">" without ending the tag.
func (s *scan) tag() int {
	start := s.pos
	closing := s.at(start+1) == '/'
	end := start + 1
	if closing {
		end++
	}
	selfClose := false
	for end < len(s.src) {
		c := s.src[end]
		if c == '"' || c == '\'' {
			q := c
			end++
			for end < len(s.src) && s.src[end] != q {
				end++
			}
			if end < len(s.src) {
				end++
			}
			continue
		}
		if c == '/' && s.at(end+1) == '>' {
			selfClose = true
			end += 2
			break
		}
		if c == '>' {
			end++
			break
		}
		if c == '<' {
			break
		}
		end++
	}
	s.emit(KindMarkupTag, start, end)
	switch {
	case closing:
		return -1
	case selfClose:
		return 0
	default:
		return 1
	}
}

// text consumes character data between tags.
func (s *scan) text() {
	start := s.pos
	end := start
	for end < len(s.src) && s.src[end] != '<' {
		end++
	}
	s.emit(KindMarkupText, start, end)
}

func isNameStart(c byte) bool {
	return c == '_' || unicode.IsLetter(rune(c))
}
