// Package lexer performs raw lexical analysis of code regions. It
// knows nothing about comments, strings, or markup: the partitioner
// has already removed those by the time a code region reaches a
// Lexer. Lexemes carry a coarse category and exact byte offsets; the
// scanner layer above maps categories onto syntax classes.
package lexer

import (
	"unicode"
	"unicode/utf8"
)

// Category is the coarse lexical category of a lexeme.
type Category uint8

// Lexeme categories.
const (
	Other Category = iota
	Keyword
	Identifier
	Operator
	Bracket
	Number
	Whitespace
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case Keyword:
		return "keyword"
	case Identifier:
		return "identifier"
	case Operator:
		return "operator"
	case Bracket:
		return "bracket"
	case Number:
		return "number"
	case Whitespace:
		return "whitespace"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// Lexeme is one raw lexical unit. Offset is absolute: the base passed
// to Lex has already been added.
type Lexeme struct {
	Category Category
	Offset   int
	Length   int
}

// End returns the offset one past the last byte of the lexeme.
func (l Lexeme) End() int {
	return l.Offset + l.Length
}

// Lexer splits code text into lexemes. Implementations must be safe
// for concurrent use, must cover src completely (whitespace included),
// and must report offsets translated by base.
type Lexer interface {
	Lex(src string, base int) []Lexeme
}

// Scanner is the default Lexer. It recognizes identifiers, a keyword
// set, numbers with hex, fraction, and exponent forms, bracket
// characters, and maximal runs of operator characters. Anything else
// becomes an Other run.
type Scanner struct {
	keywords map[string]bool
}

// NewScanner creates a scanner that recognizes the given keywords.
func NewScanner(keywords []string) *Scanner {
	kw := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		kw[k] = true
	}
	return &Scanner{keywords: kw}
}

// Lex splits src into lexemes. The walk state lives on the stack, so a
// single Scanner may be shared freely.
func (s *Scanner) Lex(src string, base int) []Lexeme {
	var out []Lexeme
	pos := 0
	for pos < len(src) {
		start := pos
		c := src[pos]
		var cat Category
		switch {
		case isSpace(c):
			for pos < len(src) && isSpace(src[pos]) {
				pos++
			}
			cat = Whitespace
		case isDigit(c):
			pos = scanNumber(src, pos)
			cat = Number
		case isBracket(c):
			pos++
			cat = Bracket
		case isOperator(c):
			for pos < len(src) && isOperator(src[pos]) {
				pos++
			}
			cat = Operator
		default:
			r, size := utf8.DecodeRuneInString(src[pos:])
			if isIdentStart(r) {
				pos = scanIdentifier(src, pos)
				cat = Identifier
				if s.keywords[src[start:pos]] {
					cat = Keyword
				}
			} else {
				pos += size
				for pos < len(src) && !startsLexeme(src, pos) {
					_, size = utf8.DecodeRuneInString(src[pos:])
					pos += size
				}
				cat = Other
			}
		}
		out = append(out, Lexeme{Category: cat, Offset: base + start, Length: pos - start})
	}
	return out
}

// scanNumber consumes an integer, hex, or floating point literal with
// an optional one-letter suffix, returning the new cursor.
func scanNumber(src string, pos int) int {
	if src[pos] == '0' && pos+1 < len(src) && (src[pos+1] == 'x' || src[pos+1] == 'X') {
		pos += 2
		for pos < len(src) && isHexDigit(src[pos]) {
			pos++
		}
		return pos
	}
	for pos < len(src) && isDigit(src[pos]) {
		pos++
	}
	// A fraction needs a digit after the dot; a bare trailing dot is
	// left for the operator run.
	if pos+1 < len(src) && src[pos] == '.' && isDigit(src[pos+1]) {
		pos++
		for pos < len(src) && isDigit(src[pos]) {
			pos++
		}
	}
	if pos < len(src) && (src[pos] == 'e' || src[pos] == 'E') {
		next := pos + 1
		if next < len(src) && (src[next] == '+' || src[next] == '-') {
			next++
		}
		if next < len(src) && isDigit(src[next]) {
			pos = next
			for pos < len(src) && isDigit(src[pos]) {
				pos++
			}
		}
	}
	if pos < len(src) && isNumberSuffix(src[pos]) {
		pos++
	}
	return pos
}

// scanIdentifier consumes an identifier, returning the new cursor.
func scanIdentifier(src string, pos int) int {
	for pos < len(src) {
		r, size := utf8.DecodeRuneInString(src[pos:])
		if !isIdentPart(r) {
			break
		}
		pos += size
	}
	return pos
}

// startsLexeme reports whether the byte at pos begins a non-Other
// lexeme, ending the current Other run.
func startsLexeme(src string, pos int) bool {
	c := src[pos]
	if isSpace(c) || isDigit(c) || isBracket(c) || isOperator(c) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(src[pos:])
	return isIdentStart(r)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isBracket(c byte) bool {
	switch c {
	case '(', ')', '[', ']', '{', '}':
		return true
	}
	return false
}

func isOperator(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '%', '<', '>', '=', '!', '&', '|', '^', '~', '?', ':', '@', '#', '.', '\\':
		return true
	}
	return false
}

func isNumberSuffix(c byte) bool {
	switch c {
	case 'l', 'L', 'f', 'F', 'd', 'D':
		return true
	}
	return false
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
