package lexer

import (
	"reflect"
	"testing"
)

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{Keyword, "keyword"},
		{Identifier, "identifier"},
		{Operator, "operator"},
		{Bracket, "bracket"},
		{Number, "number"},
		{Whitespace, "whitespace"},
		{Other, "other"},
		{Category(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

func TestScannerLex(t *testing.T) {
	keywords := []string{"val", "if", "return"}

	tests := []struct {
		name string
		src  string
		want []Lexeme
	}{
		{
			name: "empty",
			src:  "",
			want: nil,
		},
		{
			name: "declaration",
			src:  "val x = 1",
			want: []Lexeme{
				{Keyword, 0, 3},
				{Whitespace, 3, 1},
				{Identifier, 4, 1},
				{Whitespace, 5, 1},
				{Operator, 6, 1},
				{Whitespace, 7, 1},
				{Number, 8, 1},
			},
		},
		{
			name: "keywords are case sensitive",
			src:  "Val",
			want: []Lexeme{{Identifier, 0, 3}},
		},
		{
			name: "hex number",
			src:  "0xFF",
			want: []Lexeme{{Number, 0, 4}},
		},
		{
			name: "float number",
			src:  "3.14",
			want: []Lexeme{{Number, 0, 4}},
		},
		{
			name: "exponent number",
			src:  "2.5e-3",
			want: []Lexeme{{Number, 0, 6}},
		},
		{
			name: "number suffix",
			src:  "10L",
			want: []Lexeme{{Number, 0, 3}},
		},
		{
			name: "trailing dot is an operator",
			src:  "1.",
			want: []Lexeme{{Number, 0, 1}, {Operator, 1, 1}},
		},
		{
			name: "operator run",
			src:  "a->b",
			want: []Lexeme{{Identifier, 0, 1}, {Operator, 1, 2}, {Identifier, 3, 1}},
		},
		{
			name: "brackets are single lexemes",
			src:  "f(x)",
			want: []Lexeme{
				{Identifier, 0, 1},
				{Bracket, 1, 1},
				{Identifier, 2, 1},
				{Bracket, 3, 1},
			},
		},
		{
			name: "adjacent brackets",
			src:  "(())",
			want: []Lexeme{
				{Bracket, 0, 1},
				{Bracket, 1, 1},
				{Bracket, 2, 1},
				{Bracket, 3, 1},
			},
		},
		{
			name: "member access",
			src:  "a.b",
			want: []Lexeme{{Identifier, 0, 1}, {Operator, 1, 1}, {Identifier, 2, 1}},
		},
		{
			name: "punctuation run",
			src:  "a, b",
			want: []Lexeme{
				{Identifier, 0, 1},
				{Other, 1, 1},
				{Whitespace, 2, 1},
				{Identifier, 3, 1},
			},
		},
		{
			name: "unicode identifier",
			src:  "héllo",
			want: []Lexeme{{Identifier, 0, 6}},
		},
		{
			name: "underscore identifier",
			src:  "_tmp1",
			want: []Lexeme{{Identifier, 0, 5}},
		},
	}

	s := NewScanner(keywords)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Lex(tt.src, 0)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lex(%q) = %v, want %v", tt.src, got, tt.want)
			}
			checkLexCoverage(t, tt.src, got)
		})
	}
}

func TestScannerLexBase(t *testing.T) {
	s := NewScanner(nil)
	got := s.Lex("ab", 100)
	want := []Lexeme{{Identifier, 100, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lex(\"ab\", 100) = %v, want %v", got, want)
	}
}

// checkLexCoverage verifies the Lexer contract: lexemes tile the input
// with no gaps, overlaps, or zero-length entries.
func checkLexCoverage(t *testing.T, src string, lexemes []Lexeme) {
	t.Helper()
	pos := 0
	for i, l := range lexemes {
		if l.Length <= 0 {
			t.Errorf("lexeme %d has length %d", i, l.Length)
		}
		if l.Offset != pos {
			t.Errorf("lexeme %d starts at %d, want %d", i, l.Offset, pos)
		}
		pos = l.End()
	}
	if pos != len(src) {
		t.Errorf("lexemes cover [0:%d), want [0:%d)", pos, len(src))
	}
}
