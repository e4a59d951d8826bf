package config

import (
	"github.com/dshills/glint/partition"
)

// Dialect describes the lexical shape of the language being tokenized:
// its keyword set and which optional constructs its grammar admits.
// Scanners and the default partitioner consult the dialect instead of
// hard-coding any one language.
type Dialect struct {
	// Name is the display name of the dialect.
	Name string

	// Version selects version-dependent behavior, for example which
	// keywords exist. It is carried verbatim; the constructors bake
	// version differences into the other fields.
	Version string

	// Keywords are the reserved words recognized by the code scanner.
	Keywords []string

	// NestedComments makes block comments nest.
	NestedComments bool

	// TripleQuotedStrings recognizes """...""" literals.
	TripleQuotedStrings bool

	// MarkupLiterals recognizes markup embedded in code.
	MarkupLiterals bool

	// DocCodeBlocks recognizes {{{...}}} blocks inside doc comments.
	DocCodeBlocks bool
}

// PartitionOptions maps the dialect's feature gates onto options for
// the default partitioner.
func (d *Dialect) PartitionOptions() partition.Options {
	return partition.Options{
		NestedComments: d.NestedComments,
		TripleQuoted:   d.TripleQuotedStrings,
		MarkupRegions:  d.MarkupLiterals,
		DocCodeBlocks:  d.DocCodeBlocks,
	}
}

// KeywordSet returns the keywords as a lookup set.
func (d *Dialect) KeywordSet() map[string]bool {
	set := make(map[string]bool, len(d.Keywords))
	for _, kw := range d.Keywords {
		set[kw] = true
	}
	return set
}

// clone returns a deep copy so a Config holds its own keyword slice.
func (d *Dialect) clone() Dialect {
	out := *d
	out.Keywords = make([]string, len(d.Keywords))
	copy(out.Keywords, d.Keywords)
	return out
}

// DefaultDialect returns a generic curly-brace dialect with every
// optional construct enabled. It is a reasonable starting point for
// snippets whose language is unknown.
func DefaultDialect() Dialect {
	return Dialect{
		Name:    "default",
		Version: "1",
		Keywords: []string{
			"abstract", "break", "case", "catch", "class", "const",
			"continue", "def", "do", "else", "enum", "extends", "false",
			"final", "finally", "for", "if", "import", "in", "interface",
			"match", "new", "null", "object", "override", "package",
			"private", "protected", "public", "return", "static",
			"super", "switch", "this", "throw", "trait", "true", "try",
			"type", "val", "var", "while", "with", "yield",
		},
		NestedComments:      true,
		TripleQuotedStrings: true,
		MarkupLiterals:      true,
		DocCodeBlocks:       true,
	}
}

// ScalaDialect returns a dialect for Scala 2 sources, including the
// embedded XML literals the language grammar still admits.
func ScalaDialect() Dialect {
	return Dialect{
		Name:    "scala",
		Version: "2.13",
		Keywords: []string{
			"abstract", "case", "catch", "class", "def", "do", "else",
			"extends", "false", "final", "finally", "for", "forSome",
			"if", "implicit", "import", "lazy", "match", "new", "null",
			"object", "override", "package", "private", "protected",
			"return", "sealed", "super", "this", "throw", "trait",
			"try", "true", "type", "val", "var", "while", "with",
			"yield",
		},
		NestedComments:      true,
		TripleQuotedStrings: true,
		MarkupLiterals:      true,
		DocCodeBlocks:       true,
	}
}

// JavaDialect returns a dialect for Java sources. Block comments do
// not nest and the grammar has no multi-line strings, markup literals,
// or doc code blocks.
func JavaDialect() Dialect {
	return Dialect{
		Name:    "java",
		Version: "17",
		Keywords: []string{
			"abstract", "assert", "boolean", "break", "byte", "case",
			"catch", "char", "class", "const", "continue", "default",
			"do", "double", "else", "enum", "extends", "false", "final",
			"finally", "float", "for", "goto", "if", "implements",
			"import", "instanceof", "int", "interface", "long",
			"native", "new", "null", "package", "private", "protected",
			"public", "return", "short", "static", "strictfp", "super",
			"switch", "synchronized", "this", "throw", "throws",
			"transient", "true", "try", "void", "volatile", "while",
		},
	}
}
