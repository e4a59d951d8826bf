// Package scanner turns typed document regions into classified
// tokens. Each partition kind has a scanner specialized for it; the
// Table routes a partition to its scanner and is the single dispatch
// point for the tokenization pipeline.
//
// Scanners are total over their region: every byte of a scanned
// partition is covered by exactly one token, malformed content
// degrades to the region's base class, and no scan ever fails.
// Construction is the opposite: BuildTable rejects a configuration
// that would leave any partition kind without a scanner, so a wiring
// mistake surfaces before the first scan rather than mid-document.
package scanner

import (
	"github.com/dshills/glint/partition"
	"github.com/dshills/glint/syntax"
)

// Scanner produces the tokens for one partition. The returned tokens
// are ordered, non-overlapping, and cover [p.Offset, p.End()) exactly.
// Offsets are absolute document offsets. A zero-length partition
// yields no tokens.
//
// Scan never fails on malformed content; text that matches no finer
// structure is reported with the scanner's base class. The partition
// must lie within src, which the Table's Scan method checks.
type Scanner interface {
	Scan(src string, p partition.Partition) []syntax.Token
}

// isWordByte reports whether c can be part of a task tag or
// annotation word.
func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// isSpaceByte reports whether c is horizontal or vertical whitespace.
func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// isHexByte reports whether c is a hexadecimal digit.
func isHexByte(c byte) bool {
	return (c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'f') ||
		(c >= 'A' && c <= 'F')
}
