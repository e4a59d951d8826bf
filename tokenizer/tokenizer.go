// Package tokenizer assembles the full highlighting pipeline: a
// partitioner splits the document into typed regions, the scanner
// table dispatches each region, and the results concatenate into one
// ordered, gapless token stream.
//
// A Tokenizer is stateless between calls and safe for concurrent use.
// One built from a Holder follows table swaps: calls in flight finish
// against the table they started with, later calls see the new one.
package tokenizer

import (
	"fmt"

	"github.com/dshills/glint/partition"
	"github.com/dshills/glint/scanner"
	"github.com/dshills/glint/syntax"
)

// tableSource yields the table a call should scan with.
type tableSource interface {
	Current() *scanner.Table
}

// fixedTable pins a tokenizer to one table.
type fixedTable struct {
	table *scanner.Table
}

func (f fixedTable) Current() *scanner.Table {
	return f.table
}

// Tokenizer turns whole documents or snippets into classified tokens.
type Tokenizer struct {
	source tableSource
	parts  partition.Partitioner
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithPartitioner replaces the built-in partitioner. The partitioner
// must honor the partition contract: ordered, non-overlapping, gapless
// regions inside the document.
func WithPartitioner(p partition.Partitioner) Option {
	return func(t *Tokenizer) {
		t.parts = p
	}
}

// New creates a tokenizer bound to one table. Without WithPartitioner
// the default partitioner is used, configured from the table's
// dialect.
func New(table *scanner.Table, opts ...Option) *Tokenizer {
	t := &Tokenizer{source: fixedTable{table: table}}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// FromHolder creates a tokenizer that follows the holder's current
// table, picking up config swaps between calls.
func FromHolder(h *scanner.Holder, opts ...Option) *Tokenizer {
	t := &Tokenizer{source: h}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Table returns the table the next call would scan with.
func (t *Tokenizer) Table() *scanner.Table {
	return t.source.Current()
}

// Tokenize scans text and returns its tokens in document order. The
// token stream covers every byte of text exactly once; empty text
// yields no tokens. Malformed input never fails: unterminated or
// otherwise broken constructs degrade to coarser classes. An error
// reports a broken custom partitioner, never bad input.
func (t *Tokenizer) Tokenize(text string) ([]syntax.Token, error) {
	return t.TokenizeAt(text, 0)
}

// TokenizeAt is Tokenize with every returned offset shifted by base,
// for snippets that live at a known position inside a larger
// document. The shift is applied after scanning, so the result equals
// Tokenize(text) translated by base.
func (t *Tokenizer) TokenizeAt(text string, base int) ([]syntax.Token, error) {
	table := t.source.Current()
	parts := t.parts
	if parts == nil {
		parts = partition.New(table.Config().Dialect.PartitionOptions())
	}

	regions := parts.Partition(text)
	out := make([]syntax.Token, 0, len(regions)*4)
	for _, p := range regions {
		tokens, err := table.Scan(text, p)
		if err != nil {
			return nil, fmt.Errorf("tokenize: %w", err)
		}
		out = append(out, tokens...)
	}
	return syntax.Translate(out, base), nil
}
