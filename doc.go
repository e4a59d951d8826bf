// Package glint tokenizes source text into classified spans for
// syntax-aware hosts such as editors, diff viewers, and doc tooling.
//
// glint is responsible for:
//   - Splitting documents into typed partitions (code, comments,
//     literals, embedded markup)
//   - Dispatching each partition to a scanner specialized for its kind
//   - Classifying every byte into an ordered, gapless token stream
//   - Rebuilding and swapping its configuration atomically while
//     tokenization is in flight
//
// Architecture:
//
// The pipeline is assembled from small packages, each usable on its
// own:
//
//	┌─────────────────────────────────────────┐
//	│          Tokenizer (Facade)             │
//	├─────────────────────────────────────────┤
//	│ Partitioner │ Scanner Table │ Scanners  │
//	├─────────────────────────────────────────┤
//	│  Config Snapshot (dialect, prefs, ...)  │
//	└─────────────────────────────────────────┘
//
// Tokens are plain values of byte offset, byte length, and syntax
// class. The stream for a document covers it exactly: ordered,
// non-overlapping, no gaps. Malformed input degrades to coarser
// classes and never produces an error; wiring mistakes surface once,
// at construction.
//
// Usage:
//
//	tokens := glint.Tokenize(`val x = 1 // TODO check`)
//
// or, with a custom snapshot:
//
//	cfg := config.New(config.WithDialect(config.ScalaDialect()))
//	tok, err := glint.New(cfg)
//	if err != nil {
//		return err
//	}
//	tokens, err := tok.Tokenize(src)
package glint
