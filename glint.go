package glint

import (
	"fmt"
	"sync"

	"github.com/dshills/glint/config"
	"github.com/dshills/glint/scanner"
	"github.com/dshills/glint/syntax"
	"github.com/dshills/glint/tokenizer"
)

// New builds a tokenizer for the given config snapshot. The snapshot
// is validated and the full scanner table is constructed up front, so
// any wiring problem is reported here rather than during tokenization.
// A nil config means the default snapshot.
func New(cfg *config.Config) (*tokenizer.Tokenizer, error) {
	table, err := scanner.BuildTable(cfg)
	if err != nil {
		return nil, err
	}
	return tokenizer.New(table), nil
}

var (
	defaultOnce sync.Once
	defaultTok  *tokenizer.Tokenizer
)

func defaultTokenizer() *tokenizer.Tokenizer {
	defaultOnce.Do(func() {
		tok, err := New(config.Default())
		if err != nil {
			panic(fmt.Sprintf("glint: building default tokenizer: %v", err))
		}
		defaultTok = tok
	})
	return defaultTok
}

// Tokenize scans text with the default configuration and returns its
// tokens in document order. It never fails: the default pipeline has
// no failure mode once built, and malformed input degrades instead of
// erroring.
func Tokenize(text string) []syntax.Token {
	return TokenizeAt(text, 0)
}

// TokenizeAt is Tokenize with every returned offset shifted by base.
func TokenizeAt(text string, base int) []syntax.Token {
	tokens, err := defaultTokenizer().TokenizeAt(text, base)
	if err != nil {
		// The default pipeline uses the built-in partitioner, which
		// honors the partition contract, so Scan cannot reject it.
		panic(fmt.Sprintf("glint: %v", err))
	}
	return tokens
}
