package scanner

import (
	"fmt"
	"sort"

	"github.com/dshills/glint/config"
	"github.com/dshills/glint/lexer"
	"github.com/dshills/glint/partition"
	"github.com/dshills/glint/syntax"
)

// Table routes partitions to scanners. A table is immutable after
// construction and safe for concurrent use; reconfiguration means
// building a new table and swapping it in through a Holder.
type Table struct {
	scanners map[partition.Kind]Scanner
	cfg      *config.Config
}

// TableOption adjusts the scanner mapping before it is verified.
type TableOption func(map[partition.Kind]Scanner)

// WithScanner registers a scanner for a kind, overriding the default.
// Registering nil removes the entry, which makes BuildTable fail for
// built-in kinds.
func WithScanner(kind partition.Kind, s Scanner) TableOption {
	return func(m map[partition.Kind]Scanner) {
		if s == nil {
			delete(m, kind)
			return
		}
		m[kind] = s
	}
}

// BuildTable constructs the dispatch table for a config snapshot. A
// nil cfg uses the defaults. Construction fails when the config does
// not validate or when any built-in partition kind would be left
// without a scanner.
func BuildTable(cfg *config.Config, opts ...TableOption) (*Table, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scanner table: %w", err)
	}

	scanners := defaultScanners(cfg)
	for _, opt := range opts {
		opt(scanners)
	}

	for _, kind := range partition.Kinds() {
		if scanners[kind] == nil {
			return nil, fmt.Errorf("%w: no scanner for kind %q", ErrIncompleteTable, kind)
		}
	}

	return &Table{scanners: scanners, cfg: cfg}, nil
}

// defaultScanners builds the standard kind-to-scanner mapping.
// Multi-line strings take a single-token scanner because their
// grammar processes no escapes.
func defaultScanners(cfg *config.Config) map[partition.Kind]Scanner {
	lex := lexer.NewScanner(cfg.Dialect.Keywords)
	tags := cfg.Conventions.TaskTags

	return map[partition.Kind]Scanner{
		partition.KindCode:              NewCode(lex),
		partition.KindCommentLine:       NewComment(syntax.CommentLine, tags),
		partition.KindCommentBlock:      NewComment(syntax.CommentBlock, tags),
		partition.KindDocComment:        NewDoc(tags),
		partition.KindDocCodeBlock:      NewSingle(syntax.DocCodeBlock),
		partition.KindString:            NewLiteral(syntax.String),
		partition.KindMultilineString:   NewSingle(syntax.String),
		partition.KindCharacter:         NewLiteral(syntax.Character),
		partition.KindMarkupTag:         NewTag(cfg.Prefs.MarkupAttributeDetail),
		partition.KindMarkupComment:     NewSingle(syntax.MarkupComment),
		partition.KindMarkupCDATA:       NewSingle(syntax.MarkupCDATA),
		partition.KindMarkupText:        NewSingle(syntax.MarkupText),
		partition.KindMarkupInstruction: NewSingle(syntax.MarkupInstruction),
	}
}

// ScannerFor returns the scanner registered for kind.
func (t *Table) ScannerFor(kind partition.Kind) (Scanner, error) {
	s, ok := t.scanners[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return s, nil
}

// Scan dispatches one partition to its scanner. It fails for a kind
// with no scanner or a partition outside the document, both of which
// are caller contract violations rather than input problems.
func (t *Table) Scan(src string, p partition.Partition) ([]syntax.Token, error) {
	if err := p.Validate(len(src)); err != nil {
		return nil, err
	}
	s, err := t.ScannerFor(p.Kind)
	if err != nil {
		return nil, err
	}
	return s.Scan(src, p), nil
}

// Kinds returns the kinds this table can dispatch, sorted by name.
func (t *Table) Kinds() []partition.Kind {
	kinds := make([]partition.Kind, 0, len(t.scanners))
	for kind := range t.scanners {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Config returns the snapshot the table was built from.
func (t *Table) Config() *config.Config {
	return t.cfg
}
