package scanner

import (
	"sync/atomic"

	"github.com/dshills/glint/config"
)

// Holder publishes the current table to concurrent readers and swaps
// in replacements atomically. Scans running against the old table
// finish against the old table; new scans pick up the new one. A
// failed rebuild leaves the current table in place, so readers never
// observe a partially built or missing table.
type Holder struct {
	current atomic.Pointer[Table]
	opts    []TableOption
}

// NewHolder creates a holder around an initial table. The options are
// remembered and reapplied on every rebuild.
func NewHolder(t *Table, opts ...TableOption) *Holder {
	h := &Holder{opts: opts}
	h.current.Store(t)
	return h
}

// Current returns the table in effect.
func (h *Holder) Current() *Table {
	return h.current.Load()
}

// Swap replaces the current table and returns the previous one.
func (h *Holder) Swap(t *Table) *Table {
	return h.current.Swap(t)
}

// Rebuild constructs a table for cfg and swaps it in. On failure the
// current table stays in effect and the error is returned.
func (h *Holder) Rebuild(cfg *config.Config) error {
	t, err := BuildTable(cfg, h.opts...)
	if err != nil {
		return err
	}
	h.current.Store(t)
	return nil
}

// Subscribe wires the holder to a config notifier: every published
// snapshot triggers a rebuild. Rebuild errors go to onErr when it is
// non-nil; the current table stays in effect either way.
func (h *Holder) Subscribe(n *config.Notifier, onErr func(error)) *config.Subscription {
	return n.Subscribe(func(change config.Change) {
		if err := h.Rebuild(change.New); err != nil && onErr != nil {
			onErr(err)
		}
	})
}
