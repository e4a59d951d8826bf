package scanner

import "errors"

// Errors returned by table construction and dispatch.
var (
	// ErrIncompleteTable indicates a partition kind has no scanner.
	// BuildTable returns it so wiring gaps surface at construction
	// time, never during a scan.
	ErrIncompleteTable = errors.New("scanner table is incomplete")

	// ErrUnknownKind indicates a dispatch for a partition kind the
	// table has no entry for.
	ErrUnknownKind = errors.New("unknown partition kind")
)
