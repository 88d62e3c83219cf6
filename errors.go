package panphon

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedTable is returned when a feature table file cannot be
	// parsed: wrong arity, an invalid feature value, a duplicate
	// symbol, or an empty schema.
	ErrMalformedTable = errors.New("malformed feature table")

	// ErrUnknownSymbol is returned by strict segmentation when a word
	// contains input no inventory symbol matches.
	ErrUnknownSymbol = errors.New("unknown symbol")
)

// RowError reports a malformed feature table row.
//
// The underlying cause can be accessed via errors.Unwrap; it always
// matches ErrMalformedTable through errors.Is.
type RowError struct {
	Line   int
	Reason string
	cause  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("table row %d: %s", e.Line, e.Reason)
}

func (e *RowError) Unwrap() error { return e.cause }

func newRowError(line int, format string, args ...any) *RowError {
	return &RowError{
		Line:   line,
		Reason: fmt.Sprintf(format, args...),
		cause:  ErrMalformedTable,
	}
}

// UnknownSymbolError reports input that strict segmentation could not
// match against the inventory. Offset is the byte offset of the
// offending rune within the (normalized) input word.
//
// It matches ErrUnknownSymbol through errors.Is.
type UnknownSymbolError struct {
	Symbol string
	Offset int
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %q at offset %d", e.Symbol, e.Offset)
}

func (e *UnknownSymbolError) Unwrap() error { return ErrUnknownSymbol }
