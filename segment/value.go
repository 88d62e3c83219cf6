package segment

import (
	"fmt"
	"strconv"
)

// Value is a ternary feature value.
//
// The three conventional states are Minus, Unspecified and Plus. Value
// is deliberately not range-checked: Set and Update store any int8
// verbatim, and the arithmetic in the distance metrics is defined for
// arbitrary stored values. Only ParseSymbol and the notation scanner
// are restricted to the three canonical symbols.
type Value int8

const (
	// Minus marks a feature as absent ("-").
	Minus Value = -1
	// Unspecified marks a feature as neutral/unmarked ("0"), the
	// default for every schema name not set at construction.
	Unspecified Value = 0
	// Plus marks a feature as present ("+").
	Plus Value = 1
)

// Fixed translation tables between the numeric values and their display
// symbols. All segments share one symbol set; the tables are never
// mutated.
var (
	valueSymbols = map[Value]string{Minus: "-", Unspecified: "0", Plus: "+"}
	symbolValues = map[rune]Value{'-': Minus, '0': Unspecified, '+': Plus}
)

// String returns the display symbol for v: "-", "0" or "+".
// Values outside the ternary range (reachable only through unchecked
// mutation) render as their decimal form.
func (v Value) String() string {
	if s, ok := valueSymbols[v]; ok {
		return s
	}
	return strconv.Itoa(int(v))
}

// ParseSymbol decodes a single feature symbol: '+' is Plus, '0' is
// Unspecified, '-' is Minus. Any other rune fails with
// ErrInvalidSymbol.
func ParseSymbol(r rune) (Value, error) {
	v, ok := symbolValues[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, r)
	}
	return v, nil
}

// Feature is a single (name, value) pair of a segment.
type Feature struct {
	Name  string
	Value Value
}

// String returns the symbol+name rendering, e.g. "+voice".
func (f Feature) String() string {
	return f.Value.String() + f.Name
}
