package segment

import "errors"

var (
	// ErrUnknownFeature is returned by Set when the feature name is not
	// part of the segment's schema.
	ErrUnknownFeature = errors.New("unknown feature name")

	// ErrFeatureMissing is returned by Get when no value is stored for
	// the feature. Schema names are default-filled at construction, so
	// this is only reachable for names outside the schema that were
	// never merged in.
	ErrFeatureMissing = errors.New("no value for feature")

	// ErrInvalidSymbol is returned by ParseSymbol for any rune outside
	// the ternary symbol set {+, 0, -}.
	ErrInvalidSymbol = errors.New("invalid feature symbol")
)
