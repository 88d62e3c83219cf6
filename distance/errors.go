package distance

import "errors"

var (
	// ErrUnknownMetric is returned for a metric name or value outside
	// the supported set.
	ErrUnknownMetric = errors.New("unknown distance metric")

	// ErrInvalidWeight is returned when a weight is negative or names a
	// feature outside the schema.
	ErrInvalidWeight = errors.New("invalid feature weight")
)
