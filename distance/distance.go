package distance

import (
	"fmt"

	"github.com/armendk/panphon/segment"
)

// SegmentFunc is a function type for segment-to-segment distance
// calculation.
type SegmentFunc func(a, b *segment.Segment) float64

// Metric represents the distance metric used for segment comparison.
type Metric int

const (
	// L1 is the Manhattan distance over the ternary vectors.
	L1 Metric = iota
	// NormL1 is L1 divided by the schema length.
	NormL1
	// Hamming counts differing positions.
	Hamming
	// NormHamming is Hamming divided by the schema length.
	NormHamming
)

func (m Metric) String() string {
	switch m {
	case L1:
		return "l1"
	case NormL1:
		return "norm-l1"
	case Hamming:
		return "hamming"
	case NormHamming:
		return "norm-hamming"
	default:
		return fmt.Sprintf("unknown(%d)", m)
	}
}

// ParseMetric parses a metric name as produced by Metric.String.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "l1":
		return L1, nil
	case "norm-l1":
		return NormL1, nil
	case "hamming":
		return Hamming, nil
	case "norm-hamming":
		return NormHamming, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, s)
	}
}

// Provider returns the distance function for the given metric.
func Provider(m Metric) (SegmentFunc, error) {
	switch m {
	case L1:
		return func(a, b *segment.Segment) float64 {
			return float64(a.Distance(b))
		}, nil
	case NormL1:
		return func(a, b *segment.Segment) float64 {
			return a.NormDistance(b)
		}, nil
	case Hamming:
		return func(a, b *segment.Segment) float64 {
			return float64(a.HammingDistance(b))
		}, nil
	case NormHamming:
		return func(a, b *segment.Segment) float64 {
			return a.NormHammingDistance(b)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMetric, m)
	}
}
