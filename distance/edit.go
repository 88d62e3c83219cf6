package distance

import "github.com/armendk/panphon/segment"

type editOptions struct {
	substitute SegmentFunc
	indel      float64
}

// EditOption configures EditDistance.
type EditOption func(*editOptions)

// WithSubstitutionFunc sets the metric scoring a substitution between
// two aligned segments. The default is the normalized L1 distance, so a
// substitution never costs more than a full insert-plus-delete.
func WithSubstitutionFunc(fn SegmentFunc) EditOption {
	return func(o *editOptions) {
		o.substitute = fn
	}
}

// WithIndelCost sets the constant cost of inserting or deleting one
// segment. The default is 1.0.
func WithIndelCost(cost float64) EditOption {
	return func(o *editOptions) {
		o.indel = cost
	}
}

// EditWordFunc binds EditDistance options into a WordFunc, so a fixed
// configuration can be handed to Matrix.
func EditWordFunc(optFns ...EditOption) WordFunc {
	return func(a, b []*segment.Segment) float64 {
		return EditDistance(a, b, optFns...)
	}
}

// EditDistance computes the minimum-cost alignment between two segment
// sequences: the feature-aware generalization of Levenshtein distance,
// with substitutions scored by a segment metric instead of a unit cost.
//
// It runs space-optimized dynamic programming over two rows, so memory
// is O(min(len(a), len(b))) regardless of sequence length.
func EditDistance(a, b []*segment.Segment, optFns ...EditOption) float64 {
	opts := editOptions{indel: 1}
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}
	if opts.substitute == nil {
		opts.substitute = func(x, y *segment.Segment) float64 {
			return x.NormDistance(y)
		}
	}

	if len(a) == 0 {
		return float64(len(b)) * opts.indel
	}
	if len(b) == 0 {
		return float64(len(a)) * opts.indel
	}

	// Keep a as the shorter sequence so the rows stay small.
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]float64, len(a)+1)
	curr := make([]float64, len(a)+1)
	for i := range prev {
		prev[i] = float64(i) * opts.indel
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = float64(j) * opts.indel
		for i := 1; i <= len(a); i++ {
			sub := prev[i-1] + opts.substitute(a[i-1], b[j-1])
			del := prev[i] + opts.indel
			ins := curr[i-1] + opts.indel
			curr[i] = min(sub, del, ins)
		}
		prev, curr = curr, prev
	}

	return prev[len(a)]
}
