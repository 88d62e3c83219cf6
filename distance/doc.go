// Package distance provides corpus-level distance calculations on top
// of the segment metrics: named metric selection, per-feature weighted
// distances, feature-aware edit distance between segment sequences, and
// parallel pairwise distance matrices.
//
// The package is table-free: it operates on segments the caller has
// already obtained, so it composes with any schema source.
//
// # Metric Selection
//
//	fn, err := distance.Provider(distance.NormL1)
//	d := fn(a, b)
//
// # Weighted Distance
//
//	w, _ := distance.NewWeights(schema, map[string]float64{"voi": 2})
//	fn := distance.WeightedL1(w)
//
// # Edit Distance
//
// EditDistance aligns two segment sequences with dynamic programming,
// scoring substitutions with a configurable segment metric instead of
// the unit cost of plain Levenshtein.
package distance
