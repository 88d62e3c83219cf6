package distance

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/armendk/panphon/segment"
)

// Weights assigns one non-negative factor per schema feature, aligned
// to schema order so the weighted metrics can index positionally.
type Weights struct {
	schema  *segment.Schema
	factors []float64
}

// UniformWeights returns weights of 1.0 for every feature of schema.
func UniformWeights(schema *segment.Schema) *Weights {
	factors := make([]float64, schema.Len())
	for i := range factors {
		factors[i] = 1
	}
	return &Weights{schema: schema, factors: factors}
}

// NewWeights builds weights over schema from a partial name-to-factor
// mapping. Features absent from the mapping default to 1.0. A negative
// factor or a name outside the schema fails with ErrInvalidWeight.
func NewWeights(schema *segment.Schema, factors map[string]float64) (*Weights, error) {
	w := UniformWeights(schema)
	for name, f := range factors {
		i, ok := schema.Index(name)
		if !ok {
			return nil, fmt.Errorf("%w: feature %q not in schema", ErrInvalidWeight, name)
		}
		if f < 0 {
			return nil, fmt.Errorf("%w: feature %q has negative weight %v", ErrInvalidWeight, name, f)
		}
		w.factors[i] = f
	}
	return w, nil
}

// weightsFile is the YAML document layout accepted by LoadWeights.
type weightsFile struct {
	Features map[string]float64 `yaml:"features"`
}

// LoadWeights reads a YAML weights file and builds weights over schema.
// The file holds a single mapping under the "features" key:
//
//	features:
//	  voi: 2.0
//	  nas: 0.5
//
// Features not listed default to 1.0.
func LoadWeights(path string, schema *segment.Schema) (*Weights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read weights file: %w", err)
	}

	var f weightsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse weights file %s: %w", path, err)
	}

	w, err := NewWeights(schema, f.Features)
	if err != nil {
		return nil, fmt.Errorf("weights file %s: %w", path, err)
	}
	return w, nil
}

// Factor returns the weight for the feature at schema position i.
func (w *Weights) Factor(i int) float64 {
	return w.factors[i]
}

// Schema returns the schema the weights are aligned to.
func (w *Weights) Schema() *segment.Schema {
	return w.schema
}

// WeightedL1 returns a segment metric computing the weighted Manhattan
// distance: the sum of w_i * |a_i - b_i| over schema order. Like the
// unweighted metrics it stops at the shorter vector.
func WeightedL1(w *Weights) SegmentFunc {
	return func(a, b *segment.Segment) float64 {
		av, bv := a.Numeric(), b.Numeric()
		n := min(len(av), len(bv), len(w.factors))
		var sum float64
		for i := 0; i < n; i++ {
			d := float64(av[i]) - float64(bv[i])
			if d < 0 {
				d = -d
			}
			sum += w.factors[i] * d
		}
		return sum
	}
}
