package segment

import (
	"iter"
	"slices"
)

// Schema is the ordered list of feature names shared by all comparable
// segments. It defines both the set of valid keys for the validated
// setter and the canonical iteration and display order.
//
// A Schema is immutable after construction. Many segments hold the same
// *Schema handle; constructing one per segment works but defeats cheap
// sharing.
type Schema struct {
	names []string
	index map[string]int
}

// NewSchema builds a Schema from an ordered list of feature names.
// The input slice is copied; later mutation of it does not affect the
// schema.
func NewSchema(names []string) *Schema {
	s := &Schema{
		names: slices.Clone(names),
		index: make(map[string]int, len(names)),
	}
	for i, name := range s.names {
		if _, ok := s.index[name]; !ok {
			s.index[name] = i
		}
	}
	return s
}

// Len returns the number of features in the schema.
func (s *Schema) Len() int {
	return len(s.names)
}

// Name returns the feature name at position i in schema order.
func (s *Schema) Name(i int) string {
	return s.names[i]
}

// Index returns the schema position of name and whether it is part of
// the schema. For a name that occurs more than once the first position
// is reported.
func (s *Schema) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Contains reports whether name is part of the schema.
func (s *Schema) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Names returns a copy of the feature names in schema order.
func (s *Schema) Names() []string {
	return slices.Clone(s.names)
}

// All returns an iterator over the feature names in schema order.
func (s *Schema) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range s.names {
			if !yield(name) {
				return
			}
		}
	}
}
