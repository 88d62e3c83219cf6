package segment

import (
	"fmt"
	"iter"
	"maps"
	"strings"
)

// Segment is a single phonological segment: one ternary Value per
// feature of its schema.
//
// The schema is a shared read-only handle; the value store is owned by
// the segment. Names outside the schema can enter the store through the
// notation scanner and Update, but they are invisible to Numeric,
// Symbols, Items, All, String and the distance metrics, which all
// project strictly through the schema.
type Segment struct {
	schema *Schema
	data   map[string]Value
}

type options struct {
	features map[string]Value
	notation string
}

// Option configures segment construction.
type Option func(*options)

// WithFeatures seeds the segment from a partial name-to-value mapping.
// Names not present in the schema are ignored at construction.
func WithFeatures(features map[string]Value) Option {
	return func(o *options) {
		o.features = features
	}
}

// WithNotation seeds the segment from a compact notation string such as
// "+voice-nasal". The notation is applied after WithFeatures, so its
// tokens win on overlapping names regardless of option order. Token
// names outside the schema are stored verbatim.
func WithNotation(notation string) Option {
	return func(o *options) {
		o.notation = notation
	}
}

// New constructs a segment over schema. Every schema name starts at
// Unspecified, then WithFeatures values are applied, then WithNotation
// tokens. Construction never fails; malformed notation input is
// skipped by the scanner.
func New(schema *Schema, optFns ...Option) *Segment {
	var opts options
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}

	data := make(map[string]Value, schema.Len())
	for _, name := range schema.names {
		if v, ok := opts.features[name]; ok {
			data[name] = v
		} else {
			data[name] = Unspecified
		}
	}
	for _, ft := range ParseNotation(opts.notation) {
		data[ft.Name] = ft.Value
	}

	return &Segment{schema: schema, data: data}
}

// Schema returns the shared schema handle.
func (s *Segment) Schema() *Schema {
	return s.schema
}

// Get returns the stored value for name. It fails with
// ErrFeatureMissing when no value was ever stored; schema names are
// default-filled at construction, so only names outside the schema can
// miss.
func (s *Segment) Get(name string) (Value, error) {
	v, ok := s.data[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrFeatureMissing, name)
	}
	return v, nil
}

// Set stores v under name. It is the sole validated mutation path:
// names outside the schema fail with ErrUnknownFeature.
func (s *Segment) Set(name string, v Value) error {
	if !s.schema.Contains(name) {
		return fmt.Errorf("%w: %q", ErrUnknownFeature, name)
	}
	s.data[name] = v
	return nil
}

// Update merges all pairs of features into the segment verbatim,
// without the schema check Set applies. Names outside the schema are
// stored but remain invisible to the schema-ordered projections.
func (s *Segment) Update(features map[string]Value) {
	for name, v := range features {
		s.data[name] = v
	}
}

// Items returns the (name, value) pairs in schema order.
func (s *Segment) Items() []Feature {
	items := make([]Feature, s.schema.Len())
	for i, name := range s.schema.names {
		items[i] = Feature{Name: name, Value: s.data[name]}
	}
	return items
}

// All returns a lazy single-pass iterator over the (name, value) pairs
// in schema order.
func (s *Segment) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, name := range s.schema.names {
			if !yield(name, s.data[name]) {
				return
			}
		}
	}
}

// Numeric returns the values in schema order, the canonical vector
// representation the distance metrics operate on.
func (s *Segment) Numeric() []Value {
	vec := make([]Value, s.schema.Len())
	for i, name := range s.schema.names {
		vec[i] = s.data[name]
	}
	return vec
}

// Symbols returns a lazy iterator over the display symbols of the
// values in schema order. Callers needing a slice materialize it
// themselves, e.g. with slices.Collect.
func (s *Segment) Symbols() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range s.schema.names {
			if !yield(s.data[name].String()) {
				return
			}
		}
	}
}

// Match reports whether every supplied pair is identically specified in
// this segment, i.e. whether the segment's specification is a superset
// of features. A queried name with no stored value fails the match.
func (s *Segment) Match(features map[string]Value) bool {
	for name, v := range features {
		stored, ok := s.data[name]
		if !ok || stored != v {
			return false
		}
	}
	return true
}

// Intersection returns the pairs stored identically in both segments.
// Pairs present in both with different values are dropped entirely,
// never merged. All stored pairs participate, including names outside
// either schema.
func (s *Segment) Intersection(other *Segment) map[string]Value {
	shared := make(map[string]Value)
	for name, v := range s.data {
		if ov, ok := other.data[name]; ok && ov == v {
			shared[name] = v
		}
	}
	return shared
}

// Distance returns the L1 (Manhattan) distance: the sum of absolute
// differences between corresponding values in schema order. When the
// two vectors differ in length the sum stops at the shorter one.
func (s *Segment) Distance(other *Segment) int {
	a, b := s.Numeric(), other.Numeric()
	sum := 0
	for i := range min(len(a), len(b)) {
		d := int(a[i]) - int(b[i])
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}

// NormDistance returns Distance divided by the length of the
// receiver's schema. For an empty schema the result is NaN.
func (s *Segment) NormDistance(other *Segment) float64 {
	return float64(s.Distance(other)) / float64(s.schema.Len())
}

// HammingDistance returns the number of positions at which the two
// vectors differ, ignoring magnitude. Like Distance it stops at the
// shorter vector.
func (s *Segment) HammingDistance(other *Segment) int {
	a, b := s.Numeric(), other.Numeric()
	count := 0
	for i := range min(len(a), len(b)) {
		if a[i] != b[i] {
			count++
		}
	}
	return count
}

// NormHammingDistance returns HammingDistance divided by the length of
// the receiver's schema. For an empty schema the result is NaN.
func (s *Segment) NormHammingDistance(other *Segment) float64 {
	return float64(s.HammingDistance(other)) / float64(s.schema.Len())
}

// Clone returns a segment sharing the schema handle with an independent
// copy of the value store.
func (s *Segment) Clone() *Segment {
	return &Segment{schema: s.schema, data: maps.Clone(s.data)}
}

// String renders the segment as bracketed symbol+name pairs in schema
// order, e.g. "[+voice, -nasal, 0round]".
func (s *Segment) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, name := range s.schema.names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s.data[name].String())
		b.WriteString(name)
	}
	b.WriteByte(']')
	return b.String()
}
