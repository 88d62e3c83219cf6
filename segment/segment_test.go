package segment

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSchema() *Schema {
	return NewSchema([]string{"voice", "nasal", "round"})
}

func TestNew_Defaults(t *testing.T) {
	schema := newTestSchema()
	seg := New(schema)

	for _, name := range schema.Names() {
		v, err := seg.Get(name)
		require.NoError(t, err)
		assert.Equal(t, Unspecified, v, "unset schema names default to 0")
	}
}

func TestNew_WithFeatures(t *testing.T) {
	schema := newTestSchema()
	seg := New(schema, WithFeatures(map[string]Value{"voice": Plus}))

	assert.Equal(t, []Value{Plus, Unspecified, Unspecified}, seg.Numeric())
}

func TestNew_FeaturesOutsideSchemaIgnored(t *testing.T) {
	schema := newTestSchema()
	seg := New(schema, WithFeatures(map[string]Value{"tone": Plus}))

	_, err := seg.Get("tone")
	assert.ErrorIs(t, err, ErrFeatureMissing, "feature-map names outside the schema are dropped")
}

func TestNew_NotationOverridesFeatures(t *testing.T) {
	schema := newTestSchema()

	tests := []struct {
		name string
		opts []Option
	}{
		{"FeaturesFirst", []Option{
			WithFeatures(map[string]Value{"voice": Unspecified}),
			WithNotation("+voice"),
		}},
		{"NotationFirst", []Option{
			WithNotation("+voice"),
			WithFeatures(map[string]Value{"voice": Unspecified}),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg := New(schema, tt.opts...)
			v, err := seg.Get("voice")
			require.NoError(t, err)
			assert.Equal(t, Plus, v, "notation wins regardless of option order")
		})
	}
}

func TestNew_NotationLaterTokensWin(t *testing.T) {
	schema := newTestSchema()
	seg := New(schema, WithNotation("+voice-voice"))

	v, err := seg.Get("voice")
	require.NoError(t, err)
	assert.Equal(t, Minus, v)
}

func TestNew_NotationNamesOutsideSchemaStored(t *testing.T) {
	schema := newTestSchema()
	seg := New(schema, WithNotation("+voice+tone"))

	// The scanner does not validate against the schema; the value is
	// stored and readable...
	v, err := seg.Get("tone")
	require.NoError(t, err)
	assert.Equal(t, Plus, v)

	// ...but invisible to every schema-ordered projection.
	assert.Equal(t, []Value{Plus, Unspecified, Unspecified}, seg.Numeric())
	assert.Len(t, seg.Items(), 3)
	assert.NotContains(t, seg.String(), "tone")
}

func TestSegment_GetSet(t *testing.T) {
	schema := newTestSchema()
	seg := New(schema)

	require.NoError(t, seg.Set("nasal", Plus))
	v, err := seg.Get("nasal")
	require.NoError(t, err)
	assert.Equal(t, Plus, v, "Set is immediately visible via Get")

	err = seg.Set("tone", Plus)
	assert.ErrorIs(t, err, ErrUnknownFeature, "Set validates against the schema")

	_, err = seg.Get("tone")
	assert.ErrorIs(t, err, ErrFeatureMissing)
}

func TestSegment_SetStoresVerbatim(t *testing.T) {
	schema := newTestSchema()
	seg := New(schema)

	require.NoError(t, seg.Set("voice", Value(7)))
	v, err := seg.Get("voice")
	require.NoError(t, err)
	assert.Equal(t, Value(7), v, "values are not range-checked")
}

func TestSegment_Update(t *testing.T) {
	schema := newTestSchema()
	seg := New(schema)

	// Update bypasses the schema check that Set applies.
	seg.Update(map[string]Value{"voice": Plus, "tone": Minus})

	v, err := seg.Get("voice")
	require.NoError(t, err)
	assert.Equal(t, Plus, v)

	v, err = seg.Get("tone")
	require.NoError(t, err)
	assert.Equal(t, Minus, v)

	assert.Equal(t, []Value{Plus, Unspecified, Unspecified}, seg.Numeric(),
		"extra keys stay invisible to projection")
}

func TestSegment_Items(t *testing.T) {
	schema := newTestSchema()
	seg := New(schema, WithNotation("+voice-nasal"))

	want := []Feature{
		{"voice", Plus},
		{"nasal", Minus},
		{"round", Unspecified},
	}
	assert.Equal(t, want, seg.Items())
}

func TestSegment_All(t *testing.T) {
	schema := newTestSchema()
	seg := New(schema, WithNotation("+voice"))

	var items []Feature
	for name, v := range seg.All() {
		items = append(items, Feature{Name: name, Value: v})
	}
	assert.Equal(t, seg.Items(), items, "All yields the same pairs as Items")

	// Early termination.
	count := 0
	for range seg.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestSegment_SymbolsRoundTrip(t *testing.T) {
	schema := newTestSchema()
	seg := New(schema, WithNotation("+voice-nasal0round"))

	symbols := slices.Collect(seg.Symbols())
	assert.Equal(t, []string{"+", "-", "0"}, symbols)

	// Decoding the symbols reproduces Numeric exactly.
	decoded := make([]Value, len(symbols))
	for i, s := range symbols {
		v, err := ParseSymbol(rune(s[0]))
		require.NoError(t, err)
		decoded[i] = v
	}
	assert.Equal(t, seg.Numeric(), decoded)
}

func TestSegment_Match(t *testing.T) {
	schema := newTestSchema()
	seg := New(schema, WithNotation("+voice-nasal0round"))

	tests := []struct {
		name     string
		features map[string]Value
		want     bool
	}{
		{"EmptySpecification", map[string]Value{}, true},
		{"SubsetMatches", map[string]Value{"voice": Plus}, true},
		{"FullMatch", map[string]Value{"voice": Plus, "nasal": Minus, "round": Unspecified}, true},
		{"ValueMismatch", map[string]Value{"voice": Minus}, false},
		{"UnstoredName", map[string]Value{"tone": Plus}, false},
		{"UnstoredNameEvenForZero", map[string]Value{"tone": Unspecified}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, seg.Match(tt.features))
		})
	}
}

func TestSegment_Intersection(t *testing.T) {
	schema := newTestSchema()
	a := New(schema, WithFeatures(map[string]Value{"voice": Plus, "nasal": Minus}))
	b := New(schema, WithFeatures(map[string]Value{"voice": Plus, "nasal": Plus}))

	got := a.Intersection(b)
	want := map[string]Value{"voice": Plus, "round": Unspecified}
	assert.Equal(t, want, got, "differing pairs are dropped, not reconciled")
}

func TestSegment_IntersectionIncludesNonSchemaKeys(t *testing.T) {
	schema := newTestSchema()
	a := New(schema)
	b := New(schema)
	a.Update(map[string]Value{"tone": Plus})
	b.Update(map[string]Value{"tone": Plus})

	got := a.Intersection(b)
	assert.Equal(t, Plus, got["tone"], "all stored pairs participate in the intersection")
}

func TestSegment_Distances(t *testing.T) {
	schema := newTestSchema()
	a := New(schema, WithNotation("+voice-nasal0round"))
	b := New(schema, WithNotation("-voice-nasal0round"))

	assert.Equal(t, []Value{Plus, Minus, Unspecified}, a.Numeric())
	assert.Equal(t, []Value{Minus, Minus, Unspecified}, b.Numeric())

	assert.Equal(t, 2, a.Distance(b))
	assert.InDelta(t, 2.0/3.0, a.NormDistance(b), 1e-12)
	assert.Equal(t, 1, a.HammingDistance(b))
	assert.InDelta(t, 1.0/3.0, a.NormHammingDistance(b), 1e-12)

	assert.Equal(t, "[+voice, -nasal, 0round]", a.String())
}

func TestSegment_DistanceToSelfIsZero(t *testing.T) {
	schema := newTestSchema()
	seg := New(schema, WithNotation("+voice+nasal-round"))

	assert.Zero(t, seg.Distance(seg))
	assert.Zero(t, seg.HammingDistance(seg))
	assert.Zero(t, seg.NormDistance(seg))
	assert.Zero(t, seg.NormHammingDistance(seg))
}

func TestSegment_NormDistanceIsDistanceOverLen(t *testing.T) {
	schema := newTestSchema()
	a := New(schema, WithNotation("+voice+nasal+round"))
	b := New(schema, WithNotation("-voice-nasal-round"))

	assert.Equal(t, float64(a.Distance(b))/float64(schema.Len()), a.NormDistance(b))
	assert.Equal(t, float64(a.HammingDistance(b))/float64(schema.Len()), a.NormHammingDistance(b))
}

func TestSegment_DistanceTruncatesToShorterVector(t *testing.T) {
	long := New(NewSchema([]string{"voice", "nasal", "round"}), WithNotation("+voice+nasal+round"))
	short := New(NewSchema([]string{"voice"}), WithNotation("-voice"))

	// Trailing components of the longer vector are silently ignored.
	assert.Equal(t, 2, long.Distance(short))
	assert.Equal(t, 2, short.Distance(long))
	assert.Equal(t, 1, long.HammingDistance(short))

	// Normalization still divides by the receiver's own schema length.
	assert.InDelta(t, 2.0/3.0, long.NormDistance(short), 1e-12)
	assert.InDelta(t, 2.0/1.0, short.NormDistance(long), 1e-12)
}

func TestSegment_NormDistanceEmptySchemaIsNaN(t *testing.T) {
	empty := New(NewSchema(nil))

	assert.True(t, math.IsNaN(empty.NormDistance(empty)))
	assert.True(t, math.IsNaN(empty.NormHammingDistance(empty)))
}

func TestSegment_Clone(t *testing.T) {
	schema := newTestSchema()
	seg := New(schema, WithNotation("+voice"))

	clone := seg.Clone()
	assert.Same(t, schema, clone.Schema(), "clone shares the schema handle")

	require.NoError(t, clone.Set("voice", Minus))
	v, err := seg.Get("voice")
	require.NoError(t, err)
	assert.Equal(t, Plus, v, "clone data is independent")
}

func TestSegment_String(t *testing.T) {
	tests := []struct {
		name     string
		schema   *Schema
		notation string
		want     string
	}{
		{"Worked", newTestSchema(), "+voice-nasal0round", "[+voice, -nasal, 0round]"},
		{"AllDefaults", newTestSchema(), "", "[0voice, 0nasal, 0round]"},
		{"EmptySchema", NewSchema(nil), "", "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg := New(tt.schema, WithNotation(tt.notation))
			assert.Equal(t, tt.want, seg.String())
		})
	}
}

func BenchmarkSegment_Distance(b *testing.B) {
	names := make([]string, 24)
	for i := range names {
		names[i] = string(rune('a' + i))
	}
	schema := NewSchema(names)
	x := New(schema, WithFeatures(map[string]Value{"a": Plus, "b": Minus}))
	y := New(schema, WithFeatures(map[string]Value{"a": Minus, "c": Plus}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Distance(y)
	}
}

func BenchmarkSegment_New(b *testing.B) {
	schema := newTestSchema()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		New(schema, WithNotation("+voice-nasal0round"))
	}
}
