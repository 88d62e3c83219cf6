package panphon

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armendk/panphon/distance"
	"github.com/armendk/panphon/segment"
)

func newTestTable(t *testing.T, optFns ...Option) *FeatureTable {
	t.Helper()
	optFns = append([]Option{WithTableReader(strings.NewReader(miniTable))}, optFns...)
	ft, err := New(optFns...)
	require.NoError(t, err)
	return ft
}

func TestFeatureTable_Segment(t *testing.T) {
	ft := newTestTable(t)

	seg, ok := ft.Segment("b")
	require.True(t, ok)
	assert.Equal(t, "[+voi, -nas, +ant]", seg.String())

	_, ok = ft.Segment("x")
	assert.False(t, ok)
}

func TestFeatureTable_SegmentReturnsClone(t *testing.T) {
	ft := newTestTable(t)

	seg, ok := ft.Segment("p")
	require.True(t, ok)
	require.NoError(t, seg.Set("voi", segment.Plus))

	again, ok := ft.Segment("p")
	require.True(t, ok)
	v, err := again.Get("voi")
	require.NoError(t, err)
	assert.Equal(t, segment.Minus, v, "mutating a lookup result must not touch the inventory")
}

func TestFeatureTable_Inventory(t *testing.T) {
	ft := newTestTable(t)
	assert.Equal(t, []string{"p", "b", "m", "ŋ"}, slices.Collect(ft.Inventory()))
}

func TestFeatureTable_Segments(t *testing.T) {
	ft := newTestTable(t)

	t.Run("KnownWord", func(t *testing.T) {
		segs := ft.Segments("mb")
		require.Len(t, segs, 2)
		assert.Equal(t, "[+voi, +nas, +ant]", segs[0].String())
		assert.Equal(t, "[+voi, -nas, +ant]", segs[1].String())
	})

	t.Run("UnknownInputSkipped", func(t *testing.T) {
		segs := ft.Segments("p?b")
		assert.Len(t, segs, 2)
	})

	t.Run("EmptyWord", func(t *testing.T) {
		assert.Empty(t, ft.Segments(""))
	})
}

func TestFeatureTable_SegmentsStrict(t *testing.T) {
	ft := newTestTable(t)

	segs, err := ft.SegmentsStrict("pbm")
	require.NoError(t, err)
	assert.Len(t, segs, 3)

	_, err = ft.SegmentsStrict("p?b")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownSymbol)

	var symErr *UnknownSymbolError
	require.ErrorAs(t, err, &symErr)
	assert.Equal(t, "?", symErr.Symbol)
	assert.Equal(t, 1, symErr.Offset)
}

func TestFeatureTable_LongestPrefixSegmentation(t *testing.T) {
	ft, err := New()
	require.NoError(t, err)

	// "t͡ʃ" must win over its prefix "t".
	assert.Equal(t, []string{"t͡ʃ", "a", "t"}, ft.Symbols("t͡ʃat"))
	assert.Equal(t, []string{"t", "s"}, ft.Symbols("ts"), "no tie bar, no affricate")
	assert.Equal(t, []string{"uː", "u"}, ft.Symbols("uːu"))
}

func TestFeatureTable_Normalization(t *testing.T) {
	// The table carries a precomposed symbol; NFD input must match it.
	table := "ipa,voi\né,+\n" // é as a single code point
	decomposed := "é"

	t.Run("Normalized", func(t *testing.T) {
		ft, err := New(WithTableReader(strings.NewReader(table)))
		require.NoError(t, err)
		assert.True(t, ft.Contains(decomposed))
		assert.True(t, ft.Contains("é"))
	})

	t.Run("Disabled", func(t *testing.T) {
		ft, err := New(WithTableReader(strings.NewReader(table)), WithoutNormalization())
		require.NoError(t, err)
		assert.False(t, ft.Contains(decomposed))
		assert.True(t, ft.Contains("é"))
	})
}

func TestFeatureTable_MatchingSegments(t *testing.T) {
	ft := newTestTable(t)

	tests := []struct {
		name     string
		features map[string]segment.Value
		want     []string
	}{
		{"Nasals", map[string]segment.Value{"nas": segment.Plus}, []string{"m", "ŋ"}},
		{"VoicedAnterior", map[string]segment.Value{"voi": segment.Plus, "ant": segment.Plus}, []string{"b", "m"}},
		{"NoMatches", map[string]segment.Value{"voi": segment.Plus, "nas": segment.Minus, "ant": segment.Minus}, nil},
		{"UnknownFeature", map[string]segment.Value{"tone": segment.Plus}, nil},
		{"EmptyQueryMatchesAll", nil, []string{"p", "b", "m", "ŋ"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ft.MatchingSegments(tt.features))
		})
	}
}

func TestFeatureTable_MatchingNotation(t *testing.T) {
	ft := newTestTable(t)

	assert.Equal(t, []string{"m", "ŋ"}, ft.MatchingNotation("+voi+nas"))
	assert.Equal(t, []string{"ŋ"}, ft.MatchingNotation("+nas-ant"))
	assert.Empty(t, ft.MatchingNotation("+tone"))
}

func TestFeatureTable_WordDistance(t *testing.T) {
	ft := newTestTable(t)

	assert.Zero(t, ft.WordDistance("pb", "pb"))

	// p and b differ only in voi: NormL1 substitution = 2/3.
	got := ft.WordDistance("p", "b")
	assert.InDelta(t, 2.0/3.0, got, 1e-12)

	// Options pass through.
	fn, err := distance.Provider(distance.Hamming)
	require.NoError(t, err)
	assert.Equal(t, 1.0, ft.WordDistance("p", "b", distance.WithSubstitutionFunc(fn)))
}

func TestFeatureTable_Metrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	ft := newTestTable(t, WithMetricsCollector(metrics))

	ft.Segment("p")
	ft.Segment("x")
	ft.Segments("pb")
	ft.MatchingSegments(map[string]segment.Value{"nas": segment.Plus})

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.LoadCount)
	assert.Equal(t, int64(2), stats.LookupCount)
	assert.Equal(t, int64(1), stats.LookupMisses)
	assert.Equal(t, int64(1), stats.SegmentationCount)
	assert.Equal(t, int64(1), stats.MatchCount)
	assert.Equal(t, int64(2), stats.MatchResults)
}

func TestNew_NilObservability(t *testing.T) {
	ft := newTestTable(t, WithLogger(nil), WithMetricsCollector(nil))

	seg, ok := ft.Segment("p")
	require.True(t, ok)
	assert.NotNil(t, seg)
}

func BenchmarkFeatureTable_Segments(b *testing.B) {
	ft, err := New()
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ft.Segments("t͡ʃat͡sinuːm")
	}
}
