package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armendk/panphon/segment"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	assert.Equal(t, a.RandomValues(16), b.RandomValues(16))

	a.Reset()
	c := NewRNG(42)
	assert.Equal(t, c.RandomValues(16), a.RandomValues(16), "Reset restores the initial stream")
}

func TestRNG_RandomValuesInRange(t *testing.T) {
	rng := NewRNG(1)
	for _, v := range rng.RandomValues(256) {
		assert.Contains(t, []segment.Value{segment.Minus, segment.Unspecified, segment.Plus}, v)
	}
}

func TestRNG_RandomSegment(t *testing.T) {
	schema := segment.NewSchema([]string{"voi", "nas", "ant"})
	rng := NewRNG(7)

	seg := rng.RandomSegment(schema)
	require.Len(t, seg.Numeric(), schema.Len())
	assert.Same(t, schema, seg.Schema())
}

func TestRNG_RandomWord(t *testing.T) {
	rng := NewRNG(3)
	symbols := []string{"p", "a", "t͡ʃ"}

	for i := 0; i < 32; i++ {
		word := rng.RandomWord(symbols, 4)
		assert.NotEmpty(t, word)
	}
}
