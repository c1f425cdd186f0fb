package normalize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogNormalize_Empty(t *testing.T) {
	out := LogNormalize(nil)
	require.NotNil(t, out)
	assert.Empty(t, out)

	assert.Empty(t, LogNormalize([]float64{}))
}

func TestLogNormalize_RangeAndExtremes(t *testing.T) {
	cases := map[string][]float64{
		"decreasing":   {2.0, 1.0, 0.5},
		"wide range":   {1000, 10, 0.1, 0.001, 5},
		"with zero":    {0, 0.25, 3.5},
		"negative min": {-2, -1, 0, 4},
		"two points":   {0.3, 0.2},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			out := LogNormalize(in)
			require.Len(t, out, len(in))

			seenZero, seenOne := false, false
			for _, v := range out {
				assert.False(t, math.IsNaN(v))
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 1.0)
				seenZero = seenZero || v == 0
				seenOne = seenOne || v == 1
			}
			assert.True(t, seenZero, "expected an exact 0 in %v", out)
			assert.True(t, seenOne, "expected an exact 1 in %v", out)
		})
	}
}

func TestLogNormalize_KnownValues(t *testing.T) {
	// shift = 0.5 + eps; logs of ~{2.5, 1.5, 1.0}
	out := LogNormalize([]float64{2.0, 1.0, 0.5})

	want1 := math.Log(1.5) / math.Log(2.5)
	assert.Equal(t, 1.0, out[0])
	assert.InDelta(t, want1, out[1], 1e-9)
	assert.Equal(t, 0.0, out[2])
}

func TestLogNormalize_PreservesOrder(t *testing.T) {
	in := []float64{0.4, 0.9, 0.1, 0.6}
	out := LogNormalize(in)

	for i := range in {
		for j := range in {
			if in[i] < in[j] {
				assert.Less(t, out[i], out[j])
			}
		}
	}
}

func TestLogNormalize_ZeroVarianceIsFlat(t *testing.T) {
	for _, in := range [][]float64{{0.7}, {2, 2, 2}, {0, 0}} {
		out := LogNormalize(in)
		require.Len(t, out, len(in))
		for _, v := range out {
			assert.Equal(t, FlatValue, v)
		}
	}
}

func TestLogNormalize_DoesNotModifyInput(t *testing.T) {
	in := []float64{3, 1, 2}
	LogNormalize(in)
	assert.Equal(t, []float64{3, 1, 2}, in)
}
