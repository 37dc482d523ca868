package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	assert.Equal(t, []float64{2, 3, -1}, Diff([]float64{1, 3, 6, 5}))
	assert.Empty(t, Diff([]float64{1}))
	assert.Empty(t, Diff(nil))
}

func TestClampMin(t *testing.T) {
	x := []float64{-2, 0, 3}
	assert.Equal(t, []float64{0, 0, 3}, ClampMin(x, 0))
	assert.Equal(t, -2.0, x[0], "input must not be modified")
}

func TestMovingAverage(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		window   int
		expected []float64
	}{
		{"window 3", []float64{1, 2, 3, 4, 5}, 3, []float64{2, 3, 4}},
		{"window 1", []float64{4, 8}, 1, []float64{4, 8}},
		{"full window", []float64{1, 2, 3}, 3, []float64{2}},
		{"window too large", []float64{1, 2}, 3, []float64{}},
		{"zero window", []float64{1, 2}, 0, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MovingAverage(tt.data, tt.window)
			assert.Len(t, got, len(tt.expected))
			assert.InDeltaSlice(t, tt.expected, got, 1e-12)
		})
	}
}

func TestMovingAverageNonFinite(t *testing.T) {
	tests := []struct {
		name string
		bad  float64
	}{
		{"NaN", math.NaN()},
		{"+Inf", math.Inf(1)},
		{"-Inf", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MovingAverage([]float64{1, tt.bad, 3, 4, 5, 6, 7}, 3)
			require.Len(t, got, 5)

			// Windows ending at indexes 2 and 3 contain the bad value.
			assert.False(t, isFinite(got[0]))
			assert.False(t, isFinite(got[1]))
			assert.InDeltaSlice(t, []float64{4, 5, 6}, got[2:], 1e-12)
		})
	}
}

func TestDiffNonFinite(t *testing.T) {
	got := Diff([]float64{1, math.NaN(), 3, 6})
	require.Len(t, got, 3)
	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, math.IsNaN(got[1]))
	assert.Equal(t, 3.0, got[2])
}
