package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = 24 * 60 * 60

func TestFitExactLine(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{3, 5, 7, 9, 11}

	line := Fit(x, y)
	require.True(t, line.Valid())
	assert.InDelta(t, 2.0, line.Slope, 1e-12)
	assert.InDelta(t, 1.0, line.Intercept, 1e-12)
	assert.InDelta(t, 21.0, line.At(10), 1e-12)
}

func TestFitOverEpochSeconds(t *testing.T) {
	// Mid-2020 timestamps, growth of 3 per day.
	base := 1590969600.0
	x := make([]float64, 8)
	y := make([]float64, 8)
	for i := range x {
		x[i] = base + float64(i*day)
		y[i] = 10 + 3*float64(i)
	}

	line := Fit(x, y)
	require.True(t, line.Valid())
	assert.InDelta(t, 3.0, line.Slope*day, 1e-9)
	assert.InDelta(t, 31.0, line.At(x[7]), 1e-6)
}

func TestFitDegenerate(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		y    []float64
	}{
		{"empty", nil, nil},
		{"single", []float64{1}, []float64{1}},
		{"mismatched", []float64{1, 2, 3}, []float64{1, 2}},
		{"nan value", []float64{1, 2, 3}, []float64{1, math.NaN(), 3}},
		{"negative infinity", []float64{1, 2, 3}, []float64{math.Inf(-1), 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := Fit(tt.x, tt.y)
			assert.False(t, line.Valid())
		})
	}
}

func TestFitFlat(t *testing.T) {
	line := Fit([]float64{0, day, 2 * day}, []float64{4, 4, 4})
	require.True(t, line.Valid())
	assert.Equal(t, 0.0, line.Slope)
	assert.True(t, math.IsInf(DoublingTime(line.Slope, day), 1))
}

func TestDoublingTime(t *testing.T) {
	// log2 grows by 1/2 per day, so the quantity doubles every 2 days.
	slope := 0.5 / day
	assert.InDelta(t, 2.0, DoublingTime(slope, day), 1e-12)
	assert.True(t, math.IsNaN(DoublingTime(math.NaN(), day)))
	assert.Less(t, DoublingTime(-slope, day), 0.0)
}

func TestLog2(t *testing.T) {
	logs := Log2([]float64{1, 2, 8, 0, -1})

	assert.Equal(t, 0.0, logs[0])
	assert.Equal(t, 1.0, logs[1])
	assert.Equal(t, 3.0, logs[2])
	assert.True(t, math.IsInf(logs[3], -1))
	assert.True(t, math.IsNaN(logs[4]))
}

func TestSumSquaredError(t *testing.T) {
	tests := []struct {
		name      string
		actual    []float64
		predicted []float64
		expected  float64
	}{
		{"exact", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"offset", []float64{1, 2, 3}, []float64{2, 3, 4}, 3},
		{"nan prediction counts as zero", []float64{2, 2}, []float64{math.NaN(), 2}, 4},
		{"shorter prediction", []float64{1, 2, 3}, []float64{0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SumSquaredError(tt.actual, tt.predicted), 1e-12)
		})
	}
}
