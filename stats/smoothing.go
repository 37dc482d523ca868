package stats

import "math"

// Diff returns the first differences x[i]-x[i-1]. The result has one element
// fewer than x and is empty when x has fewer than two elements.
func Diff(x []float64) []float64 {
	if len(x) < 2 {
		return []float64{}
	}

	result := make([]float64, len(x)-1)
	for i := 1; i < len(x); i++ {
		result[i-1] = x[i] - x[i-1]
	}
	return result
}

// ClampMin returns a copy of x with every element below lo replaced by lo.
func ClampMin(x []float64, lo float64) []float64 {
	result := make([]float64, len(x))
	for i, v := range x {
		result[i] = math.Max(v, lo)
	}
	return result
}

// MovingAverage returns the trailing simple moving average over window
// elements. Element i of the result averages x[i : i+window], so the result
// has len(x)-window+1 elements. It is empty when the window is not positive or
// larger than x.
//
// Each window is summed on its own, so a non-finite element only affects the
// averages whose window contains it.
func MovingAverage(x []float64, window int) []float64 {
	if window <= 0 || window > len(x) {
		return []float64{}
	}

	result := make([]float64, len(x)-window+1)
	for i := range result {
		sum := 0.0
		for _, v := range x[i : i+window] {
			sum += v
		}
		result[i] = sum / float64(window)
	}
	return result
}
