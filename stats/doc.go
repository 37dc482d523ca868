// Package stats provides the numeric building blocks of the series operators.
//
// # Regression
//
// Fit an ordinary least-squares line and read the doubling time off the
// slope of log2 values:
//
//	line := stats.Fit(x, stats.Log2(y))
//	if line.Valid() {
//	    days := stats.DoublingTime(line.Slope, 86400)
//	}
//
// Fit returns NaNLine instead of an error when there are fewer than two
// points or a value is not finite; callers check Valid.
//
// # Smoothing
//
// Difference and average plain value slices:
//
//	increases := stats.ClampMin(stats.Diff(values), 0)
//	avg := stats.MovingAverage(increases, 3)
//
// # Goodness of Fit
//
// SumSquaredError compares a prediction against the observations over their
// common prefix:
//
//	sse := stats.SumSquaredError(actual, predicted)
package stats
