package timeseries

// Options holds the window sizes and bounds used by the series operators.
// They were chosen empirically and are kept overridable.
type Options struct {
	SmoothWindow       int     // Points averaged by Smooth (default: 3)
	RegressionWindow   int     // Points per doubling/trend regression (default: 7)
	TrendMinPoints     int     // Minimum points before Trend fits (default: 8)
	MaxDoublingPeriods float64 // Largest accepted doubling interval (default: 100)
}

// DefaultOptions returns the default operator options.
func DefaultOptions() *Options {
	return &Options{
		SmoothWindow:       3,
		RegressionWindow:   7,
		TrendMinPoints:     8,
		MaxDoublingPeriods: 100,
	}
}

// Validate checks that windows and bounds are usable.
func (o *Options) Validate() error {
	switch {
	case o.SmoothWindow <= 0:
		return ErrInvalidOptions.New("smooth window", o.SmoothWindow)
	case o.RegressionWindow <= 1:
		return ErrInvalidOptions.New("regression window", o.RegressionWindow)
	case o.TrendMinPoints <= 1:
		return ErrInvalidOptions.New("trend minimum points", o.TrendMinPoints)
	case o.MaxDoublingPeriods <= 0:
		return ErrInvalidOptions.New("max doubling periods", o.MaxDoublingPeriods)
	}
	return nil
}

func resolveOptions(opts *Options) Options {
	if opts == nil {
		return *DefaultOptions()
	}
	return *opts
}
