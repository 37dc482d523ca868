package timeseries

import (
	errors "gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrMixedPeriods is returned by Flatten when the series do not share a period.
	ErrMixedPeriods = errors.NewKind("series %q has period %s, expected %s")

	// ErrNoPeriod is returned by Flatten when no series supplied a period.
	ErrNoPeriod = errors.NewKind("no period found among %d series")

	// ErrInvalidDate is returned when a date key is not in MM/DD/YYYY form.
	ErrInvalidDate = errors.NewKind("invalid date key %q")

	// ErrInvalidOptions is returned by Options.Validate.
	ErrInvalidOptions = errors.NewKind("invalid options: %s out of range: %v")
)
