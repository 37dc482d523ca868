package dataset

import (
	errors "gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither JSON nor CSV.
	ErrUnsupportedFormat = errors.NewKind("unsupported dataset format %q")

	// ErrNoData is returned when a region has no confirmed counts.
	ErrNoData = errors.NewKind("no confirmed counts found for region %q")

	// ErrMissingColumn is returned when a required CSV column is absent.
	ErrMissingColumn = errors.NewKind("missing column %q")

	// ErrInvalidValue is returned when a count cannot be read as a number.
	ErrInvalidValue = errors.NewKind("invalid %s value %v on %s")
)
