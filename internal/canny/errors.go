package canny

import "errors"

var (
	// ErrPrecondition reports input the pipeline cannot accept: empty grids,
	// mismatched dimensions, or an angle outside [-180, 180].
	ErrPrecondition = errors.New("canny: precondition violation")

	// ErrUnsupportedMode is returned when the per-channel color gradient is selected.
	ErrUnsupportedMode = errors.New("canny: unsupported gradient mode")

	// ErrNumericDegeneracy reports statistics requested over zero pixels.
	ErrNumericDegeneracy = errors.New("canny: numeric degeneracy")
)
