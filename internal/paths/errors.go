package paths

import "errors"

var (
	// ErrAlreadyCorrected is returned when terrain correction runs twice on one forest.
	ErrAlreadyCorrected = errors.New("forest already corrected")

	// ErrNotCorrected is returned when meshing a forest that was never corrected.
	ErrNotCorrected = errors.New("forest not corrected")
)
