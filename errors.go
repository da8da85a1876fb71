package innovation

import "errors"

var (
	// ErrDomain is returned when a fractional power would be taken of a negative base.
	ErrDomain = errors.New("innovation: math domain error")

	// ErrBadSweep indicates a sweep range that cannot be sampled.
	ErrBadSweep = errors.New("innovation: invalid sweep range")

	// ErrNoScenarios is returned when a scenario file defines nothing to evaluate.
	ErrNoScenarios = errors.New("innovation: no scenarios defined")
)
