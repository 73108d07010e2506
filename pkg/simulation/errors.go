package simulation

import "errors"

var (
	// ErrInvalidConfig is returned for a configuration the engine cannot run.
	ErrInvalidConfig = errors.New("simulation: invalid configuration")

	// ErrPositionCount is returned by ResetTo when the number of positions
	// differs from the particle count.
	ErrPositionCount = errors.New("simulation: position count does not match particle count")

	// ErrNonFinitePosition is returned by ResetTo for NaN or infinite coordinates.
	ErrNonFinitePosition = errors.New("simulation: non-finite position")
)
