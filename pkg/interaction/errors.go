package interaction

import "errors"

// Every message is prefixed with "interaction:" so it greps well in logs.
// Callers match them with errors.Is; context is added with %w at the boundary.
var (
	// ErrEmpty is returned for a matrix without rows.
	ErrEmpty = errors.New("interaction: empty matrix")

	// ErrNonSquare is returned when a row length differs from the row count.
	ErrNonSquare = errors.New("interaction: matrix is not square")

	// ErrNonFinite is returned when a coefficient is NaN or ±Inf.
	ErrNonFinite = errors.New("interaction: NaN or Inf coefficient")

	// ErrDimensionMismatch is returned when a matrix does not have typeCount rows,
	// e.g. a replacement built for another type count. The current matrix is kept.
	ErrDimensionMismatch = errors.New("interaction: matrix size does not match type count")

	// ErrABPMTypes is returned when the ABPM scheme is resolved for anything but 2 types.
	ErrABPMTypes = errors.New("interaction: ABPM scheme needs exactly 2 types")

	// ErrBadPartition is returned when particles cannot be split into type blocks.
	ErrBadPartition = errors.New("interaction: type count must be in [1, particle count]")

	// ErrNilMatrix is returned when a nil *Matrix is handed to the Manager.
	ErrNilMatrix = errors.New("interaction: nil matrix")

	// ErrBadRange is returned when a random source has Min > Max or non finite bounds.
	ErrBadRange = errors.New("interaction: invalid random range")
)
