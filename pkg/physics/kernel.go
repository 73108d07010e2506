package physics

import "math"

// CouplingExponent is the power of the distance applied to the coupling term.
// The universal repulsive term always decays as 1/r.
const CouplingExponent = -0.8

// Kernel computes the pairwise force of the non-reciprocal swarm model:
//
//	magnitude = k·r^-0.8 − 1/r
//	F = (Δ/r)·magnitude
//
// where Δ is the minimum-image displacement from the reference particle to its
// neighbour, r the minimum-image distance and k the coupling coefficient.
type Kernel struct {
	// MinDistance is a floor applied to r before the reciprocal and power terms.
	// Zero keeps the raw distance and only guards exact overlaps.
	MinDistance float64
}

// Force returns the force contribution on the reference particle.
//
// degenerate reports that the pair needed the guard: an exact overlap (r == 0,
// contribution is zero since the direction is undefined) or a distance below
// MinDistance (r is floored). Non-finite distances are treated as overlaps.
func (k Kernel) Force(dx, dy, r, coupling float64) (fx, fy float64, degenerate bool) {
	if r == 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, 0, true
	}
	if r < k.MinDistance {
		r = k.MinDistance
		degenerate = true
	}
	magnitude := coupling*math.Pow(r, CouplingExponent) - 1/r
	return (dx / r) * magnitude, (dy / r) * magnitude, degenerate
}
