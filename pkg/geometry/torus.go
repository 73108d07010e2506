package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSize is returned when a torus edge length is not a positive finite number.
var ErrInvalidSize = errors.New("geometry: torus size must be positive and finite")

// imageOffsets are the replica shifts, in units of L, visited when looking for the
// nearest periodic image.
var imageOffsets = [3]float64{-1, 0, 1}

// Torus is a square periodic domain of edge length L.
// Stored coordinates are never wrapped; the periodicity only shows up when
// measuring displacement or distance (minimum-image convention).
type Torus struct {
	L float64
}

// NewTorus returns a Torus of edge l.
func NewTorus(l float64) (Torus, error) {
	if !(l > 0) || math.IsInf(l, 0) {
		return Torus{}, fmt.Errorf("NewTorus(%v): %w", l, ErrInvalidSize)
	}
	return Torus{L: l}, nil
}

// ClosestDelta returns the displacement b-a along one axis, using the replica of b
// (shifted by -L, 0 or +L) that is nearest to a.
//
// The search starts from the direct displacement and a replica only replaces it
// when strictly closer, so at exactly half a period (|b-a| == L/2) the direct
// image is kept. A lattice of particles spaced L/2 apart therefore keeps its
// mirror symmetry.
func (t Torus) ClosestDelta(a, b float64) float64 {
	best := b - a
	for _, d := range imageOffsets {
		candidate := (b + d*t.L) - a
		if math.Abs(candidate) < math.Abs(best) {
			best = candidate
		}
	}
	return best
}

// ClosestDisplacement applies ClosestDelta independently on each axis.
func (t Torus) ClosestDisplacement(p1, p2 Vector2D) Vector2D {
	return Vector2D{X: t.ClosestDelta(p1.X, p2.X), Y: t.ClosestDelta(p1.Y, p2.Y)}
}

// ClosestDistance returns the smallest Euclidean distance between p1 and the nine
// replicas of p2 obtained by shifting it by {-L,0,+L} on both axes.
//
// The minimisation is joint over the 3x3 images, so the result is not always the
// norm of ClosestDisplacement, whose axes are minimised independently.
// Both values are consumed as they are by the force kernel.
func (t Torus) ClosestDistance(p1, p2 Vector2D) float64 {
	closest := math.Inf(1)
	for _, dx := range imageOffsets {
		for _, dy := range imageOffsets {
			d := euclid(p1.X, p1.Y, t.L*dx+p2.X, t.L*dy+p2.Y)
			if d < closest {
				closest = d
			}
		}
	}
	return closest
}

// Wrap folds v back into the centred cell [-L/2, L/2) on both axes.
// Only renderers need it; the simulation keeps unwrapped coordinates.
func (t Torus) Wrap(v Vector2D) Vector2D {
	return Vector2D{X: t.wrap(v.X), Y: t.wrap(v.Y)}
}

func (t Torus) wrap(x float64) float64 {
	half := t.L / 2
	return x - t.L*math.Floor((x+half)/t.L)
}

func euclid(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt((x2-x1)*(x2-x1) + (y2-y1)*(y2-y1))
}
