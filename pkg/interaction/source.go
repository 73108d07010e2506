package interaction

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Source is a recipe for a coefficient matrix, resolved once for a given type count.
type Source interface {
	Resolve(typeCount int) (*Matrix, error)
}

// Uniform is an explicit matrix, given row by row.
type Uniform struct {
	Rows [][]float64
}

// Resolve implements Source.
func (u Uniform) Resolve(typeCount int) (*Matrix, error) {
	m, err := NewMatrix(u.Rows)
	if err != nil {
		return nil, err
	}
	if m.Size() != typeCount {
		return nil, fmt.Errorf("uniform matrix is %dx%d for %d types: %w", m.Size(), m.Size(), typeCount, ErrDimensionMismatch)
	}
	return m, nil
}

// ABPM is the two-type scheme built from four scalars:
//
//	K = | A     P+M |
//	    | P-M   B   |
//
// A and B are the intra-type couplings, P the mean and M the asymmetric part of the
// cross couplings.
type ABPM struct {
	A, B, P, M float64
}

// DefaultABPM holds the coefficients the model starts with.
var DefaultABPM = ABPM{A: 0.8, B: 0.4, P: 0.6, M: -0.8}

// Rows returns the 2x2 coefficients.
func (s ABPM) Rows() [][]float64 {
	return [][]float64{
		{s.A, s.P + s.M},
		{s.P - s.M, s.B},
	}
}

// Resolve implements Source.
func (s ABPM) Resolve(typeCount int) (*Matrix, error) {
	if typeCount != 2 {
		return nil, fmt.Errorf("ABPM for %d types: %w", typeCount, ErrABPMTypes)
	}
	return NewMatrix(s.Rows())
}

// Random draws every coefficient uniformly in [Min, Max) from a PCG seeded with Seed.
type Random struct {
	Min, Max float64
	Seed     uint64
}

// Resolve implements Source.
func (s Random) Resolve(typeCount int) (*Matrix, error) {
	if typeCount < 1 {
		return nil, ErrEmpty
	}
	if !(s.Min <= s.Max) || math.IsInf(s.Min, 0) || math.IsInf(s.Max, 0) {
		return nil, fmt.Errorf("[%v, %v): %w", s.Min, s.Max, ErrBadRange)
	}
	rng := rand.New(rand.NewPCG(s.Seed, s.Seed^0x9e3779b97f4a7c15))
	rows := make([][]float64, typeCount)
	for i := range rows {
		rows[i] = make([]float64, typeCount)
		for j := range rows[i] {
			rows[i][j] = s.Min + rng.Float64()*(s.Max-s.Min)
		}
	}
	return NewMatrix(rows)
}
