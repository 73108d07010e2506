package simulation

import (
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pkg/geometry"
)

// placeRandom scatters n particles uniformly over the centred cell [-L/2, L/2)².
func placeRandom(rng *rand.Rand, n int, l float64) []geometry.Vector2D {
	out := make([]geometry.Vector2D, n)
	for i := range out {
		out[i] = geometry.Vector2D{
			X: (rng.Float64() - 0.5) * l,
			Y: (rng.Float64() - 0.5) * l,
		}
	}
	return out
}

// placeLattice puts n particles on the cell centres of a ceil(sqrt(n)) square grid
// covering the centred cell, filled row by row.
func placeLattice(n int, l float64) []geometry.Vector2D {
	side := int(math.Ceil(math.Sqrt(float64(n))))
	pitch := l / float64(side)
	out := make([]geometry.Vector2D, n)
	for i := range out {
		col, row := i%side, i/side
		out[i] = geometry.Vector2D{
			X: -l/2 + (float64(col)+0.5)*pitch,
			Y: -l/2 + (float64(row)+0.5)*pitch,
		}
	}
	return out
}
