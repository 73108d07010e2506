package interaction

import "fmt"

// Partition splits particle ids 1..N into contiguous type blocks of N/typeCount ids.
// The division truncates, so the last block absorbs the remainder.
type Partition struct {
	n, types, size int
}

// NewPartition returns the partition of n particles into typeCount blocks.
func NewPartition(n, typeCount int) (Partition, error) {
	if typeCount < 1 || n < typeCount {
		return Partition{}, fmt.Errorf("%d particles, %d types: %w", n, typeCount, ErrBadPartition)
	}
	return Partition{n: n, types: typeCount, size: n / typeCount}, nil
}

// TypeOf returns the type block of particle id (1-based).
func (p Partition) TypeOf(id int) int {
	t := (id - 1) / p.size
	if t > p.types-1 {
		t = p.types - 1
	}
	return t
}

// Types returns the number of type blocks.
func (p Partition) Types() int { return p.types }

// BlockSize returns the nominal number of ids per block.
func (p Partition) BlockSize() int { return p.size }

// Len returns the number of particles.
func (p Partition) Len() int { return p.n }
