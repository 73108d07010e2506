package interaction

import (
	"fmt"
	"sync/atomic"
)

// Manager owns the current coefficient matrix of a swarm.
//
// Replacement is a wholesale pointer swap, so a reader that loaded the matrix at the
// start of a step keeps a consistent view until it loads again. Every successful
// replacement bumps a change counter that can be reset by diagnostics.
type Manager struct {
	partition Partition
	current   atomic.Pointer[Matrix]
	changes   atomic.Uint64
}

// NewManager returns a Manager serving m for the given partition.
func NewManager(p Partition, m *Matrix) (*Manager, error) {
	if err := checkSize(p, m); err != nil {
		return nil, err
	}
	mg := &Manager{partition: p}
	mg.current.Store(m)
	return mg, nil
}

// Matrix returns the current matrix.
func (mg *Manager) Matrix() *Matrix {
	return mg.current.Load()
}

// Partition returns the type partition used for lookups.
func (mg *Manager) Partition() Partition {
	return mg.partition
}

// Coefficient returns K[type(i)][type(j)] for particle ids i and j.
func (mg *Manager) Coefficient(i, j int) float64 {
	return mg.current.Load().At(mg.partition.TypeOf(i), mg.partition.TypeOf(j))
}

// Replace swaps in m and increments the change counter.
// A matrix of the wrong size is rejected and the current one is kept.
func (mg *Manager) Replace(m *Matrix) error {
	if err := checkSize(mg.partition, m); err != nil {
		return err
	}
	mg.current.Store(m)
	mg.changes.Add(1)
	return nil
}

// ReplaceFrom resolves src for the partition's type count and swaps it in.
func (mg *Manager) ReplaceFrom(src Source) error {
	m, err := src.Resolve(mg.partition.Types())
	if err != nil {
		return err
	}
	return mg.Replace(m)
}

// ChangeCount returns the number of replacements since the last reset.
func (mg *Manager) ChangeCount() uint64 {
	return mg.changes.Load()
}

// ResetChangeCount sets the change counter back to zero.
func (mg *Manager) ResetChangeCount() {
	mg.changes.Store(0)
}

func checkSize(p Partition, m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.Size() != p.Types() {
		return fmt.Errorf("%dx%d matrix for %d types: %w", m.Size(), m.Size(), p.Types(), ErrDimensionMismatch)
	}
	return nil
}
