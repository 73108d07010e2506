package simulation

import (
	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pkg/interaction"
)

// Particle is a read-only view of one particle, handed to renderers.
type Particle struct {
	ID   int // 1..N, stable for the lifetime of the swarm
	Pos  geometry.Vector2D
	Type int
}

// Swarm is the ordered set of particles on the torus.
//
// Positions live in two buffers: pos is the committed generation that every
// particle reads during a step, next receives the candidates. commit swaps them,
// so no particle ever sees a neighbour's new position within the same step.
// Index i holds the particle with id i+1.
type Swarm struct {
	torus     geometry.Torus
	partition interaction.Partition
	types     []int
	pos       []geometry.Vector2D
	next      []geometry.Vector2D
	vel       []geometry.Vector2D // last increment of each particle
}

func newSwarm(torus geometry.Torus, partition interaction.Partition, positions []geometry.Vector2D) *Swarm {
	n := partition.Len()
	s := &Swarm{
		torus:     torus,
		partition: partition,
		types:     make([]int, n),
		pos:       make([]geometry.Vector2D, n),
		next:      make([]geometry.Vector2D, n),
		vel:       make([]geometry.Vector2D, n),
	}
	for i := range s.types {
		s.types[i] = partition.TypeOf(i + 1)
	}
	s.place(positions)
	return s
}

func (s *Swarm) place(positions []geometry.Vector2D) {
	copy(s.pos, positions)
	clear(s.vel)
}

func (s *Swarm) commit() {
	s.pos, s.next = s.next, s.pos
}

// Len returns the number of particles.
func (s *Swarm) Len() int { return len(s.pos) }

// Torus returns the periodic domain.
func (s *Swarm) Torus() geometry.Torus { return s.torus }

// Particles returns a snapshot of the committed generation.
func (s *Swarm) Particles() []Particle {
	out := make([]Particle, len(s.pos))
	for i, p := range s.pos {
		out[i] = Particle{ID: i + 1, Pos: p, Type: s.types[i]}
	}
	return out
}

// Positions returns a copy of the committed positions, in id order.
func (s *Swarm) Positions() []geometry.Vector2D {
	return append([]geometry.Vector2D(nil), s.pos...)
}

// Velocities returns a copy of the last per-particle increments, in id order.
func (s *Swarm) Velocities() []geometry.Vector2D {
	return append([]geometry.Vector2D(nil), s.vel...)
}
