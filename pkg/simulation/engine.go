// Package simulation runs the non-reciprocal swarm model on a periodic square domain.
//
// An Engine owns the particle positions, the coefficient matrix manager and the
// order-parameter tracker. It is single threaded: Step, Reset and matrix replacement
// must be called from one goroutine (the host actor does this), and a replacement
// always lands between two steps.
package simulation

import (
	"fmt"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pkg/interaction"
	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pkg/physics"
)

// Milestone flags the observable side effects due after a step.
type Milestone uint8

const (
	// MilestoneRepaint: a renderer should refresh.
	MilestoneRepaint Milestone = 1 << iota
	// MilestoneReportChanges: report then reset the matrix change counter.
	MilestoneReportChanges
	// MilestoneReportMatrix: report the coefficient matrix.
	MilestoneReportMatrix
	// MilestoneStop: the configured step limit is reached, the driver may stop.
	MilestoneStop
)

// StepResult describes one committed step.
type StepResult struct {
	Step            uint64
	Milestones      Milestone
	DegeneratePairs int // pairs that hit the overlap guard or the distance floor
	Sample          OrderSample
}

// Has reports whether m is due.
func (r StepResult) Has(m Milestone) bool {
	return r.Milestones&m != 0
}

// Engine advances the swarm one synchronous step at a time.
type Engine struct {
	cfg     Config
	swarm   *Swarm
	matrix  *interaction.Manager
	kernel  physics.Kernel
	integ   physics.Integrator
	tracker *OrderTracker
	rng     *rand.Rand
	order   []int
	step    uint64
}

// NewEngine builds an engine from cfg. The matrix comes from cfg.Interaction and the
// initial positions from cfg.Placement.
func NewEngine(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	src, err := cfg.Interaction.Source(cfg.Seed)
	if err != nil {
		return nil, err
	}
	return NewEngineWithSource(cfg, src)
}

// NewEngineWithSource builds an engine whose initial matrix is resolved from src.
func NewEngineWithSource(cfg *Config, src interaction.Source) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	torus, err := geometry.NewTorus(cfg.DomainSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	partition, err := interaction.NewPartition(cfg.NumParticles, cfg.TypeCount)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	k, err := src.Resolve(cfg.TypeCount)
	if err != nil {
		return nil, fmt.Errorf("initial matrix: %w", err)
	}
	matrix, err := interaction.NewManager(partition, k)
	if err != nil {
		return nil, fmt.Errorf("initial matrix: %w", err)
	}

	e := &Engine{
		cfg:     *cfg,
		matrix:  matrix,
		kernel:  physics.Kernel{MinDistance: cfg.MinDistance},
		integ:   physics.Integrator{DT: cfg.TimeStep},
		tracker: NewOrderTracker(cfg.TrackEvery),
		rng:     rand.New(rand.NewPCG(cfg.Seed, cfg.Seed+1)),
		order:   make([]int, cfg.NumParticles),
	}
	for i := range e.order {
		e.order[i] = i
	}
	e.swarm = newSwarm(torus, partition, e.initialPositions())
	return e, nil
}

func (e *Engine) initialPositions() []geometry.Vector2D {
	if e.cfg.Placement == PlacementLattice {
		return placeLattice(e.cfg.NumParticles, e.cfg.DomainSize)
	}
	return placeRandom(e.rng, e.cfg.NumParticles, e.cfg.DomainSize)
}

// Config returns a copy of the configuration the engine runs with.
func (e *Engine) Config() Config { return e.cfg }

// Swarm exposes the particle state, read only.
func (e *Engine) Swarm() *Swarm { return e.swarm }

// StepCount returns the number of steps committed since the last reset.
func (e *Engine) StepCount() uint64 { return e.step }

// Particles returns (id, position, type) for every particle.
func (e *Engine) Particles() []Particle { return e.swarm.Particles() }

// Step advances the swarm by one tick.
func (e *Engine) Step() StepResult {
	return e.stepInOrder(e.order)
}

// stepInOrder runs one step visiting reference particles in the given order.
// Thanks to the double buffer the order has no effect on the result.
func (e *Engine) stepInOrder(order []int) StepResult {
	s := e.swarm
	k := e.matrix.Matrix()
	torus := s.torus
	prevG := Gravity(s.pos)
	degenerate := 0

	for _, i := range order {
		p1 := s.pos[i]
		ti := s.types[i]
		var sumX, sumY float64
		for j, p2 := range s.pos {
			if i == j {
				continue
			}
			r := torus.ClosestDistance(p1, p2)
			dx := torus.ClosestDelta(p1.X, p2.X)
			dy := torus.ClosestDelta(p1.Y, p2.Y)
			fx, fy, bad := e.kernel.Force(dx, dy, r, k.At(ti, s.types[j]))
			if bad {
				degenerate++
			}
			sumX += fx
			sumY += fy
		}
		inc := geometry.Vector2D{X: e.integ.Increment(sumX), Y: e.integ.Increment(sumY)}
		s.vel[i] = inc
		s.next[i] = p1.Add(inc)
	}

	s.commit()
	e.step++

	return StepResult{
		Step:            e.step,
		Milestones:      e.milestones(),
		DegeneratePairs: degenerate,
		Sample:          e.tracker.Observe(s.pos, s.vel, prevG, e.step),
	}
}

func (e *Engine) milestones() Milestone {
	var m Milestone
	due := func(every uint64) bool { return every > 0 && e.step%every == 0 }
	if due(e.cfg.RepaintEvery) {
		m |= MilestoneRepaint
	}
	if due(e.cfg.ReportEvery) {
		m |= MilestoneReportChanges
	}
	if due(e.cfg.MatrixReportEvery) {
		m |= MilestoneReportMatrix
	}
	if e.cfg.StopAfter > 0 && e.step == e.cfg.StopAfter {
		m |= MilestoneStop
	}
	return m
}

// Matrix returns the coefficient matrix currently in use.
func (e *Engine) Matrix() *interaction.Matrix { return e.matrix.Matrix() }

// Coefficient returns the coupling felt by particle id i from particle id j.
func (e *Engine) Coefficient(i, j int) float64 { return e.matrix.Coefficient(i, j) }

// ReplaceMatrix swaps the coefficient matrix. A matrix of the wrong size is rejected
// and the current one stays in place.
func (e *Engine) ReplaceMatrix(m *interaction.Matrix) error { return e.matrix.Replace(m) }

// ApplySource resolves src and swaps it in; with reset the swarm restarts from fresh
// positions afterwards, which is how a parameter edit is applied.
func (e *Engine) ApplySource(src interaction.Source, reset bool) error {
	if err := e.matrix.ReplaceFrom(src); err != nil {
		return err
	}
	if reset {
		e.Reset()
	}
	return nil
}

// MatrixChangeCount returns the number of replacements since the last counter reset.
func (e *Engine) MatrixChangeCount() uint64 { return e.matrix.ChangeCount() }

// ResetMatrixChangeCount zeroes the replacement counter.
func (e *Engine) ResetMatrixChangeCount() { e.matrix.ResetChangeCount() }

// OrderParameterSample returns the (X, V) measured after the latest step.
func (e *Engine) OrderParameterSample() (OrderSample, bool) { return e.tracker.Last() }

// History returns the plot points recorded since the last reset.
func (e *Engine) History() []PlotPoint { return e.tracker.History() }

// Reset places the particles again, zeroes the step counter and clears the plot
// history. The coefficient matrix and its change counter are kept.
func (e *Engine) Reset() {
	e.restart(e.initialPositions())
}

// ResetTo is Reset with explicit positions, given in id order.
func (e *Engine) ResetTo(positions []geometry.Vector2D) error {
	if len(positions) != e.cfg.NumParticles {
		return fmt.Errorf("%d positions for %d particles: %w", len(positions), e.cfg.NumParticles, ErrPositionCount)
	}
	for i, p := range positions {
		if !p.IsFinite() {
			return fmt.Errorf("particle %d at %v: %w", i+1, p, ErrNonFinitePosition)
		}
	}
	e.restart(positions)
	return nil
}

func (e *Engine) restart(positions []geometry.Vector2D) {
	e.swarm.place(positions)
	e.step = 0
	e.tracker.Clear()
}
