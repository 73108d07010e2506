package simulation

import (
	"math"

	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pkg/geometry"
	"gonum.org/v1/gonum/stat"
)

// OrderSample is one measurement of the two order parameters.
//
//	X = (mean |r_i - r_g|)^-1   goes to 0 as the swarm disperses
//	V = mean |v_i - v_g|        goes to 0 as relative motion dies out
type OrderSample struct {
	X float64
	V float64
}

// PlotPoint is an order sample mapped for log-log display.
type PlotPoint struct {
	X float64 // log10(1000·X + 1)
	Y float64 // log10(1000·V + 1)
}

// Plot maps the sample to (log10(1000·X+1), log10(1000·V+1)).
// A non-finite X (all particles on the centre of gravity) stays non-finite.
func (s OrderSample) Plot() PlotPoint {
	return PlotPoint{
		X: math.Log10(1000*s.X + 1),
		Y: math.Log10(1000*s.V + 1),
	}
}

// Finite reports whether both parameters are finite.
func (s OrderSample) Finite() bool {
	return !math.IsNaN(s.X) && !math.IsInf(s.X, 0) && !math.IsNaN(s.V) && !math.IsInf(s.V, 0)
}

// Gravity returns the arithmetic mean of the positions. No periodic wrap is applied,
// the swarm is assumed not to straddle the domain edge.
func Gravity(positions []geometry.Vector2D) geometry.Vector2D {
	var sumX, sumY float64
	for _, p := range positions {
		sumX += p.X
		sumY += p.Y
	}
	n := float64(len(positions))
	return geometry.Vector2D{X: sumX / n, Y: sumY / n}
}

// OrderTracker computes order parameters and keeps the plot history.
type OrderTracker struct {
	every   uint64
	scratch []float64
	last    OrderSample
	ready   bool
	history []PlotPoint
}

// NewOrderTracker returns a tracker that records a plot point every `every` steps.
// Zero keeps no history.
func NewOrderTracker(every uint64) *OrderTracker {
	return &OrderTracker{every: every}
}

// Dispersion returns X for the given positions. It is +Inf when every particle
// sits exactly on the centre of gravity.
func (t *OrderTracker) Dispersion(positions []geometry.Vector2D) float64 {
	rg := Gravity(positions)
	d := t.buffer(len(positions))
	for i, p := range positions {
		d[i] = p.DistanceTo(rg)
	}
	return 1 / stat.Mean(d, nil)
}

// RelativeVelocity returns V, the mean distance between each supplied per-particle
// velocity and the velocity of the centre of gravity, nextG - curG.
func (t *OrderTracker) RelativeVelocity(velocities []geometry.Vector2D, curG, nextG geometry.Vector2D) float64 {
	vg := nextG.Sub(curG)
	d := t.buffer(len(velocities))
	for i, v := range velocities {
		d[i] = v.DistanceTo(vg)
	}
	return stat.Mean(d, nil)
}

// Observe measures the swarm after a committed step and records a plot point when
// the step is tracked.
func (t *OrderTracker) Observe(positions, velocities []geometry.Vector2D, prevG geometry.Vector2D, step uint64) OrderSample {
	s := OrderSample{X: t.Dispersion(positions)}
	s.V = t.RelativeVelocity(velocities, prevG, Gravity(positions))
	t.last, t.ready = s, true
	if t.every > 0 && step%t.every == 0 {
		t.history = append(t.history, s.Plot())
	}
	return s
}

// Last returns the latest sample, ok is false before the first observation.
func (t *OrderTracker) Last() (OrderSample, bool) {
	return t.last, t.ready
}

// History returns a copy of the recorded plot points.
func (t *OrderTracker) History() []PlotPoint {
	return append([]PlotPoint(nil), t.history...)
}

// Clear drops the latest sample and the plot history.
func (t *OrderTracker) Clear() {
	t.last, t.ready = OrderSample{}, false
	t.history = t.history[:0]
}

func (t *OrderTracker) buffer(n int) []float64 {
	if cap(t.scratch) < n {
		t.scratch = make([]float64, n)
	}
	return t.scratch[:n]
}
