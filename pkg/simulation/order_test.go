package simulation

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGravity(t *testing.T) {
	g := Gravity([]geometry.Vector2D{{X: 1, Y: 2}, {X: 3, Y: -2}, {X: -1, Y: 3}})
	assert.InDelta(t, 1.0, g.X, 1e-15)
	assert.InDelta(t, 1.0, g.Y, 1e-15)
}

func TestOrderTracker_Dispersion(t *testing.T) {
	tr := NewOrderTracker(0)
	square := []geometry.Vector2D{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}
	assert.InDelta(t, 1.0, tr.Dispersion(square), 1e-15)

	wide := []geometry.Vector2D{{X: 4, Y: 0}, {X: -4, Y: 0}}
	assert.InDelta(t, 0.25, tr.Dispersion(wide), 1e-15)

	same := []geometry.Vector2D{{X: 2, Y: 2}, {X: 2, Y: 2}}
	assert.True(t, math.IsInf(tr.Dispersion(same), 1))
}

func TestOrderTracker_RelativeVelocity(t *testing.T) {
	tr := NewOrderTracker(0)
	curG := geometry.Vector2D{X: 0, Y: 0}
	nextG := geometry.Vector2D{X: 1, Y: 0}

	// everybody moving with the centre of gravity: no relative motion
	rigid := []geometry.Vector2D{{X: 1, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}}
	assert.Equal(t, 0.0, tr.RelativeVelocity(rigid, curG, nextG))

	spread := []geometry.Vector2D{{X: 1, Y: 3}, {X: 1, Y: -1}, {X: 3, Y: 0}}
	assert.InDelta(t, 2.0, tr.RelativeVelocity(spread, curG, nextG), 1e-15)
}

func TestOrderSample_Plot(t *testing.T) {
	p := OrderSample{X: 0.999, V: 0}.Plot()
	assert.InDelta(t, 3.0, p.X, 1e-12)
	assert.Equal(t, 0.0, p.Y)

	p = OrderSample{X: 0.009, V: 0.0009}.Plot()
	assert.InDelta(t, 1.0, p.X, 1e-12)
	assert.InDelta(t, math.Log10(1.9), p.Y, 1e-12)

	assert.True(t, OrderSample{X: 1, V: 2}.Finite())
	assert.False(t, OrderSample{X: math.Inf(1), V: 2}.Finite())
	assert.False(t, OrderSample{X: 1, V: math.NaN()}.Finite())
}

func TestOrderTracker_HistoryCadence(t *testing.T) {
	tr := NewOrderTracker(3)
	pos := []geometry.Vector2D{{X: 1, Y: 0}, {X: -1, Y: 0}}
	vel := []geometry.Vector2D{{}, {}}

	_, ok := tr.Last()
	require.False(t, ok)

	for step := uint64(1); step <= 7; step++ {
		tr.Observe(pos, vel, geometry.Vector2D{}, step)
	}
	last, ok := tr.Last()
	require.True(t, ok)
	assert.Equal(t, 1.0, last.X)
	require.Len(t, tr.History(), 2, "steps 3 and 6")
	assert.InDelta(t, math.Log10(1001), tr.History()[0].X, 1e-12)

	h := tr.History()
	h[0].X = -1
	assert.NotEqual(t, -1.0, tr.History()[0].X, "History returns a copy")

	tr.Clear()
	assert.Empty(t, tr.History())
	_, ok = tr.Last()
	assert.False(t, ok)
}

func TestOrderTracker_NoHistoryWhenDisabled(t *testing.T) {
	tr := NewOrderTracker(0)
	pos := []geometry.Vector2D{{X: 1, Y: 0}, {X: -1, Y: 0}}
	for step := uint64(1); step <= 10; step++ {
		tr.Observe(pos, []geometry.Vector2D{{}, {}}, geometry.Vector2D{}, step)
	}
	assert.Empty(t, tr.History())
}
