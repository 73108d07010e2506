package physics

// Integrator turns the summed force on one axis into a position increment over a
// fixed time step DT.
//
// It is a Runge–Kutta shaped formula whose derivative is never re-evaluated: every
// stage sees the same input x. The result is x·dt·(1 + dt/2 + dt²/6 + dt³/24) up to
// rounding, but the staged form is kept so results match the reference model
// under the same evaluation order.
type Integrator struct {
	DT float64
}

// Increment returns the displacement produced by force component x.
func (in Integrator) Increment(x float64) float64 {
	dt := in.DT
	k1 := x
	k2 := x + k1*dt*0.5
	k3 := x + k2*dt*0.5
	k4 := x + k3*dt
	return (k1 + 2*k2 + 2*k3 + k4) * (dt / 6.0)
}
