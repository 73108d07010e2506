// Package physics holds the two numerical building blocks of one simulation tick:
// the pairwise force kernel and the per-axis step integrator.
package physics
