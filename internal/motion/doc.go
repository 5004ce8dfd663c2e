// Package motion integrates the motion of a single vector under a
// first-order system dX/dt = f(X, t).
//
// The package defines:
//
//   - [System]: the derivative of the vector
//   - [Integrator]: a fixed-step numerical integrator
//   - [Spin]: rigid rotation about an axis, dX/dt = ω × X
//   - [Run]: steps a system for a fixed duration and records the trajectory
//
// Integrators live in the integrators package.
package motion
