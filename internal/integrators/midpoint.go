package integrators

import (
	"github.com/san-kum/galileo/internal/motion"
	"github.com/san-kum/galileo/internal/vector"
)

// Midpoint is the second order Runge-Kutta method.
type Midpoint struct{}

func NewMidpoint() *Midpoint {
	return &Midpoint{}
}

func (m *Midpoint) Step(sys motion.System, x vector.Vec3d, t, dt float64) vector.Vec3d {
	k1 := sys.Derive(x, t)
	k2 := sys.Derive(x.Add(k1.Scale(dt*0.5)), t+dt*0.5)
	return x.Add(k2.Scale(dt))
}
