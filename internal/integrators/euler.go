package integrators

import (
	"github.com/san-kum/galileo/internal/motion"
	"github.com/san-kum/galileo/internal/vector"
)

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys motion.System, x vector.Vec3d, t, dt float64) vector.Vec3d {
	return x.Add(sys.Derive(x, t).Scale(dt))
}
