package integrators

import (
	"github.com/san-kum/galileo/internal/motion"
	"github.com/san-kum/galileo/internal/vector"
)

type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(sys motion.System, x vector.Vec3d, t, dt float64) vector.Vec3d {
	k1 := sys.Derive(x, t)
	k2 := sys.Derive(x.Add(k1.Scale(dt*0.5)), t+dt*0.5)
	k3 := sys.Derive(x.Add(k2.Scale(dt*0.5)), t+dt*0.5)
	k4 := sys.Derive(x.Add(k3.Scale(dt)), t+dt)

	sum := k1
	sum.AddAssign(k2.Scale(2)).AddAssign(k3.Scale(2)).AddAssign(k4)
	return x.Add(sum.Scale(dt / 6.0))
}
