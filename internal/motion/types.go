package motion

import (
	"math"

	"github.com/san-kum/galileo/internal/vector"
)

type System interface {
	Derive(x vector.Vec3d, t float64) vector.Vec3d
}

type Integrator interface {
	Step(sys System, x vector.Vec3d, t, dt float64) vector.Vec3d
}

// Spin rotates a vector about Omega. Its magnitude sets the angular rate in
// radians per unit time. The exact flow preserves |X|.
type Spin struct {
	Omega vector.Vec3d
}

// NewSpin builds a spin about axis at the given rate. The axis must be non-zero.
func NewSpin(axis vector.Vec3d, rate float64) Spin {
	return Spin{Omega: axis.Normalize().Scale(rate)}
}

func (s Spin) Derive(x vector.Vec3d, _ float64) vector.Vec3d {
	return vector.Cross(s.Omega, x)
}

// Exact returns the analytic rotation of x0 after time t (Rodrigues' formula).
func (s Spin) Exact(x0 vector.Vec3d, t float64) vector.Vec3d {
	rate := s.Omega.Magnitude()
	if rate == 0 {
		return x0
	}
	k := s.Omega.Div(rate)
	theta := rate * t
	sin, cos := math.Sincos(theta)
	return x0.Scale(cos).
		Add(vector.Cross(k, x0).Scale(sin)).
		Add(k.Scale(k.Dot(x0) * (1 - cos)))
}

type Config struct {
	Dt       float64
	Duration float64
}

type Result struct {
	States []vector.Vec3d
	Times  []float64
	// Drift is the largest relative change of |X| seen during the run.
	Drift float64
}
