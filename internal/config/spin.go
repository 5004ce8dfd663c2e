package config

import (
	"fmt"

	"github.com/san-kum/galileo/internal/motion"
	"github.com/san-kum/galileo/internal/scene"
	"github.com/san-kum/galileo/internal/vector"
)

// Motion resolves the rotation and stepping of the spin. It does not look at
// which vector spins, so views that pick the vector themselves can use it.
func (sc SpinConfig) Motion() (motion.Spin, motion.Config, error) {
	axis, err := Vec3(sc.Axis)
	if err != nil {
		return motion.Spin{}, motion.Config{}, fmt.Errorf("spin axis: %w", err)
	}
	if axis.Magnitude() == 0 {
		return motion.Spin{}, motion.Config{}, fmt.Errorf("spin axis: %w", ErrNormalizeZero)
	}
	if sc.Dt <= 0 {
		return motion.Spin{}, motion.Config{}, fmt.Errorf("spin: %w: dt=%g", motion.ErrInvalidStep, sc.Dt)
	}
	return motion.NewSpin(axis, sc.Rate), motion.Config{Dt: sc.Dt, Duration: sc.Duration}, nil
}

// Target returns the current value of the spin vector in s. Builtins cannot
// spin.
func (sc SpinConfig) Target(s *scene.Scene) (vector.Vec3d, error) {
	if scene.IsBuiltin(sc.Vector) {
		return vector.Vec3d{}, fmt.Errorf("spin: %w: %q is builtin", scene.ErrDuplicateVector, sc.Vector)
	}
	v, err := s.Lookup(sc.Vector)
	if err != nil {
		return vector.Vec3d{}, fmt.Errorf("spin: %w", err)
	}
	return v, nil
}
