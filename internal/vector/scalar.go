package vector

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of component types a vector can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Shorthands for the common instantiations.
type (
	Vec2i = Vec2[int]
	Vec3i = Vec3[int]
	Vec4i = Vec4[int]

	Vec2f = Vec2[float32]
	Vec3f = Vec3[float32]
	Vec4f = Vec4[float32]

	Vec2d = Vec2[float64]
	Vec3d = Vec3[float64]
	Vec4d = Vec4[float64]
)

func finite[T Scalar](s T) bool {
	f := float64(s)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func lerp[T Scalar](a, b T, t float64) T {
	return T(float64(a) + (float64(b)-float64(a))*t)
}
