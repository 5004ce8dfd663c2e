package vector

import (
	"fmt"
	"math"
)

// Vec3 is a three component vector.
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// V3 returns the vector (x, y, z).
func V3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Splat3 returns a vector with every component set to s.
func Splat3[T Scalar](s T) Vec3[T] {
	return Vec3[T]{X: s, Y: s, Z: s}
}

// Cast3 converts every component of v to U.
func Cast3[U, T Scalar](v Vec3[T]) Vec3[U] {
	return Vec3[U]{X: U(v.X), Y: U(v.Y), Z: U(v.Z)}
}

// AddAssign adds o to v in place and returns v for chaining.
func (v *Vec3[T]) AddAssign(o Vec3[T]) *Vec3[T] {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
	return v
}

// SubAssign subtracts o from v in place.
func (v *Vec3[T]) SubAssign(o Vec3[T]) *Vec3[T] {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
	return v
}

// ScaleAssign multiplies every component of v by s in place.
func (v *Vec3[T]) ScaleAssign(s T) *Vec3[T] {
	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

// DivAssign divides every component of v by s in place.
func (v *Vec3[T]) DivAssign(s T) *Vec3[T] {
	v.X /= s
	v.Y /= s
	v.Z /= s
	return v
}

// Neg returns -v. Pos returns a copy of v.
func (v Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-v.X, -v.Y, -v.Z} }
func (v Vec3[T]) Pos() Vec3[T] { return v }

// Add, Sub, Scale and Div return a new vector and leave v unchanged.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3[T]) Scale(s T) Vec3[T]     { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3[T]) Div(s T) Vec3[T]       { return Vec3[T]{v.X / s, v.Y / s, v.Z / s} }

// Dot returns the scalar product of v and o.
func (v Vec3[T]) Dot(o Vec3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the right-handed cross product v × o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Cross(v, o)
}

// Magnitude returns the Euclidean length of v. Components are widened to
// float64 before squaring so small integer types cannot overflow.
func (v Vec3[T]) Magnitude() float64 {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return math.Sqrt(x*x + y*y + z*z)
}

// Normalize returns v divided by its magnitude. v must not be the zero vector.
func (v Vec3[T]) Normalize() Vec3[T] {
	return v.Div(T(v.Magnitude()))
}

// Lerp interpolates between v (t=0) and o (t=1).
func (v Vec3[T]) Lerp(o Vec3[T], t float64) Vec3[T] {
	return Vec3[T]{lerp(v.X, o.X, t), lerp(v.Y, o.Y, t), lerp(v.Z, o.Z, t)}
}

// XY drops z.
func (v Vec3[T]) XY() Vec2[T] {
	return Vec2[T]{v.X, v.Y}
}

// Extend promotes v to four dimensions with the given w.
func (v Vec3[T]) Extend(w T) Vec4[T] {
	return Vec4[T]{v.X, v.Y, v.Z, w}
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3[T]) IsFinite() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

// Narrow2 returns (x, y) as float32, dropping z.
func (v Vec3[T]) Narrow2() [2]float32 {
	return [2]float32{float32(v.X), float32(v.Y)}
}

// Narrow3 returns (x, y, z) as float32.
func (v Vec3[T]) Narrow3() [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Narrow4 returns (x, y, z, 0) as float32.
func (v Vec3[T]) Narrow4() [4]float32 {
	return [4]float32{float32(v.X), float32(v.Y), float32(v.Z), 0}
}

// String formats v as vec3(x, ...).
func (v Vec3[T]) String() string {
	return fmt.Sprintf("vec3(%v, %v, %v)", v.X, v.Y, v.Z)
}
