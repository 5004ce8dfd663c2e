package vector

import (
	"fmt"
	"math"
)

// Vec2 is a two component vector.
type Vec2[T Scalar] struct {
	X, Y T
}

// V2 returns the vector (x, y).
func V2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Splat2 returns a vector with every component set to s.
func Splat2[T Scalar](s T) Vec2[T] {
	return Vec2[T]{X: s, Y: s}
}

// Cast2 converts every component of v to U.
func Cast2[U, T Scalar](v Vec2[T]) Vec2[U] {
	return Vec2[U]{X: U(v.X), Y: U(v.Y)}
}

// AddAssign adds o to v in place and returns v for chaining.
func (v *Vec2[T]) AddAssign(o Vec2[T]) *Vec2[T] {
	v.X += o.X
	v.Y += o.Y
	return v
}

// SubAssign subtracts o from v in place.
func (v *Vec2[T]) SubAssign(o Vec2[T]) *Vec2[T] {
	v.X -= o.X
	v.Y -= o.Y
	return v
}

// ScaleAssign multiplies every component of v by s in place.
func (v *Vec2[T]) ScaleAssign(s T) *Vec2[T] {
	v.X *= s
	v.Y *= s
	return v
}

// DivAssign divides every component of v by s in place.
func (v *Vec2[T]) DivAssign(s T) *Vec2[T] {
	v.X /= s
	v.Y /= s
	return v
}

// Neg returns -v. Pos returns a copy of v.
func (v Vec2[T]) Neg() Vec2[T] { return Vec2[T]{-v.X, -v.Y} }
func (v Vec2[T]) Pos() Vec2[T] { return v }

// Add, Sub, Scale and Div return a new vector and leave v unchanged.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X + o.X, v.Y + o.Y} }
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X - o.X, v.Y - o.Y} }
func (v Vec2[T]) Scale(s T) Vec2[T]     { return Vec2[T]{v.X * s, v.Y * s} }
func (v Vec2[T]) Div(s T) Vec2[T]       { return Vec2[T]{v.X / s, v.Y / s} }

// Dot returns the scalar product of v and o.
func (v Vec2[T]) Dot(o Vec2[T]) T {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the cross product of v and o taken in the z=0 plane.
func (v Vec2[T]) Cross(o Vec2[T]) Vec3[T] {
	return Cross2(v, o)
}

// Magnitude returns the Euclidean length of v. Components are widened to
// float64 before squaring so small integer types cannot overflow.
func (v Vec2[T]) Magnitude() float64 {
	x, y := float64(v.X), float64(v.Y)
	return math.Sqrt(x*x + y*y)
}

// Normalize returns v divided by its magnitude. v must not be the zero vector.
func (v Vec2[T]) Normalize() Vec2[T] {
	return v.Div(T(v.Magnitude()))
}

// Lerp interpolates between v (t=0) and o (t=1).
func (v Vec2[T]) Lerp(o Vec2[T], t float64) Vec2[T] {
	return Vec2[T]{lerp(v.X, o.X, t), lerp(v.Y, o.Y, t)}
}

// Extend promotes v to three dimensions with the given z.
func (v Vec2[T]) Extend(z T) Vec3[T] {
	return Vec3[T]{v.X, v.Y, z}
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec2[T]) IsFinite() bool {
	return finite(v.X) && finite(v.Y)
}

// Narrow2 returns (x, y) as float32.
func (v Vec2[T]) Narrow2() [2]float32 {
	return [2]float32{float32(v.X), float32(v.Y)}
}

// Narrow3 returns (x, y, 0) as float32.
func (v Vec2[T]) Narrow3() [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), 0}
}

// Narrow4 returns (x, y, 0, 0) as float32.
func (v Vec2[T]) Narrow4() [4]float32 {
	return [4]float32{float32(v.X), float32(v.Y), 0, 0}
}

// String formats v as vec2(x, ...).
func (v Vec2[T]) String() string {
	return fmt.Sprintf("vec2(%v, %v)", v.X, v.Y)
}
