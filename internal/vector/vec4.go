package vector

import (
	"fmt"
	"math"
)

// Vec4 is a four component vector.
type Vec4[T Scalar] struct {
	X, Y, Z, W T
}

// V4 returns the vector (x, y, z, w).
func V4[T Scalar](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

// Splat4 returns a vector with every component, w included, set to s.
func Splat4[T Scalar](s T) Vec4[T] {
	return Vec4[T]{X: s, Y: s, Z: s, W: s}
}

// Cast4 converts every component of v to U.
func Cast4[U, T Scalar](v Vec4[T]) Vec4[U] {
	return Vec4[U]{X: U(v.X), Y: U(v.Y), Z: U(v.Z), W: U(v.W)}
}

// AddAssign adds o to v in place and returns v for chaining.
func (v *Vec4[T]) AddAssign(o Vec4[T]) *Vec4[T] {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
	v.W += o.W
	return v
}

// SubAssign subtracts o from v in place.
func (v *Vec4[T]) SubAssign(o Vec4[T]) *Vec4[T] {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
	v.W -= o.W
	return v
}

// ScaleAssign multiplies every component of v by s in place.
func (v *Vec4[T]) ScaleAssign(s T) *Vec4[T] {
	v.X *= s
	v.Y *= s
	v.Z *= s
	v.W *= s
	return v
}

// DivAssign divides every component of v by s in place.
func (v *Vec4[T]) DivAssign(s T) *Vec4[T] {
	v.X /= s
	v.Y /= s
	v.Z /= s
	v.W /= s
	return v
}

// Neg returns -v. Pos returns a copy of v.
func (v Vec4[T]) Neg() Vec4[T] { return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W} }
func (v Vec4[T]) Pos() Vec4[T] { return v }

// Add, Sub, Scale and Div return a new vector and leave v unchanged.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

func (v Vec4[T]) Scale(s T) Vec4[T] { return Vec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s} }
func (v Vec4[T]) Div(s T) Vec4[T]   { return Vec4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s} }

// Dot returns the scalar product of v and o.
func (v Vec4[T]) Dot(o Vec4[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// Magnitude returns the Euclidean length of v. Components are widened to
// float64 before squaring so small integer types cannot overflow.
func (v Vec4[T]) Magnitude() float64 {
	x, y, z, w := float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)
	return math.Sqrt(x*x + y*y + z*z + w*w)
}

// Normalize returns v divided by its magnitude. v must not be the zero vector.
func (v Vec4[T]) Normalize() Vec4[T] {
	return v.Div(T(v.Magnitude()))
}

// Lerp interpolates between v (t=0) and o (t=1).
func (v Vec4[T]) Lerp(o Vec4[T], t float64) Vec4[T] {
	return Vec4[T]{lerp(v.X, o.X, t), lerp(v.Y, o.Y, t), lerp(v.Z, o.Z, t), lerp(v.W, o.W, t)}
}

// XY and XYZ drop the trailing components.
func (v Vec4[T]) XY() Vec2[T]  { return Vec2[T]{v.X, v.Y} }
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{v.X, v.Y, v.Z} }

// IsFinite reports whether no component is NaN or infinite.
func (v Vec4[T]) IsFinite() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z) && finite(v.W)
}

// Narrow2 returns (x, y) as float32.
func (v Vec4[T]) Narrow2() [2]float32 {
	return [2]float32{float32(v.X), float32(v.Y)}
}

// Narrow3 returns (x, y, z) as float32, dropping w.
func (v Vec4[T]) Narrow3() [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Narrow4 returns (x, y, z, w) as float32.
func (v Vec4[T]) Narrow4() [4]float32 {
	return [4]float32{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

// String formats v as vec4(x, ...).
func (v Vec4[T]) String() string {
	return fmt.Sprintf("vec4(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}
