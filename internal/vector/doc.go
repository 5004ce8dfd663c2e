// Package vector provides fixed-dimension numeric vectors for 2, 3 and 4
// components over any integer or floating point scalar type.
//
// The package defines three independent value types:
//
//   - [Vec2]: x, y
//   - [Vec3]: x, y, z
//   - [Vec4]: x, y, z, w
//
// Each type carries the same algebra as methods: Add, Sub, Scale, Div, Neg,
// Dot, Magnitude and Normalize, plus pointer-receiver AddAssign, SubAssign,
// ScaleAssign and DivAssign that mutate in place and return the receiver.
//
// Operations between vectors of different dimension are free functions named
// after the operand dimensions, e.g. [Add32] takes a Vec3 and a Vec2. The
// result always has the higher dimension. Components only present in the
// higher operand pass through unchanged, or negated when that operand is the
// subtrahend. The mixed dot products ([Dot23] and friends) only sum the shared
// components and are not inner products in the higher space.
//
// # Example
//
//	i := vector.V3(1.0, 0, 0)
//	j := vector.V3(0, 1.0, 0)
//	k := vector.Cross(i, j) // vec3(0, 0, 1)
//	v := i.Scale(2).Add(j.Scale(3)).Add(k.Scale(5))
//	fmt.Println(v, v.Magnitude())
//
// # Division
//
// Div, DivAssign and Normalize follow the scalar type's own division. Floating
// point vectors produce Inf or NaN components when dividing by zero, integer
// vectors panic with the runtime divide-by-zero error. Normalizing a zero
// vector is therefore never meaningful; use [Vec3.IsFinite] to check results.
package vector
