// Package rlvec converts vectors to raylib's float32 vector types.
//
// Every conversion narrows to float32. Converting to a wider raylib type fills
// the missing components with zero, converting to a narrower one drops the
// trailing components.
package rlvec

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/galileo/internal/vector"
)

func Vector2From2[T vector.Scalar](v vector.Vec2[T]) rl.Vector2 { return vec2(v.Narrow2()) }
func Vector3From2[T vector.Scalar](v vector.Vec2[T]) rl.Vector3 { return vec3(v.Narrow3()) }
func Vector4From2[T vector.Scalar](v vector.Vec2[T]) rl.Vector4 { return vec4(v.Narrow4()) }

func Vector2From3[T vector.Scalar](v vector.Vec3[T]) rl.Vector2 { return vec2(v.Narrow2()) }
func Vector3From3[T vector.Scalar](v vector.Vec3[T]) rl.Vector3 { return vec3(v.Narrow3()) }
func Vector4From3[T vector.Scalar](v vector.Vec3[T]) rl.Vector4 { return vec4(v.Narrow4()) }

func Vector2From4[T vector.Scalar](v vector.Vec4[T]) rl.Vector2 { return vec2(v.Narrow2()) }
func Vector3From4[T vector.Scalar](v vector.Vec4[T]) rl.Vector3 { return vec3(v.Narrow3()) }
func Vector4From4[T vector.Scalar](v vector.Vec4[T]) rl.Vector4 { return vec4(v.Narrow4()) }

// FromVector3 is the inverse of Vector3From3 for float32 vectors.
func FromVector3(v rl.Vector3) vector.Vec3f {
	return vector.V3(v.X, v.Y, v.Z)
}

func vec2(a [2]float32) rl.Vector2 { return rl.NewVector2(a[0], a[1]) }
func vec3(a [3]float32) rl.Vector3 { return rl.NewVector3(a[0], a[1], a[2]) }
func vec4(a [4]float32) rl.Vector4 { return rl.NewVector4(a[0], a[1], a[2], a[3]) }
