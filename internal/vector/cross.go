package vector

// Cross returns the right-handed cross product v × w.
func Cross[T Scalar](v, w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Cross2 treats v and w as lying in the z=0 plane. Only the z component of
// the result can be non-zero.
func Cross2[T Scalar](v, w Vec2[T]) Vec3[T] {
	return Vec3[T]{Z: v.X*w.Y - v.Y*w.X}
}

// Cross32 projects v onto the z=0 plane before crossing, so it agrees with
// Cross2 and Cross23: the result only has a z component.
func Cross32[T Scalar](v Vec3[T], w Vec2[T]) Vec3[T] {
	return Cross2(v.XY(), w)
}

// Cross23 is Cross32 with the operand order swapped.
func Cross23[T Scalar](v Vec2[T], w Vec3[T]) Vec3[T] {
	return Cross2(v, w.XY())
}
