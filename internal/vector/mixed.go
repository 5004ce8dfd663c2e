package vector

// Mixed-dimension arithmetic. The result takes the higher dimension; the
// components the lower operand lacks are copied from the higher operand, or
// negated when the higher operand is being subtracted.

func Add23[T Scalar](a Vec2[T], b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X + b.X, a.Y + b.Y, b.Z}
}

func Add32[T Scalar](a Vec3[T], b Vec2[T]) Vec3[T] {
	return Vec3[T]{a.X + b.X, a.Y + b.Y, a.Z}
}

func Add34[T Scalar](a Vec3[T], b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z, b.W}
}

func Add43[T Scalar](a Vec4[T], b Vec3[T]) Vec4[T] {
	return Vec4[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W}
}

func Add24[T Scalar](a Vec2[T], b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X + b.X, a.Y + b.Y, b.Z, b.W}
}

func Add42[T Scalar](a Vec4[T], b Vec2[T]) Vec4[T] {
	return Vec4[T]{a.X + b.X, a.Y + b.Y, a.Z, a.W}
}

func Sub23[T Scalar](a Vec2[T], b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X - b.X, a.Y - b.Y, -b.Z}
}

func Sub32[T Scalar](a Vec3[T], b Vec2[T]) Vec3[T] {
	return Vec3[T]{a.X - b.X, a.Y - b.Y, a.Z}
}

func Sub34[T Scalar](a Vec3[T], b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z, -b.W}
}

func Sub43[T Scalar](a Vec4[T], b Vec3[T]) Vec4[T] {
	return Vec4[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W}
}

func Sub24[T Scalar](a Vec2[T], b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X - b.X, a.Y - b.Y, -b.Z, -b.W}
}

func Sub42[T Scalar](a Vec4[T], b Vec2[T]) Vec4[T] {
	return Vec4[T]{a.X - b.X, a.Y - b.Y, a.Z, a.W}
}

// Truncated dot products: only the components both operands share are
// summed, the extra components of the higher operand are ignored.

func Dot23[T Scalar](a Vec2[T], b Vec3[T]) T { return a.X*b.X + a.Y*b.Y }
func Dot32[T Scalar](a Vec3[T], b Vec2[T]) T { return a.X*b.X + a.Y*b.Y }
func Dot24[T Scalar](a Vec2[T], b Vec4[T]) T { return a.X*b.X + a.Y*b.Y }
func Dot42[T Scalar](a Vec4[T], b Vec2[T]) T { return a.X*b.X + a.Y*b.Y }
func Dot34[T Scalar](a Vec3[T], b Vec4[T]) T { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
func Dot43[T Scalar](a Vec4[T], b Vec3[T]) T { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
