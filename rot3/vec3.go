package rot3

// Vec3 is a 3-component vector at the module's generic precision. It
// mirrors the part of mathgl's fixed-precision vector API that the
// rotation and pose layers need.
type Vec3[T Scalar] [3]T

// Add returns v + u.
func (v Vec3[T]) Add(u Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] + u[0], v[1] + u[1], v[2] + u[2]}
}

// Sub returns v - u.
func (v Vec3[T]) Sub(u Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] - u[0], v[1] - u[1], v[2] - u[2]}
}

// Mul returns the scalar product c*v.
func (v Vec3[T]) Mul(c T) Vec3[T] {
	return Vec3[T]{v[0] * c, v[1] * c, v[2] * c}
}

// Dot returns the dot product of v and u.
func (v Vec3[T]) Dot(u Vec3[T]) T {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2]
}

// Cross returns the cross product v × u.
func (v Vec3[T]) Cross(u Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*u[2] - v[2]*u[1],
		v[2]*u[0] - v[0]*u[2],
		v[0]*u[1] - v[1]*u[0],
	}
}

// Len returns the euclidean length of v.
func (v Vec3[T]) Len() T {
	return sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector is
// returned unchanged.
func (v Vec3[T]) Normalize() Vec3[T] {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}
