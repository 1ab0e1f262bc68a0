// Package rot3 implements the unit-quaternion representation of 3D
// rotations consumed by the group operations in the root package.
//
// The four stored parameters are redundant (three degrees of freedom),
// so the package maintains a normalization contract: every Rotation
// produced by an exported constructor or method is within Epsilon of
// unit norm. Renormalization happens inside Mul and the normalizing
// constructors, never in the group-operation layer above.
package rot3

// Rotation is an element of SO(3) stored as a unit quaternion
// (w + xi + yj + zk). The storage is opaque: callers never construct or
// mutate the raw components directly, so every value in circulation is
// a valid, proper rotation.
//
// The zero Rotation is not a valid group element; use Identity or one
// of the constructors.
type Rotation[T Scalar] struct {
	w, x, y, z T
}

// Identity returns the rotation that maps every vector to itself.
func Identity[T Scalar]() Rotation[T] {
	return Rotation[T]{w: 1}
}

// FromQuaternion builds a Rotation from raw quaternion components,
// renormalizing so the result is a valid group element. The zero
// quaternion carries no orientation and maps to the identity.
func FromQuaternion[T Scalar](w, x, y, z T) Rotation[T] {
	return Rotation[T]{w, x, y, z}.Normalize()
}

// FromAxisAngle returns the rotation of angle radians about axis. The
// axis need not be unit length; a zero axis yields the identity.
func FromAxisAngle[T Scalar](axis Vec3[T], angle T) Rotation[T] {
	l := axis.Len()
	if l == 0 {
		return Identity[T]()
	}
	s := sin(angle/2) / l
	return Rotation[T]{
		w: cos(angle / 2),
		x: axis[0] * s,
		y: axis[1] * s,
		z: axis[2] * s,
	}
}

// Quaternion returns the stored components (w, x, y, z).
func (r Rotation[T]) Quaternion() (w, x, y, z T) {
	return r.w, r.x, r.y, r.z
}

// Norm returns the quaternion norm; 1 within Epsilon for any valid
// Rotation.
func (r Rotation[T]) Norm() T {
	return sqrt(r.w*r.w + r.x*r.x + r.y*r.y + r.z*r.z)
}

// Normalize rescales the stored quaternion to unit norm. The zero
// quaternion normalizes to the identity.
func (r Rotation[T]) Normalize() Rotation[T] {
	n := r.Norm()
	if n == 0 {
		return Identity[T]()
	}
	inv := 1 / n
	return Rotation[T]{r.w * inv, r.x * inv, r.y * inv, r.z * inv}
}

// Identity returns the identity rotation. The receiver is ignored; the
// method exists so Rotation satisfies the root package's Element
// capability.
func (Rotation[T]) Identity() Rotation[T] {
	return Identity[T]()
}

// Inverse returns the rotation undoing r. For a unit quaternion the
// inverse is the conjugate, which preserves the norm exactly.
func (r Rotation[T]) Inverse() Rotation[T] {
	return Rotation[T]{r.w, -r.x, -r.y, -r.z}
}

// Mul returns the Hamilton product r*q, renormalized. Applying the
// result to a vector equals applying q first, then r.
func (r Rotation[T]) Mul(q Rotation[T]) Rotation[T] {
	return Rotation[T]{
		w: r.w*q.w - r.x*q.x - r.y*q.y - r.z*q.z,
		x: r.w*q.x + r.x*q.w + r.y*q.z - r.z*q.y,
		y: r.w*q.y - r.x*q.z + r.y*q.w + r.z*q.x,
		z: r.w*q.z + r.x*q.y - r.y*q.x + r.z*q.w,
	}.Normalize()
}

// Rotate applies r to v.
func (r Rotation[T]) Rotate(v Vec3[T]) Vec3[T] {
	// v' = v + 2w(u × v) + 2(u × (u × v)) with u the vector part
	u := Vec3[T]{r.x, r.y, r.z}
	c := u.Cross(v)
	return v.Add(c.Mul(2 * r.w)).Add(u.Cross(c).Mul(2))
}

// ApproxEqual reports whether r and q denote the same rotation within
// tol per component. A quaternion and its negation encode the same
// rotation, so the comparison is sign-aligned first.
func (r Rotation[T]) ApproxEqual(q Rotation[T], tol T) bool {
	if r.w*q.w+r.x*q.x+r.y*q.y+r.z*q.z < 0 {
		q = Rotation[T]{-q.w, -q.x, -q.y, -q.z}
	}
	return abs(r.w-q.w) <= tol &&
		abs(r.x-q.x) <= tol &&
		abs(r.y-q.y) <= tol &&
		abs(r.z-q.z) <= tol
}
