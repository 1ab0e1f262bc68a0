// Package dualquat implements rigid motions in 3D space as unit dual
// quaternions: the real part encodes the rotation, the infinitesimal
// part encodes the translation. Dual quaternions form a group under
// multiplication and satisfy the root package's Element capability.
package dualquat

import (
	"github.com/akmonengine/so3/pose3"
	"github.com/akmonengine/so3/rot3"
)

// Quaternion is a general quaternion (w + xi + yj + zk) over the
// module's scalar parameter. Unlike rot3.Rotation it carries no
// unit-norm invariant; it is the raw algebra the dual layer needs.
type Quaternion[T rot3.Scalar] struct {
	W, X, Y, Z T
}

// Add returns q + r.
func (q Quaternion[T]) Add(r Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.W + r.W, q.X + r.X, q.Y + r.Y, q.Z + r.Z}
}

// Neg returns -q.
func (q Quaternion[T]) Neg() Quaternion[T] {
	return Quaternion[T]{-q.W, -q.X, -q.Y, -q.Z}
}

// Scale returns the scalar product c*q.
func (q Quaternion[T]) Scale(c T) Quaternion[T] {
	return Quaternion[T]{q.W * c, q.X * c, q.Y * c, q.Z * c}
}

// Mul returns the Hamilton product q*r.
func (q Quaternion[T]) Mul(r Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
	}
}

// Conjugate returns the quaternion conjugate of q.
func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{q.W, -q.X, -q.Y, -q.Z}
}

// SquaredNorm returns |q|².
func (q Quaternion[T]) SquaredNorm() T {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

// Inverse returns q⁻¹ = conj(q)/|q|². The zero quaternion has no
// inverse; callers must not pass one.
func (q Quaternion[T]) Inverse() Quaternion[T] {
	return q.Conjugate().Scale(1 / q.SquaredNorm())
}

// DualQuaternion is a rigid motion: Real is a unit quaternion carrying
// the rotation, Inf the infinitesimal part carrying half the translated
// rotation.
type DualQuaternion[T rot3.Scalar] struct {
	Real Quaternion[T]
	Inf  Quaternion[T]
}

// Identity returns the motion that leaves every point where it is.
func Identity[T rot3.Scalar]() DualQuaternion[T] {
	return DualQuaternion[T]{Real: Quaternion[T]{W: 1}}
}

// Identity returns the identity motion. The receiver is ignored; the
// method satisfies the root package's Element capability.
func (DualQuaternion[T]) Identity() DualQuaternion[T] {
	return Identity[T]()
}

// Mul returns the composed motion d*o, applying o first and then d.
func (d DualQuaternion[T]) Mul(o DualQuaternion[T]) DualQuaternion[T] {
	return DualQuaternion[T]{
		Real: d.Real.Mul(o.Real),
		Inf:  d.Real.Mul(o.Inf).Add(d.Inf.Mul(o.Real)),
	}
}

// Inverse returns the motion undoing d.
func (d DualQuaternion[T]) Inverse() DualQuaternion[T] {
	ri := d.Real.Inverse()
	return DualQuaternion[T]{
		Real: ri,
		Inf:  ri.Mul(d.Inf).Mul(ri).Neg(),
	}
}

// FromPose converts a rigid transform to its dual-quaternion form.
func FromPose[T rot3.Scalar](p pose3.Pose[T]) DualQuaternion[T] {
	w, x, y, z := p.Rotation.Quaternion()
	r := Quaternion[T]{w, x, y, z}
	t := Quaternion[T]{0, p.Position[0], p.Position[1], p.Position[2]}
	return DualQuaternion[T]{Real: r, Inf: t.Mul(r).Scale(0.5)}
}

// Pose converts d back to a rigid transform.
func (d DualQuaternion[T]) Pose() pose3.Pose[T] {
	t := d.Inf.Scale(2).Mul(d.Real.Inverse())
	return pose3.Pose[T]{
		Rotation: rot3.FromQuaternion(d.Real.W, d.Real.X, d.Real.Y, d.Real.Z),
		Position: rot3.Vec3[T]{t.X, t.Y, t.Z},
	}
}
