// Package pose3 implements rigid transforms in 3D space: a rotation
// followed by a translation. Poses form a group under composition, so
// the generic operations in the root package apply to them unchanged.
package pose3

import "github.com/akmonengine/so3/rot3"

// Pose places an object in 3D space by rotating it and then moving it
// to Position. The rotation component keeps rot3's normalization
// contract, so every Pose built from valid parts stays valid under
// composition.
type Pose[T rot3.Scalar] struct {
	Rotation rot3.Rotation[T]
	Position rot3.Vec3[T]
}

// Identity returns the pose that leaves every point where it is.
func Identity[T rot3.Scalar]() Pose[T] {
	return Pose[T]{Rotation: rot3.Identity[T]()}
}

// Identity returns the identity pose. The receiver is ignored; the
// method satisfies the root package's Element capability.
func (Pose[T]) Identity() Pose[T] {
	return Identity[T]()
}

// Inverse returns the pose undoing p:
// (R, t)⁻¹ = (R⁻¹, -(R⁻¹ · t)).
func (p Pose[T]) Inverse() Pose[T] {
	ri := p.Rotation.Inverse()
	return Pose[T]{
		Rotation: ri,
		Position: ri.Rotate(p.Position).Mul(-1),
	}
}

// Mul returns the composed pose p*q, the transform applying q first and
// then p: (Rp, tp)·(Rq, tq) = (Rp·Rq, tp + Rp·tq).
func (p Pose[T]) Mul(q Pose[T]) Pose[T] {
	return Pose[T]{
		Rotation: p.Rotation.Mul(q.Rotation),
		Position: p.Position.Add(p.Rotation.Rotate(q.Position)),
	}
}

// TransformPoint applies p to a point: rotate, then translate.
func (p Pose[T]) TransformPoint(v rot3.Vec3[T]) rot3.Vec3[T] {
	return p.Rotation.Rotate(v).Add(p.Position)
}

// ApproxEqual reports whether p and q denote the same rigid transform
// within tol per component.
func (p Pose[T]) ApproxEqual(q Pose[T], tol T) bool {
	d := p.Position.Sub(q.Position)
	return p.Rotation.ApproxEqual(q.Rotation, tol) &&
		abs(d[0]) <= tol && abs(d[1]) <= tol && abs(d[2]) <= tol
}

func abs[T rot3.Scalar](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
