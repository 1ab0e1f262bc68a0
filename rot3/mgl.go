package rot3

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Conversions to and from mathgl's fixed-precision quaternions, for
// callers whose surrounding code lives in mgl32/mgl64 types. mathgl
// quaternions carry no unit-norm guarantee, so the From variants
// renormalize.

// Mgl64 converts r to a mathgl double-precision quaternion.
func Mgl64(r Rotation[float64]) mgl64.Quat {
	return mgl64.Quat{W: r.w, V: mgl64.Vec3{r.x, r.y, r.z}}
}

// Mgl32 converts r to a mathgl single-precision quaternion.
func Mgl32(r Rotation[float32]) mgl32.Quat {
	return mgl32.Quat{W: r.w, V: mgl32.Vec3{r.x, r.y, r.z}}
}

// FromMgl64 builds a Rotation from a mathgl quaternion.
func FromMgl64(q mgl64.Quat) Rotation[float64] {
	return FromQuaternion(q.W, q.V[0], q.V[1], q.V[2])
}

// FromMgl32 builds a Rotation from a mathgl quaternion.
func FromMgl32(q mgl32.Quat) Rotation[float32] {
	return FromQuaternion(q.W, q.V[0], q.V[1], q.V[2])
}

// Mat64 returns the 3×3 rotation matrix of r.
func Mat64(r Rotation[float64]) mgl64.Mat3 {
	return Mgl64(r).Mat4().Mat3()
}

// Mat32 returns the 3×3 rotation matrix of r.
func Mat32(r Rotation[float32]) mgl32.Mat3 {
	return Mgl32(r).Mat4().Mat3()
}
