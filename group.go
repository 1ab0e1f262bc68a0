// Package so3 exposes the group structure of 3D rotations: identity,
// inversion, composition and relative transform ("between").
//
// The operations are defined over any representation satisfying the
// Element capability, not over a concrete storage format. The rot3
// subpackage provides the unit-quaternion representation; pose3 and
// dualquat show that rigid transforms satisfy the same contract.
//
// Every operation is a pure function: no shared state, no blocking,
// no failure path. Any number of goroutines may call them concurrently.
package so3

// Element is the capability a representation must provide for the group
// operations: mint the identity, invert, and multiply. Implementations
// are value types; every method returns a new, valid, normalized group
// element and never mutates its receiver.
//
// Identity must be callable on the zero value of E and must not depend
// on the receiver.
type Element[E any] interface {
	// Identity returns the group identity element.
	Identity() E
	// Inverse returns the group inverse of the receiver.
	Inverse() E
	// Mul returns the group product receiver * other.
	Mul(other E) E
}

// Identity returns the identity element of E, the element that leaves
// every other element unchanged under Compose.
func Identity[E Element[E]]() E {
	var e E
	return e.Identity()
}

// Inverse returns the unique element a⁻¹ such that Compose(a, a⁻¹) and
// Compose(a⁻¹, a) both equal Identity(). Every valid element has one.
func Inverse[E Element[E]](a E) E {
	return a.Inverse()
}

// Compose returns the group product a ∘ b: applied to a vector, the
// result equals a applied to (b applied to the vector). Associative,
// not commutative in general.
func Compose[E Element[E]](a, b E) E {
	return a.Mul(b)
}

// Between returns the relative element taking a to b: the unique r such
// that Compose(a, r) == b.
func Between[E Element[E]](a, b E) E {
	return a.Inverse().Mul(b)
}
