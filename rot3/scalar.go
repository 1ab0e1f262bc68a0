package rot3

import "math"

// Scalar is the floating-point parameter of every type in this module.
// A single generic implementation is instantiated per concrete type;
// only the arithmetic precision differs.
type Scalar interface {
	~float32 | ~float64
}

// Epsilon returns the unit-norm tolerance at the given precision:
// 1e-6 for single precision, 1e-12 for double.
func Epsilon[T Scalar]() T {
	// 1e-10 is below single-precision resolution at 1.0, so the
	// comparison discriminates the two instantiations.
	if T(1+1e-10) == T(1) {
		return 1e-6
	}
	return 1e-12
}

func sqrt[T Scalar](x T) T { return T(math.Sqrt(float64(x))) }
func sin[T Scalar](x T) T  { return T(math.Sin(float64(x))) }
func cos[T Scalar](x T) T  { return T(math.Cos(float64(x))) }

func abs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
