package operators

import (
	"math"
)

// Sigmoid computes the logistic function 1 / (1 + e^-x).
//
// Two algebraically equal forms are used so exp is only ever called on a
// non-positive argument:
//
//	x >= 0: 1 / (1 + exp(-x))
//	x <  0: exp(x) / (1 + exp(x))
func Sigmoid[T Float](x T) T {
	v := float64(x)
	if v >= 0 {
		return T(1.0 / (1.0 + math.Exp(-v)))
	}
	e := math.Exp(v)
	return T(e / (1.0 + e))
}

// ReLU returns x if x >= 0, else 0.
func ReLU[T Float](x T) T {
	if x >= 0 {
		return x
	}
	return 0
}

// Log returns the natural logarithm of x.
//
// For x <= 0 it returns NaN and a *DomainError. NaN input passes through as
// NaN with a nil error, and +Inf maps to +Inf.
func Log[T Float](x T) (T, error) {
	if x <= 0 {
		return T(math.NaN()), &DomainError{Op: "log", Input: float64(x)}
	}
	return T(math.Log(float64(x))), nil
}

// Exp returns e^x. Large inputs overflow to +Inf.
func Exp[T Float](x T) T {
	return T(math.Exp(float64(x)))
}

// Inv returns 1 / x. Inv(0) is +Inf and Inv(-0) is -Inf.
func Inv[T Float](x T) T {
	return 1 / x
}
