// Package operators implements the scalar primitives of the framework and
// their reverse-mode derivative rules.
//
// Every function here is pure: the result depends only on the arguments and
// nothing is retained between calls, so all of them are safe for concurrent
// use. Comparisons return 1 or 0 in the element type so they can sit in the
// middle of a differentiable expression; the Less, Equal and Close variants
// return bool for ordinary control flow.
//
// Forward operators:
//   - Mul, Add, Neg, Identity: arithmetic
//   - Lt, Eq, Max, IsClose: comparisons
//   - Sigmoid, ReLU, Log, Exp, Inv: activations and transcendental functions
//
// Backward rules take the forward input x and the upstream gradient d and
// return the gradient for x:
//   - LogBack:  d / x
//   - InvBack:  -d / x²
//   - ReLUBack: d if x >= 0, else 0
//
// Division by zero is never an error. Inv(0) is a signed infinity and
// InvBack(0, d) is ±Inf or NaN, so a bad value propagates through gradient
// accumulation where it can be detected. Log is the exception: a
// non-positive input returns a *DomainError.
package operators

import (
	"golang.org/x/exp/constraints"
)

// Float is the constraint for scalar element types.
type Float interface {
	constraints.Float
}

// CloseTolerance is the absolute difference below which IsClose reports 1.
const CloseTolerance = 1e-2

// FromBool encodes b as 1 or 0.
func FromBool[T Float](b bool) T {
	if b {
		return 1
	}
	return 0
}

// Mul returns x * y.
func Mul[T Float](x, y T) T {
	return x * y
}

// Identity returns x unchanged.
func Identity[T Float](x T) T {
	return x
}

// Add returns x + y.
func Add[T Float](x, y T) T {
	return x + y
}

// Neg returns -x.
func Neg[T Float](x T) T {
	return -x
}

// Less reports whether x < y.
func Less[T Float](x, y T) bool {
	return x < y
}

// Lt returns 1 if x < y, else 0.
func Lt[T Float](x, y T) T {
	return FromBool[T](Less(x, y))
}

// Equal reports whether x == y exactly.
func Equal[T Float](x, y T) bool {
	return x == y
}

// Eq returns 1 if x == y, else 0.
func Eq[T Float](x, y T) T {
	return FromBool[T](Equal(x, y))
}

// Max returns the larger of x and y.
// On a tie, and whenever the comparison is false (NaN), it returns y.
func Max[T Float](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Close reports whether |x - y| < CloseTolerance.
func Close[T Float](x, y T) bool {
	d := x - y
	if d < 0 {
		d = -d
	}
	return d < CloseTolerance
}

// IsClose returns 1 if |x - y| < CloseTolerance, else 0.
func IsClose[T Float](x, y T) T {
	return FromBool[T](Close(x, y))
}
