// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package operators provides the scalar primitives of the Born scalar layer
// and their reverse-mode derivative rules.
//
// # Overview
//
// Every function is pure and safe for concurrent use. Functions are generic
// over Float (float32, float64).
//
//   - Arithmetic: Mul, Add, Neg, Identity
//   - Comparisons: Lt, Eq, Max, IsClose (1/0 encoded) and Less, Equal, Close (bool)
//   - Functions: Sigmoid, ReLU, Log, Exp, Inv
//   - Backward rules: LogBack, InvBack, ReLUBack
//   - Sequence helpers: NegateAll, AddElementwise, Sum, Product
//
// # Division by zero
//
// Inv(0) returns a signed infinity and InvBack(0, d) returns ±Inf or NaN.
// Log of a non-positive number returns a *DomainError.
//
// # Example
//
//	import "github.com/born-ml/scalarops/operators"
//
//	y := operators.Sigmoid(0.3)
//	dx := operators.ReLUBack(-1.0, 0.5) // 0
package operators

import (
	"iter"

	"github.com/born-ml/scalarops/internal/operators"
)

// Float is the constraint for scalar element types.
type Float = operators.Float

// CloseTolerance is the absolute difference below which IsClose reports 1.
const CloseTolerance = operators.CloseTolerance

// ErrDomain is matched by every DomainError.
var ErrDomain = operators.ErrDomain

// DomainError reports an input outside an operator's domain.
type DomainError = operators.DomainError

// Registry maps operator names to float64 implementations.
type Registry = operators.Registry

// NewRegistry creates a registry holding every built-in operator.
func NewRegistry() *Registry { return operators.NewRegistry() }

// Mul returns x * y.
func Mul[T Float](x, y T) T { return operators.Mul(x, y) }

// Identity returns x unchanged.
func Identity[T Float](x T) T { return operators.Identity(x) }

// Add returns x + y.
func Add[T Float](x, y T) T { return operators.Add(x, y) }

// Neg returns -x.
func Neg[T Float](x T) T { return operators.Neg(x) }

// Lt returns 1 if x < y, else 0.
func Lt[T Float](x, y T) T { return operators.Lt(x, y) }

// Less reports whether x < y.
func Less[T Float](x, y T) bool { return operators.Less(x, y) }

// Eq returns 1 if x == y, else 0.
func Eq[T Float](x, y T) T { return operators.Eq(x, y) }

// Equal reports whether x == y.
func Equal[T Float](x, y T) bool { return operators.Equal(x, y) }

// Max returns the larger of x and y; ties return y.
func Max[T Float](x, y T) T { return operators.Max(x, y) }

// IsClose returns 1 if |x - y| < CloseTolerance, else 0.
func IsClose[T Float](x, y T) T { return operators.IsClose(x, y) }

// Close reports whether |x - y| < CloseTolerance.
func Close[T Float](x, y T) bool { return operators.Close(x, y) }

// Sigmoid computes the numerically stable logistic function.
func Sigmoid[T Float](x T) T { return operators.Sigmoid(x) }

// ReLU returns x if x >= 0, else 0.
func ReLU[T Float](x T) T { return operators.ReLU(x) }

// Log returns the natural logarithm of x, or a *DomainError for x <= 0.
func Log[T Float](x T) (T, error) { return operators.Log(x) }

// Exp returns e^x.
func Exp[T Float](x T) T { return operators.Exp(x) }

// Inv returns 1 / x.
func Inv[T Float](x T) T { return operators.Inv(x) }

// LogBack returns d / x.
func LogBack[T Float](x, d T) T { return operators.LogBack(x, d) }

// InvBack returns -d / x².
func InvBack[T Float](x, d T) T { return operators.InvBack(x, d) }

// ReLUBack returns d if x >= 0, else 0.
func ReLUBack[T Float](x, d T) T { return operators.ReLUBack(x, d) }

// NegateAll returns a lazy sequence of -x for every x in xs.
func NegateAll[T Float](xs iter.Seq[T]) iter.Seq[T] { return operators.NegateAll(xs) }

// AddElementwise returns a lazy sequence of pairwise sums.
func AddElementwise[T Float](xs, ys iter.Seq[T]) iter.Seq2[T, error] {
	return operators.AddElementwise(xs, ys)
}

// Sum adds every element of xs; an empty sequence sums to 0.
func Sum[T Float](xs iter.Seq[T]) T { return operators.Sum(xs) }

// Product multiplies every element of xs; an empty sequence is an error.
func Product[T Float](xs iter.Seq[T]) (T, error) { return operators.Product(xs) }
