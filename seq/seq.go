// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package seq provides lazy combinators that lift functions onto sequences.
//
// Example:
//
//	import (
//	    "slices"
//
//	    "github.com/born-ml/scalarops/seq"
//	)
//
//	xs := slices.Values([]float64{1, 2, 3})
//	ys := slices.Values([]float64{10, 20, 30})
//	sums, err := seq.Collect(seq.PairCombine(func(x, y float64) float64 { return x + y }, xs, ys))
package seq

import (
	"iter"

	"github.com/born-ml/scalarops/internal/seq"
)

// Errors returned by the combinators.
var (
	ErrEmptySequence  = seq.ErrEmptySequence
	ErrExhaustedInput = seq.ErrExhaustedInput
	ErrConsumed       = seq.ErrConsumed
)

// ExhaustedInputError reports the first unmatched position in PairCombine.
type ExhaustedInputError = seq.ExhaustedInputError

// Transform returns a lazy sequence of f(x) for every x in xs, in order.
func Transform[T, U any](f func(T) U, xs iter.Seq[T]) iter.Seq[U] {
	return seq.Transform(f, xs)
}

// PairCombine returns a lazy sequence of f(x, y) pairing xs and ys by position.
// ys must be at least as long as xs, otherwise an *ExhaustedInputError is yielded.
func PairCombine[T, U, V any](f func(T, U) V, xs iter.Seq[T], ys iter.Seq[U]) iter.Seq2[V, error] {
	return seq.PairCombine(f, xs, ys)
}

// Fold reduces xs from the left using the first element as the seed.
// An empty sequence returns ErrEmptySequence.
func Fold[T any](f func(T, T) T, xs iter.Seq[T]) (T, error) {
	return seq.Fold(f, xs)
}

// Collect drains a fallible sequence, stopping at the first error.
func Collect[V any](s iter.Seq2[V, error]) ([]V, error) {
	return seq.Collect(s)
}

// Once wraps xs so a second traversal panics with ErrConsumed.
func Once[T any](xs iter.Seq[T]) iter.Seq[T] {
	return seq.Once(xs)
}
