// Package seq provides lazy higher-order combinators that lift functions onto
// ordered sequences.
//
// Sequences are plain iter.Seq values. A combinator never inspects the function
// it is given and never mutates its input; it only decides how elements are
// pulled and in which order the function is applied.
//
// Restartability follows the source: a sequence built from slices.Values can
// be ranged over any number of times, while a one-shot source (a stream, a
// channel drain) stays one-shot after Transform or PairCombine. Wrap such
// sources with Once to turn an accidental second traversal into a panic.
//
// Usage:
//
//	xs := slices.Values([]float64{1, 2, 3})
//	squares := seq.Transform(func(x float64) float64 { return x * x }, xs)
//	total, err := seq.Fold(func(a, b float64) float64 { return a + b }, squares)
package seq

import (
	"iter"
	"sync/atomic"
)

// Transform returns a lazy sequence of f(x) for every x in xs, in order.
//
// Nothing is evaluated until the result is ranged over. If the consumer stops
// early, no further elements are pulled from xs.
func Transform[T, U any](f func(T) U, xs iter.Seq[T]) iter.Seq[U] {
	return func(yield func(U) bool) {
		for x := range xs {
			if !yield(f(x)) {
				return
			}
		}
	}
}

// PairCombine returns a lazy sequence of f(x, y) pairing xs and ys by position.
//
// ys must be at least as long as xs. For every x one element of ys is pulled;
// when ys runs out first, the sequence yields a single *ExhaustedInputError
// carrying the unmatched index and ends. Elements of ys past the length of xs
// are never read.
//
// Every yielded pair has a nil error, so a consumer may stop at the first
// non-nil error or use Collect.
func PairCombine[T, U, V any](f func(T, U) V, xs iter.Seq[T], ys iter.Seq[U]) iter.Seq2[V, error] {
	return func(yield func(V, error) bool) {
		next, stop := iter.Pull(ys)
		defer stop()

		i := 0
		for x := range xs {
			y, ok := next()
			if !ok {
				var zero V
				yield(zero, &ExhaustedInputError{Index: i})
				return
			}
			if !yield(f(x, y), nil) {
				return
			}
			i++
		}
	}
}

// Fold reduces xs from the left with no seed value:
//
//	f(f(f(x0, x1), x2), x3) ...
//
// The first element is the initial accumulator, so a single-element sequence
// returns that element without calling f. An empty sequence returns
// ErrEmptySequence. xs is traversed exactly once.
func Fold[T any](f func(T, T) T, xs iter.Seq[T]) (T, error) {
	var acc T
	empty := true
	for x := range xs {
		if empty {
			acc = x
			empty = false
			continue
		}
		acc = f(acc, x)
	}
	if empty {
		return acc, ErrEmptySequence
	}
	return acc, nil
}

// Collect drains a fallible sequence into a slice.
// It stops at the first non-nil error and returns the values gathered before it.
func Collect[V any](s iter.Seq2[V, error]) ([]V, error) {
	out := make([]V, 0)
	for v, err := range s {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Once wraps xs so it can be traversed a single time.
// A second traversal, including a concurrent one, panics with ErrConsumed.
func Once[T any](xs iter.Seq[T]) iter.Seq[T] {
	var used atomic.Bool
	return func(yield func(T) bool) {
		if used.Swap(true) {
			panic(ErrConsumed)
		}
		for x := range xs {
			if !yield(x) {
				return
			}
		}
	}
}
