package operators

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/born-ml/scalarops/internal/seq"
)

// NegateAll returns a lazy sequence of -x for every x in xs.
func NegateAll[T Float](xs iter.Seq[T]) iter.Seq[T] {
	return seq.Transform(Neg[T], xs)
}

// AddElementwise returns a lazy sequence of x + y over xs and ys paired by
// position. ys must be at least as long as xs; see seq.PairCombine.
func AddElementwise[T Float](xs, ys iter.Seq[T]) iter.Seq2[T, error] {
	return seq.PairCombine(Add[T], xs, ys)
}

// Sum adds every element of xs. An empty sequence sums to 0.
// xs is traversed once.
func Sum[T Float](xs iter.Seq[T]) T {
	total, err := seq.Fold(Add[T], xs)
	if errors.Is(err, seq.ErrEmptySequence) {
		return 0
	}
	return total
}

// Product multiplies every element of xs.
//
// Unlike Sum there is no identity for the empty case: an empty sequence
// returns seq.ErrEmptySequence.
func Product[T Float](xs iter.Seq[T]) (T, error) {
	return seq.Fold(Mul[T], xs)
}
