package operators_test

import (
	"errors"
	"fmt"
	"slices"

	"github.com/born-ml/scalarops/operators"
	"github.com/born-ml/scalarops/seq"
)

func ExampleSigmoid() {
	fmt.Println(operators.Sigmoid(0.0))
	fmt.Println(operators.Sigmoid(-1000.0))
	// Output:
	// 0.5
	// 0
}

func ExampleReLUBack() {
	fmt.Println(operators.ReLUBack(-1.0, 0.5))
	fmt.Println(operators.ReLUBack(0.0, 0.5))
	// Output:
	// 0
	// 0.5
}

func ExampleLog() {
	_, err := operators.Log(-1.0)
	fmt.Println(errors.Is(err, operators.ErrDomain))
	// Output: true
}

func ExampleSum() {
	fmt.Println(operators.Sum(slices.Values([]float64{})))
	fmt.Println(operators.Sum(slices.Values([]float64{1, 2, 3})))

	_, err := operators.Product(slices.Values([]float64{}))
	fmt.Println(errors.Is(err, seq.ErrEmptySequence))
	// Output:
	// 0
	// 6
	// true
}

func ExampleAddElementwise() {
	sums, err := seq.Collect(operators.AddElementwise(
		slices.Values([]float64{1, 2}),
		slices.Values([]float64{10, 20}),
	))
	fmt.Println(sums, err)
	// Output: [11 22] <nil>
}
