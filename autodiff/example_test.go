package autodiff_test

import (
	"fmt"

	"github.com/born-ml/scalarops/autodiff"
)

func ExampleBackend() {
	backend := autodiff.New()
	backend.Tape().StartRecording()

	x := autodiff.NewVariable(3)
	y := backend.Mul(x, x) // y = x²

	if _, err := backend.Backward(y); err != nil {
		panic(err)
	}
	fmt.Println(y.Value, x.Grad)
	// Output: 9 6
}
