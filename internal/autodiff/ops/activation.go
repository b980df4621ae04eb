package ops

import (
	"github.com/born-ml/scalarops/internal/operators"
)

// ReLUOp represents a ReLU (Rectified Linear Unit) activation: output = max(0, x).
//
// Backward pass:
//   - d(ReLU(x))/dx = 1 if x >= 0, else 0
//
// The sub-gradient at x == 0 lets the gradient through.
type ReLUOp struct {
	unary
}

// NewReLUOp creates a new ReLUOp.
func NewReLUOp(input, output *Variable) *ReLUOp {
	return &ReLUOp{unary{input: input, output: output}}
}

// Backward applies operators.ReLUBack to the recorded forward input.
func (op *ReLUOp) Backward(outputGrad float64) []float64 {
	return []float64{operators.ReLUBack(op.input.Value, outputGrad)}
}

// SigmoidOp represents the sigmoid activation: σ(x) = 1 / (1 + exp(-x)).
type SigmoidOp struct {
	unary
}

// NewSigmoidOp creates a new sigmoid operation.
func NewSigmoidOp(input, output *Variable) *SigmoidOp {
	return &SigmoidOp{unary{input: input, output: output}}
}

// Backward computes the gradient for sigmoid.
//
// Since we have the output σ(x) already computed, we can use it:
// grad_input = grad_output * output * (1 - output).
func (op *SigmoidOp) Backward(outputGrad float64) []float64 {
	s := op.output.Value
	local := operators.Mul(s, operators.Add(1, operators.Neg(s)))
	return []float64{operators.Mul(outputGrad, local)}
}
