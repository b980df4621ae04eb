package ops

import (
	"github.com/born-ml/scalarops/internal/operators"
)

// AddOp represents addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
type AddOp struct {
	binary
}

// NewAddOp creates a new AddOp.
func NewAddOp(a, b, output *Variable) *AddOp {
	return &AddOp{binary{inputs: []*Variable{a, b}, output: output}}
}

// Backward routes the output gradient unchanged to both inputs.
func (op *AddOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad, outputGrad}
}

// MulOp represents multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type MulOp struct {
	binary
}

// NewMulOp creates a new MulOp.
func NewMulOp(a, b, output *Variable) *MulOp {
	return &MulOp{binary{inputs: []*Variable{a, b}, output: output}}
}

// Backward computes input gradients for multiplication.
func (op *MulOp) Backward(outputGrad float64) []float64 {
	a, b := op.inputs[0], op.inputs[1]
	return []float64{
		operators.Mul(outputGrad, b.Value),
		operators.Mul(outputGrad, a.Value),
	}
}

// NegOp represents negation: output = -a.
type NegOp struct {
	unary
}

// NewNegOp creates a new NegOp.
func NewNegOp(input, output *Variable) *NegOp {
	return &NegOp{unary{input: input, output: output}}
}

// Backward computes grad_a = -outputGrad.
func (op *NegOp) Backward(outputGrad float64) []float64 {
	return []float64{operators.Neg(outputGrad)}
}
