package ops

import (
	"github.com/born-ml/scalarops/internal/operators"
)

// LogOp represents the natural logarithm.
//
// Forward:
//
//	output = log(input)
//
// Backward:
//
//	∂L/∂input = ∂L/∂output * (1 / input)
type LogOp struct {
	unary
}

// NewLogOp creates a new log operation.
func NewLogOp(input, output *Variable) *LogOp {
	return &LogOp{unary{input: input, output: output}}
}

// Backward applies operators.LogBack to the recorded forward input.
func (op *LogOp) Backward(outputGrad float64) []float64 {
	return []float64{operators.LogBack(op.input.Value, outputGrad)}
}

// InvOp represents the reciprocal: output = 1 / input.
//
// Backward:
//
//	∂L/∂input = -∂L/∂output / input²
//
// A zero input yields an infinite or NaN gradient rather than an error.
type InvOp struct {
	unary
}

// NewInvOp creates a new reciprocal operation.
func NewInvOp(input, output *Variable) *InvOp {
	return &InvOp{unary{input: input, output: output}}
}

// Backward applies operators.InvBack to the recorded forward input.
func (op *InvOp) Backward(outputGrad float64) []float64 {
	return []float64{operators.InvBack(op.input.Value, outputGrad)}
}

// ExpOp represents the exponential: output = exp(input).
//
// Backward:
//
//	∂L/∂input = ∂L/∂output * exp(input) = ∂L/∂output * output
type ExpOp struct {
	unary
}

// NewExpOp creates a new exponential operation.
func NewExpOp(input, output *Variable) *ExpOp {
	return &ExpOp{unary{input: input, output: output}}
}

// Backward reuses the forward output as the local derivative.
func (op *ExpOp) Backward(outputGrad float64) []float64 {
	return []float64{operators.Mul(outputGrad, op.output.Value)}
}
