// Package ops defines scalar operations for reverse-mode automatic differentiation.
//
// Each operation implements the Operation interface, which provides:
//   - Forward pass: computed by the caller with the operators package
//   - Backward pass: computes gradients for inputs given the output gradient
//
// Supported operations:
//   - AddOp: a + b (d/da = 1, d/db = 1)
//   - MulOp: a * b (d/da = b, d/db = a)
//   - NegOp: -a (d/da = -1)
//   - LogOp: log(a) (operators.LogBack)
//   - InvOp: 1 / a (operators.InvBack)
//   - ReLUOp: max(0, a) (operators.ReLUBack)
//   - ExpOp: exp(a) (d/da = exp(a))
//   - SigmoidOp: σ(a) (d/da = σ(a) * (1 - σ(a)))
package ops

// Variable is a scalar node of the computation graph.
type Variable struct {
	Value float64 // Forward value.
	Grad  float64 // Gradient accumulated by backward passes.
	Name  string  // Optional label for diagnostics.
}

// NewVariable creates a variable holding value with a zero gradient.
func NewVariable(value float64) *Variable {
	return &Variable{Value: value}
}

// ZeroGrad resets the accumulated gradient.
func (v *Variable) ZeroGrad() {
	v.Grad = 0
}

// Operation represents a differentiable scalar operation.
// Each operation records its inputs and output during the forward pass,
// and computes input gradients during the backward pass.
type Operation interface {
	// Backward computes gradients for inputs given the output gradient.
	// The returned slice is aligned with Inputs().
	//
	// Example for AddOp:
	//   inputs: [a, b]
	//   outputGrad: dL/d(a+b)
	//   returns: [dL/d(a+b), dL/d(a+b)]
	Backward(outputGrad float64) []float64

	// Inputs returns the input variables for this operation.
	Inputs() []*Variable

	// Output returns the variable produced by this operation.
	Output() *Variable
}

// unary holds the bookkeeping shared by single-input operations.
type unary struct {
	input  *Variable
	output *Variable
}

// Inputs returns the input variable.
func (u unary) Inputs() []*Variable {
	return []*Variable{u.input}
}

// Output returns the output variable.
func (u unary) Output() *Variable {
	return u.output
}

// binary holds the bookkeeping shared by two-input operations.
type binary struct {
	inputs []*Variable // [a, b]
	output *Variable
}

// Inputs returns the input variables [a, b].
func (b binary) Inputs() []*Variable {
	return b.inputs
}

// Output returns the output variable.
func (b binary) Output() *Variable {
	return b.output
}
