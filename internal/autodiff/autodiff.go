// Package autodiff implements reverse-mode automatic differentiation over
// scalar variables.
//
// Backend evaluates each primitive with the operators package and, while its
// GradientTape is recording, records an ops.Operation holding the forward
// input and output. Backward walks the tape in reverse and calls the matching
// backward rule for each operation, passing the recorded forward input and the
// gradient accumulated from its consumers.
//
// Usage:
//
//	b := autodiff.New()
//	b.Tape().StartRecording()
//	x := autodiff.NewVariable(2.0)
//	y := b.Mul(x, x) // y = x²
//	if _, err := b.Backward(y); err != nil {
//	    return err
//	}
//	fmt.Println(x.Grad) // dy/dx = 2x = 4.0
package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/scalarops/internal/autodiff/ops"
	"github.com/born-ml/scalarops/internal/operators"
)

// Variable is a scalar node of the computation graph.
type Variable = ops.Variable

// NewVariable creates a leaf variable holding value.
func NewVariable(value float64) *Variable {
	return ops.NewVariable(value)
}

// Backend evaluates scalar operators and records them on a GradientTape.
type Backend struct {
	tape *GradientTape
}

// New creates a Backend with an empty, non-recording tape.
func New() *Backend {
	return &Backend{tape: NewGradientTape()}
}

// Tape returns the gradient tape for manual control.
// Useful for:
//   - Starting/stopping recording
//   - Clearing tape between iterations
//   - Inspecting recorded operations
func (b *Backend) Tape() *GradientTape {
	return b.tape
}

// Add computes a + b and records the operation.
func (b *Backend) Add(x, y *Variable) *Variable {
	out := NewVariable(operators.Add(x.Value, y.Value))
	b.tape.Record(ops.NewAddOp(x, y, out))
	return out
}

// Mul computes a * b and records the operation.
func (b *Backend) Mul(x, y *Variable) *Variable {
	out := NewVariable(operators.Mul(x.Value, y.Value))
	b.tape.Record(ops.NewMulOp(x, y, out))
	return out
}

// Neg computes -x and records the operation.
func (b *Backend) Neg(x *Variable) *Variable {
	out := NewVariable(operators.Neg(x.Value))
	b.tape.Record(ops.NewNegOp(x, out))
	return out
}

// Log computes log(x) and records the operation.
// A non-positive input returns an error wrapping operators.ErrDomain and
// records nothing.
func (b *Backend) Log(x *Variable) (*Variable, error) {
	v, err := operators.Log(x.Value)
	if err != nil {
		return nil, errors.Wrapf(err, "autodiff: log of variable %q", x.Name)
	}
	out := NewVariable(v)
	b.tape.Record(ops.NewLogOp(x, out))
	return out, nil
}

// Exp computes exp(x) and records the operation.
func (b *Backend) Exp(x *Variable) *Variable {
	out := NewVariable(operators.Exp(x.Value))
	b.tape.Record(ops.NewExpOp(x, out))
	return out
}

// Inv computes 1 / x and records the operation.
func (b *Backend) Inv(x *Variable) *Variable {
	out := NewVariable(operators.Inv(x.Value))
	b.tape.Record(ops.NewInvOp(x, out))
	return out
}

// Sigmoid computes σ(x) and records the operation.
func (b *Backend) Sigmoid(x *Variable) *Variable {
	out := NewVariable(operators.Sigmoid(x.Value))
	b.tape.Record(ops.NewSigmoidOp(x, out))
	return out
}

// ReLU computes max(0, x) and records the operation.
func (b *Backend) ReLU(x *Variable) *Variable {
	out := NewVariable(operators.ReLU(x.Value))
	b.tape.Record(ops.NewReLUOp(x, out))
	return out
}

// Backward seeds output with a gradient of 1 and propagates it through the tape.
//
// It returns an error when nothing was recorded, which usually means
// Tape().StartRecording() was never called.
func (b *Backend) Backward(output *Variable) (map[*Variable]float64, error) {
	if b.tape.NumOps() == 0 {
		return nil, errors.New("backward: no operations recorded (did you forget to call Tape().StartRecording()?)")
	}
	return b.tape.Backward(output, 1), nil
}
