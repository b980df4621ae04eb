package autodiff

import (
	"k8s.io/klog/v2"

	"github.com/born-ml/scalarops/internal/autodiff/ops"
)

// GradientTape records operations during the forward pass and computes
// gradients during the backward pass using reverse-mode automatic differentiation.
//
// Usage:
//
//	tape := NewGradientTape()
//	tape.StartRecording()
//	// ... perform operations ...
//	grads := tape.Backward(output, 1)
//
// A tape is not safe for concurrent use.
type GradientTape struct {
	operations []ops.Operation // Recorded operations (in execution order)
	recording  bool            // Whether tape is currently recording
}

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return &GradientTape{
		operations: make([]ops.Operation, 0, 64),
		recording:  false,
	}
}

// StartRecording enables operation recording.
func (t *GradientTape) StartRecording() {
	t.recording = true
}

// StopRecording disables operation recording.
func (t *GradientTape) StopRecording() {
	t.recording = false
}

// IsRecording returns true if the tape is currently recording operations.
func (t *GradientTape) IsRecording() bool {
	return t.recording
}

// Record adds an operation to the tape.
// Only records if the tape is currently recording.
func (t *GradientTape) Record(op ops.Operation) {
	if t.recording {
		t.operations = append(t.operations, op)
	}
}

// Clear resets the tape, removing all recorded operations.
// Recording state is preserved.
func (t *GradientTape) Clear() {
	t.operations = t.operations[:0]
}

// NumOps returns the number of recorded operations.
func (t *GradientTape) NumOps() int {
	return len(t.operations)
}

// Backward propagates grad from output back through the tape.
//
// Algorithm:
//  1. Seed the output with grad
//  2. Walk operations in reverse order
//  3. For each operation whose output has a gradient, compute input gradients
//  4. Sum gradients when the same variable feeds several operations
//
// The accumulated gradients are added to each Variable.Grad and also
// returned as a map, so repeated calls accumulate like parameter gradients
// do across mini-batches.
func (t *GradientTape) Backward(output *ops.Variable, grad float64) map[*ops.Variable]float64 {
	grads := make(map[*ops.Variable]float64)
	grads[output] = grad

	wasRecording := t.recording
	t.recording = false
	defer func() {
		t.recording = wasRecording
	}()

	klog.V(2).Infof("autodiff: backward over %d operations", len(t.operations))

	for i := len(t.operations) - 1; i >= 0; i-- {
		op := t.operations[i]
		outputGrad, ok := grads[op.Output()]
		if !ok {
			continue
		}
		t.accumulateGrads(op, op.Backward(outputGrad), grads)
	}

	for v, g := range grads {
		v.Grad += g
	}
	return grads
}

// accumulateGrads accumulates gradients for each input variable.
func (t *GradientTape) accumulateGrads(op ops.Operation, inputGrads []float64, grads map[*ops.Variable]float64) {
	for j, input := range op.Inputs() {
		if j >= len(inputGrads) {
			break
		}
		grads[input] += inputGrads[j]
	}
}
