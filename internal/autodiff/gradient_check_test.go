package autodiff_test

import (
	"math"
	"testing"

	"github.com/born-ml/scalarops/internal/autodiff"
)

// numericalGradient computes the gradient using finite differences.
func numericalGradient(f func(float64) float64, x, epsilon float64) float64 {
	return (f(x+epsilon) - f(x-epsilon)) / (2 * epsilon)
}

// build runs fn on a fresh recording backend and returns the output value
// together with the autodiff gradient at x.
func build(t *testing.T, x float64, fn func(b *autodiff.Backend, v *autodiff.Variable) *autodiff.Variable) (float64, float64) {
	t.Helper()

	backend := autodiff.New()
	backend.Tape().StartRecording()

	v := autodiff.NewVariable(x)
	out := fn(backend, v)
	if _, err := backend.Backward(out); err != nil {
		t.Fatal(err)
	}
	return out.Value, v.Grad
}

// TestNumericalGradient compares tape gradients with finite differences.
func TestNumericalGradient(t *testing.T) {
	const epsilon = 1e-6

	tests := []struct {
		name   string
		fn     func(b *autodiff.Backend, v *autodiff.Variable) *autodiff.Variable
		points []float64
	}{
		{
			name: "sigmoid",
			fn: func(b *autodiff.Backend, v *autodiff.Variable) *autodiff.Variable {
				return b.Sigmoid(v)
			},
			points: []float64{-4, -0.5, 0, 0.5, 4},
		},
		{
			name: "exp",
			fn: func(b *autodiff.Backend, v *autodiff.Variable) *autodiff.Variable {
				return b.Exp(v)
			},
			points: []float64{-2, 0, 1.5},
		},
		{
			name: "log(x*x)",
			fn: func(b *autodiff.Backend, v *autodiff.Variable) *autodiff.Variable {
				out, err := b.Log(b.Mul(v, v))
				if err != nil {
					t.Fatal(err)
				}
				return out
			},
			points: []float64{-3, -0.5, 0.5, 3},
		},
		{
			name: "inv(x) + relu(-x)",
			fn: func(b *autodiff.Backend, v *autodiff.Variable) *autodiff.Variable {
				return b.Add(b.Inv(v), b.ReLU(b.Neg(v)))
			},
			points: []float64{-2, -0.25, 0.25, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := func(x float64) float64 {
				v, _ := build(t, x, tt.fn)
				return v
			}
			for _, x := range tt.points {
				_, got := build(t, x, tt.fn)
				want := numericalGradient(f, x, epsilon)
				if math.Abs(got-want) > 1e-4*math.Max(1, math.Abs(want)) {
					t.Errorf("at x=%v: autodiff %v, numerical %v", x, got, want)
				}
			}
		})
	}
}
