// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over scalars.
//
// The backend evaluates primitives from the operators package and records
// them on a gradient tape. Backward replays the tape in reverse, calling each
// primitive's backward rule with its recorded forward input.
//
// Example:
//
//	import "github.com/born-ml/scalarops/autodiff"
//
//	func main() {
//	    backend := autodiff.New()
//	    backend.Tape().StartRecording()
//
//	    x := autodiff.NewVariable(2)
//	    y := backend.Mul(x, backend.Sigmoid(x)) // y = x·σ(x)
//
//	    if _, err := backend.Backward(y); err != nil {
//	        panic(err)
//	    }
//	    fmt.Println(x.Grad)
//	}
package autodiff

import (
	"github.com/born-ml/scalarops/internal/autodiff"
)

// Backend evaluates scalar operators and records them for backpropagation.
type Backend = autodiff.Backend

// GradientTape records operations for automatic differentiation.
type GradientTape = autodiff.GradientTape

// Variable is a scalar node of the computation graph.
type Variable = autodiff.Variable

// New creates a backend with an empty, non-recording tape.
func New() *Backend {
	return autodiff.New()
}

// NewGradientTape creates a standalone gradient tape.
func NewGradientTape() *GradientTape {
	return autodiff.NewGradientTape()
}

// NewVariable creates a leaf variable holding value.
func NewVariable(value float64) *Variable {
	return autodiff.NewVariable(value)
}
