package operators

// LogBack returns the gradient of Log at x scaled by the upstream gradient d.
//
//	∂L/∂x = ∂L/∂out * (1 / x)
//
// x is the forward input, not the forward output.
func LogBack[T Float](x, d T) T {
	return d / x
}

// InvBack returns the gradient of Inv at x scaled by the upstream gradient d.
//
//	∂L/∂x = ∂L/∂out * (-1 / x²)
//
// At x == 0 the result is ±Inf, or NaN when d is also 0.
func InvBack[T Float](x, d T) T {
	return -d / (x * x)
}

// ReLUBack returns the gradient of ReLU at x scaled by the upstream gradient d.
//
//	∂L/∂x = ∂L/∂out if x >= 0, else 0
//
// The sub-gradient at x == 0 routes d through.
func ReLUBack[T Float](x, d T) T {
	if x < 0 {
		return 0
	}
	return d
}
