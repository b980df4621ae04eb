package operators

import (
	"sort"

	"github.com/pkg/errors"
)

// UnaryFunc is a single-argument float64 operator. Operators that cannot fail
// always return a nil error.
type UnaryFunc func(x float64) (float64, error)

// BinaryFunc is a two-argument float64 operator.
type BinaryFunc func(x, y float64) float64

// BackwardFunc is a reverse-mode rule taking the forward input x and the
// upstream gradient d.
type BackwardFunc func(x, d float64) float64

// Registry maps operator names to their float64 instantiations.
type Registry struct {
	unary    map[string]UnaryFunc
	binary   map[string]BinaryFunc
	backward map[string]BackwardFunc
}

// NewRegistry creates a registry holding every built-in operator.
func NewRegistry() *Registry {
	r := &Registry{
		unary:    make(map[string]UnaryFunc),
		binary:   make(map[string]BinaryFunc),
		backward: make(map[string]BackwardFunc),
	}

	r.registerUnary()
	r.registerBinary()
	r.registerBackward()

	return r
}

func (r *Registry) registerUnary() {
	r.RegisterUnary("id", total(Identity[float64]))
	r.RegisterUnary("neg", total(Neg[float64]))
	r.RegisterUnary("sigmoid", total(Sigmoid[float64]))
	r.RegisterUnary("relu", total(ReLU[float64]))
	r.RegisterUnary("exp", total(Exp[float64]))
	r.RegisterUnary("inv", total(Inv[float64]))
	r.RegisterUnary("log", Log[float64])
}

func (r *Registry) registerBinary() {
	r.RegisterBinary("mul", Mul[float64])
	r.RegisterBinary("add", Add[float64])
	r.RegisterBinary("lt", Lt[float64])
	r.RegisterBinary("eq", Eq[float64])
	r.RegisterBinary("max", Max[float64])
	r.RegisterBinary("is_close", IsClose[float64])
}

func (r *Registry) registerBackward() {
	r.RegisterBackward("log", LogBack[float64])
	r.RegisterBackward("inv", InvBack[float64])
	r.RegisterBackward("relu", ReLUBack[float64])
}

// total adapts an operator that cannot fail to UnaryFunc.
func total(f func(float64) float64) UnaryFunc {
	return func(x float64) (float64, error) {
		return f(x), nil
	}
}

// RegisterUnary adds or replaces a unary operator.
func (r *Registry) RegisterUnary(name string, f UnaryFunc) {
	r.unary[name] = f
}

// RegisterBinary adds or replaces a binary operator.
func (r *Registry) RegisterBinary(name string, f BinaryFunc) {
	r.binary[name] = f
}

// RegisterBackward adds or replaces a backward rule.
func (r *Registry) RegisterBackward(name string, f BackwardFunc) {
	r.backward[name] = f
}

// Unary returns the unary operator registered under name.
func (r *Registry) Unary(name string) (UnaryFunc, bool) {
	f, ok := r.unary[name]
	return f, ok
}

// Binary returns the binary operator registered under name.
func (r *Registry) Binary(name string) (BinaryFunc, bool) {
	f, ok := r.binary[name]
	return f, ok
}

// Backward returns the backward rule registered under name.
func (r *Registry) Backward(name string) (BackwardFunc, bool) {
	f, ok := r.backward[name]
	return f, ok
}

// Arity returns 1 or 2 for a registered forward operator.
func (r *Registry) Arity(name string) (int, error) {
	if _, ok := r.unary[name]; ok {
		return 1, nil
	}
	if _, ok := r.binary[name]; ok {
		return 2, nil
	}
	return 0, errors.Errorf("unsupported operator: %s", name)
}

// SupportedOps returns the sorted names of all forward operators.
func (r *Registry) SupportedOps() []string {
	ops := make([]string, 0, len(r.unary)+len(r.binary))
	for op := range r.unary {
		ops = append(ops, op)
	}
	for op := range r.binary {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// SupportedBackward returns the sorted names of all backward rules.
func (r *Registry) SupportedBackward() []string {
	ops := make([]string, 0, len(r.backward))
	for op := range r.backward {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}
