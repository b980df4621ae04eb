package operators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t,
		[]string{"add", "eq", "exp", "id", "inv", "is_close", "log", "lt", "max", "mul", "neg", "relu", "sigmoid"},
		r.SupportedOps())
	assert.Equal(t, []string{"inv", "log", "relu"}, r.SupportedBackward())
}

func TestRegistry_Unary(t *testing.T) {
	r := NewRegistry()

	sigmoid, ok := r.Unary("sigmoid")
	require.True(t, ok)
	got, err := sigmoid(0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, got)

	log, ok := r.Unary("log")
	require.True(t, ok)
	_, err = log(-1)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestRegistry_Binary(t *testing.T) {
	r := NewRegistry()

	isClose, ok := r.Binary("is_close")
	require.True(t, ok)
	assert.Equal(t, 1.0, isClose(1.0, 1.0001))

	_, ok = r.Binary("sigmoid")
	assert.False(t, ok, "unary ops should not resolve as binary")
}

func TestRegistry_Backward(t *testing.T) {
	r := NewRegistry()

	invBack, ok := r.Backward("inv")
	require.True(t, ok)
	assert.Equal(t, -0.25, invBack(2, 1))

	_, ok = r.Backward("sigmoid")
	assert.False(t, ok)
}

func TestRegistry_Arity(t *testing.T) {
	r := NewRegistry()

	n, err := r.Arity("relu")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = r.Arity("max")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = r.Arity("tanh")
	assert.Error(t, err)
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	r.RegisterBinary("sub", func(x, y float64) float64 { return x - y })

	sub, ok := r.Binary("sub")
	require.True(t, ok)
	assert.Equal(t, 1.0, sub(3, 2))
	assert.Contains(t, r.SupportedOps(), "sub")
}
