// SPDX-License-Identifier: MIT
package layer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mlpnet/activation"
	"github.com/katalvlaran/mlpnet/layer"
	"github.com/katalvlaran/mlpnet/matrix"
)

func mustRows(t *testing.T, rows ...[]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func identity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return m
}

func zeros(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewZeros(r, c)
	require.NoError(t, err)

	return m
}

func TestForward_IdentityReLU(t *testing.T) {
	l, err := layer.New(identity(t, 2), zeros(t, 2, 1), activation.ReLU)
	require.NoError(t, err)

	out, err := l.Forward(mustRows(t, []float64{-1}, []float64{2}))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2}, out.Raw())
}

func TestForward_AffineMap(t *testing.T) {
	w := mustRows(t, []float64{1, 2}, []float64{3, 4})
	b := mustRows(t, []float64{-20}, []float64{1})
	l, err := layer.New(w, b, activation.ReLU)
	require.NoError(t, err)

	// W·x = [17, 39]; +b = [-3, 40]; relu = [0, 40]
	out, err := l.Forward(mustRows(t, []float64{5}, []float64{6}))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 40}, out.Raw())
}

func TestForward_Softmax(t *testing.T) {
	l, err := layer.New(identity(t, 3), zeros(t, 3, 1), activation.Softmax)
	require.NoError(t, err)

	out, err := l.Forward(mustRows(t, []float64{7}, []float64{7}, []float64{7}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, out.Raw(), 1e-12)
}

func TestForward_Mismatch(t *testing.T) {
	l, err := layer.New(identity(t, 2), zeros(t, 2, 1), activation.ReLU)
	require.NoError(t, err)

	_, err = l.Forward(zeros(t, 3, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// two columns pass Mul but not the bias add
	_, err = l.Forward(zeros(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = l.Forward(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNew_Validation(t *testing.T) {
	_, err := layer.New(nil, zeros(t, 2, 1), activation.ReLU)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = layer.New(identity(t, 2), nil, activation.ReLU)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = layer.New(identity(t, 2), zeros(t, 3, 1), activation.ReLU)
	require.ErrorIs(t, err, layer.ErrBiasShape)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = layer.New(identity(t, 2), zeros(t, 2, 2), activation.ReLU)
	require.ErrorIs(t, err, layer.ErrBiasShape)

	_, err = layer.New(identity(t, 2), zeros(t, 2, 1), activation.Kind(42))
	require.ErrorIs(t, err, activation.ErrUnknownKind)
}

func TestNew_OwnsParameters(t *testing.T) {
	w := mustRows(t, []float64{1, 0}, []float64{0, 1})
	b := zeros(t, 2, 1)
	l, err := layer.New(w, b, activation.ReLU)
	require.NoError(t, err)

	require.NoError(t, w.Set(0, 0, 100))
	require.NoError(t, b.Set(0, 0, 100))

	out, err := l.Forward(mustRows(t, []float64{1}, []float64{1}))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, out.Raw())

	// accessors return copies too
	got := l.Weights()
	require.NoError(t, got.Set(1, 1, -5))
	assert.True(t, matrix.Equal(identity(t, 2), l.Weights()))
	assert.True(t, matrix.Equal(zeros(t, 2, 1), l.Bias()))
}

func TestAccessors(t *testing.T) {
	l, err := layer.New(zeros(t, 3, 5), zeros(t, 3, 1), activation.Softmax)
	require.NoError(t, err)
	assert.Equal(t, 5, l.InputSize())
	assert.Equal(t, 3, l.OutputSize())
	assert.Equal(t, activation.Softmax, l.Activation())
}
