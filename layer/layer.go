// SPDX-License-Identifier: MIT

// Package layer implements a fully connected layer: an affine map followed by
// an activation, output = act(W·x + b).
//
// A Dense layer owns private copies of its parameters; mutating the matrices
// passed to New afterwards has no effect on the layer. After construction a
// layer is read-only and may be shared by concurrent callers of Forward.
package layer

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mlpnet/activation"
	"github.com/katalvlaran/mlpnet/matrix"
)

// ErrBiasShape is returned by New when the bias is not a column with one row
// per output unit. It wraps matrix.ErrDimensionMismatch.
var ErrBiasShape = fmt.Errorf("layer: bias shape: %w", matrix.ErrDimensionMismatch)

const (
	opNew     = "layer.New"
	opForward = "layer.Forward"
)

// Dense is a fully connected layer with weights of shape out×in and a bias
// of shape out×1.
type Dense struct {
	weights *matrix.Dense
	bias    *matrix.Dense
	kind    activation.Kind
}

// New binds weights, bias and an activation kind into a layer.
//
// Errors:
//   - matrix.ErrNilMatrix if weights or bias is nil.
//   - ErrBiasShape if bias is not weights.Rows()×1.
//   - activation.ErrUnknownKind if kind is outside the closed set.
func New(weights, bias *matrix.Dense, kind activation.Kind) (*Dense, error) {
	if err := errors.Join(matrix.ValidateNotNil(weights), matrix.ValidateNotNil(bias)); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	if bias.Rows() != weights.Rows() || bias.Cols() != 1 {
		return nil, fmt.Errorf("%s: weights %dx%d, bias %dx%d: %w",
			opNew, weights.Rows(), weights.Cols(), bias.Rows(), bias.Cols(), ErrBiasShape)
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%s(%s): %w", opNew, kind, activation.ErrUnknownKind)
	}

	return &Dense{weights: weights.Clone(), bias: bias.Clone(), kind: kind}, nil
}

// Forward computes act(W·x + b). x must have InputSize() rows and one column.
//
// Errors:
//   - matrix.ErrNilMatrix if x is nil.
//   - matrix.ErrDimensionMismatch if x.Rows() != InputSize() or x is not a column.
func (l *Dense) Forward(x *matrix.Dense) (*matrix.Dense, error) {
	z, err := matrix.Mul(l.weights, x)
	if err != nil {
		return nil, fmt.Errorf("%s(%s %dx%d): %w", opForward, l.kind, l.weights.Rows(), l.weights.Cols(), err)
	}
	if err = z.AddInPlace(l.bias); err != nil {
		return nil, fmt.Errorf("%s(%s %dx%d): %w", opForward, l.kind, l.weights.Rows(), l.weights.Cols(), err)
	}

	return l.kind.Apply(z)
}

// Weights returns a copy of the weight matrix.
func (l *Dense) Weights() *matrix.Dense { return l.weights.Clone() }

// Bias returns a copy of the bias column.
func (l *Dense) Bias() *matrix.Dense { return l.bias.Clone() }

// Activation reports the layer's activation kind.
func (l *Dense) Activation() activation.Kind { return l.kind }

// InputSize is the number of rows Forward expects in its input.
func (l *Dense) InputSize() int { return l.weights.Cols() }

// OutputSize is the number of rows Forward produces.
func (l *Dense) OutputSize() int { return l.weights.Rows() }
