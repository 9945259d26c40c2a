// SPDX-License-Identifier: MIT

package mlp

import (
	"fmt"

	"github.com/katalvlaran/mlpnet/activation"
	"github.com/katalvlaran/mlpnet/layer"
	"github.com/katalvlaran/mlpnet/matrix"
)

const (
	opNew     = "mlp.New"
	opForward = "mlp.Forward"
)

// Digit is a classification result: the winning class index and its probability.
type Digit struct {
	Value       int
	Probability float64
}

// Network is an ordered, fixed-depth chain of dense layers.
type Network struct {
	layers []*layer.Dense
}

// New builds a network from ordered weights and biases.
//
// Implementation:
//   - Stage 1: check both slices hold exactly depth entries (WithDepth, default MLPSize).
//   - Stage 2: build each layer (ReLU for all but the last, Softmax for the last).
//   - Stage 3: check layer i's output size equals layer i+1's input size.
//
// Errors:
//   - ErrLayerCount on a wrong number of matrices.
//   - matrix.ErrNilMatrix for a nil entry.
//   - matrix.ErrDimensionMismatch if a bias does not match its weights or the layers do not chain.
func New(weights, biases []*matrix.Dense, opts ...Option) (*Network, error) {
	o := gatherOptions(opts...)
	if len(weights) != o.depth || len(biases) != o.depth {
		return nil, fmt.Errorf("%s: depth %d, got %d weights and %d biases: %w",
			opNew, o.depth, len(weights), len(biases), ErrLayerCount)
	}

	layers := make([]*layer.Dense, o.depth)
	for i := range layers {
		kind := activation.ReLU
		if i == o.depth-1 {
			kind = activation.Softmax
		}
		l, err := layer.New(weights[i], biases[i], kind)
		if err != nil {
			return nil, fmt.Errorf("%s: layer %d: %w", opNew, i, err)
		}
		if i > 0 && layers[i-1].OutputSize() != l.InputSize() {
			return nil, fmt.Errorf("%s: layer %d outputs %d, layer %d expects %d: %w",
				opNew, i-1, layers[i-1].OutputSize(), i, l.InputSize(), matrix.ErrDimensionMismatch)
		}
		layers[i] = l
	}

	return &Network{layers: layers}, nil
}

// Forward threads x through every layer and returns the final activation.
// On any failure the output is nil; no partial result escapes.
func (n *Network) Forward(x *matrix.Dense) (*matrix.Dense, error) {
	out := x
	for i, l := range n.layers {
		next, err := l.Forward(out)
		if err != nil {
			return nil, fmt.Errorf("%s: layer %d: %w", opForward, i, err)
		}
		out = next
	}

	return out, nil
}

// Predict runs Forward and classifies the result.
func (n *Network) Predict(x *matrix.Dense) (Digit, error) {
	out, err := n.Forward(x)
	if err != nil {
		return Digit{}, err
	}

	return Classify(out), nil
}

// Classify returns the index and value of the largest entry in column 0 of out.
//
// The scan starts from {Value: 0, Probability: 0} and only moves on a strictly
// greater entry, so ties keep the earliest index and an output with no
// positive entry yields {0, 0}. A nil out also yields {0, 0}.
func Classify(out *matrix.Dense) Digit {
	var best Digit
	if out == nil {
		return best
	}
	cols := out.Cols()
	for i := 0; i < out.Rows(); i++ {
		if p := out.AtFlat(i * cols); p > best.Probability {
			best = Digit{Value: i, Probability: p}
		}
	}

	return best
}

// Depth is the number of layers.
func (n *Network) Depth() int { return len(n.layers) }

// InputSize is the number of rows Forward expects in its input column.
func (n *Network) InputSize() int { return n.layers[0].InputSize() }

// OutputSize is the number of classes.
func (n *Network) OutputSize() int { return n.layers[len(n.layers)-1].OutputSize() }

// Layer returns the i-th layer. It panics if i is out of range.
func (n *Network) Layer(i int) *layer.Dense { return n.layers[i] }
