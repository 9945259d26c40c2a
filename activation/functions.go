// SPDX-License-Identifier: MIT

package activation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/mlpnet/matrix"
)

const (
	opRectify   = "Rectify"
	opNormalize = "Normalize"
)

// Rectify returns a new matrix holding max(x, 0) for every entry of m.
// Complexity: O(r*c).
func Rectify(m *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opRectify, err)
	}
	out := m.Clone()
	out.Apply(func(_, _ int, v float64) float64 {
		if v > 0 {
			return v
		}

		return 0
	})

	return out, nil
}

// Normalize returns the softmax of m as a new matrix of the same shape.
//
// Implementation:
//   - Stage 1: pick the axis. A single-row input is treated as one row
//     vector; every other shape (including column vectors) is normalized
//     column by column.
//   - Stage 2: per vector, subtract its maximum, exponentiate, divide by the sum.
//
// Behavior highlights:
//   - Shifting by the maximum keeps exp from overflowing; the result is
//     mathematically unchanged.
//   - Every output vector sums to 1 and all entries lie in [0, 1].
//
// Complexity: O(r*c) time, O(max(r, c)) scratch.
func Normalize(m *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opNormalize, err)
	}
	rows, cols := m.Shape()
	out := m.Clone()

	if rows == 1 {
		vec := out.Raw()
		softmaxInPlace(vec)
		for j, v := range vec {
			out.SetFlat(j, v)
		}

		return out, nil
	}

	vec := make([]float64, rows)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			vec[i] = out.AtFlat(i*cols + j)
		}
		softmaxInPlace(vec)
		for i := 0; i < rows; i++ {
			out.SetFlat(i*cols+j, vec[i])
		}
	}

	return out, nil
}

// softmaxInPlace overwrites v with its softmax. v must be non-empty.
func softmaxInPlace(v []float64) {
	floats.AddConst(-floats.Max(v), v)
	for i, x := range v {
		v[i] = math.Exp(x)
	}
	floats.Scale(1/floats.Sum(v), v)
}
