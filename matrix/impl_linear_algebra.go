// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels of the engine: element-wise
// addition, Hadamard product, matrix multiplication, scalar scaling,
// transpose and vectorization. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Notes:
//   - All kernels use the central validators and wrap via matrixErrorf.
//   - Non-mutating kernels always allocate a fresh result; operands are never aliased.

package matrix

import "fmt"

// zeroSum is the initial accumulator value for products and reductions.
const zeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opAddInPlace = "AddInPlace"
	opMul        = "Mul"
	opScale      = "Scale"
	opHadamard   = "Hadamard"
	opAllClose   = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
//
// Notes:
//   - Wrapping nil with %w yields a non-nil error that wraps a nil cause; only call when err != nil.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: Single flat loop over the backing slices.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Inputs are never mutated; for in-place accumulation use AddInPlace.
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := a.Clone()
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] += b.data[idx]
	}

	return res, nil
}

// AddInPlace accumulates b into the receiver (m += b).
// On error the receiver is left unmodified.
// Complexity: O(r*c), no allocations.
func (m *Dense) AddInPlace(b *Dense) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}
	for idx := range m.data {
		m.data[idx] += b.data[idx]
	}

	return nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→j→k triple loop over row-major strides, accumulating into a scalar.
//
// Behavior highlights:
//   - No blocking or tiling; one allocation for C.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res := &Dense{r: aRows, c: bCols, data: make([]float64, aRows*bCols)}

	var (
		i, j, k    int
		rowOffsetA int
		current    float64
	)
	// da.data layout: i*aCols + k
	// db.data layout: k*bCols + j
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		for j = 0; j < bCols; j++ {
			current = zeroSum
			for k = 0; k < aCols; k++ {
				current += a.data[rowOffsetA+k] * b.data[k*bCols+j]
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Scale returns m*s (matrix times scalar) as a new matrix.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale(m *Dense, s float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := m.Clone()
	for idx := range res.data {
		res.data[idx] *= s
	}

	return res, nil
}

// ScaleLeft returns s*m (scalar times matrix). It is the symmetric
// counterpart of Scale and yields an identical result.
func ScaleLeft(s float64, m *Dense) (*Dense, error) { return Scale(m, s) }

// Hadamard computes the element-wise product C = A ⊙ B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Hadamard(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res := a.Clone()
	for idx := range res.data {
		res.data[idx] *= b.data[idx]
	}

	return res, nil
}

// Dot is the method form of Hadamard: the element-wise product m ⊙ b.
func (m *Dense) Dot(b *Dense) (*Dense, error) { return Hadamard(m, b) }

// Transposed returns a new matrix T with T(j,i) = m(i,j). The receiver is unchanged.
// Complexity: O(r*c).
func (m *Dense) Transposed() *Dense {
	res := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j] // (Aᵀ)(j,i) = A(i,j)
		}
	}

	return res
}

// Transpose replaces the receiver with its transpose and returns it,
// so calls can be chained: m.Transpose().Vectorize().
func (m *Dense) Transpose() *Dense {
	t := m.Transposed()
	m.swap(t)

	return m
}

// Vectorized returns a new (r*c)×1 column holding m's entries in row-major
// reading order. The receiver is unchanged.
func (m *Dense) Vectorized() *Dense {
	return &Dense{r: len(m.data), c: 1, data: m.Raw()}
}

// Vectorize reshapes the receiver in place into a (r*c)×1 column and returns it.
// Row-major storage already holds the right order, so only the shape changes.
func (m *Dense) Vectorize() *Dense {
	m.r, m.c = len(m.data), 1

	return m
}
