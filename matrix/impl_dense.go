// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Offer unchecked flat accessors (AtFlat/SetFlat) for kernels whose shape is already proven.
//   - Keep value semantics explicit: Clone and Assign always produce an independent buffer.
//
// AI-Hints:
//   - Prefer At/Set in external code; internal hot paths (RREF, Mul) index data directly.
//   - Assign is copy-and-swap: on error the receiver keeps its previous contents.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Assign: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxAssign = "Assign" // method tag used in error wrappers
	ctxNew    = "NewFromRows"
	ctxData   = "NewFromData"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of float64 values.
//   - r,c hold dimensions (rows, cols), both >= 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense exclusively owns its buffer; no two Dense values returned by this
// package ever share storage.
//
// The zero value is a 0×0 matrix and is not usable; obtain a Dense from
// NewDense, NewDefault, NewFromRows or NewFromData.
type Dense struct {
	r, c int       // row and column counts (>=1)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	// make() zero-fills the buffer deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDefault returns the 1×1 zero matrix.
func NewDefault() *Dense {
	return &Dense{r: 1, c: 1, data: make([]float64, 1)}
}

// NewFromRows builds a Dense from a rectangular slice of rows (copied).
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrDimensionMismatch when rows are ragged.
//
// Complexity: O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(ctxNew, ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxNew, i, len(row), m.c, ErrDimensionMismatch)
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// NewFromData builds a rows×cols Dense from a row-major slice (copied).
// len(data) must equal rows*cols, otherwise ErrDimensionMismatch.
func NewFromData(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(ctxData, err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(ctxData, ErrDimensionMismatch)
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Len returns rows*cols, the length of the flat buffer.
func (m *Dense) Len() int { return len(m.data) }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Negative and too-large coordinates are both rejected; public methods
// (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns the wrapped sentinel.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Prefer At in external code; internal hot paths may index directly.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// AtFlat reads the i-th element of the row-major buffer.
// It performs no shape validation: the caller guarantees 0 <= i < Len().
func (m *Dense) AtFlat(i int) float64 { return m.data[i] }

// SetFlat writes the i-th element of the row-major buffer (unchecked, see AtFlat).
func (m *Dense) SetFlat(i int, v float64) { m.data[i] = v }

// Raw returns a copy of the row-major buffer.
func (m *Dense) Raw() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy (new buffer, same shape).
// Independence: mutations on the clone never affect the original.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{r: m.r, c: m.c, data: cp}
}

// swap exchanges shape and storage with other in O(1).
func (m *Dense) swap(other *Dense) {
	m.r, other.r = other.r, m.r
	m.c, other.c = other.c, m.c
	m.data, other.data = other.data, m.data
}

// Assign replaces the receiver's contents with a deep copy of src.
// MAIN DESCRIPTION:
//   - Copy-and-swap assignment; the receiver may change shape.
//
// Implementation:
//   - Stage 1: validate src (nil → ErrNilMatrix, receiver untouched).
//   - Stage 2: build the temporary copy.
//   - Stage 3: swap the temporary into the receiver.
//
// Behavior highlights:
//   - Strong guarantee: on any error the receiver is unmodified.
//   - Self-assignment is a no-op; the result never aliases src.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Assign(src *Dense) error {
	if src == nil {
		return matrixErrorf(ctxAssign, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	tmp := src.Clone()
	m.swap(tmp)

	return nil
}

// String renders rows as "[a, b]\n" lines for diagnostics.
// Not for hot paths; for the thresholded display grid use WriteTo/Render.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: O(r*c), no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int

	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, in row-major order.
// Keep transforms pure; for a non-mutating map, Apply on a Clone.
// Complexity: O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) {
	var i, j, base int

	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}
