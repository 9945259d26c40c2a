// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Whole-matrix reductions: Frobenius norm, sum of entries, argmax.
//
// Determinism & Performance:
//   - Single flat pass over the row-major buffer (0..n-1); no allocations.

package matrix

import "math"

// Norm returns the Frobenius norm √(Σ m[i,j]²).
// Complexity: O(r*c).
func (m *Dense) Norm() float64 {
	sq := zeroSum
	for _, v := range m.data {
		sq += v * v
	}

	return math.Sqrt(sq)
}

// Sum returns the sum of all entries.
// Complexity: O(r*c).
func (m *Dense) Sum() float64 {
	s := zeroSum
	for _, v := range m.data {
		s += v
	}

	return s
}

// Argmax returns the flat row-major index of the maximal entry.
//
// Behavior highlights:
//   - Strict '>' comparison: among equal maxima the earliest index wins.
//   - NaN entries never compare greater and are therefore skipped,
//     unless data[0] is NaN, in which case 0 is returned.
//
// Complexity: O(r*c).
func (m *Dense) Argmax() int {
	best := 0
	for idx := 1; idx < len(m.data); idx++ {
		if m.data[idx] > m.data[best] {
			best = idx
		}
	}

	return best
}
