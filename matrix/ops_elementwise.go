// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Numeric comparison helpers used by callers and tests: AllClose, Equal.
//
// Determinism & Performance:
//   - Flat 0..n-1 loops; early exit on the first violation; no allocations.

package matrix

import "math"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - NaN never compares close to anything.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	for idx := range a.data {
		diff := math.Abs(a.data[idx] - b.data[idx])
		// !(diff <= tol) also rejects NaN.
		if !(diff <= atol+rtol*math.Abs(b.data[idx])) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

// Equal reports whether a and b have the same shape and bit-for-bit equal entries.
// Two nil matrices are equal; a nil and a non-nil one are not.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}
