// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.
// Panics are reserved for programmer errors (nonsensical option values).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly from validators; kernels wrap with matrixErrorf("Op", err) at the
// detection site and callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> I/O.

var (
	// ErrInvalidDimensions is returned when a requested shape is invalid (rows<=0 or cols<=0).
	// It is also the parent of ErrDimensionMismatch: every mismatch is an invalid dimension.
	ErrInvalidDimensions = errors.New("matrix: invalid dimension")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Hadamard on different shapes, Mul where a.Cols != b.Rows, or a
	// binary source holding fewer values than the destination needs.
	// errors.Is(err, ErrInvalidDimensions) is true for this sentinel.
	ErrDimensionMismatch = fmt.Errorf("%w: operand shapes mismatch", ErrInvalidDimensions)

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrIO signals that a binary read did not complete after the size check passed.
	ErrIO = errors.New("matrix: read failed")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
