// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Bridge to gonum/mat so products and norms can be checked against an independent oracle.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mlpnet/matrix"
)

// Tolerances shared by floating-point comparisons.
const (
	absTol = 1e-12
	relTol = 1e-12
)

// approx is the go-cmp option used for float slices in this package.
var approx = cmpopts.EquateApprox(relTol, absTol)

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustRows BUILDS a *Dense from literal rows or fails the test.
//
// AI-Hints:
//   - Prefer for small exact-equality tests; values read top-down like the math.
func MustRows(tb testing.TB, rows ...[]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(tb, err)

	return m
}

// RandFilledDense RETURNS a new r×c Dense filled with deterministic U(-1,1).
// Deterministic per seed; use identical seeds to compare two code paths.
func RandFilledDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	m := MustDense(tb, r, c)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Len(); i++ {
		m.SetFlat(i, rng.Float64()*2-1) // 0*2-1=-1 || 1*2-1=1
	}

	return m
}

// toGonum COPIES m into a gonum *mat.Dense (the oracle representation).
func toGonum(m *matrix.Dense) *mat.Dense {
	return mat.NewDense(m.Rows(), m.Cols(), m.Raw())
}

// requireMatchesGonum ASSERTS shape and element-wise closeness against a gonum result.
func requireMatchesGonum(tb testing.TB, want mat.Matrix, got *matrix.Dense) {
	tb.Helper()
	r, c := want.Dims()
	require.Equal(tb, r, got.Rows(), "rows")
	require.Equal(tb, c, got.Cols(), "cols")

	flat := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			flat = append(flat, want.At(i, j))
		}
	}
	if diff := cmp.Diff(flat, got.Raw(), approx); diff != "" {
		tb.Fatalf("mismatch vs gonum (-want +got):\n%s", diff)
	}
}

// requireClose ASSERTS a ≈ b via matrix.AllClose with the package tolerances.
func requireClose(tb testing.TB, want, got *matrix.Dense) {
	tb.Helper()
	ok, err := matrix.AllClose(got, want, relTol, absTol)
	require.NoError(tb, err)
	require.Truef(tb, ok, "matrices differ:\nwant:\n%sgot:\n%s", want, got)
}
