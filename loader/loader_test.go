// SPDX-License-Identifier: MIT
package loader_test

import (
	"context"
	"encoding/binary"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mlpnet/loader"
	"github.com/katalvlaran/mlpnet/matrix"
	"github.com/katalvlaran/mlpnet/mlp"
)

// writeFloats writes vals as packed little-endian float32 to dir/name.
func writeFloats(t *testing.T, dir, name string, vals ...float32) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, binary.Write(f, binary.LittleEndian, vals))
	require.NoError(t, f.Close())

	return path
}

func seq(n int, scale float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i) * scale
	}

	return out
}

func TestLoadMatrix_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeFloats(t, dir, "w.bin", 1, 2.5, -3, 0.25, 8, 0)

	m, err := loader.LoadMatrix(path, 2, 3)
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{1, 2.5, -3, 0.25, 8, 0}, m.Raw()); diff != "" {
		t.Fatalf("decoded values (-want +got):\n%s", diff)
	}
}

func TestLoadMatrix_Errors(t *testing.T) {
	dir := t.TempDir()
	short := writeFloats(t, dir, "short.bin", 1, 2, 3)

	_, err := loader.LoadMatrix(short, 2, 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = loader.LoadMatrix(filepath.Join(dir, "missing.bin"), 1, 1)
	require.ErrorIs(t, err, matrix.ErrIO)
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = loader.LoadMatrix(short, 0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestLoadImage(t *testing.T) {
	path := writeFloats(t, t.TempDir(), "img.bin", seq(6, 0.5)...)
	col, err := loader.LoadImage(path, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 6, col.Rows())
	require.Equal(t, 1, col.Cols())
	require.Equal(t, []float64{0, 0.5, 1, 1.5, 2, 2.5}, col.Raw())
}

func TestLoadParameters(t *testing.T) {
	dir := t.TempDir()
	shapesW := []mlp.Shape{{Rows: 3, Cols: 4}, {Rows: 2, Cols: 3}}
	shapesB := []mlp.Shape{{Rows: 3, Cols: 1}, {Rows: 2, Cols: 1}}
	wp := []string{
		writeFloats(t, dir, "w1", seq(12, 1)...),
		writeFloats(t, dir, "w2", seq(6, 2)...),
	}
	bp := []string{
		writeFloats(t, dir, "b1", seq(3, 3)...),
		writeFloats(t, dir, "b2", seq(2, 4)...),
	}

	ws, bs, err := loader.LoadParameters(context.Background(), wp, bp, shapesW, shapesB)
	require.NoError(t, err)
	require.Len(t, ws, 2)
	require.Len(t, bs, 2)
	for i, s := range shapesW {
		r, c := ws[i].Shape()
		require.Equal(t, s, mlp.Shape{Rows: r, Cols: c})
	}
	require.Equal(t, []float64{0, 2, 4, 6, 8, 10}, ws[1].Raw())
	require.Equal(t, []float64{0, 4}, bs[1].Raw())

	net, err := mlp.New(ws, bs, mlp.WithDepth(2))
	require.NoError(t, err)
	require.Equal(t, 4, net.InputSize())
}

func TestLoadParameters_Errors(t *testing.T) {
	dir := t.TempDir()
	ok := writeFloats(t, dir, "ok", seq(4, 1)...)
	short := writeFloats(t, dir, "short", 1)
	one := []mlp.Shape{{Rows: 2, Cols: 2}}

	_, _, err := loader.LoadParameters(context.Background(), []string{ok}, nil, one, one)
	require.ErrorIs(t, err, loader.ErrShapeCount)

	ws, bs, err := loader.LoadParameters(context.Background(), []string{ok}, []string{short}, one, one)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Nil(t, ws)
	require.Nil(t, bs)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = loader.LoadParameters(ctx, []string{ok}, []string{ok}, one, one)
	require.ErrorIs(t, err, context.Canceled)
}
