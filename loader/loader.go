// SPDX-License-Identifier: MIT

// Package loader reads raw parameter and image files into matrices.
//
// Every file is a headerless run of rows*cols packed float32 values in
// row-major order (see matrix.ReadInto). The caller supplies the shape; a
// file shorter than the shape needs fails with matrix.ErrDimensionMismatch.
// Trailing bytes beyond rows*cols values are ignored.
package loader

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mlpnet/matrix"
	"github.com/katalvlaran/mlpnet/mlp"
)

// ErrShapeCount is returned when the number of paths and shapes differ.
var ErrShapeCount = errors.New("loader: path and shape counts differ")

// MaxParallel bounds the number of files LoadParameters reads at once.
const MaxParallel = 8

// LoadMatrix opens path and decodes a rows×cols matrix from it.
func LoadMatrix(path string, rows, cols int, opts ...matrix.Option) (*matrix.Dense, error) {
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("LoadMatrix(%s): %w", path, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadMatrix(%s): %w: %w", path, matrix.ErrIO, err)
	}
	defer f.Close()

	if _, err = matrix.ReadInto(f, m, opts...); err != nil {
		return nil, fmt.Errorf("LoadMatrix(%s): %w", path, err)
	}

	return m, nil
}

// LoadImage reads a rows×cols image and returns it as a (rows*cols)×1 column,
// the input layout a Network expects.
func LoadImage(path string, rows, cols int, opts ...matrix.Option) (*matrix.Dense, error) {
	img, err := LoadMatrix(path, rows, cols, opts...)
	if err != nil {
		return nil, err
	}

	return img.Vectorize(), nil
}

// LoadParameters reads weight and bias files concurrently.
//
// weightPaths[i] is decoded with weightShapes[i], biasPaths[i] with
// biasShapes[i]. The first failure cancels the remaining reads and is
// returned; results are only returned when every file loaded.
//
// Errors:
//   - ErrShapeCount if a path list and its shape list differ in length.
//   - ctx.Err() if ctx is done before a file is opened.
//   - whatever LoadMatrix reports for an individual file.
func LoadParameters(
	ctx context.Context,
	weightPaths, biasPaths []string,
	weightShapes, biasShapes []mlp.Shape,
	opts ...matrix.Option,
) (weights, biases []*matrix.Dense, err error) {
	if len(weightPaths) != len(weightShapes) || len(biasPaths) != len(biasShapes) {
		return nil, nil, fmt.Errorf("LoadParameters: %d/%d weights, %d/%d biases: %w",
			len(weightPaths), len(weightShapes), len(biasPaths), len(biasShapes), ErrShapeCount)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxParallel)

	load := func(dst []*matrix.Dense, jobs []lo.Tuple2[string, mlp.Shape]) {
		for i, job := range jobs {
			i, job := i, job
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				m, err := LoadMatrix(job.A, job.B.Rows, job.B.Cols, opts...)
				if err != nil {
					return err
				}
				dst[i] = m

				return nil
			})
		}
	}

	weights = make([]*matrix.Dense, len(weightPaths))
	biases = make([]*matrix.Dense, len(biasPaths))
	load(weights, lo.Zip2(weightPaths, weightShapes))
	load(biases, lo.Zip2(biasPaths, biasShapes))

	if err = g.Wait(); err != nil {
		return nil, nil, err
	}

	return weights, biases, nil
}
