// SPDX-License-Identifier: MIT

package mlp

// Image geometry of the reference digit classifier.
const (
	ImageRows = 28
	ImageCols = 28
)

// Shape is a (rows, cols) pair.
type Shape struct {
	Rows, Cols int
}

// DefaultWeightShapes lists the weight shapes of the reference
// 784→128→64→20→10 classifier, input layer first.
var DefaultWeightShapes = [MLPSize]Shape{
	{128, ImageRows * ImageCols},
	{64, 128},
	{20, 64},
	{10, 20},
}

// DefaultBiasShapes lists the matching bias columns.
var DefaultBiasShapes = [MLPSize]Shape{
	{128, 1},
	{64, 1},
	{20, 1},
	{10, 1},
}
