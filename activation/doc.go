// SPDX-License-Identifier: MIT

// Package activation provides the closed set of element-wise and vector-wise
// activation functions applied at the output of a dense layer.
//
// Two kinds are supported:
//
//   - ReLU    pointwise max(x, 0).
//   - Softmax exp-normalization. A 1×n input is normalized as one row;
//     any other shape is normalized column by column.
//
// Functions never mutate their input; each call returns a fresh *matrix.Dense
// of identical shape. Dispatch from a Kind goes through a fixed function table,
// so adding a kind means adding one entry there and one constant here.
//
// Errors:
//
//   - matrix.ErrNilMatrix  nil input.
//   - ErrUnknownKind       a Kind value outside the closed set.
package activation
