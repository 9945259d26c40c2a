// Package matrix is a from-scratch dense-matrix engine.
//
// What & Why:
//
//	Dense is an owned, row-major, two-dimensional array of float64 values with
//	bounds-checked element access (At/Set), unchecked flat access for internal
//	kernels (AtFlat/SetFlat), arithmetic (Add, AddInPlace, Mul, Scale,
//	ScaleLeft, Hadamard), shape transforms (Transpose, Vectorize and their
//	non-mutating twins) and numeric utilities (Norm, Sum, Argmax, RREF).
//	Every Dense owns its buffer: Clone and Assign deep-copy, nothing aliases.
//
// Errors:
//
//	All failures are sentinels matched with errors.Is: ErrInvalidDimensions
//	(and its child ErrDimensionMismatch), ErrOutOfRange, ErrIO, ErrNilMatrix.
//
// I/O:
//
//	ReadFrom/ReadInto fill a shaped matrix from packed float32 values;
//	WriteTo/Render draw a thresholded glyph grid for presentation layers.
//
// Complexity:
//
//	At/Set are O(1); element-wise kernels O(r*c); Mul O(r*n*c); RREF O(r²·c).
package matrix
