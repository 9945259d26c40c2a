// Package mlpnet is a small, dependency-light inference stack for
// handwritten digit recognition with a fully connected neural network.
//
// What is inside?
//
//	matrix/       owned row-major float64 matrices: arithmetic, transpose,
//	              RREF, float32 binary ingestion and glyph rendering
//	activation/   ReLU and Softmax behind a closed Kind enum
//	layer/        a dense layer, act(W·x + b)
//	mlp/          a fixed-depth chain of layers with argmax classification
//	loader/       concurrent loading of raw parameter and image files
//	cmd/mlpnet    command-line front end
//
// Pipeline:
//
//	28×28 image ──Vectorized──▶ 784×1 ──ReLU──▶ 128 ──ReLU──▶ 64 ──ReLU──▶ 20 ──Softmax──▶ 10
//	                                                                                  │
//	                                                                         Classify ▼
//	                                                                      Digit{Value, Probability}
//
// Quick start:
//
//	ws, bs, err := loader.LoadParameters(ctx, weightPaths, biasPaths,
//		mlp.DefaultWeightShapes[:], mlp.DefaultBiasShapes[:])
//	net, err := mlp.New(ws, bs)
//	x, err := loader.LoadImage(path, mlp.ImageRows, mlp.ImageCols)
//	d, err := net.Predict(x)
//
// All errors are sentinels matched with errors.Is; nothing panics on user input.
package mlpnet
