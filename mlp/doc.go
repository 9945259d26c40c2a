// SPDX-License-Identifier: MIT

// Package mlp assembles dense layers into a fixed-depth multilayer perceptron
// and classifies its output.
//
// A Network is built once from ordered weight and bias matrices. Every layer
// but the last uses ReLU; the last uses Softmax, so the output column is a
// probability distribution over classes. Construction validates that the
// shapes chain: the output size of layer i equals the input size of layer i+1.
//
// Typical use:
//
//	net, err := mlp.New(weights, biases)            // depth MLPSize
//	d, err := net.Predict(img.Vectorized())         // img is ImageRows×ImageCols
//	fmt.Println(d.Value, d.Probability)
//
// A Network is read-only after New, so concurrent Predict calls are safe.
package mlp
