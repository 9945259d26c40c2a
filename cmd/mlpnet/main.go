// SPDX-License-Identifier: MIT

// Command mlpnet classifies 28×28 digit images with a pre-trained four-layer
// perceptron.
//
// Usage:
//
//	mlpnet w1 w2 w3 w4 b1 b2 b3 b4 [--image path]... [--verbose]
//
// Weights and biases are raw little-endian float32 files shaped as the
// reference 784→128→64→20→10 network. With --image each given file is
// classified in turn; otherwise image paths are read from stdin until "q".
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
