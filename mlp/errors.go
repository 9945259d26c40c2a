// SPDX-License-Identifier: MIT

package mlp

import "errors"

// ErrLayerCount is returned by New when the number of weight or bias matrices
// differs from the configured depth.
var ErrLayerCount = errors.New("mlp: layer count mismatch")
