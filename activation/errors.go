// SPDX-License-Identifier: MIT

package activation

import "errors"

// ErrUnknownKind is returned when a Kind outside the closed set is applied or parsed.
var ErrUnknownKind = errors.New("activation: unknown kind")
