// SPDX-License-Identifier: MIT

package activation

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mlpnet/matrix"
)

// Kind identifies an activation function.
type Kind int

const (
	// ReLU is the rectifier, max(x, 0).
	ReLU Kind = iota
	// Softmax is the exp-normalizer; see Normalize for the axis rule.
	Softmax

	numKinds
)

const opApply = "Apply"

var kindNames = [numKinds]string{
	ReLU:    "relu",
	Softmax: "softmax",
}

// table maps every Kind to its implementation. Indexed by Kind.
var table = [numKinds]func(*matrix.Dense) (*matrix.Dense, error){
	ReLU:    Rectify,
	Softmax: Normalize,
}

// String returns the lower-case name of the kind, or "Kind(n)" for unknown values.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Valid reports whether k belongs to the closed set of kinds.
func (k Kind) Valid() bool { return k >= 0 && k < numKinds }

// ParseKind maps a case-insensitive name ("relu", "softmax") to its Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// Apply runs the activation selected by k over m and returns a new matrix.
//
// Errors:
//   - ErrUnknownKind if k is outside the closed set.
//   - matrix.ErrNilMatrix if m is nil.
func (k Kind) Apply(m *matrix.Dense) (*matrix.Dense, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%s(%s): %w", opApply, k, ErrUnknownKind)
	}

	return table[k](m)
}
