// SPDX-License-Identifier: MIT

package probability

import "errors"

var (
	// ErrOutOfRange is returned by Validate for values outside [0,1] or NaN.
	ErrOutOfRange = errors.New("probability: value out of range [0,1]")

	// ErrNoSets indicates a union over an empty Venn.
	ErrNoSets = errors.New("probability: no sets added")
)
