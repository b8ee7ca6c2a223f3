// SPDX-License-Identifier: MIT

package probability

import (
	"fmt"
	"math"
)

// Probability is a real number conventionally in [0,1].
type Probability float64

// Complement returns 1 - p.
func Complement(p Probability) Probability { return 1 - p }

// AOrB returns P(A ∪ B) = P(A) + P(B) - P(A ∩ B).
func AOrB(a, b, aAndB Probability) Probability { return a + b - aAndB }

// Validate reports ErrOutOfRange when p is NaN or lies outside [0,1].
func (p Probability) Validate() error {
	f := float64(p)
	if math.IsNaN(f) || f < 0 || f > 1 {
		return fmt.Errorf("Validate(%g): %w", f, ErrOutOfRange)
	}

	return nil
}
