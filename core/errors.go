// SPDX-License-Identifier: MIT

package core

import "errors"

// ErrDivisionByZero is returned when an integer scalar is divided by zero.
// Float division never produces it; IEEE-754 semantics apply instead.
var ErrDivisionByZero = errors.New("core: integer division by zero")
