// SPDX-License-Identifier: MIT

package worksheet

import "errors"

var (
	// ErrUnknownOp indicates a step whose op is not recognised.
	ErrUnknownOp = errors.New("worksheet: unknown op")

	// ErrUnknownOperand indicates a step argument that names no operand.
	ErrUnknownOperand = errors.New("worksheet: unknown operand")

	// ErrOperandKind indicates an operand of the wrong kind for the op
	// (for example a set passed to transpose).
	ErrOperandKind = errors.New("worksheet: wrong operand kind")

	// ErrArity indicates a wrong number of args or values.
	ErrArity = errors.New("worksheet: wrong number of arguments")

	// ErrMissingScalar indicates a scalar op without a "scalar" field.
	ErrMissingScalar = errors.New("worksheet: missing scalar")

	// ErrDuplicateName indicates two operands declared under one name.
	ErrDuplicateName = errors.New("worksheet: duplicate operand name")

	// ErrInvalidEpsilon indicates a negative or non-finite WithEpsilon value.
	ErrInvalidEpsilon = errors.New("worksheet: epsilon must be finite and >= 0")

	// ErrBadAxis indicates a rotate axis other than "", x, y or z.
	ErrBadAxis = errors.New("worksheet: bad rotation axis")
)
