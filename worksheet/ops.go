// SPDX-License-Identifier: MIT

package worksheet

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/minmath/linalg"
	"github.com/katalvlaran/minmath/probability"
	"github.com/katalvlaran/minmath/settheory"
	"github.com/samber/lo"
)

type opFunc func(e *env, st Step) (any, error)

// ops maps a step's op name to its implementation.
var ops = map[string]opFunc{
	"add":         opAdd,
	"sub":         opSub,
	"add_scalar":  scalarOp(scalarAdd),
	"sub_scalar":  scalarOp(scalarSub),
	"mul_scalar":  scalarOp(scalarMul),
	"div_scalar":  scalarOp(scalarDiv),
	"mul":         opMul,
	"transpose":   opTranspose,
	"det":         opDet,
	"trace":       opTrace,
	"dot":         opDot,
	"cross":       opCross,
	"norm":        opNorm,
	"to_matrix":   opToMatrix,
	"to_vector":   opToVector,
	"rotate":      opRotate,
	"allclose":    opAllClose,
	"union":       opUnion,
	"intersect":   opIntersect,
	"cardinality": opCardinality,
	"complement":  opComplement,
	"a_or_b":      opAOrB,
	"venn":        opVenn,
}

// Ops returns the supported op names in ascending order.
func Ops() []string {
	names := lo.Keys(ops)
	slices.Sort(names)

	return names
}

func arity(st Step, n int) error {
	if len(st.Args) != n {
		return fmt.Errorf("%w: %s wants %d, got %d", ErrArity, st.Op, n, len(st.Args))
	}

	return nil
}

// --- matrix / vector ----------------------------------------------------------

func opAdd(e *env, st Step) (any, error) {
	return pairwise(e, st, (*linalg.Matrix[float64]).Add, (*linalg.Vector[float64]).Add)
}

func opSub(e *env, st Step) (any, error) {
	return pairwise(e, st, (*linalg.Matrix[float64]).Sub, (*linalg.Vector[float64]).Sub)
}

// pairwise dispatches a binary elementwise op on the kind of the first argument.
func pairwise(
	e *env, st Step,
	onMatrix func(*linalg.Matrix[float64], *linalg.Matrix[float64]) (*linalg.Matrix[float64], error),
	onVector func(*linalg.Vector[float64], *linalg.Vector[float64]) (*linalg.Vector[float64], error),
) (any, error) {
	if err := arity(st, 2); err != nil {
		return nil, err
	}
	first, err := e.lookup(st.Args[0])
	if err != nil {
		return nil, err
	}
	switch a := first.(type) {
	case *linalg.Matrix[float64]:
		b, err := e.matrix(st.Args[1])
		if err != nil {
			return nil, err
		}
		return onMatrix(a, b)
	case *linalg.Vector[float64]:
		b, err := e.vector(st.Args[1])
		if err != nil {
			return nil, err
		}
		return onVector(a, b)
	default:
		return nil, fmt.Errorf("%w: %q is not a matrix or vector", ErrOperandKind, st.Args[0])
	}
}

type scalarKind int

const (
	scalarAdd scalarKind = iota
	scalarSub
	scalarMul
	scalarDiv
)

func scalarOp(k scalarKind) opFunc {
	return func(e *env, st Step) (any, error) {
		if err := arity(st, 1); err != nil {
			return nil, err
		}
		if st.Scalar == nil {
			return nil, fmt.Errorf("%w for %s", ErrMissingScalar, st.Op)
		}
		s := *st.Scalar

		operand, err := e.lookup(st.Args[0])
		if err != nil {
			return nil, err
		}
		switch x := operand.(type) {
		case *linalg.Matrix[float64]:
			switch k {
			case scalarAdd:
				return x.AddScalar(s), nil
			case scalarSub:
				return x.SubScalar(s), nil
			case scalarMul:
				return x.MulScalar(s), nil
			default:
				return x.DivScalar(s)
			}
		case *linalg.Vector[float64]:
			switch k {
			case scalarAdd:
				return x.AddScalar(s), nil
			case scalarSub:
				return x.SubScalar(s), nil
			case scalarMul:
				return x.MulScalar(s), nil
			default:
				return x.DivScalar(s)
			}
		default:
			return nil, fmt.Errorf("%w: %q is not a matrix or vector", ErrOperandKind, st.Args[0])
		}
	}
}

// opMul multiplies a matrix by a matrix or by a vector.
func opMul(e *env, st Step) (any, error) {
	if err := arity(st, 2); err != nil {
		return nil, err
	}
	a, err := e.matrix(st.Args[0])
	if err != nil {
		return nil, err
	}
	rhs, err := e.lookup(st.Args[1])
	if err != nil {
		return nil, err
	}
	switch b := rhs.(type) {
	case *linalg.Matrix[float64]:
		return a.Mul(b)
	case *linalg.Vector[float64]:
		return a.MulVec(b)
	default:
		return nil, fmt.Errorf("%w: %q is not a matrix or vector", ErrOperandKind, st.Args[1])
	}
}

func opTranspose(e *env, st Step) (any, error) {
	if err := arity(st, 1); err != nil {
		return nil, err
	}
	m, err := e.matrix(st.Args[0])
	if err != nil {
		return nil, err
	}

	return m.Transpose(), nil
}

func opDet(e *env, st Step) (any, error) {
	if err := arity(st, 1); err != nil {
		return nil, err
	}
	m, err := e.matrix(st.Args[0])
	if err != nil {
		return nil, err
	}

	return m.Determinant()
}

func opTrace(e *env, st Step) (any, error) {
	if err := arity(st, 1); err != nil {
		return nil, err
	}
	m, err := e.matrix(st.Args[0])
	if err != nil {
		return nil, err
	}

	return m.Trace()
}

func opDot(e *env, st Step) (any, error) {
	if err := arity(st, 2); err != nil {
		return nil, err
	}
	a, err := e.vector(st.Args[0])
	if err != nil {
		return nil, err
	}
	b, err := e.vector(st.Args[1])
	if err != nil {
		return nil, err
	}

	return a.Dot(b)
}

func opCross(e *env, st Step) (any, error) {
	if err := arity(st, 2); err != nil {
		return nil, err
	}
	a, err := e.vec3(st.Args[0])
	if err != nil {
		return nil, err
	}
	b, err := e.vec3(st.Args[1])
	if err != nil {
		return nil, err
	}

	return a.Cross(b).Vector(), nil
}

func (e *env) vec3(name string) (linalg.Vec3[float64], error) {
	v, err := e.vector(name)
	if err != nil {
		return linalg.Vec3[float64]{}, err
	}

	return v.Vec3()
}

func opNorm(e *env, st Step) (any, error) {
	if err := arity(st, 1); err != nil {
		return nil, err
	}
	v, err := e.vector(st.Args[0])
	if err != nil {
		return nil, err
	}

	return v.Norm(), nil
}

func opToMatrix(e *env, st Step) (any, error) {
	if err := arity(st, 1); err != nil {
		return nil, err
	}
	v, err := e.vector(st.Args[0])
	if err != nil {
		return nil, err
	}

	return v.ToMatrix(), nil
}

func opToVector(e *env, st Step) (any, error) {
	if err := arity(st, 1); err != nil {
		return nil, err
	}
	m, err := e.matrix(st.Args[0])
	if err != nil {
		return nil, err
	}

	return m.ToVector()
}

// opRotate builds a rotation matrix for st.Angle about st.Axis ("" is 2D).
// With one vector argument it returns the rotated vector instead.
func opRotate(e *env, st Step) (any, error) {
	var rot *linalg.Matrix[float64]
	switch strings.ToLower(st.Axis) {
	case "":
		rot = linalg.Rotation2D(st.Angle)
	case "x":
		rot = linalg.RotationX(st.Angle)
	case "y":
		rot = linalg.RotationY(st.Angle)
	case "z":
		rot = linalg.RotationZ(st.Angle)
	default:
		return nil, fmt.Errorf("%w %q", ErrBadAxis, st.Axis)
	}

	switch len(st.Args) {
	case 0:
		return rot, nil
	case 1:
		v, err := e.vector(st.Args[0])
		if err != nil {
			return nil, err
		}
		return rot.MulVec(v)
	default:
		return nil, fmt.Errorf("%w: rotate wants 0 or 1, got %d", ErrArity, len(st.Args))
	}
}

// opAllClose compares two matrices or two vectors within the evaluator's epsilon.
func opAllClose(e *env, st Step) (any, error) {
	if err := arity(st, 2); err != nil {
		return nil, err
	}
	first, err := e.lookup(st.Args[0])
	if err != nil {
		return nil, err
	}
	tol := linalg.WithEpsilon(e.cfg.eps)
	switch a := first.(type) {
	case *linalg.Matrix[float64]:
		b, err := e.matrix(st.Args[1])
		if err != nil {
			return nil, err
		}
		return a.AllClose(b, tol), nil
	case *linalg.Vector[float64]:
		b, err := e.vector(st.Args[1])
		if err != nil {
			return nil, err
		}
		return a.AllClose(b, tol), nil
	default:
		return nil, fmt.Errorf("%w: %q is not a matrix or vector", ErrOperandKind, st.Args[0])
	}
}

// --- sets / probability -------------------------------------------------------

func opUnion(e *env, st Step) (any, error) {
	return setPair(e, st, (*settheory.Set[int64]).Or)
}

func opIntersect(e *env, st Step) (any, error) {
	return setPair(e, st, (*settheory.Set[int64]).And)
}

func setPair(e *env, st Step, fn func(a, b *settheory.Set[int64]) *settheory.Set[int64]) (any, error) {
	if err := arity(st, 2); err != nil {
		return nil, err
	}
	a, err := e.set(st.Args[0])
	if err != nil {
		return nil, err
	}
	b, err := e.set(st.Args[1])
	if err != nil {
		return nil, err
	}

	return fn(a, b), nil
}

func opCardinality(e *env, st Step) (any, error) {
	if err := arity(st, 1); err != nil {
		return nil, err
	}
	s, err := e.set(st.Args[0])
	if err != nil {
		return nil, err
	}

	return float64(s.Cardinality()), nil
}

func opComplement(_ *env, st Step) (any, error) {
	if st.Scalar == nil {
		return nil, fmt.Errorf("%w for %s", ErrMissingScalar, st.Op)
	}
	p := probability.Probability(*st.Scalar)
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return float64(probability.Complement(p)), nil
}

// opAOrB reads values [P(A), P(B), P(A and B)].
func opAOrB(_ *env, st Step) (any, error) {
	if len(st.Values) != 3 {
		return nil, fmt.Errorf("%w: a_or_b wants 3 values, got %d", ErrArity, len(st.Values))
	}
	ps := lo.Map(st.Values, func(f float64, _ int) probability.Probability {
		return probability.Probability(f)
	})
	for _, p := range ps {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	return float64(probability.AOrB(ps[0], ps[1], ps[2])), nil
}

// opVenn reports the cardinality of the union of the named sets.
func opVenn(e *env, st Step) (any, error) {
	v := probability.NewVenn[int64]()
	for _, name := range st.Args {
		s, err := e.set(name)
		if err != nil {
			return nil, err
		}
		v.AddSet(name, s)
	}
	n, err := v.NElements()
	if err != nil {
		return nil, err
	}

	return float64(n), nil
}
