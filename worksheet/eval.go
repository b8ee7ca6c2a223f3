// SPDX-License-Identifier: MIT

package worksheet

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/katalvlaran/minmath/core"
	"github.com/katalvlaran/minmath/linalg"
	"github.com/katalvlaran/minmath/settheory"
)

// EvalOption configures Evaluate.
type EvalOption func(*evalConfig)

type evalConfig struct {
	eps    float64
	logger *log.Logger
}

// WithEpsilon sets the absolute tolerance used by the allclose op.
// Evaluate rejects a negative or non-finite eps with ErrInvalidEpsilon.
func WithEpsilon(eps float64) EvalOption {
	return func(c *evalConfig) { c.eps = eps }
}

// WithLogger logs every step to l before it runs.
func WithLogger(l *log.Logger) EvalOption {
	return func(c *evalConfig) { c.logger = l }
}

// env is the operand namespace: *linalg.Matrix[float64],
// *linalg.Vector[float64], *settheory.Set[int64], float64 or bool.
type env struct {
	vals map[string]any
	cfg  evalConfig
}

// Evaluate runs ws step by step and writes every result to w.
// It stops at the first failing step or when ctx is done.
func Evaluate(ctx context.Context, ws *Worksheet, w io.Writer, opts ...EvalOption) error {
	cfg := evalConfig{eps: linalg.DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.eps < 0 || !core.IsFinite(cfg.eps) {
		return fmt.Errorf("%w: got %g", ErrInvalidEpsilon, cfg.eps)
	}

	e, err := newEnv(ws, cfg)
	if err != nil {
		return err
	}

	for i, st := range ws.Steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		fn, ok := ops[st.Op]
		if !ok {
			return fmt.Errorf("step %d: %w %q", i+1, ErrUnknownOp, st.Op)
		}
		if cfg.logger != nil {
			cfg.logger.Printf("step %d: %s %s", i+1, st.Op, strings.Join(st.Args, " "))
		}

		res, err := fn(e, st)
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, st.Op, err)
		}
		if st.As != "" {
			if s, ok := res.(*settheory.Set[int64]); ok {
				s.Name = st.As
			}
			e.vals[st.As] = res
		}
		if err := writeResult(w, i+1, st, res); err != nil {
			return err
		}
	}

	return nil
}

func newEnv(ws *Worksheet, cfg evalConfig) (*env, error) {
	if err := ws.Validate(); err != nil {
		return nil, err
	}
	e := &env{vals: make(map[string]any), cfg: cfg}
	for name, rows := range ws.Matrices {
		m, err := linalg.NewMatrix(rows)
		if err != nil {
			return nil, fmt.Errorf("matrix %q: %w", name, err)
		}
		e.vals[name] = m
	}
	for name, data := range ws.Vectors {
		v, err := linalg.NewVector(data...)
		if err != nil {
			return nil, fmt.Errorf("vector %q: %w", name, err)
		}
		e.vals[name] = v
	}
	for name, elems := range ws.Sets {
		s := settheory.FromSlice(elems)
		s.Name = name
		e.vals[name] = s
	}

	return e, nil
}

func writeResult(w io.Writer, n int, st Step, res any) error {
	label := st.Op
	if st.As != "" {
		label = st.As + " = " + st.Op
	}
	var body string
	switch r := res.(type) {
	case float64:
		body = fmt.Sprintf("%g", r)
	default:
		body = fmt.Sprint(r)
	}
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	if _, err := fmt.Fprintf(w, "[%d] %s\n%s", n, label, body); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	return nil
}

// --- operand lookup -----------------------------------------------------------

func (e *env) lookup(name string) (any, error) {
	v, ok := e.vals[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownOperand, name)
	}

	return v, nil
}

func (e *env) matrix(name string) (*linalg.Matrix[float64], error) {
	v, err := e.lookup(name)
	if err != nil {
		return nil, err
	}
	m, ok := v.(*linalg.Matrix[float64])
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a matrix", ErrOperandKind, name)
	}

	return m, nil
}

func (e *env) vector(name string) (*linalg.Vector[float64], error) {
	v, err := e.lookup(name)
	if err != nil {
		return nil, err
	}
	vec, ok := v.(*linalg.Vector[float64])
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a vector", ErrOperandKind, name)
	}

	return vec, nil
}

func (e *env) set(name string) (*settheory.Set[int64], error) {
	v, err := e.lookup(name)
	if err != nil {
		return nil, err
	}
	s, ok := v.(*settheory.Set[int64])
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a set", ErrOperandKind, name)
	}

	return s, nil
}
