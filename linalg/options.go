// SPDX-License-Identifier: MIT

// Package linalg: functional configuration for approximate comparisons.
// Option constructors panic only on nonsensical values (programmer error).
package linalg

import (
	"fmt"

	"github.com/katalvlaran/minmath/core"
)

// Numeric policy defaults.
const (
	// DefaultEpsilon is the absolute tolerance used by AllClose.
	DefaultEpsilon = 1e-9

	// DefaultRelTol is the relative tolerance used by AllClose.
	DefaultRelTol = 0.0
)

const (
	panicEpsilonInvalid = "linalg: WithEpsilon: eps must be finite, non-negative"
	panicRelTolInvalid  = "linalg: WithRelTol: rtol must be finite, non-negative"
)

// Option mutates Options. Applying the same Option twice is harmless.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
type Options struct {
	eps  float64 // absolute tolerance, >= 0
	rtol float64 // relative tolerance, >= 0
}

// Epsilon returns the absolute tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// RelTol returns the relative tolerance.
func (o Options) RelTol() float64 { return o.rtol }

func (o Options) String() string {
	return fmt.Sprintf("Options{eps=%g, rtol=%g}", o.eps, o.rtol)
}

// WithEpsilon sets the absolute tolerance for AllClose.
// Panics if eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || !core.IsFinite(eps) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRelTol sets the relative tolerance for AllClose: a cell passes when
// |a-b| <= eps + rtol*|b|.
func WithRelTol(rtol float64) Option {
	if rtol < 0 || !core.IsFinite(rtol) {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.rtol = rtol }
}

// DefaultOptions returns Options populated with the package defaults.
func DefaultOptions() Options {
	return Options{eps: DefaultEpsilon, rtol: DefaultRelTol}
}

// gatherOptions resolves setters on top of the defaults. Nil setters are skipped.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
