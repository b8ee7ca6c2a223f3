// SPDX-License-Identifier: MIT

package linalg_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/minmath/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOptions_Defaults verifies the documented defaults.
func TestOptions_Defaults(t *testing.T) {
	t.Parallel()

	o := linalg.DefaultOptions()
	assert.Equal(t, linalg.DefaultEpsilon, o.Epsilon())
	assert.Equal(t, linalg.DefaultRelTol, o.RelTol())
	assert.Equal(t, "Options{eps=1e-09, rtol=0}", o.String())
}

// TestOptions_PanicOnNonsense ensures invalid tolerances are programmer errors.
func TestOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { linalg.WithEpsilon(-1) })
	require.Panics(t, func() { linalg.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { linalg.WithRelTol(math.Inf(1)) })
	require.NotPanics(t, func() { linalg.WithEpsilon(0) })
}

// TestOptions_NilSetterIgnored checks AllClose tolerates nil options.
func TestOptions_NilSetterIgnored(t *testing.T) {
	t.Parallel()

	v := linalg.MustVector(1.0)
	assert.True(t, v.AllClose(linalg.MustVector(1.0), nil))
}
