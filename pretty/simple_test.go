// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pretty

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimple(t *testing.T) {
	tests := []struct {
		lo, up float64
		n      int
		want   []float64
	}{
		{-1, 101, 5, []float64{-20, 0, 20, 40, 60, 80, 100, 120}},
		{0, 100, 5, []float64{0, 20, 40, 60, 80, 100}},
		{-20, 120, 5, []float64{-20, 0, 20, 40, 60, 80, 100, 120}},
		{0, 1.4, 1, []float64{0, 1, 2}},
		{0, 7, 1, []float64{0, 5, 10}},
		{0, 9, 1, []float64{0, 10}},
		{3, 47, 2, []float64{0, 20, 40, 60}},
		{-350, -20, 3, []float64{-400, -300, -200, -100, 0}},
	}
	for _, tt := range tests {
		got, err := Simple(tt.lo, tt.up, tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Simple(%v, %v, %d)", tt.lo, tt.up, tt.n)
	}
}

func TestSimpleFractions(t *testing.T) {
	got, err := Simple(0, 1, 5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}, got, 1e-12)

	got, err = Simple(0.0012, 0.0049, 4)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.001, 0.002, 0.003, 0.004, 0.005}, got, 1e-15)
}

func TestSimpleBoundaryEpsilon(t *testing.T) {
	// bounds within rounding of a multiple of the unit do not add a break
	got, err := Simple(0, 100+1e-9, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 20, 40, 60, 80, 100}, got)

	got, err = Simple(-1e-9, 100, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 20, 40, 60, 80, 100}, got)
}

func TestSimpleCoverage(t *testing.T) {
	for _, r := range [][2]float64{{-1, 101}, {0.3, 0.31}, {-7e5, 1.2e6}, {42, 43}} {
		for n := 1; n <= 12; n++ {
			got, err := Simple(r[0], r[1], n)
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(got), 2)
			unit := got[1] - got[0]
			tol := unit * 1e-9
			assert.LessOrEqual(t, got[0], r[0]+tol)
			assert.GreaterOrEqual(t, got[len(got)-1], r[1]-tol)
			for i := 1; i < len(got); i++ {
				assert.InDelta(t, unit, got[i]-got[i-1], tol)
			}
			// the unit is 1, 2, 5 or 10 times a power of ten
			m := unit / math.Pow(10, math.Floor(math.Log10(unit)))
			assert.Condition(t, func() bool {
				for _, c := range []float64{1, 2, 5, 10} {
					if math.Abs(m-c) < 1e-9 {
						return true
					}
				}
				return false
			}, "unit %v", unit)
		}
	}
}

func TestSimpleErrors(t *testing.T) {
	_, err := Simple(1, 1, 5)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = Simple(2, 1, 5)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = Simple(math.Inf(-1), 1, 5)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = Simple(0, 1, -2)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	// the span overflows
	_, err = Simple(-1e308, 1e308, 5)
	assert.ErrorIs(t, err, ErrInvalidRange)

	// the cell size underflows to zero
	_, err = Simple(0, 5e-324, 5)
	assert.ErrorIs(t, err, ErrInvalidRange)

	// the unit rounds up past the largest float64
	_, err = Simple(0, 1.7e308, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestSimpleDefaultIntervals(t *testing.T) {
	got, err := Simple(-1, 101, 0)
	require.NoError(t, err)
	want, err := Simple(-1, 101, DefaultIntervals)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, []float64{-20, 0, 20, 40, 60, 80, 100, 120}, got)
}
