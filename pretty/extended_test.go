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

func TestExtended(t *testing.T) {
	l, err := Extended(0, 100, 5, &ExtendedOptions{Containment: ContainData})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 25, 50, 75, 100}, l.Values)
	assert.Equal(t, 25.0, l.Step)
	assert.Equal(t, 2.5, l.Nice)
	assert.Equal(t, 1, l.Magnitude)
}

func TestExtendedContainment(t *testing.T) {
	ranges := [][2]float64{{0, 100}, {-3.2, 7.9}, {8.1, 14.1}, {0.001, 0.0173}, {-1e6, -3e5}}
	for _, r := range ranges {
		for n := 2; n <= 8; n++ {
			lo, hi := r[0], r[1]
			for _, c := range []Containment{Free, ContainData, WithinData} {
				l, err := Extended(lo, hi, n, &ExtendedOptions{Containment: c})
				require.NoError(t, err)
				v := l.Values
				require.GreaterOrEqual(t, len(v), 2, "range %v n %d containment %d", r, n, c)
				for i := 1; i < len(v); i++ {
					assert.InDelta(t, l.Step, v[i]-v[i-1], l.Step*1e-9)
				}
				switch c {
				case ContainData:
					assert.LessOrEqual(t, v[0], lo)
					assert.GreaterOrEqual(t, v[len(v)-1], hi)
				case WithinData:
					assert.GreaterOrEqual(t, v[0], lo)
					assert.LessOrEqual(t, v[len(v)-1], hi)
				}
			}
		}
	}
}

func TestExtendedLegibility(t *testing.T) {
	// penalizing labellings that do not start at zero
	legible := func(lo, hi, step float64) float64 {
		if lo != 0 {
			return -100
		}
		return 1
	}
	l, err := Extended(3, 97, 5, &ExtendedOptions{Legibility: legible})
	require.NoError(t, err)
	assert.Equal(t, 0.0, l.Values[0])
}

func TestExtendedDegenerate(t *testing.T) {
	l, err := Extended(5, 5, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5, 5}, l.Values)
	assert.Equal(t, 0.0, l.Step)
	assert.Equal(t, 0, l.Magnitude)

	l, err = Extended(0, 0, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, l.Values)
}

func TestExtendedDefaultIntervals(t *testing.T) {
	l, err := Extended(0, 100, 0, &ExtendedOptions{Containment: ContainData})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 25, 50, 75, 100}, l.Values)
}

func TestExtendedErrors(t *testing.T) {
	_, err := Extended(2, 1, 5, nil)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = Extended(math.NaN(), 1, 5, nil)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = Extended(-1e308, 1e308, 5, nil)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = Extended(0, 1, 1, nil)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = Extended(0, 1, -5, nil)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = Extended(0, 1, 5, &ExtendedOptions{Nice: []float64{1}})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = Extended(0, 1, 5, &ExtendedOptions{Nice: []float64{1, -2}})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = Extended(0, 1, 5, &ExtendedOptions{Weights: &Weights{}})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = Extended(0, 1, 5, &ExtendedOptions{Containment: 7})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestExtendedScores(t *testing.T) {
	// [0, 25, 50, 75, 100] hits the data range and the density exactly
	assert.Equal(t, 1.0, coverage(0, 100, 0, 100))
	assert.Equal(t, 1.0, density(5, 5, 0, 100, 0, 100))
	assert.InDelta(t, 0.4, simplicity(3, 6, 1, 0, 100, 25), 1e-12)
	assert.InDelta(t, 0.85, DefaultWeights().score(0.4, 1, 1, 1), 1e-12)

	assert.Equal(t, 1.0, maxCoverage(0, 100, 50))
	assert.Equal(t, 1.0, maxDensity(3, 5))
	assert.Equal(t, 0.5, maxDensity(7, 5))
}
