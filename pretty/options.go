// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pretty

import (
	"math"
	"slices"
)

const (
	// DefaultIntervals is the approximate number of intervals used
	// when [Options.N] is zero.
	DefaultIntervals = 5

	// MaxAutoIntervals caps the interval count derived by [DefaultN].
	MaxAutoIntervals = 10

	// DefaultBase is the radix used when [Options.Base] is zero.
	DefaultBase = 10.0

	// DefaultTol is the zero snap tolerance used when [Options.Tol] is zero.
	DefaultTol = 1e-9
)

// DefaultCoefficients returns the classic rounding coefficients 1, 2 and 5.
func DefaultCoefficients() []float64 {
	return []float64{1, 2, 5}
}

// Options are the parameters of the general breakpoint engine.
// The zero value (and a nil *Options) selects all defaults.
type Options struct {

	// N is the approximate number of intervals between breaks.
	// Zero means [DefaultIntervals]; otherwise it must be at least 2.
	N int

	// Coefficients are the basic rounding numbers, which are scaled by
	// powers of Base to form the step. Values outside [1, Base) are
	// ignored. For example, {10/7} gives multiples of 1/7, 10/7, 100/7,
	// whatever fits the range best. Nil means [DefaultCoefficients].
	Coefficients []float64

	// Base is the radix of the number system, at least 2.
	// Zero means [DefaultBase].
	Base float64

	// Tol is the tolerance below which a break is snapped to exactly 0.
	// Zero means [DefaultTol]; it must not be negative.
	Tol float64

	// Auto derives the interval count from the number of samples using
	// [DefaultN] instead of using N. It only applies to [BreaksOf] and
	// [Breaks32].
	Auto bool
}

// settings is the validated, normalized form of [Options].
type settings struct {
	n    int
	p    []float64
	base float64
	tol  float64
}

// settings validates o and fills in defaults. count is the number of
// samples the range was derived from, or 0 if the bounds were given
// directly.
func (o *Options) settings(count int) (settings, error) {
	if o == nil {
		o = &Options{}
	}
	st := settings{n: o.N, base: o.Base, tol: o.Tol}
	if st.base == 0 {
		st.base = DefaultBase
	}
	if math.IsInf(st.base, 0) || !(st.base >= 2) {
		return st, configError("base must be a finite number >= 2, got %v", o.Base)
	}
	if st.tol == 0 {
		st.tol = DefaultTol
	}
	if !(st.tol >= 0) {
		return st, configError("tolerance must not be negative, got %v", o.Tol)
	}

	switch {
	case o.Auto && count == 0:
		return st, configError("automatic interval count requires samples")
	case o.Auto:
		st.n = DefaultN(count, st.base)
		if st.n < 2 {
			return st, configError("automatic interval count %d for %d samples is below 2", st.n, count)
		}
	case st.n == 0:
		st.n = DefaultIntervals
	case st.n < 2:
		return st, configError("interval count must be >= 2, got %d", st.n)
	}

	p := o.Coefficients
	if p == nil {
		p = DefaultCoefficients()
	}
	st.p = make([]float64, 0, len(p))
	for _, c := range p {
		if c >= 1 && c < st.base {
			st.p = append(st.p, c)
		}
	}
	if len(st.p) == 0 {
		return st, configError("no coefficients in [1, %v) among %v", st.base, p)
	}
	slices.Sort(st.p)
	st.p = slices.Compact(st.p)
	return st, nil
}

// DefaultN returns the interval count derived from the number of
// samples: min(floor(base * log(count) / log(base)), [MaxAutoIntervals]).
// It grows slowly with the sample count; for base 10 it is
// min(floor(10 * log10(count)), 10).
func DefaultN(count int, base float64) int {
	n := math.Floor(base * math.Log(float64(count)) / math.Log(base))
	if n >= MaxAutoIntervals {
		return MaxAutoIntervals
	}
	if math.IsNaN(n) || n < math.MinInt32 {
		return 0
	}
	return int(n)
}
