// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pretty

import (
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Scale is the result of the breakpoint search: a window of N intervals
// of width Step, from Origin to End, that covers the data range.
type Scale struct {

	// Step is the distance between consecutive breaks,
	// a coefficient times a power of the base.
	Step float64

	// Origin is the first break of the window, a multiple of Step.
	Origin float64

	// End is the last break of the window, Origin + N*Step.
	End float64

	// N is the number of intervals in the window.
	N int
}

// Search finds the smallest well-rounded step, and the origin aligned
// to it, whose window of about opts.N intervals covers [lo, hi].
// The window is centered on the midpoint of the range.
func Search(lo, hi float64, opts *Options) (Scale, error) {
	if err := checkRange(lo, hi); err != nil {
		return Scale{}, err
	}
	st, err := opts.settings(0)
	if err != nil {
		return Scale{}, err
	}
	return search(lo, hi, st)
}

// Breaks returns pretty breakpoints covering [lo, hi]. The breaks are
// ascending, spaced by a coefficient times a power of the base, and
// extend at most one step beyond the range on either side.
func Breaks(lo, hi float64, opts *Options) ([]float64, error) {
	if err := checkRange(lo, hi); err != nil {
		return nil, err
	}
	st, err := opts.settings(0)
	if err != nil {
		return nil, err
	}
	sc, err := search(lo, hi, st)
	if err != nil {
		return nil, err
	}
	return sc.breaks(lo, hi, st.tol), nil
}

// BreaksOf returns pretty breakpoints covering the range of the given
// samples, of which there must be at least two with a positive span.
// If opts.Auto is set the interval count is derived from len(samples)
// with [DefaultN].
func BreaksOf[T constraints.Integer | constraints.Float](samples []T, opts *Options) ([]float64, error) {
	if len(samples) < 2 {
		return nil, rangeError("need at least 2 samples, got %d", len(samples))
	}
	for i, v := range samples {
		if v != v {
			return nil, rangeError("sample %d is NaN", i)
		}
	}
	lo, hi := float64(slices.Min(samples)), float64(slices.Max(samples))
	if err := checkRange(lo, hi); err != nil {
		return nil, err
	}
	st, err := opts.settings(len(samples))
	if err != nil {
		return nil, err
	}
	sc, err := search(lo, hi, st)
	if err != nil {
		return nil, err
	}
	return sc.breaks(lo, hi, st.tol), nil
}

// search runs the widening search on a validated range and settings.
// It always terminates: each round either moves to a larger coefficient
// or raises the exponent, so the step grows geometrically until the
// window covers the range or overflows.
func search(lo, hi float64, st settings) (Scale, error) {
	n := float64(st.n)
	cell := (hi - lo) / n
	if err := checkStep("cell size", cell); err != nil {
		return Scale{}, err
	}

	k := math.Floor(math.Log(cell) / math.Log(st.base))
	if cell/math.Pow(st.base, k) > st.p[len(st.p)-1] {
		k++
	}
	pk := math.Pow(st.base, k)
	if err := checkStep("power of the base", pk); err != nil {
		return Scale{}, err
	}
	unit := cell / pk
	i := slices.IndexFunc(st.p, func(c float64) bool { return c >= unit })
	if i < 0 {
		// log rounding left k one short of the largest coefficient
		i = 0
		k++
	}

	mid := (lo + hi) / 2
	for {
		s := st.p[i] * math.Pow(st.base, k)
		if err := checkStep("step", s); err != nil {
			return Scale{}, err
		}
		a := s * math.Floor((mid-s*n/2)/s)
		b := a + s*n
		if !finite(a) || !finite(b) {
			return Scale{}, rangeError("window of step %v around [%v, %v] overflows", s, lo, hi)
		}
		if b >= hi {
			return Scale{Step: s, Origin: a, End: b, N: st.n}, nil
		}
		i++
		if i == len(st.p) {
			i = 0
			k++
		}
	}
}

// breaks emits the window from Origin to End, drops any break more than
// one step outside [lo, hi] and snaps breaks within tol of 0 to 0.
func (sc Scale) breaks(lo, hi, tol float64) []float64 {
	out := make([]float64, 0, sc.N+1)
	for j := 0; j <= sc.N; j++ {
		x := sc.Origin + float64(j)*sc.Step
		if x < lo-sc.Step || x > hi+sc.Step {
			continue
		}
		if math.Abs(x) < tol {
			x = 0
		}
		out = append(out, x)
	}
	return out
}
