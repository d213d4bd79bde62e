// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pretty

import "github.com/chewxy/math32"

// Breaks32 is [BreaksOf] for float32 data, as used by plots. The search
// runs in float64; breaks within the tolerance of 0 are snapped again
// after narrowing to float32.
func Breaks32(samples []float32, opts *Options) ([]float32, error) {
	if len(samples) < 2 {
		return nil, rangeError("need at least 2 samples, got %d", len(samples))
	}
	lo, hi := samples[0], samples[0]
	for i, v := range samples {
		if math32.IsNaN(v) {
			return nil, rangeError("sample %d is NaN", i)
		}
		lo = math32.Min(lo, v)
		hi = math32.Max(hi, v)
	}
	if err := checkRange(float64(lo), float64(hi)); err != nil {
		return nil, err
	}
	st, err := opts.settings(len(samples))
	if err != nil {
		return nil, err
	}
	sc, err := search(float64(lo), float64(hi), st)
	if err != nil {
		return nil, err
	}
	bs := sc.breaks(float64(lo), float64(hi), st.tol)
	tol := float32(st.tol)
	out := make([]float32, len(bs))
	for i, b := range bs {
		v := float32(b)
		if math32.Abs(v) < tol {
			v = 0
		}
		out[i] = v
	}
	return out, nil
}
