// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pretty

import "math"

// simpleEps keeps a bound that lies on a multiple of the unit, up to
// rounding, from pulling in an extra break.
const simpleEps = 1e-10

// Simple returns about n pretty breaks covering [lo, up], using only the
// radix 10 coefficients 1, 2, 5 and 10. The unit is chosen in a single
// pass from fixed thresholds on the ratio of the crude cell size to the
// next lower power of ten, and the breaks are all multiples of the unit
// from floor(lo/unit) to ceil(up/unit). Zero n means [DefaultIntervals].
func Simple(lo, up float64, n int) ([]float64, error) {
	if err := checkRange(lo, up); err != nil {
		return nil, err
	}
	if n == 0 {
		n = DefaultIntervals
	}
	if n < 1 {
		return nil, configError("interval count must be >= 1, got %d", n)
	}
	cell := (up - lo) / float64(n)
	if err := checkStep("cell size", cell); err != nil {
		return nil, err
	}
	base := math.Pow(10, math.Floor(math.Log10(cell)))

	var k float64
	switch {
	case cell <= base*1.4:
		k = 1
	case cell <= base*2.8:
		k = 2
	case cell <= base*7:
		k = 5
	default:
		k = 10
	}
	unit := k * base
	if err := checkStep("unit", unit); err != nil {
		return nil, err
	}

	ns := int(math.Floor(lo/unit + simpleEps))
	nu := int(math.Ceil(up/unit - simpleEps))
	out := make([]float64, 0, nu-ns+1)
	for i := ns; i <= nu; i++ {
		out = append(out, unit*float64(i))
	}
	return out, nil
}
