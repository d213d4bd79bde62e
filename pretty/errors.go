// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pretty

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidRange is wrapped by all errors caused by the data range:
	// an empty or negative span, non-finite bounds, NaN samples, or
	// fewer than two samples.
	ErrInvalidRange = errors.New("pretty: invalid range")

	// ErrInvalidConfiguration is wrapped by all errors caused by the
	// engine parameters: radix, interval count, coefficients or tolerance.
	ErrInvalidConfiguration = errors.New("pretty: invalid configuration")
)

func rangeError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidRange}, args...)...)
}

func configError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfiguration}, args...)...)
}

// checkRange returns an error unless lo < hi and both bounds
// and the span hi-lo are finite.
func checkRange(lo, hi float64) error {
	if !finite(lo) || !finite(hi) {
		return rangeError("bounds must be finite, got [%v, %v]", lo, hi)
	}
	if !(hi > lo) {
		return rangeError("span must be positive, got [%v, %v]", lo, hi)
	}
	if !finite(hi - lo) {
		return rangeError("span of [%v, %v] overflows", lo, hi)
	}
	return nil
}

// checkStep returns an error unless the named step size v
// is positive and finite.
func checkStep(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return rangeError("%s %v is out of range", name, v)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
