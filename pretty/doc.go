// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pretty computes "pretty" breakpoints for axis ticks and
// histogram bins: evenly spaced, human-friendly values such as
// 0, 20, 40, 60, 80, 100 that fully cover a data range.
//
// Three engines are provided:
//   - [Breaks] and [BreaksOf]: the general Dixon–Kronmal engine used by
//     R's pretty(), with arbitrary radix, arbitrary rounding
//     coefficients and iterative widening until the range is covered.
//   - [Simple]: a single pass radix-10 variant with the fixed
//     coefficients 1, 2, 5 and 10.
//   - [Extended]: the Talbot, Lin and Hanrahan optimization labelling,
//     which scores candidate labellings for simplicity, coverage,
//     density and legibility.
//
// All functions are pure and safe for concurrent use.
//
// Reference: W. J. Dixon and R. A. Kronmal (1965), "The choice of
// origin and scale for graphs", Journal of the ACM, 12(2):259-261.
package pretty
