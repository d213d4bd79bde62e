// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Derived from the gonum/plot labelling:
// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is an implementation of the Talbot, Lin and Hanrahan algorithm
// described in doi:10.1109/TVCG.2010.130 with reference to the R
// implementation in the labeling package, ©2014 Justin Talbot (Licensed
// MIT+file LICENSE|Unlimited).

package pretty

import "math"

// extendedEps is the tolerance used to decide whether a label start is a
// multiple of the step: 100 times the machine precision.
const extendedEps = 2.0 / (1 << 53) * 100

// maxExp bounds the magnitude search, just past the largest float64 exponent.
const maxExp = 309

// Containment is the guarantee the [Extended] engine makes about
// the relation of the labels to the data range.
type Containment int32

const (
	// Free places no restriction on label containment.
	Free Containment = iota

	// ContainData requires the data range to lie within
	// [first label, last label].
	ContainData

	// WithinData requires all labels to lie within the data range.
	WithinData
)

// Weights are the relative weights of the four scores of a candidate
// labelling in the [Extended] engine.
type Weights struct {
	Simplicity, Coverage, Density, Legibility float64
}

// DefaultWeights returns the weights recommended by Talbot et al.
func DefaultWeights() *Weights {
	return &Weights{Simplicity: 0.25, Coverage: 0.2, Density: 0.5, Legibility: 0.05}
}

// score returns the weighted total of simplicity s, coverage c,
// density d and legibility l.
func (w *Weights) score(s, c, d, l float64) float64 {
	return w.Simplicity*s + w.Coverage*c + w.Density*d + w.Legibility*l
}

// DefaultNice returns the nice numbers of Talbot et al, ordered from
// most to least preferred.
func DefaultNice() []float64 {
	return []float64{1, 5, 2, 2.5, 4, 3}
}

// ExtendedOptions are the parameters of the [Extended] engine.
// A nil *ExtendedOptions selects all defaults.
type ExtendedOptions struct {

	// Nice are the nice step multipliers in order of preference.
	// There must be at least two, all positive. Nil means [DefaultNice].
	Nice []float64

	// Weights weigh the scores. Nil means [DefaultWeights].
	Weights *Weights

	// Containment is the containment guarantee.
	Containment Containment

	// Legibility scores a labelling from its first and last label and
	// its step. Nil scores every labelling 1.
	Legibility func(lo, hi, step float64) float64
}

// Labels is the result of the [Extended] engine.
type Labels struct {

	// Values are the label values in ascending order.
	Values []float64

	// Step is the distance between consecutive labels.
	Step float64

	// Nice is the nice number the step was built from,
	// or 0 for a degenerate range.
	Nice float64

	// Magnitude is the power of ten of the step.
	Magnitude int
}

// Extended returns an optimal set of about n labels for the data range
// [lo, hi], scored for simplicity, coverage, density and legibility.
// Unlike [Breaks] it may return fewer or more labels than n when that
// scores better, and depending on the containment it may not cover the
// range. A zero-width range yields n copies of lo. Zero n means
// [DefaultIntervals].
func Extended(lo, hi float64, n int, opts *ExtendedOptions) (Labels, error) {
	if !finite(lo) || !finite(hi) || lo > hi {
		return Labels{}, rangeError("need finite lo <= hi, got [%v, %v]", lo, hi)
	}
	if !finite(hi - lo) {
		return Labels{}, rangeError("span of [%v, %v] overflows", lo, hi)
	}
	if n == 0 {
		n = DefaultIntervals
	}
	if n < 2 {
		return Labels{}, configError("label count must be >= 2, got %d", n)
	}
	if opts == nil {
		opts = &ExtendedOptions{}
	}
	nice := opts.Nice
	if nice == nil {
		nice = DefaultNice()
	}
	if len(nice) < 2 {
		return Labels{}, configError("need at least 2 nice numbers, got %v", nice)
	}
	for _, q := range nice {
		if !(q > 0) || math.IsInf(q, 0) {
			return Labels{}, configError("nice numbers must be positive and finite, got %v", nice)
		}
	}
	w := opts.Weights
	if w == nil {
		w = DefaultWeights()
	}
	// the search only terminates if simplicity and density are weighted
	if !(w.Simplicity > 0) || !(w.Density > 0) || !(w.Coverage >= 0) || !(w.Legibility >= 0) {
		return Labels{}, configError("simplicity and density weights must be positive and the others non-negative, got %+v", *w)
	}
	legibility := opts.Legibility
	if legibility == nil {
		legibility = unitLegibility
	}
	switch opts.Containment {
	case Free, ContainData, WithinData:
	default:
		return Labels{}, configError("unknown containment %d", opts.Containment)
	}

	if hi-lo < extendedEps {
		return spread(lo, hi, n), nil
	}

	type candidate struct {
		have           int
		lMin, lStep, q float64
		score          float64
		magnitude      int
	}
	best := candidate{score: -2}

outer:
	for skip := 1; ; skip++ {
		for qi, q := range nice {
			sm := maxSimplicity(qi, len(nice), skip)
			if w.score(sm, 1, 1, 1) < best.score {
				break outer
			}

			for have := 2; ; have++ {
				dm := maxDensity(have, n)
				if w.score(sm, 1, dm, 1) < best.score {
					break
				}

				delta := (hi - lo) / float64(have+1) / float64(skip) / q

				for mag := int(math.Ceil(math.Log10(delta))); mag < maxExp; mag++ {
					step := float64(skip) * q * math.Pow10(mag)

					cm := maxCoverage(lo, hi, step*float64(have-1))
					if w.score(sm, cm, dm, 1) < best.score {
						break
					}

					fracStep := step / float64(skip)
					span := step * float64(have-1)

					minStart := (math.Floor(hi/step) - float64(have-1)) * float64(skip)
					maxStart := math.Ceil(hi/step) * float64(skip)
					for start := minStart; start <= maxStart && start != start-1; start++ {
						lMin := start * fracStep
						lMax := lMin + span

						switch opts.Containment {
						case ContainData:
							if lo < lMin || lMax < hi {
								continue
							}
						case WithinData:
							if lMin < lo || hi < lMax {
								continue
							}
						}

						score := w.score(
							simplicity(qi, len(nice), skip, lMin, lMax, step),
							coverage(lo, hi, lMin, lMax),
							density(have, n, lo, hi, lMin, lMax),
							legibility(lMin, lMax, step),
						)
						if score > best.score {
							best = candidate{
								have:      have,
								lMin:      lMin,
								lStep:     float64(skip) * q,
								q:         q,
								score:     score,
								magnitude: mag,
							}
						}
					}
				}
			}
		}
	}

	if best.score == -2 {
		return spread(lo, hi, n), nil
	}

	step := best.lStep * math.Pow10(best.magnitude)
	values := make([]float64, best.have)
	for i := range values {
		values[i] = best.lMin + float64(i)*step
	}
	return Labels{Values: values, Step: step, Nice: best.q, Magnitude: best.magnitude}, nil
}

// spread returns n evenly spaced labels from lo to hi, used when no
// labelling can be scored.
func spread(lo, hi float64, n int) Labels {
	step := (hi - lo) / float64(n-1)
	values := make([]float64, n)
	for i := range values {
		values[i] = lo + float64(i)*step
	}
	return Labels{Values: values, Step: step, Magnitude: minAbsMag(lo, hi)}
}

// minAbsMag returns the smaller power of ten of |a| and |b|.
func minAbsMag(a, b float64) int {
	m := math.Min(math.Floor(math.Log10(math.Abs(a))), math.Floor(math.Log10(math.Abs(b))))
	if math.IsInf(m, 0) || math.IsNaN(m) {
		return 0
	}
	return int(m)
}

// simplicity scores the qi'th of nq nice numbers used with skip; labellings
// that include zero on a multiple of the step score one point higher.
func simplicity(qi, nq, skip int, lMin, lMax, lStep float64) float64 {
	m := math.Mod(lMin, lStep)
	v := 0.0
	if (m < extendedEps || lStep-m < extendedEps) && lMin <= 0 && 0 <= lMax {
		v = 1
	}
	return 1 - float64(qi)/float64(nq-1) - float64(skip) + v
}

// maxSimplicity is the upper bound of simplicity for qi and skip.
func maxSimplicity(qi, nq, skip int) float64 {
	return 1 - float64(qi)/float64(nq-1) - float64(skip) + 1
}

// coverage scores how close the extreme labels are to the extreme data,
// by their mean squared distance relative to a tenth of the data range.
func coverage(dMin, dMax, lMin, lMax float64) float64 {
	r := 0.1 * (dMax - dMin)
	hi := dMax - lMax
	lo := dMin - lMin
	return 1 - 0.5*(hi*hi+lo*lo)/(r*r)
}

// maxCoverage is the upper bound of coverage for labels spanning span.
func maxCoverage(dMin, dMax, span float64) float64 {
	r := dMax - dMin
	if span <= r {
		return 1
	}
	h := 0.5 * (span - r)
	r *= 0.1
	return 1 - (h*h)/(r*r)
}

// density scores the label density against the target of want labels.
func density(have, want int, dMin, dMax, lMin, lMax float64) float64 {
	rho := float64(have-1) / (lMax - lMin)
	rhot := float64(want-1) / (math.Max(lMax, dMax) - math.Min(dMin, lMin))
	if d := rho / rhot; d >= 1 {
		return 2 - d
	}
	return 2 - rhot/rho
}

// maxDensity is the upper bound of density for have and want.
func maxDensity(have, want int) float64 {
	if have < want {
		return 1
	}
	return 2 - float64(have-1)/float64(want-1)
}

func unitLegibility(_, _, _ float64) float64 {
	return 1
}
