// Copyright 2020 The Wellrad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package specfun

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// quadMaxDepth limits the recursion of the adaptive quadrature. Reaching the
// limit means the requested tolerance cannot be attained and is reported as
// an error, never as a partial estimate.
const quadMaxDepth = 60

// AdaptSimpson integrates f over [a, b] by adaptive Simpson subdivision,
// refining until the local error estimate satisfies the relative tolerance
// rtol. It returns a non-convergence error if the recursion-depth budget is
// exhausted before the tolerance is met.
func AdaptSimpson(f func(x float64) float64, a, b, rtol float64) (res float64, err error) {
	if !(b > a) {
		return 0, chk.Err("quadrature interval [%g,%g] is invalid", a, b)
	}
	fa, fb := f(a), f(b)
	m := 0.5 * (a + b)
	fm := f(m)
	whole := (b - a) / 6.0 * (fa + 4.0*fm + fb)
	res, err = quadStep(f, a, b, fa, fm, fb, whole, rtol, quadMaxDepth)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(res) {
		return 0, chk.Err("quadrature integrand is undefined within [%g,%g]", a, b)
	}
	return
}

func quadStep(f func(x float64) float64, a, b, fa, fm, fb, whole, rtol float64, depth int) (res float64, err error) {
	m := 0.5 * (a + b)
	lm := 0.5 * (a + m)
	rm := 0.5 * (m + b)
	flm := f(lm)
	frm := f(rm)
	left := (m - a) / 6.0 * (fa + 4.0*flm + fm)
	right := (b - m) / 6.0 * (fm + 4.0*frm + fb)
	diff := left + right - whole
	if math.IsNaN(diff) {
		return 0, chk.Err("quadrature integrand is undefined within [%g,%g]", a, b)
	}
	if math.Abs(diff) <= 15.0*rtol*(math.Abs(left+right)+1e-300) {
		return left + right + diff/15.0, nil
	}
	if depth <= 0 {
		return 0, chk.Err("adaptive quadrature did not reach rtol=%g within [%g,%g]", rtol, a, b)
	}
	l, err := quadStep(f, a, m, fa, flm, fm, left, rtol, depth-1)
	if err != nil {
		return 0, err
	}
	r, err := quadStep(f, m, b, fm, frm, fb, right, rtol, depth-1)
	if err != nil {
		return 0, err
	}
	return l + r, nil
}
