// Copyright 2020 The Wellrad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package specfun

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

const (
	// bisectMaxIt caps the number of bisection steps. 128 halvings shrink any
	// double-precision bracket below resolvable width.
	bisectMaxIt = 128

	// bisectAtol is the absolute floor added to the relative stopping
	// criterion so that roots close to zero still terminate.
	bisectAtol = 1e-16
)

// Bisection solves f(x) = 0 for x strictly inside [xa, xb]. The bracket must
// contain a sign change of f; otherwise a root-is-not-bracketed error is
// returned. Iteration stops when the bracket width falls below
// rtol*|x| + atol. Bisection is preferred over faster methods for robustness;
// all callers in this library invert monotonic functions.
func Bisection(f func(x float64) float64, xa, xb, rtol float64) (res float64, err error) {
	fa := f(xa)
	fb := f(xb)
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return 0, chk.Err("function is undefined at bracket ends [%g,%g]: f(xa)=%v f(xb)=%v", xa, xb, fa, fb)
	}
	if fa == 0 {
		return xa, nil
	}
	if fb == 0 {
		return xb, nil
	}
	if fa*fb > 0 {
		return 0, chk.Err("root is not bracketed by [%g,%g]: f(xa)=%g and f(xb)=%g have the same sign", xa, xb, fa, fb)
	}
	a, b := xa, xb
	for it := 0; it < bisectMaxIt; it++ {
		m := 0.5 * (a + b)
		fm := f(m)
		if math.IsNaN(fm) {
			return 0, chk.Err("function is undefined at x=%g within bracket [%g,%g]", m, xa, xb)
		}
		if fm == 0 {
			return m, nil
		}
		if fa*fm < 0 {
			b = m
		} else {
			a = m
			fa = fm
		}
		if b-a <= rtol*math.Abs(m)+bisectAtol {
			return 0.5 * (a + b), nil
		}
	}
	return 0, chk.Err("bisection did not converge within %d iterations over [%g,%g]", bisectMaxIt, xa, xb)
}
