// Copyright 2020 The Wellrad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package specfun

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// F returns
//
//	F(u) = exp(-u) - u*E1(u)
//
// which gives the fraction of the cone-of-depression volume located beyond
// the dimensionless distance u. F decreases strictly from 1 to 0 on (0,∞);
// its derivative is F'(u) = -E1(u). Returns NaN for u ≤ 0.
func F(u float64) float64 {
	if u <= 0 || math.IsNaN(u) {
		return math.NaN()
	}
	return math.Exp(-u) - u*E1(u)
}

// FInv returns u > 0 such that F(u) = x, for x in (0,1). Uses the same
// bracket and tolerance as E1Inv.
func FInv(x float64) (res float64, err error) {
	if x <= 0 || x >= 1 || math.IsNaN(x) {
		return 0, chk.Err("FInv requires a target within (0,1). x=%g is invalid", x)
	}
	return Bisection(func(u float64) float64 { return F(u) - x }, invBracketLo, invBracketHi, invRtol)
}

// Y returns the drawdown-difference auxiliary function
//
//	Y(u,uw) = (E1(uw)+E1(u))*ln((E1(uw)+E1(u))/E1(uw))
//
// used by log-scale analyses of drawdown differences. For fixed uw, Y
// decreases strictly in u from +∞ to 0.
func Y(u, uw float64) float64 {
	s := E1(uw) + E1(u)
	return s * math.Log(s/E1(uw))
}

// YInv returns u > 0 such that Y(u,uw) = x, holding uw fixed.
func YInv(x, uw float64) (res float64, err error) {
	if x <= 0 || math.IsNaN(x) {
		return 0, chk.Err("YInv requires a positive target. x=%g is invalid", x)
	}
	return Bisection(func(u float64) float64 { return Y(u, uw) - x }, invBracketLo, invBracketHi, invRtol)
}

// Z returns the exponential analogue of Y,
//
//	Z(u,uw) = (exp(-uw)+exp(-u))*ln((exp(-uw)+exp(-u))/exp(-uw))
//
// used by log-scale analyses of drawdown-derivative differences.
func Z(u, uw float64) float64 {
	if u <= 0 || uw <= 0 || math.IsNaN(u) || math.IsNaN(uw) {
		return math.NaN()
	}
	s := math.Exp(-uw) + math.Exp(-u)
	return s * math.Log(s/math.Exp(-uw))
}

// ZInv returns u > 0 such that Z(u,uw) = x, holding uw fixed.
func ZInv(x, uw float64) (res float64, err error) {
	if x <= 0 || math.IsNaN(x) {
		return 0, chk.Err("ZInv requires a positive target. x=%g is invalid", x)
	}
	return Bisection(func(u float64) float64 { return Z(u, uw) - x }, invBracketLo, invBracketHi, invRtol)
}
