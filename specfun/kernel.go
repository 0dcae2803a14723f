// Copyright 2020 The Wellrad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package specfun

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

const (
	// kernelUpper replaces the infinite upper limit of the weighting-kernel
	// integrals. The kernel decays like exp(-4u)*√u, so the truncation at 10
	// is far below double precision for the realistic argument range u < 5.
	// Naive infinite-bound quadrature misbehaves here; the cutoff is a
	// documented limitation, not a general-purpose strategy.
	kernelUpper = 10.0

	// kernelRtol is the relative tolerance of the kernel quadratures
	kernelRtol = 1e-5

	// hyperURtol is tighter than kernelRtol because U(1/2,2,z) sits at the
	// innermost level of nested integrations
	hyperURtol = 1e-8
)

var sqrtPi = math.Sqrt(math.Pi)

// hyperU12 evaluates Tricomi's confluent hypergeometric function U(1/2,2,z)
// for z > 0 through its integral representation
//
//	U(1/2,2,z) = (2/√π)*∫₀^∞ exp(-z*s²)*√(1+s²) ds
//
// The upper limit is truncated where the Gaussian factor reaches exp(-64).
// Returns NaN for z ≤ 0 or if the quadrature fails.
func hyperU12(z float64) float64 {
	if z <= 0 || math.IsNaN(z) {
		return math.NaN()
	}
	smax := 8.0
	if z < 1.0 {
		smax = 8.0 / math.Sqrt(z)
	}
	val, err := AdaptSimpson(func(s float64) float64 {
		return math.Exp(-z*s*s) * math.Sqrt(1.0+s*s)
	}, 0, smax, hyperURtol)
	if err != nil {
		return math.NaN()
	}
	return 2.0 / sqrtPi * val
}

// Whittaker returns the Whittaker function for kappa = mu = 1/2,
//
//	W_{1/2,1/2}(z) = exp(-z/2)*z*U(1/2,2,z),  z > 0
func Whittaker(z float64) float64 {
	if z <= 0 || math.IsNaN(z) {
		return math.NaN()
	}
	return math.Exp(-0.5*z) * z * hyperU12(z)
}

// wAux is the auxiliary form exp(-2v)*W_{1/2,1/2}(4v) shared by the
// transmissivity-weighting functions. It satisfies the exact identity
// √π*∫₀^∞ wAux(v) dv = 1/2.
func wAux(v float64) float64 {
	return math.Exp(-2.0*v) * Whittaker(4.0*v)
}

// W returns the transmissivity-weighting kernel for drawdown,
//
//	W(u) = (√π/u)*∫ᵤ^∞ exp(-2v)*W_{1/2,1/2}(4v) dv
//
// with the upper limit truncated at 10 (valid for u < 5). The drawdown at the
// well is an average of local transmissivity weighted by W.
func W(u float64) (res float64, err error) {
	if u <= 0 || math.IsNaN(u) {
		return 0, chk.Err("W requires a positive argument. u=%g is invalid", u)
	}
	if u >= kernelUpper {
		return 0, chk.Err("W is only valid below the effective-infinity cutoff. u=%g is out of range", u)
	}
	val, err := AdaptSimpson(wAux, u, kernelUpper, kernelRtol)
	if err != nil {
		return 0, err
	}
	return sqrtPi / u * val, nil
}

// WPrime returns the transmissivity-weighting kernel for the drawdown
// derivative,
//
//	W'(u) = √π*exp(-2u)*W_{1/2,1/2}(4u)
//
// (no outer 1/u factor and no integral).
func WPrime(u float64) float64 {
	if u <= 0 || math.IsNaN(u) {
		return math.NaN()
	}
	return sqrtPi * wAux(u)
}

// cumWeight returns ∫ₓ^∞ W(u) du (truncated at the cutoff). Exchanging the
// order of integration collapses the nested integrals into a single
// quadrature:
//
//	∫ₓ^∞ (√π/u)*∫ᵤ^∞ wAux(v) dv du = √π*∫ₓ^∞ wAux(v)*ln(v/x) dv
func cumWeight(x float64) (res float64, err error) {
	if x >= kernelUpper {
		return 0, nil
	}
	val, err := AdaptSimpson(func(v float64) float64 {
		return wAux(v) * math.Log(v/x)
	}, x, kernelUpper, kernelRtol)
	if err != nil {
		return 0, err
	}
	return sqrtPi * val, nil
}

// cumWeightDeriv returns ∫ₓ^∞ W'(u) du (truncated at the cutoff).
func cumWeightDeriv(x float64) (res float64, err error) {
	if x >= kernelUpper {
		return 0, nil
	}
	val, err := AdaptSimpson(wAux, x, kernelUpper, kernelRtol)
	if err != nil {
		return 0, err
	}
	return sqrtPi * val, nil
}

// G returns the cumulative kernel ratio
//
//	G(u,uw) = ∫ᵤ^∞ W / ∫_{uw}^∞ W
//
// i.e. the fraction of the drawdown weighting located beyond u. For fixed uw,
// G equals 1 at u = uw and decreases strictly toward 0. The denominator is
// always integrated fresh; no cached special cases.
func G(u, uw float64) (res float64, err error) {
	num, err := cumWeight(u)
	if err != nil {
		return 0, err
	}
	den, err := cumWeight(uw)
	if err != nil {
		return 0, err
	}
	return num / den, nil
}

// GInv returns u such that G(u,uw) = x, for x in (0,1) and fixed uw. The
// bracket starts just above uw (or at 1e-16 when uw = 0) and extends to the
// effective-infinity cutoff.
func GInv(x, uw float64) (res float64, err error) {
	if x <= 0 || x >= 1 || math.IsNaN(x) {
		return 0, chk.Err("GInv requires a target within (0,1). x=%g is invalid", x)
	}
	lo := 1.00001 * uw
	if uw == 0 {
		lo = 1e-16
		uw = lo
	}
	den, err := cumWeight(uw)
	if err != nil {
		return 0, err
	}
	return Bisection(func(u float64) float64 {
		num, e := cumWeight(u)
		if e != nil {
			return math.NaN()
		}
		return num/den - x
	}, lo, kernelUpper, invRtol)
}

// H returns the analogue of G for the drawdown-derivative weighting,
//
//	H(u,uw) = ∫ᵤ^∞ W' / ∫_{uw}^∞ W'
func H(u, uw float64) (res float64, err error) {
	num, err := cumWeightDeriv(u)
	if err != nil {
		return 0, err
	}
	den, err := cumWeightDeriv(uw)
	if err != nil {
		return 0, err
	}
	return num / den, nil
}

// HInv returns u such that H(u,uw) = x, for x in (0,1) and fixed uw.
func HInv(x, uw float64) (res float64, err error) {
	if x <= 0 || x >= 1 || math.IsNaN(x) {
		return 0, chk.Err("HInv requires a target within (0,1). x=%g is invalid", x)
	}
	lo := 1.00001 * uw
	if uw == 0 {
		lo = 1e-16
		uw = lo
	}
	den, err := cumWeightDeriv(uw)
	if err != nil {
		return 0, err
	}
	return Bisection(func(u float64) float64 {
		num, e := cumWeightDeriv(u)
		if e != nil {
			return math.NaN()
		}
		return num/den - x
	}, lo, kernelUpper, invRtol)
}
