// Copyright 2020 The Wellrad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package recovery computes the radius of investigation of a pumping test
// during the recovery phase, after pumping has stopped. The recovery signal is
// modelled by superposition: a recharge well of rate -Q starts at the end of
// pumping tp. The radius of investigation is the barrier distance whose effect
// on the residual drawdown equals the apparent resolution sc. Unlike the
// drawdown-phase formulas, it first grows, peaks at Tmax and shrinks back to
// zero at Tend. Units are the caller's responsibility and must be mutually
// consistent.
package recovery

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/etiennebresciani/wellradgo/specfun"
)

// DefaultSc is the default apparent resolution used by the example drivers
const DefaultSc = 0.05

const (
	// root-finding tolerances and brackets, in dimensionless variables. The
	// radius bracket covers (1e-12, 1e3) well radii; the time brackets start
	// just above 1 because the dimensionless time t/tp tends to 1 from above
	// at the end of pumping.
	rootRtol      = 1e-5
	rinvBracketLo = 1e-12
	rinvBracketHi = 1e3
	tmaxBracketLo = 1.0 + 1e-10
	tendBracketLo = 1.0 + 1e-8
	timeBracketHi = 1e5

	// tendU is the small dimensionless group standing in for the limit u -> 0
	// in the end-of-recovery condition
	tendU = 1e-10
)

func checkTQtp(T, Q, tp float64) error {
	if T <= 0 || math.IsNaN(T) {
		return chk.Err("transmissivity must be positive. T=%g is invalid", T)
	}
	if Q <= 0 || math.IsNaN(Q) {
		return chk.Err("pumping rate must be positive. Q=%g is invalid", Q)
	}
	if tp <= 0 || math.IsNaN(tp) {
		return chk.Err("pumping duration must be positive. tp=%g is invalid", tp)
	}
	return nil
}

func checkS(S float64) error {
	if S <= 0 || math.IsNaN(S) {
		return chk.Err("storativity must be positive. S=%g is invalid", S)
	}
	return nil
}

func checkSc(sc float64) error {
	if sc <= 0 || math.IsNaN(sc) {
		return chk.Err("apparent resolution must be positive. sc=%g is invalid", sc)
	}
	return nil
}

// barrierEffect returns the dimensionless effect of a barrier at dimensionless
// distance rs on the residual drawdown at dimensionless time ts = t/tp > 1,
//
//	E1(rs²/ts) - E1(rs²/(ts-1))
func barrierEffect(rs, ts float64) float64 {
	return specfun.E1(rs*rs/ts) - specfun.E1(rs*rs/(ts-1.0))
}

// Rinv computes the radius of investigation at time t during recovery. t is
// counted from the beginning of pumping and must exceed the pumping duration
// tp. sc is the apparent resolution of the drawdown measurements.
func Rinv(t, T, S, Q, tp, sc float64) (r float64, err error) {
	if err = checkTQtp(T, Q, tp); err != nil {
		return
	}
	if err = checkS(S); err != nil {
		return
	}
	if err = checkSc(sc); err != nil {
		return
	}
	if t <= tp || math.IsNaN(t) {
		return 0, chk.Err("recovery requires a time after the end of pumping. t=%g, tp=%g is invalid", t, tp)
	}
	scStar := 4.0 * math.Pi * T * sc / Q
	ts := t / tp
	rs, err := specfun.Bisection(func(rs float64) float64 {
		return barrierEffect(rs, ts) - scStar
	}, rinvBracketLo, rinvBracketHi, rootRtol)
	if err != nil {
		return 0, err
	}
	return rs * math.Sqrt(T*tp/S), nil
}

// barrierEffectAtTmax returns the barrier effect at the optimal barrier
// distance for a given dimensionless time ts, obtained by maximizing
// barrierEffect over rs analytically: rs² = ts*(ts-1)*ln(ts/(ts-1)).
func barrierEffectAtTmax(ts float64) float64 {
	l := math.Log(ts / (ts - 1.0))
	return specfun.E1((ts-1.0)*l) - specfun.E1(ts*l)
}

// Tmax computes the time at which the radius of investigation peaks during
// recovery, counted from the beginning of pumping.
func Tmax(T, Q, tp, sc float64) (t float64, err error) {
	if err = checkTQtp(T, Q, tp); err != nil {
		return
	}
	if err = checkSc(sc); err != nil {
		return
	}
	scStar := 4.0 * math.Pi * T * sc / Q
	ts, err := specfun.Bisection(func(ts float64) float64 {
		return barrierEffectAtTmax(ts) - scStar
	}, tmaxBracketLo, timeBracketHi, rootRtol)
	if err != nil {
		return 0, err
	}
	return ts * tp, nil
}

// RinvMax computes the maximum radius of investigation reached during
// recovery, attained at time Tmax.
func RinvMax(T, S, Q, tp, sc float64) (r float64, err error) {
	if err = checkS(S); err != nil {
		return
	}
	tmax, err := Tmax(T, Q, tp, sc)
	if err != nil {
		return 0, err
	}
	ts := tmax / tp
	rs := math.Sqrt(ts * (ts - 1.0) * math.Log(ts/(ts-1.0)))
	return rs * math.Sqrt(T*tp/S), nil
}

// Tend computes the time at which the radius of investigation shrinks back to
// zero during recovery, i.e. when the recovery test may be considered
// terminated. Counted from the beginning of pumping.
func Tend(T, Q, tp, sc float64) (t float64, err error) {
	if err = checkTQtp(T, Q, tp); err != nil {
		return
	}
	if err = checkSc(sc); err != nil {
		return
	}
	scStar := 4.0 * math.Pi * T * sc / Q
	ts, err := specfun.Bisection(func(ts float64) float64 {
		return specfun.E1(tendU/ts) - specfun.E1(tendU/(ts-1.0)) - scStar
	}, tendBracketLo, timeBracketHi, rootRtol)
	if err != nil {
		return 0, err
	}
	return ts * tp, nil
}
