// Copyright 2020 The Wellrad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drawdown computes the radius of influence and the radius of
// investigation of a pumping test during the drawdown (active pumping) phase.
// Each exported function encodes one distinct, citable physical criterion;
// they share no state, only the special functions in package specfun. Every
// result has the form C*√(T*t/S) with the scale factor C set by the
// criterion. Units are the caller's responsibility and must be mutually
// consistent across all parameters.
package drawdown

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/etiennebresciani/wellradgo/specfun"
)

// Default threshold values used by the example drivers. Go has no default
// arguments, so callers pass thresholds explicitly.
const (
	// DefaultSc is the default absolute drawdown (difference) threshold
	DefaultSc = 0.05

	// DefaultAlpha is the default relative threshold of the threshold-style
	// criteria (relative drawdown, flow rate, volume, averaging)
	DefaultAlpha = 0.01

	// DefaultAlphaConfidence is the default confidence level of the
	// barrier-regime-proportion criteria
	DefaultAlphaConfidence = 0.5
)

// checkTTS validates the parameters common to all formulas
func checkTTS(t, T, S float64) error {
	if t <= 0 || math.IsNaN(t) {
		return chk.Err("time must be positive. t=%g is invalid", t)
	}
	if T <= 0 || math.IsNaN(T) {
		return chk.Err("transmissivity must be positive. T=%g is invalid", T)
	}
	if S <= 0 || math.IsNaN(S) {
		return chk.Err("storativity must be positive. S=%g is invalid", S)
	}
	return nil
}

func checkQ(Q float64) error {
	if Q <= 0 || math.IsNaN(Q) {
		return chk.Err("pumping rate must be positive. Q=%g is invalid", Q)
	}
	return nil
}

func checkSc(sc float64) error {
	if sc <= 0 || math.IsNaN(sc) {
		return chk.Err("drawdown threshold must be positive. sc=%g is invalid", sc)
	}
	return nil
}

func checkAlpha(alpha float64) error {
	if alpha <= 0 || alpha >= 1 || math.IsNaN(alpha) {
		return chk.Err("relative threshold must be within (0,1). alpha=%g is invalid", alpha)
	}
	return nil
}

func checkRw(rw float64) error {
	if rw <= 0 || math.IsNaN(rw) {
		return chk.Err("well radius must be positive. rw=%g is invalid", rw)
	}
	return nil
}

// rchar returns the characteristic radius √(T*t/S)
func rchar(t, T, S float64) float64 {
	return math.Sqrt(T * t / S)
}

// uwell returns the dimensionless group at the well, uw = S*rw²/(4*T*t)
func uwell(t, T, S, rw float64) float64 {
	return S * rw * rw / (4.0 * T * t)
}

// InfluenceAbsDraw computes the radius of influence based on an absolute
// drawdown criterion: the distance beyond which drawdown is below sc.
func InfluenceAbsDraw(t, T, S, Q, sc float64) (r float64, err error) {
	if err = checkTTS(t, T, S); err != nil {
		return
	}
	if err = checkQ(Q); err != nil {
		return
	}
	if err = checkSc(sc); err != nil {
		return
	}
	scStar := 4.0 * math.Pi * T * sc / Q
	u, err := specfun.E1Inv(scStar)
	if err != nil {
		return 0, err
	}
	return 2.0 * math.Sqrt(u) * rchar(t, T, S), nil
}

// InfluenceRelDraw computes the radius of influence based on a relative
// drawdown criterion: drawdown below alpha times the drawdown at the well.
func InfluenceRelDraw(t, T, S, rw, alpha float64) (r float64, err error) {
	if err = checkTTS(t, T, S); err != nil {
		return
	}
	if err = checkRw(rw); err != nil {
		return
	}
	if err = checkAlpha(alpha); err != nil {
		return
	}
	uw := uwell(t, T, S, rw)
	u, err := specfun.E1Inv(alpha * specfun.E1(uw))
	if err != nil {
		return 0, err
	}
	return 2.0 * math.Sqrt(u) * rchar(t, T, S), nil
}

// InfluenceRelFlow computes the radius of influence based on a relative flow
// rate criterion: radial flow below alpha times the pumping rate.
func InfluenceRelFlow(t, T, S, alpha float64) (r float64, err error) {
	if err = checkTTS(t, T, S); err != nil {
		return
	}
	if err = checkAlpha(alpha); err != nil {
		return
	}
	return 2.0 * math.Sqrt(-math.Log(alpha)) * rchar(t, T, S), nil
}

// InfluenceRelVol computes the radius of influence based on a relative volume
// criterion: the fraction of the cone-of-depression volume beyond the radius
// equals alpha.
func InfluenceRelVol(t, T, S, alpha float64) (r float64, err error) {
	if err = checkTTS(t, T, S); err != nil {
		return
	}
	if err = checkAlpha(alpha); err != nil {
		return
	}
	u, err := specfun.FInv(alpha)
	if err != nil {
		return 0, err
	}
	return 2.0 * math.Sqrt(u) * rchar(t, T, S), nil
}

// InfluenceQuasiSteady computes the radius of influence of the quasi-steady
// state model.
func InfluenceQuasiSteady(t, T, S float64) (r float64, err error) {
	if err = checkTTS(t, T, S); err != nil {
		return
	}
	return 2.0 * rchar(t, T, S), nil
}

// InfluenceJones computes the radius of influence according to Jones'
// empirical formula.
func InfluenceJones(t, T, S float64) (r float64, err error) {
	if err = checkTTS(t, T, S); err != nil {
		return
	}
	return 4.0 * rchar(t, T, S), nil
}

// InfluenceClosedRes computes the radius of influence based on the extension
// of the closed-reservoir regime.
func InfluenceClosedRes(t, T, S float64) (r float64, err error) {
	if err = checkTTS(t, T, S); err != nil {
		return
	}
	return 2.83 * rchar(t, T, S), nil
}

// InfluenceImpulse computes the radius of influence based on the peak of the
// impulse response.
func InfluenceImpulse(t, T, S float64) (r float64, err error) {
	if err = checkTTS(t, T, S); err != nil {
		return
	}
	return 2.0 * rchar(t, T, S), nil
}

// InfluenceLog computes the radius of influence based on the extension of the
// logarithmic regime.
func InfluenceLog(t, T, S float64) (r float64, err error) {
	if err = checkTTS(t, T, S); err != nil {
		return
	}
	return 1.5 * rchar(t, T, S), nil
}
