// Copyright 2020 The Wellrad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drawdown

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/etiennebresciani/wellradgo/specfun"
)

// InvestigationAbsDrawDiff computes the radius of investigation based on an
// absolute drawdown difference criterion: the distance of a barrier whose
// image-well drawdown contribution equals sc.
func InvestigationAbsDrawDiff(t, T, S, Q, sc float64) (r float64, err error) {
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
	return math.Sqrt(u) * rchar(t, T, S), nil
}

// InvestigationAbsDrawDerivDiff computes the radius of investigation based on
// an absolute drawdown derivative difference criterion. delta is the window
// size of the log-derivative and must exceed √2 times the dimensionless
// threshold 4*π*T*sc/Q for the criterion to be meaningful.
func InvestigationAbsDrawDerivDiff(t, T, S, Q, delta, sc float64) (r float64, err error) {
	if err = checkTTS(t, T, S); err != nil {
		return
	}
	if err = checkQ(Q); err != nil {
		return
	}
	if err = checkSc(sc); err != nil {
		return
	}
	if delta <= 0 || math.IsNaN(delta) {
		return 0, chk.Err("derivative window size must be positive. delta=%g is invalid", delta)
	}
	scStar := 4.0 * math.Pi * T * sc / Q
	arg := math.Sqrt2 * scStar / delta
	if arg >= 1 {
		return 0, chk.Err("threshold is too large for window size delta=%g: need sqrt(2)*4*pi*T*sc/Q < delta, got %g", delta, math.Sqrt2*scStar)
	}
	return math.Sqrt(-math.Log(arg)) * rchar(t, T, S), nil
}

// InvestigationRelDrawDiff computes the radius of investigation based on a
// relative drawdown difference criterion: the image-well contribution is below
// alpha times the drawdown at the well.
func InvestigationRelDrawDiff(t, T, S, rw, alpha float64) (r float64, err error) {
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
	return math.Sqrt(u) * rchar(t, T, S), nil
}

// InvestigationRelDrawDerivDiff computes the radius of investigation based on
// a relative drawdown derivative difference criterion. This one is analytical;
// no root-finding is involved.
func InvestigationRelDrawDerivDiff(t, T, S, rw, alpha float64) (r float64, err error) {
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
	return math.Sqrt(uw-math.Log(alpha)) * rchar(t, T, S), nil
}

// InvestigationRelDrawAve computes the radius of investigation based on a
// relative drawdown averaging criterion: the fraction of the
// transmissivity-weighting kernel located beyond the radius equals alpha.
func InvestigationRelDrawAve(t, T, S, rw, alpha float64) (r float64, err error) {
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
	u, err := specfun.GInv(alpha, uw)
	if err != nil {
		return 0, err
	}
	return 2.0 * math.Sqrt(u) * rchar(t, T, S), nil
}

// InvestigationRelDrawDerivAve computes the radius of investigation based on a
// relative drawdown derivative averaging criterion, the analogue of
// InvestigationRelDrawAve for the derivative-weighting kernel.
func InvestigationRelDrawDerivAve(t, T, S, rw, alpha float64) (r float64, err error) {
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
	u, err := specfun.HInv(alpha, uw)
	if err != nil {
		return 0, err
	}
	return 2.0 * math.Sqrt(u) * rchar(t, T, S), nil
}

// InvestigationPropBarrierLin computes the radius of investigation based on
// the proportion of the linear-barrier regime reached, analysed on a linear
// scale. alpha is the confidence level at which a linear barrier would be
// detected using the drawdown derivative.
func InvestigationPropBarrierLin(t, T, S, alpha float64) (r float64, err error) {
	if err = checkTTS(t, T, S); err != nil {
		return
	}
	if err = checkAlpha(alpha); err != nil {
		return
	}
	return math.Sqrt(-math.Log(alpha)) * rchar(t, T, S), nil
}

// InvestigationPropBarrierLog computes the radius of investigation based on
// the proportion of the linear-barrier regime reached, analysed on a
// logarithmic scale.
func InvestigationPropBarrierLog(t, T, S, alpha float64) (r float64, err error) {
	if err = checkTTS(t, T, S); err != nil {
		return
	}
	if err = checkAlpha(alpha); err != nil {
		return
	}
	return math.Sqrt(-math.Log(math.Pow(2.0, alpha)-1.0)) * rchar(t, T, S), nil
}

// InvestigationConstHead computes the radius of investigation based on the
// semi-empirical start of a constant-head boundary effect.
func InvestigationConstHead(t, T, S float64) (r float64, err error) {
	if err = checkTTS(t, T, S); err != nil {
		return
	}
	return 2.64 * rchar(t, T, S), nil
}

// InvestigationClosedRes computes the radius of investigation based on the
// intersection of the unbounded and closed-boundary regimes.
func InvestigationClosedRes(t, T, S float64) (r float64, err error) {
	if err = checkTTS(t, T, S); err != nil {
		return
	}
	return 2.0 * rchar(t, T, S), nil
}

// InvestigationLinearBarr computes the radius of investigation based on the
// intersection of the unbounded and linear-barrier regimes.
func InvestigationLinearBarr(t, T, S float64) (r float64, err error) {
	if err = checkTTS(t, T, S); err != nil {
		return
	}
	return 0.75 * rchar(t, T, S), nil
}

// InvestigationImpulse computes the radius of investigation based on the peak
// of the impulse response difference.
func InvestigationImpulse(t, T, S float64) (r float64, err error) {
	if err = checkTTS(t, T, S); err != nil {
		return
	}
	return rchar(t, T, S), nil
}
