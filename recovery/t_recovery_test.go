// Copyright 2020 The Wellrad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recovery

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

func Test_recovery01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("recovery01. radius of investigation during recovery")

	// T=10, S=1e-4, Q=100, tp=1, sc=0.01
	T, S, Q, tp, sc := 10.0, 1e-4, 100.0, 1.0, 0.01

	res, err := Rinv(2.0, T, S, Q, tp, sc)
	if err != nil {
		tst.Errorf("Rinv failed: %v\n", err)
		return
	}
	io.Pforan("rinv(t=2) = %v\n", res)
	chk.Float64(tst, "rinv(t=2)", 0.05, res, 775.5991822507443)

	res, err = Rinv(5.0, T, S, Q, tp, sc)
	if err != nil {
		tst.Errorf("Rinv failed: %v\n", err)
		return
	}
	chk.Float64(tst, "rinv(t=5)", 0.05, res, 1136.4680936966392)
}

func Test_recovery02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("recovery02. peak and end of the recovery signal")

	T, S, Q, tp, sc := 10.0, 1e-4, 100.0, 1.0, 0.01

	tmax, err := Tmax(T, Q, tp, sc)
	if err != nil {
		tst.Errorf("Tmax failed: %v\n", err)
		return
	}
	io.Pforan("tmax = %v\n", tmax)
	chk.Float64(tst, "tmax", 0.01, tmax, 29.779185235141583)

	rmax, err := RinvMax(T, S, Q, tp, sc)
	if err != nil {
		tst.Errorf("RinvMax failed: %v\n", err)
		return
	}
	chk.Float64(tst, "rinvmax", 0.1, rmax, 1710.9498115702088)

	// the radius at tmax equals the maximum radius
	ratmax, err := Rinv(tmax, T, S, Q, tp, sc)
	if err != nil {
		tst.Errorf("Rinv failed: %v\n", err)
		return
	}
	chk.Float64(tst, "rinv(tmax) = rinvmax", 0.1, ratmax, rmax)

	tend, err := Tend(T, Q, tp, sc)
	if err != nil {
		tst.Errorf("Tend failed: %v\n", err)
		return
	}
	io.Pforan("tend = %v\n", tend)
	chk.Float64(tst, "tend", 0.01, tend, 80.0785187289504)

	// the signal must peak strictly between the end of pumping and tend
	if tmax <= tp || tmax >= tend {
		tst.Errorf("tmax=%v must lie within (tp,tend)=(%v,%v)\n", tmax, tp, tend)
	}

	if chk.Verbose {
		nt := 101
		tvals := utl.LinSpace(1.0001*tp, tp+0.99999*(tend-tp), nt)
		rvals := make([]float64, nt)
		for i, ti := range tvals {
			rvals[i], err = Rinv(ti, T, S, Q, tp, sc)
			if err != nil {
				tst.Errorf("Rinv failed at t=%g: %v\n", ti, err)
				return
			}
		}
		plt.Reset(false, nil)
		plt.Plot(tvals, rvals, &plt.A{C: "b"})
		plt.Gll("$t$", "$r_{inv}$", nil)
		plt.Save("/tmp/wellrad", "recovery02")
	}
}

func Test_recovery03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("recovery03. second parameter set")

	// T=10, S=1e-4, Q=30, tp=1, sc=0.05
	T, S, Q, tp, sc := 10.0, 1e-4, 30.0, 1.0, 0.05

	tmax, err := Tmax(T, Q, tp, sc)
	if err != nil {
		tst.Errorf("Tmax failed: %v\n", err)
		return
	}
	chk.Float64(tst, "tmax", 0.001, tmax, 2.3259297859856254)

	rmax, err := RinvMax(T, S, Q, tp, sc)
	if err != nil {
		tst.Errorf("RinvMax failed: %v\n", err)
		return
	}
	chk.Float64(tst, "rinvmax", 0.05, rmax, 416.32166521124975)

	tend, err := Tend(T, Q, tp, sc)
	if err != nil {
		tst.Errorf("Tend failed: %v\n", err)
		return
	}
	chk.Float64(tst, "tend", 0.001, tend, 5.2920888387875245)

	res, err := Rinv(1.5, T, S, Q, tp, sc)
	if err != nil {
		tst.Errorf("Rinv failed: %v\n", err)
		return
	}
	chk.Float64(tst, "rinv(t=1.5)", 0.05, res, 385.41953455806186)
}

func Test_recovery04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("recovery04. parameter validation and root bracketing")

	T, S, Q, tp, sc := 10.0, 1e-4, 100.0, 1.0, 0.01

	if _, err := Rinv(0.5, T, S, Q, tp, sc); err == nil {
		tst.Errorf("time before the end of pumping must fail\n")
		return
	}
	if _, err := Rinv(tp, T, S, Q, tp, sc); err == nil {
		tst.Errorf("time exactly at the end of pumping must fail\n")
		return
	}
	if _, err := Rinv(2.0, -10, S, Q, tp, sc); err == nil {
		tst.Errorf("negative transmissivity must fail\n")
		return
	}
	if _, err := Tmax(T, Q, tp, -0.01); err == nil {
		tst.Errorf("negative resolution must fail\n")
		return
	}

	// past tend the barrier effect never reaches the resolution and the
	// root is no longer bracketed
	if _, err := Rinv(100.0, T, S, Q, tp, sc); err == nil {
		tst.Errorf("time beyond tend must fail\n")
	}
}
