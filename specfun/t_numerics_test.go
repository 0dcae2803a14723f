// Copyright 2020 The Wellrad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package specfun

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_quad01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quad01. adaptive Simpson on smooth integrands")

	res, err := AdaptSimpson(func(x float64) float64 { return x * x }, 0, 1, 1e-10)
	if err != nil {
		tst.Errorf("quadrature failed: %v\n", err)
		return
	}
	chk.Float64(tst, "int x^2 over [0,1]", 1e-12, res, 1.0/3.0)

	res, err = AdaptSimpson(math.Sin, 0, math.Pi, 1e-10)
	if err != nil {
		tst.Errorf("quadrature failed: %v\n", err)
		return
	}
	chk.Float64(tst, "int sin over [0,pi]", 1e-9, res, 2.0)

	res, err = AdaptSimpson(func(x float64) float64 { return math.Exp(-x) }, 0, 50, 1e-8)
	if err != nil {
		tst.Errorf("quadrature failed: %v\n", err)
		return
	}
	chk.Float64(tst, "int exp(-x) over [0,50]", 1e-7, res, 1.0)
}

func Test_quad02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quad02. adaptive Simpson error conditions")

	_, err := AdaptSimpson(math.Sin, 1, 1, 1e-8)
	if err == nil {
		tst.Errorf("zero-width interval must fail\n")
		return
	}

	_, err = AdaptSimpson(func(x float64) float64 { return math.NaN() }, 0, 1, 1e-8)
	if err == nil {
		tst.Errorf("NaN integrand must fail\n")
	}
}

func Test_roots01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("roots01. bisection")

	res, err := Bisection(math.Cos, 0, 3, 1e-10)
	if err != nil {
		tst.Errorf("bisection failed: %v\n", err)
		return
	}
	chk.Float64(tst, "root of cos over [0,3]", 1e-9, res, math.Pi/2.0)

	// root at a bracket end is returned directly
	res, err = Bisection(func(x float64) float64 { return x }, 0, 1, 1e-10)
	if err != nil {
		tst.Errorf("bisection failed: %v\n", err)
		return
	}
	chk.Float64(tst, "root at bracket end", 1e-15, res, 0)
}

func Test_roots02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("roots02. bisection error conditions")

	_, err := Bisection(func(x float64) float64 { return 1.0 + x*x }, 0, 1, 1e-10)
	if err == nil {
		tst.Errorf("unbracketed root must fail\n")
		return
	}

	_, err = Bisection(func(x float64) float64 { return math.NaN() }, 0, 1, 1e-10)
	if err == nil {
		tst.Errorf("NaN at bracket ends must fail\n")
	}
}
