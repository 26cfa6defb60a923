// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// ExponentialDist is an exponential distribution with scale Beta
// (mean Loc+Beta, rate 1/Beta) shifted so its support starts at Loc.
// Beta must be positive; methods panic otherwise.
type ExponentialDist struct {
	Beta float64

	// Loc is the left edge of the support. The density is 0 for
	// x < Loc. The zero value gives the usual support [0, inf).
	Loc float64
}

func (d ExponentialDist) check() {
	if d.Beta <= 0 {
		panic("beta must be positive")
	}
}

func (d ExponentialDist) PDF(x float64) float64 {
	d.check()
	if x < d.Loc {
		return 0
	}
	return math.Exp(-(x-d.Loc)/d.Beta) / d.Beta
}

func (d ExponentialDist) PDFEach(xs []float64) []float64 {
	d.check()
	res := make([]float64, len(xs))
	a := -1 / d.Beta
	b := 1 / d.Beta
	for i, x := range xs {
		if x < d.Loc {
			continue
		}
		res[i] = math.Exp((x-d.Loc)*a) * b
	}
	return res
}

func (d ExponentialDist) CDF(x float64) float64 {
	d.check()
	if x < d.Loc {
		return 0
	}
	return 1 - math.Exp(-(x-d.Loc)/d.Beta)
}

func (d ExponentialDist) CDFEach(xs []float64) []float64 {
	d.check()
	res := make([]float64, len(xs))
	a := -1 / d.Beta
	for i, x := range xs {
		if x < d.Loc {
			continue
		}
		res[i] = 1 - math.Exp((x-d.Loc)*a)
	}
	return res
}

func (d ExponentialDist) InvCDF(y float64) float64 {
	d.check()
	if y < 0 || y > 1 {
		return nan
	}
	// -log(1-y) is inf at y=1, as it should be.
	return d.Loc - d.Beta*math.Log1p(-y)
}

func (d ExponentialDist) InvCDFEach(ys []float64) []float64 {
	res := make([]float64, len(ys))
	for i, y := range ys {
		res[i] = d.InvCDF(y)
	}
	return res
}

func (d ExponentialDist) Bounds() (float64, float64) {
	return d.Loc, d.InvCDF(0.995)
}

func (d ExponentialDist) Mean() float64 { return d.Loc + d.Beta }

func (d ExponentialDist) Variance() float64 { return d.Beta * d.Beta }
