// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixture

import (
	"math"

	"github.com/fatmac78/gaussian-exponential-mixture/stats"
	"github.com/fatmac78/gaussian-exponential-mixture/vec"
)

// Dist is the weighted mixture of an exponential and a Gaussian
// distribution with parameters Params. It implements stats.Dist.
type Dist struct {
	Params

	// ExpLoc shifts the support of the exponential component so
	// it starts at ExpLoc rather than 0.
	ExpLoc float64
}

// Exponential returns the exponential component of the mixture.
func (d Dist) Exponential() stats.ExponentialDist {
	return stats.ExponentialDist{Beta: d.Beta, Loc: d.ExpLoc}
}

// Normal returns the Gaussian component of the mixture.
func (d Dist) Normal() stats.NormalDist {
	return stats.NormalDist{Mu: d.Mu, Sigma: d.Sigma}
}

func (d Dist) PDF(x float64) float64 {
	return d.Proportion*d.Exponential().PDF(x) + (1-d.Proportion)*d.Normal().PDF(x)
}

func (d Dist) PDFEach(xs []float64) []float64 {
	return vec.Map(d.PDF, xs)
}

func (d Dist) CDF(x float64) float64 {
	return d.Proportion*d.Exponential().CDF(x) + (1-d.Proportion)*d.Normal().CDF(x)
}

func (d Dist) CDFEach(xs []float64) []float64 {
	return vec.Map(d.CDF, xs)
}

// InvCDF returns the inverse of the CDF for y by bisection. The value
// of y must be in [0, 1].
func (d Dist) InvCDF(y float64) float64 {
	if y < 0 || y > 1 {
		return math.NaN()
	}
	if y == 0 {
		if d.Proportion == 1 {
			return d.ExpLoc
		}
		return math.Inf(-1)
	}
	if y == 1 {
		return math.Inf(1)
	}
	// Bracket the root, starting from the distribution bounds.
	lo, hi := d.Bounds()
	for d.CDF(lo) > y {
		lo -= hi - lo
	}
	for d.CDF(hi) < y {
		hi += hi - lo
	}
	const tolerance = 1e-10
	for hi-lo > tolerance*math.Max(1, math.Abs(lo)) {
		mid := lo + (hi-lo)/2
		if d.CDF(mid) < y {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo + (hi-lo)/2
}

func (d Dist) InvCDFEach(ys []float64) []float64 {
	return vec.Map(d.InvCDF, ys)
}

// Bounds returns the union of the component bounds.
func (d Dist) Bounds() (float64, float64) {
	elo, ehi := d.Exponential().Bounds()
	nlo, nhi := d.Normal().Bounds()
	return math.Min(elo, nlo), math.Max(ehi, nhi)
}
