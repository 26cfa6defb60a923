// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma. Sigma must be positive; methods panic
// otherwise.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1).
var StdNormal = NormalDist{0, 1}

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

func (d NormalDist) check() {
	if d.Sigma <= 0 {
		panic("sigma must be positive")
	}
}

func (d NormalDist) PDF(x float64) float64 {
	d.check()
	z := x - d.Mu
	return math.Exp(-z*z/(2*d.Sigma*d.Sigma)) * invSqrt2Pi / d.Sigma
}

func (d NormalDist) PDFEach(xs []float64) []float64 {
	d.check()
	res := make([]float64, len(xs))
	if d.Mu == 0 && d.Sigma == 1 {
		// Standard normal fast path
		for i, x := range xs {
			res[i] = math.Exp(-x*x/2) * invSqrt2Pi
		}
	} else {
		a := -1 / (2 * d.Sigma * d.Sigma)
		b := invSqrt2Pi / d.Sigma
		for i, x := range xs {
			z := x - d.Mu
			res[i] = math.Exp(z*z*a) * b
		}
	}
	return res
}

func (d NormalDist) CDF(x float64) float64 {
	d.check()
	return (1 + math.Erf((x-d.Mu)/(d.Sigma*math.Sqrt2))) / 2
}

func (d NormalDist) CDFEach(xs []float64) []float64 {
	d.check()
	res := make([]float64, len(xs))
	a := 1 / (d.Sigma * math.Sqrt2)
	for i, x := range xs {
		res[i] = (1 + math.Erf((x-d.Mu)*a)) / 2
	}
	return res
}

func (d NormalDist) InvCDF(y float64) float64 {
	d.check()
	if y < 0 || y > 1 {
		return nan
	}
	return d.Mu + d.Sigma*math.Sqrt2*math.Erfinv(2*y-1)
}

func (d NormalDist) InvCDFEach(ys []float64) []float64 {
	res := make([]float64, len(ys))
	for i, y := range ys {
		res[i] = d.InvCDF(y)
	}
	return res
}

func (d NormalDist) Bounds() (float64, float64) {
	const stddevs = 3
	return d.Mu - stddevs*d.Sigma, d.Mu + stddevs*d.Sigma
}

func (d NormalDist) Mean() float64 { return d.Mu }

func (d NormalDist) Variance() float64 { return d.Sigma * d.Sigma }
