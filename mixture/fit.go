// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixture

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/fatmac78/gaussian-exponential-mixture/stats"
)

const (
	// DefaultTolerance is the relative log-likelihood convergence
	// tolerance used when Options.Tolerance is zero.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations is the EM iteration cap used when
	// Options.MaxIterations is zero.
	DefaultMaxIterations = 1000

	// sigmaFloor is the smallest standard deviation the Gaussian
	// component is allowed to reach. Flooring sigma here keeps the
	// density finite when the component collapses onto identical
	// observations.
	sigmaFloor = 1e-8

	// minResponsibility is the smallest total responsibility mass
	// for which a component's closed-form update is considered
	// well-defined.
	minResponsibility = 1e-12
)

// Options configures a single Fit call. The zero value is a usable
// default configuration.
type Options struct {
	// InitialParams is the starting parameter set for EM. If nil,
	// Fit derives a starting point from the sample.
	InitialParams *Params

	// ExpLoc shifts the support of the exponential component so
	// it starts at ExpLoc rather than 0.
	ExpLoc float64

	// Tolerance is the relative change in log-likelihood below
	// which the fit is considered converged. If zero,
	// DefaultTolerance is used.
	Tolerance float64

	// MaxIterations caps the number of EM iterations. If zero,
	// DefaultMaxIterations is used.
	MaxIterations int
}

func (o *Options) tolerance() float64 {
	if o == nil || o.Tolerance <= 0 {
		return DefaultTolerance
	}
	return o.Tolerance
}

func (o *Options) maxIterations() int {
	if o == nil || o.MaxIterations <= 0 {
		return DefaultMaxIterations
	}
	return o.MaxIterations
}

// Result is the outcome of a Fit call. It is not modified after Fit
// returns.
type Result struct {
	// Params is the fitted parameter set.
	Params Params

	// ExpLoc is the exponential support offset the mixture was
	// fitted with, copied from Options.
	ExpLoc float64

	// LogLikelihood is the sample log-likelihood under Params.
	LogLikelihood float64

	// Trace is the log-likelihood after each EM iteration.
	// Trace[len(Trace)-1] == LogLikelihood.
	Trace []float64

	// Iterations is the number of EM iterations run.
	Iterations int

	// Converged indicates the log-likelihood change fell below
	// the tolerance before the iteration cap was reached. A false
	// value is not an error; the parameters are still usable.
	Converged bool

	// NearDegenerate indicates that during some iteration the
	// exponential component held essentially no responsibility
	// mass, so its scale was carried over unchanged.
	NearDegenerate bool
}

// Dist returns the fitted mixture distribution for evaluating the
// density and cumulative distribution at arbitrary points.
func (r *Result) Dist() Dist {
	return Dist{Params: r.Params, ExpLoc: r.ExpLoc}
}

// Fit estimates the parameters of a Gaussian-exponential mixture
// from the sample xs by expectation maximization. opt may be nil for
// default options. xs is not modified.
//
// Fit fails with ErrSampleSize if xs has fewer than two observations,
// with ErrParams if opt.InitialParams violates a parameter invariant,
// and with ErrDegenerate if an EM update produces an ill-posed model.
// Reaching the iteration cap without convergence is not an error; it
// is reported by Result.Converged.
func Fit(xs []float64, opt *Options) (*Result, error) {
	if len(xs) < 2 {
		return nil, fmt.Errorf("%w: have %d", ErrSampleSize, len(xs))
	}

	var expLoc float64
	if opt != nil {
		expLoc = opt.ExpLoc
	}
	var p Params
	if opt != nil && opt.InitialParams != nil {
		p = *opt.InitialParams
		if err := p.Valid(); err != nil {
			return nil, err
		}
	} else {
		p = initialParams(xs, expLoc)
	}
	tol := opt.tolerance()
	maxIter := opt.maxIterations()

	res := &Result{ExpLoc: expLoc}
	rExp := make([]float64, len(xs))
	rGau := make([]float64, len(xs))
	prev := logLikelihood(xs, Dist{Params: p, ExpLoc: expLoc})
	for iter := 1; iter <= maxIter; iter++ {
		estep(xs, Dist{Params: p, ExpLoc: expLoc}, rExp, rGau)
		next, nearDeg, err := mstep(xs, rExp, rGau, p, expLoc)
		if err != nil {
			return nil, err
		}
		if nearDeg {
			res.NearDegenerate = true
		}
		p = next
		ll := logLikelihood(xs, Dist{Params: p, ExpLoc: expLoc})
		res.Trace = append(res.Trace, ll)
		res.Iterations = iter
		// An infinite previous log-likelihood (an observation
		// with zero density under the starting parameters)
		// cannot witness convergence.
		if !math.IsInf(prev, 0) && math.Abs(ll-prev) <= tol*math.Max(1, math.Abs(prev)) {
			res.Converged = true
			break
		}
		prev = ll
	}
	res.Params = p
	res.LogLikelihood = res.Trace[len(res.Trace)-1]
	return res, nil
}

// initialParams derives a starting parameter set from the sample:
// the exponential scale from the mean of the lower half of the
// sample, the Gaussian moments from the upper half, and an even
// split between the components.
func initialParams(xs []float64, expLoc float64) Params {
	s := stats.Sample{Xs: xs}
	med := s.Percentile(0.5)

	var lowSum float64
	var lowN int
	upper := make([]float64, 0, len(xs)/2)
	for _, x := range xs {
		if x <= med && x >= expLoc {
			lowSum += x - expLoc
			lowN++
		}
		if x > med {
			upper = append(upper, x)
		}
	}
	beta := 1.0
	if lowN > 0 && lowSum > 0 {
		beta = lowSum / float64(lowN)
	}

	mu, sigma := s.Mean(), s.StdDev()
	if len(upper) >= 2 {
		u := stats.Sample{Xs: upper}
		mu, sigma = u.Mean(), u.StdDev()
	}
	if !(sigma > sigmaFloor) {
		sigma = sigmaFloor
	}

	return Params{Beta: beta, Mu: mu, Sigma: sigma, Proportion: 0.5}
}

// estep fills rExp and rGau with the posterior probability of each
// observation under the exponential and Gaussian components. If both
// weighted densities underflow to zero for an observation, the
// responsibility is split evenly rather than left undefined.
func estep(xs []float64, d Dist, rExp, rGau []float64) {
	ed, nd := d.Exponential(), d.Normal()
	for i, x := range xs {
		we := d.Proportion * ed.PDF(x)
		wg := (1 - d.Proportion) * nd.PDF(x)
		sum := we + wg
		if sum == 0 || math.IsNaN(sum) {
			rExp[i], rGau[i] = 0.5, 0.5
			continue
		}
		rExp[i] = we / sum
		rGau[i] = wg / sum
	}
}

// mstep computes the closed-form parameter updates from the current
// responsibilities, returning the new parameter set and whether the
// exponential update was skipped for lack of responsibility mass.
func mstep(xs []float64, rExp, rGau []float64, cur Params, expLoc float64) (Params, bool, error) {
	n := float64(len(xs))
	proportion := floats.Sum(rExp) / n

	// The exponential scale only sees observations on the
	// component's support.
	var sw, swx float64
	for i, x := range xs {
		if x < expLoc {
			continue
		}
		sw += rExp[i]
		swx += rExp[i] * (x - expLoc)
	}
	beta := cur.Beta
	nearDeg := false
	if sw <= minResponsibility {
		nearDeg = true
	} else {
		beta = swx / sw
	}
	if !(beta > 0) || math.IsInf(beta, 0) {
		return Params{}, false, fmt.Errorf("%w: exponential scale collapsed to %g", ErrDegenerate, beta)
	}

	swg := floats.Sum(rGau)
	if swg <= minResponsibility {
		return Params{}, false, fmt.Errorf("%w: gaussian component has no responsibility mass", ErrDegenerate)
	}
	g := stats.Sample{Xs: xs, Weights: rGau}
	mu := g.Mean()
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return Params{}, false, fmt.Errorf("%w: gaussian mean diverged to %g", ErrDegenerate, mu)
	}
	sigma := g.StdDev()
	if !(sigma > sigmaFloor) {
		sigma = sigmaFloor
	}

	return Params{Beta: beta, Mu: mu, Sigma: sigma, Proportion: proportion}, nearDeg, nil
}

// logLikelihood returns the sample log-likelihood under d, summing in
// sample order so repeated fits are bit-identical.
func logLikelihood(xs []float64, d Dist) float64 {
	var ll float64
	for _, x := range xs {
		ll += math.Log(d.PDF(x))
	}
	return ll
}
