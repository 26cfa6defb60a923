// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixture

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// mixedSample returns n draws from an exponential distribution with
// scale beta shifted by loc followed by n draws from a Gaussian with
// mean mu and standard deviation sigma. The draws are deterministic.
func mixedSample(n int, beta, loc, mu, sigma float64) []float64 {
	exp := distuv.Exponential{Rate: 1 / beta, Src: rand.NewSource(1)}
	norm := distuv.Normal{Mu: mu, Sigma: sigma, Src: rand.NewSource(2)}
	xs := make([]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		xs = append(xs, loc+exp.Rand())
	}
	for i := 0; i < n; i++ {
		xs = append(xs, norm.Rand())
	}
	return xs
}

func checkParams(t *testing.T, want, got Params, tol float64) {
	t.Helper()
	if !aeqTol(want.Beta, got.Beta, tol) {
		t.Errorf("want beta ~ %v, got %v", want.Beta, got.Beta)
	}
	if !aeqTol(want.Mu, got.Mu, tol) {
		t.Errorf("want mu ~ %v, got %v", want.Mu, got.Mu)
	}
	if !aeqTol(want.Sigma, got.Sigma, tol) {
		t.Errorf("want sigma ~ %v, got %v", want.Sigma, got.Sigma)
	}
	if !aeqTol(want.Proportion, got.Proportion, tol) {
		t.Errorf("want proportion ~ %v, got %v", want.Proportion, got.Proportion)
	}
}

func TestFitRecoversParameters(t *testing.T) {
	xs := mixedSample(2000, 1, 0, 10, 1)
	res, err := Fit(xs, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Converged {
		t.Errorf("want convergence within %d iterations, stopped at %d", DefaultMaxIterations, res.Iterations)
	}
	checkParams(t, Params{Beta: 1, Mu: 10, Sigma: 1, Proportion: 0.5}, res.Params, 0.1)
	if math.IsNaN(res.LogLikelihood) || math.IsInf(res.LogLikelihood, 0) {
		t.Errorf("want finite log-likelihood, got %v", res.LogLikelihood)
	}
	if got := res.Trace[len(res.Trace)-1]; got != res.LogLikelihood {
		t.Errorf("want Trace to end at LogLikelihood %v, got %v", res.LogLikelihood, got)
	}
}

func TestFitLogLikelihoodMonotone(t *testing.T) {
	xs := mixedSample(500, 2, 0, 8, 0.5)
	res, err := Fit(xs, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(res.Trace); i++ {
		slack := 1e-9 * (1 + math.Abs(res.Trace[i-1]))
		if res.Trace[i] < res.Trace[i-1]-slack {
			t.Errorf("log-likelihood decreased from %v to %v at iteration %d", res.Trace[i-1], res.Trace[i], i+1)
		}
	}
}

func TestFitReproducible(t *testing.T) {
	xs := mixedSample(300, 1, 0, 10, 1)
	r1, err := Fit(xs, &Options{Tolerance: 1e-8})
	if err != nil {
		t.Fatal(err)
	}
	r2, err := Fit(xs, &Options{Tolerance: 1e-8})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(r1, r2) {
		t.Errorf("want identical results, got %+v and %+v", r1, r2)
	}
}

func TestFitSampleSize(t *testing.T) {
	for _, xs := range [][]float64{nil, {}, {1.5}} {
		if _, err := Fit(xs, nil); !errors.Is(err, ErrSampleSize) {
			t.Errorf("want ErrSampleSize for %d observations, got %v", len(xs), err)
		}
	}
}

func TestFitInvalidInitialParams(t *testing.T) {
	bad := []Params{
		{Beta: -1, Mu: 0, Sigma: 1, Proportion: 0.5},
		{Beta: 1, Mu: 0, Sigma: 0, Proportion: 0.5},
		{Beta: 1, Mu: 0, Sigma: 1, Proportion: 1.5},
		{Beta: 1, Mu: math.NaN(), Sigma: 1, Proportion: 0.5},
	}
	xs := []float64{1, 2, 3}
	for _, p := range bad {
		if _, err := Fit(xs, &Options{InitialParams: &p}); !errors.Is(err, ErrParams) {
			t.Errorf("want ErrParams for %v, got %v", p, err)
		}
	}
}

func TestFitConstantSample(t *testing.T) {
	xs := make([]float64, 50)
	for i := range xs {
		xs[i] = 5
	}
	res, err := Fit(xs, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Params.Sigma; got != sigmaFloor {
		t.Errorf("want sigma at its floor %v, got %v", sigmaFloor, got)
	}
	for _, v := range []float64{res.Params.Beta, res.Params.Mu, res.Params.Proportion, res.LogLikelihood} {
		if math.IsNaN(v) {
			t.Fatalf("NaN in result %+v", res)
		}
	}
}

func TestFitNegativeObservations(t *testing.T) {
	// The Gaussian component sits entirely below the exponential
	// support.
	xs := mixedSample(1000, 2, 0, -5, 1)
	init := Params{Beta: 3, Mu: -4, Sigma: 2, Proportion: 0.5}
	res, err := Fit(xs, &Options{InitialParams: &init})
	if err != nil {
		t.Fatal(err)
	}
	checkParams(t, Params{Beta: 2, Mu: -5, Sigma: 1, Proportion: 0.5}, res.Params, 0.2)
}

func TestFitWithExpLoc(t *testing.T) {
	xs := mixedSample(1000, 1, 2, 12, 1)
	res, err := Fit(xs, &Options{ExpLoc: 2})
	if err != nil {
		t.Fatal(err)
	}
	if res.ExpLoc != 2 {
		t.Errorf("want ExpLoc 2, got %v", res.ExpLoc)
	}
	checkParams(t, Params{Beta: 1, Mu: 12, Sigma: 1, Proportion: 0.5}, res.Params, 0.1)
}

func TestEStepTieBreak(t *testing.T) {
	// With the whole weight on the exponential component, an
	// observation below its support has zero density under both
	// weighted components.
	d := Dist{Params: Params{Beta: 1, Mu: 0, Sigma: 1, Proportion: 1}}
	rExp, rGau := make([]float64, 1), make([]float64, 1)
	estep([]float64{-5}, d, rExp, rGau)
	if rExp[0] != 0.5 || rGau[0] != 0.5 {
		t.Errorf("want responsibilities split 0.5/0.5, got %v/%v", rExp[0], rGau[0])
	}
}

func TestMStepClosedForm(t *testing.T) {
	xs := []float64{1, 3, 10, 12}
	rExp := []float64{1, 1, 0, 0}
	rGau := []float64{0, 0, 1, 1}
	cur := Params{Beta: 5, Mu: 5, Sigma: 5, Proportion: 0.5}
	p, nearDeg, err := mstep(xs, rExp, rGau, cur, 0)
	if err != nil {
		t.Fatal(err)
	}
	if nearDeg {
		t.Error("unexpected near-degeneracy")
	}
	if !aeq(0.5, p.Proportion) {
		t.Errorf("want proportion 0.5, got %v", p.Proportion)
	}
	if !aeq(2, p.Beta) {
		t.Errorf("want beta 2, got %v", p.Beta)
	}
	if !aeq(11, p.Mu) {
		t.Errorf("want mu 11, got %v", p.Mu)
	}
	if !aeq(1, p.Sigma) {
		t.Errorf("want sigma 1, got %v", p.Sigma)
	}
}

func TestMStepDegenerate(t *testing.T) {
	xs := []float64{1, 2}
	cur := Params{Beta: 1, Mu: 1, Sigma: 1, Proportion: 0.5}

	// No Gaussian responsibility mass at all.
	_, _, err := mstep(xs, []float64{1, 1}, []float64{0, 0}, cur, 0)
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("want ErrDegenerate, got %v", err)
	}

	// No exponential responsibility mass keeps beta and flags
	// near-degeneracy instead of failing.
	p, nearDeg, err := mstep(xs, []float64{0, 0}, []float64{1, 1}, cur, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !nearDeg {
		t.Error("want near-degeneracy flag")
	}
	if p.Beta != cur.Beta {
		t.Errorf("want beta carried over as %v, got %v", cur.Beta, p.Beta)
	}
}

func BenchmarkFit(b *testing.B) {
	xs := mixedSample(200, 1, 0, 10, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Fit(xs, nil); err != nil {
			b.Fatal(err)
		}
	}
}
