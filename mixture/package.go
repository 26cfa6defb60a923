// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mixture fits a two-component probability mixture of an exponential
// and a Gaussian distribution to a one-dimensional sample.
//
// The parameters of the mixture are estimated by expectation
// maximization (EM): starting from an initial guess, Fit alternates
// between computing the posterior probability that each observation
// came from each component (the E-step) and re-estimating the
// parameters from closed-form weighted statistics (the M-step), until
// the sample log-likelihood stops improving or an iteration cap is
// reached. The fitted mixture is exposed as a Dist for density and
// cumulative-distribution evaluation.
package mixture // import "github.com/fatmac78/gaussian-exponential-mixture/mixture"
