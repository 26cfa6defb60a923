// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixture

import "errors"

var (
	// ErrSampleSize is returned by Fit when the sample has fewer
	// than two observations.
	ErrSampleSize = errors.New("sample must have at least two observations")

	// ErrParams is returned by Fit when caller-supplied initial
	// parameters violate an invariant (beta <= 0, sigma <= 0, or
	// proportion outside [0, 1]).
	ErrParams = errors.New("invalid mixture parameters")

	// ErrDegenerate is returned by Fit when an EM update would
	// produce an ill-posed model, such as the Gaussian component
	// losing all responsibility mass or a parameter becoming
	// non-finite. The caller may retry with different initial
	// parameters.
	ErrDegenerate = errors.New("degenerate fit")
)
