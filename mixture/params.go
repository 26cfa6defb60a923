// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixture

import (
	"fmt"
	"math"
)

// Params is a parameter set for a Gaussian-exponential mixture.
type Params struct {
	// Beta is the scale (mean) of the exponential component. The
	// rate of the component is 1/Beta. Beta must be positive.
	Beta float64

	// Mu and Sigma are the mean and standard deviation of the
	// Gaussian component. Sigma must be positive.
	Mu, Sigma float64

	// Proportion is the weight of the exponential component in
	// the mixture, in [0, 1]. The Gaussian component has weight
	// 1 - Proportion.
	Proportion float64
}

func (p Params) String() string {
	return fmt.Sprintf("beta=%.5g mu=%.5g sigma=%.5g proportion=%.5g",
		p.Beta, p.Mu, p.Sigma, p.Proportion)
}

// Valid reports whether p satisfies the mixture invariants, wrapping
// ErrParams with the violated invariant if not.
func (p Params) Valid() error {
	switch {
	case !(p.Beta > 0) || math.IsInf(p.Beta, 0):
		return fmt.Errorf("%w: beta = %g, must be positive", ErrParams, p.Beta)
	case !(p.Sigma > 0) || math.IsInf(p.Sigma, 0):
		return fmt.Errorf("%w: sigma = %g, must be positive", ErrParams, p.Sigma)
	case !(p.Proportion >= 0 && p.Proportion <= 1):
		return fmt.Errorf("%w: proportion = %g, must be in [0, 1]", ErrParams, p.Proportion)
	case math.IsNaN(p.Mu) || math.IsInf(p.Mu, 0):
		return fmt.Errorf("%w: mu = %g, must be finite", ErrParams, p.Mu)
	}
	return nil
}
