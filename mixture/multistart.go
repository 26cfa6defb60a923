// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixture

import (
	"errors"

	"golang.org/x/sync/errgroup"
)

// FitMultiStart runs one Fit per entry in opts concurrently, sharing
// the read-only sample xs, and returns the result with the highest
// final log-likelihood. EM only finds a local optimum, so restarting
// from several initial parameter sets guards against a bad starting
// point.
//
// Fits that fail do not abort the others; FitMultiStart returns an
// error only if every fit fails. With no options it is equivalent to
// a single Fit with defaults.
func FitMultiStart(xs []float64, opts []*Options) (*Result, error) {
	if len(opts) == 0 {
		return Fit(xs, nil)
	}

	results := make([]*Result, len(opts))
	errs := make([]error, len(opts))
	var g errgroup.Group
	for i, opt := range opts {
		i, opt := i, opt
		g.Go(func() error {
			results[i], errs[i] = Fit(xs, opt)
			return nil
		})
	}
	g.Wait()

	var best *Result
	for _, r := range results {
		if r == nil {
			continue
		}
		if best == nil || r.LogLikelihood > best.LogLikelihood {
			best = r
		}
	}
	if best == nil {
		return nil, errors.Join(errs...)
	}
	return best, nil
}
