// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
)

// Sample is a collection of possibly weighted data points.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Weights[i] is the weight of sample Xs[i]. If Weights is
	// nil, all Xs have weight 1. Weights must have the same
	// length of Xs and all values must be non-negative.
	Weights []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Weight returns the total weight of the Sample.
func (s Sample) Weight() float64 {
	if s.Weights == nil {
		return float64(len(s.Xs))
	}
	var w float64
	for _, wi := range s.Weights {
		w += wi
	}
	return w
}

// Sum returns the (possibly weighted) sum of the Sample.
func (s Sample) Sum() float64 {
	var sum float64
	if s.Weights == nil {
		for _, x := range s.Xs {
			sum += x
		}
	} else {
		for i, x := range s.Xs {
			sum += x * s.Weights[i]
		}
	}
	return sum
}

// Mean returns the arithmetic mean of the Sample, or NaN if the
// Sample is empty or has zero total weight.
func (s Sample) Mean() float64 {
	w := s.Weight()
	if len(s.Xs) == 0 || w == 0 {
		return nan
	}
	return s.Sum() / w
}

// Variance returns the variance of the Sample. For an unweighted
// Sample this is the sample variance (Bessel's correction); for a
// weighted Sample it is the weighted population variance about the
// weighted mean.
func (s Sample) Variance() float64 {
	if len(s.Xs) == 0 {
		return nan
	} else if len(s.Xs) == 1 && s.Weights == nil {
		return 0
	}
	mean := s.Mean()
	if s.Weights == nil {
		var ss float64
		for _, x := range s.Xs {
			d := x - mean
			ss += d * d
		}
		return ss / float64(len(s.Xs)-1)
	}
	w := s.Weight()
	if w == 0 {
		return nan
	}
	var ss float64
	for i, x := range s.Xs {
		d := x - mean
		ss += s.Weights[i] * d * d
	}
	return ss / w
}

// StdDev returns the standard deviation of the Sample. See Variance
// for the weighting convention.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Bounds returns the minimum and maximum values of the Sample.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	min, max = inf, -inf
	for _, x := range s.Xs {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return
}

// Percentile returns the pctileth value from the Sample using linear
// interpolation between closest ranks. pctile is a value in [0, 1]
// and is clamped to that range. Percentile does not support weighted
// Samples and panics if Weights is non-nil.
func (s Sample) Percentile(pctile float64) float64 {
	if s.Weights != nil {
		panic("Percentile of weighted sample")
	}
	if len(s.Xs) == 0 {
		return nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	if pctile <= 0 {
		return s.Xs[0]
	} else if pctile >= 1 {
		return s.Xs[len(s.Xs)-1]
	}
	rank := pctile * float64(len(s.Xs)-1)
	lo := math.Floor(rank)
	frac := rank - lo
	i := int(lo)
	if frac == 0 || i+1 >= len(s.Xs) {
		return s.Xs[i]
	}
	return s.Xs[i] + frac*(s.Xs[i+1]-s.Xs[i])
}

// Copy returns a copy of the Sample. The returned Sample shares no
// state with the original, so they can both be modified.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)

	weights := []float64(nil)
	if s.Weights != nil {
		weights = make([]float64, len(s.Weights))
		copy(weights, s.Weights)
	}

	return &Sample{xs, weights, s.Sorted}
}

// Sort sorts the samples in place in s and returns s.
func (s *Sample) Sort() *Sample {
	if s.Sorted || sort.Float64sAreSorted(s.Xs) {
		// All set
	} else if s.Weights == nil {
		sort.Float64s(s.Xs)
	} else {
		sort.Stable(&sampleSorter{s.Xs, s.Weights})
	}
	s.Sorted = true
	return s
}

type sampleSorter struct {
	xs      []float64
	weights []float64
}

func (p *sampleSorter) Len() int {
	return len(p.xs)
}

func (p *sampleSorter) Less(i, j int) bool {
	return p.xs[i] < p.xs[j]
}

func (p *sampleSorter) Swap(i, j int) {
	p.xs[i], p.xs[j] = p.xs[j], p.xs[i]
	p.weights[i], p.weights[j] = p.weights[j], p.weights[i]
}
