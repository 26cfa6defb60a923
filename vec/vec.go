// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// vec provides helpers for operating on slices of float64s.
package vec // import "github.com/fatmac78/gaussian-exponential-mixture/vec"

// Vectorize returns a function g(xs) that applies f to each value in
// xs, preserving length and order.
func Vectorize(f func(float64) float64) func(xs []float64) []float64 {
	return func(xs []float64) []float64 {
		return Map(f, xs)
	}
}

// Map returns f(x) for each x in xs.
func Map(f func(float64) float64, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = f(x)
	}
	return res
}

// Linspace returns num values spaced evenly between lo and hi,
// inclusive.
func Linspace(lo, hi float64, num int) []float64 {
	res := make([]float64, num)
	if num == 1 {
		res[0] = lo
		return res
	}
	for i := 0; i < num; i++ {
		res[i] = lo + float64(i)*(hi-lo)/float64(num-1)
	}
	return res
}
