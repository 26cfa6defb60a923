// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixture

import "math"

func aeq(expect, got float64) bool {
	return aeqTol(expect, got, 0.00001)
}

func aeqTol(expect, got, tol float64) bool {
	return math.Abs(expect-got) < tol
}
