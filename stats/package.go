// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats provides continuous distributions and sample statistics for
// Gaussian-exponential mixture fitting.
package stats // import "github.com/fatmac78/gaussian-exponential-mixture/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
