// mixfit reads newline-separated numbers from stdin, fits a
// Gaussian-exponential mixture to them, and describes the fit.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatmac78/gaussian-exponential-mixture/mixture"
	"github.com/fatmac78/gaussian-exponential-mixture/stats"
	"github.com/fatmac78/gaussian-exponential-mixture/vec"
)

var (
	flagTol     = flag.Float64("tol", mixture.DefaultTolerance, "relative log-likelihood convergence `tolerance`")
	flagMaxIter = flag.Int("maxiter", mixture.DefaultMaxIterations, "maximum `number` of EM iterations")
	flagExpLoc  = flag.Float64("exploc", 0, "left edge `offset` of the exponential component's support")
	flagPoints  = flag.Int("points", 0, "print the fitted PDF and CDF at `num` evenly spaced points")
)

func main() {
	flag.Parse()

	s := readInput(os.Stdin)
	s.Sort()

	fmt.Printf("N %d  sum %.6g  mean %.6g  std dev %.6g\n", len(s.Xs), s.Sum(), s.Mean(), s.StdDev())
	min, max := s.Bounds()
	fmt.Printf("min %.6g  median %.6g  max %.6g\n", min, s.Percentile(0.5), max)
	fmt.Println()

	res, err := mixture.Fit(s.Xs, &mixture.Options{
		ExpLoc:        *flagExpLoc,
		Tolerance:     *flagTol,
		MaxIterations: *flagMaxIter,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(res.Params)
	fmt.Printf("log-likelihood %.6g  iterations %d  converged %v\n", res.LogLikelihood, res.Iterations, res.Converged)
	if res.NearDegenerate {
		fmt.Println("warning: exponential component is nearly degenerate")
	}

	if *flagPoints > 0 {
		d := res.Dist()
		lo, hi := d.Bounds()
		fmt.Println()
		fmt.Printf("%12s %12s %12s\n", "x", "pdf", "cdf")
		for _, x := range vec.Linspace(lo, hi, *flagPoints) {
			fmt.Printf("%12.6g %12.6g %12.6g\n", x, d.PDF(x), d.CDF(x))
		}
	}
}

func readInput(r io.Reader) (sample stats.Sample) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := scanner.Text()
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		sample.Xs = append(sample.Xs, value)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return
}
