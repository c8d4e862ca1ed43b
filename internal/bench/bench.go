// Package bench times repeated invocations of tensor operations.
package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"k8s.io/klog/v2"
)

// Case is a named operation to measure.
type Case struct {
	Name string
	Fn   func() error
}

// Result holds the timings of one case.
type Result struct {
	Name       string
	Iterations int
	Total      time.Duration
	Mean       time.Duration
	Min        time.Duration
	Max        time.Duration
}

// Config controls how many times each case runs.
type Config struct {
	Warmup     int // Untimed runs before measuring.
	Iterations int // Timed runs.
}

// DefaultConfig returns a small configuration suitable for a quick report.
func DefaultConfig() Config {
	return Config{
		Warmup:     2,
		Iterations: 20,
	}
}

// Run measures every case in order. The first error aborts the run and is
// returned together with the results gathered so far.
func Run(cases []Case, cfg Config) ([]Result, error) {
	if cfg.Iterations <= 0 {
		return nil, fmt.Errorf("bench: iterations must be positive, got %d", cfg.Iterations)
	}

	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		klog.V(1).InfoS("Running benchmark", "case", c.Name, "warmup", cfg.Warmup, "iterations", cfg.Iterations)

		for i := 0; i < cfg.Warmup; i++ {
			if err := c.Fn(); err != nil {
				return results, fmt.Errorf("bench %q: warmup: %w", c.Name, err)
			}
		}

		res := Result{Name: c.Name, Iterations: cfg.Iterations}
		for i := 0; i < cfg.Iterations; i++ {
			start := time.Now()
			err := c.Fn()
			elapsed := time.Since(start)
			if err != nil {
				return results, fmt.Errorf("bench %q: iteration %d: %w", c.Name, i, err)
			}

			res.Total += elapsed
			if i == 0 || elapsed < res.Min {
				res.Min = elapsed
			}
			if elapsed > res.Max {
				res.Max = elapsed
			}
		}
		res.Mean = res.Total / time.Duration(cfg.Iterations)

		klog.V(1).InfoS("Finished benchmark", "case", c.Name, "mean", res.Mean)
		results = append(results, res)
	}
	return results, nil
}

// Report writes results as an aligned table.
func Report(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CASE\tITERATIONS\tMEAN\tMIN\tMAX")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%v\t%v\t%v\n", r.Name, r.Iterations, r.Mean, r.Min, r.Max)
	}
	return tw.Flush()
}
