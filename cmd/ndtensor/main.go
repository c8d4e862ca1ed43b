// Package main provides the ndtensor demonstration CLI.
//
// It contracts two random tensors, prints the result shape and one element,
// then benchmarks elementwise and contraction operations.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"k8s.io/klog/v2"

	"github.com/born-ml/ndtensor/internal/bench"
	"github.com/born-ml/ndtensor/internal/parallel"
	"github.com/born-ml/ndtensor/internal/serialization"
	"github.com/born-ml/ndtensor/internal/tensor"
)

const version = "v0.1.0"

// shapeFlag parses a comma-separated list of dimensions, e.g. "4,100,8".
type shapeFlag []int

func (s *shapeFlag) String() string {
	parts := make([]string, len(*s))
	for i, d := range *s {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}

func (s *shapeFlag) Set(v string) error {
	var dims []int
	for i, p := range strings.Split(v, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			return fmt.Errorf("empty dimension at position %d in %q", i, v)
		}
		d, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("invalid dimension %q: %w", p, err)
		}
		dims = append(dims, d)
	}
	*s = dims
	return nil
}

type options struct {
	shapeA     shapeFlag
	shapeB     shapeFlag
	axisA      int
	axisB      int
	iterations int
	warmup     int
	parallel   bool
	seed       int64
	save       string
	bench      bool
	version    bool
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	opts := options{
		shapeA: shapeFlag{4, 100, 8},
		shapeB: shapeFlag{8, 64, 4},
	}
	cfg := bench.DefaultConfig()

	fs.Var(&opts.shapeA, "shape-a", "shape of the first operand (comma-separated)")
	fs.Var(&opts.shapeB, "shape-b", "shape of the second operand (comma-separated)")
	fs.IntVar(&opts.axisA, "axis-a", 0, "contracted axis of the first operand (negative counts from the end)")
	fs.IntVar(&opts.axisB, "axis-b", 2, "contracted axis of the second operand (negative counts from the end)")
	fs.IntVar(&opts.iterations, "iterations", cfg.Iterations, "timed iterations per benchmark case")
	fs.IntVar(&opts.warmup, "warmup", cfg.Warmup, "untimed iterations per benchmark case")
	fs.BoolVar(&opts.parallel, "parallel", false, "split contractions across CPUs")
	fs.Int64Var(&opts.seed, "seed", 0, "random seed (0 uses the current time)")
	fs.StringVar(&opts.save, "save", "", "write operands and result to this safetensors file")
	fs.BoolVar(&opts.bench, "bench", true, "run the benchmark suite")
	fs.BoolVar(&opts.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func main() {
	fs := flag.NewFlagSet("ndtensor", flag.ExitOnError)
	klog.InitFlags(fs)

	opts, err := parseFlags(fs, os.Args[1:])
	if err != nil {
		klog.ErrorS(err, "Invalid arguments")
		klog.Flush()
		os.Exit(2)
	}

	if err := run(opts, os.Stdout); err != nil {
		klog.ErrorS(err, "ndtensor failed")
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

func run(opts options, out io.Writer) error {
	if opts.version {
		fmt.Fprintf(out, "ndtensor %s\n", version)
		return nil
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // G404: fixtures use math/rand intentionally
	klog.V(1).InfoS("Generating operands", "shapeA", tensor.Shape(opts.shapeA), "shapeB", tensor.Shape(opts.shapeB), "seed", seed)

	a, err := tensor.RandWith[float64](r, opts.shapeA...)
	if err != nil {
		return fmt.Errorf("first operand: %w", err)
	}
	b, err := tensor.RandWith[float64](r, opts.shapeB...)
	if err != nil {
		return fmt.Errorf("second operand: %w", err)
	}

	pcfg := parallel.Sequential()
	if opts.parallel {
		pcfg = parallel.DefaultConfig()
	}

	result, err := tensor.ContractWith(a, b, opts.axisA, opts.axisB, pcfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "shape: %v\n", result.Shape())
	if idx, ok := sampleIndex(result.Shape()); ok {
		v, err := result.Get(idx...)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "value%v: %v\n", tensor.Shape(idx), v)
	}

	if opts.save != "" {
		err := serialization.SaveFile(opts.save, map[string]*tensor.Tensor[float64]{
			"a":      a,
			"b":      b,
			"result": result,
		}, map[string]string{
			"axis_a": strconv.Itoa(opts.axisA),
			"axis_b": strconv.Itoa(opts.axisB),
			"seed":   strconv.FormatInt(seed, 10),
		})
		if err != nil {
			return err
		}
		klog.InfoS("Saved tensors", "path", opts.save)
	}

	if !opts.bench {
		return nil
	}

	results, err := bench.Run(benchCases(a, b, opts, pcfg), bench.Config{
		Warmup:     opts.warmup,
		Iterations: opts.iterations,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	return bench.Report(out, results)
}

// sampleIndex picks the element printed after the contraction: index i on
// axis i, clamped into the shape. It reports false for empty tensors.
func sampleIndex(shape tensor.Shape) ([]int, bool) {
	idx := make([]int, len(shape))
	for i, dim := range shape {
		if dim == 0 {
			return nil, false
		}
		idx[i] = min(i+1, dim-1)
	}
	return idx, true
}

func benchCases(a, b *tensor.Tensor[float64], opts options, pcfg parallel.Config) []bench.Case {
	cases := []bench.Case{
		{Name: "add", Fn: func() error {
			_, err := a.Add(a)
			return err
		}},
		{Name: "multiply", Fn: func() error {
			_, err := a.Mul(a)
			return err
		}},
	}

	if defaultAxesCompatible(a.Shape(), b.Shape()) {
		cases = append(cases, bench.Case{Name: "contract(-1,0)", Fn: func() error {
			_, err := tensor.ContractWith(a, b, -1, 0, pcfg)
			return err
		}})
	} else {
		klog.InfoS("Skipping default-axis contraction", "shapeA", a.Shape(), "shapeB", b.Shape())
	}

	cases = append(cases, bench.Case{
		Name: fmt.Sprintf("contract(%d,%d)", opts.axisA, opts.axisB),
		Fn: func() error {
			_, err := tensor.ContractWith(a, b, opts.axisA, opts.axisB, pcfg)
			return err
		},
	})
	return cases
}

// defaultAxesCompatible reports whether the last axis of a matches the
// first axis of b.
func defaultAxesCompatible(a, b tensor.Shape) bool {
	return len(a) > 0 && len(b) > 0 && a[len(a)-1] == b[0]
}
