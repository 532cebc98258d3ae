// Command benchkernels compares the scalar, 2-lane and 4-lane butterfly
// kernels on the same sizes.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/cwbudde/binafft"
	"github.com/cwbudde/binafft/internal/bench"
	"github.com/cwbudde/binafft/internal/logging"
)

const (
	modeForward   = "forward"
	modeInverse   = "inverse"
	modeRoundTrip = "roundtrip"
)

type benchResult struct {
	kernel  string
	nsPerOp float64
}

func main() {
	var (
		sizeList = flag.String("sizes", "1024,4096,16384,65536", "comma-separated sizes")
		iters    = flag.Int("iters", 50, "benchmark iterations")
		warmup   = flag.Int("warmup", 5, "warmup iterations")
		mode     = flag.String("mode", modeForward, "benchmark mode: forward, inverse, roundtrip, all")
		double   = flag.Bool("double", false, "benchmark complex128 instead of complex64")
		seed     = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	logger := logging.NewLogger(os.Stderr, "benchkernels", logging.ParseLevel(logging.LevelInfo))

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		logger.Error().Str("sizes", *sizeList).Msg("no valid power-of-two sizes")
		os.Exit(1)
	}

	rnd := rand.New(rand.NewSource(*seed))

	fmt.Printf("iters=%d warmup=%d\n", *iters, *warmup)
	fmt.Printf("%8s  %10s  %16s  %12s  %10s\n", "size", "mode", "kernel", "ns/op", "MFLOPS")

	for _, n := range sizes {
		for _, runMode := range resolveModes(*mode) {
			var results []benchResult
			if *double {
				results = benchmarkSize[complex128](rnd, n, *iters, *warmup, runMode)
			} else {
				results = benchmarkSize[complex64](rnd, n, *iters, *warmup, runMode)
			}

			sort.Slice(results, func(i, j int) bool {
				return results[i].nsPerOp < results[j].nsPerOp
			})

			for _, res := range results {
				perOp := time.Duration(res.nsPerOp)
				fmt.Printf("%8d  %10s  %16s  %12.1f  %10.1f\n", n, runMode, res.kernel, res.nsPerOp, bench.MFLOPS(n, perOp))
			}
		}
	}
}

// benchmarkSize runs every distinct kernel width the CPU offers. Levels that
// collapse to the same kernel are measured once.
func benchmarkSize[T binafft.Complex](rnd *rand.Rand, n, iters, warmup int, mode string) []benchResult {
	src := bench.RandomInput[T](rnd, n)
	dst := make([]T, n)
	freq := make([]T, n)

	levels := []binafft.SIMDLevel{binafft.SIMDNone, binafft.SIMDSSE2, binafft.SIMDAVX, binafft.SIMDAVX512}
	seen := make(map[string]bool)
	results := make([]benchResult, 0, len(levels))

	for _, level := range levels {
		plan, err := binafft.NewPlan[T](n, binafft.WithSIMDLevel(level))
		if err != nil {
			continue
		}

		if seen[plan.Kernel()] {
			_ = plan.Close()
			continue
		}

		seen[plan.Kernel()] = true

		if err := plan.Forward(freq, src); err != nil {
			_ = plan.Close()
			continue
		}

		for _i, _n := 0, warmup; _i < _n; _i++ {
			_ = runPlanMode(plan, dst, src, freq, mode)
		}

		runtime.GC()

		start := time.Now()

		for _i, _n := 0, iters; _i < _n; _i++ {
			_ = runPlanMode(plan, dst, src, freq, mode)
		}

		elapsed := time.Since(start)

		results = append(results, benchResult{
			kernel:  plan.Kernel(),
			nsPerOp: float64(elapsed.Nanoseconds()) / float64(max(iters, 1)),
		})

		_ = plan.Close()
	}

	return results
}

func runPlanMode[T binafft.Complex](plan *binafft.Plan[T], dst, src, freq []T, mode string) error {
	switch mode {
	case modeInverse:
		return plan.Inverse(dst, freq)
	case modeRoundTrip:
		if err := plan.Forward(freq, src); err != nil {
			return err
		}

		return plan.Inverse(dst, freq)
	default:
		return plan.Forward(dst, src)
	}
}

func resolveModes(mode string) []string {
	switch mode {
	case "all":
		return []string{modeForward, modeInverse, modeRoundTrip}
	case modeInverse, modeRoundTrip, modeForward:
		return []string{mode}
	default:
		return []string{modeForward}
	}
}

// parseSizes keeps the positive powers of two in a comma-separated list.
func parseSizes(list string) []int {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		_, err := fmt.Sscanf(part, "%d", &n)
		if err != nil || !binafft.IsPowerOfTwo(n) {
			continue
		}

		out = append(out, n)
	}

	return out
}
