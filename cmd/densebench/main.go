// Copyright 2025 The go-densekern Authors. SPDX-License-Identifier: Apache-2.0

// Command densebench times the dense kernels on randomly generated inputs.
//
// Usage:
//
//	densebench -kernel apsp -n 3000 -mode vec
//	densebench -kernel matmul -dims 2000x1000x3000 -mode scalar -parallel=false
//
// The harness generates a random symmetric graph (or constant-filled
// operand matrices), invokes the selected engine once and reports the
// wall-clock duration. All engine configuration is runtime: problem size,
// lane width and worker count are flags.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/densekern/go-densekern/apsp"
	"github.com/densekern/go-densekern/lane"
	"github.com/densekern/go-densekern/mat"
	"github.com/densekern/go-densekern/matmul"
	"github.com/densekern/go-densekern/workerpool"
)

var (
	kernel   = flag.String("kernel", "apsp", "kernel to run: apsp or matmul")
	mode     = flag.String("mode", "vec", "engine variant: scalar or vec")
	parallel = flag.Bool("parallel", true, "spread work over the worker pool")
	graphN   = flag.Int("n", 3000, "vertex count for -kernel apsp")
	dims     = flag.String("dims", "2000x1000x3000", "MxNxK operand dims for -kernel matmul")
	workers  = flag.Int("workers", 0, "worker count (default: GOMAXPROCS)")
	width    = flag.Int("width", 0, "lane width override in bytes (16, 32 or 64)")
	seed     = flag.Uint64("seed", 8, "seed for the random graph generator")
)

func main() {
	flag.Parse()
	log.SetFlags(0)

	if *mode != "scalar" && *mode != "vec" {
		log.Fatalf("densebench: unknown -mode %q", *mode)
	}
	if *width != 0 {
		if err := lane.SetWidth(*width); err != nil {
			log.Fatalf("densebench: %v", err)
		}
	}

	pool := workerpool.New(*workers)
	defer pool.Close()

	var err error
	switch *kernel {
	case "apsp":
		err = runAPSP(pool)
	case "matmul":
		err = runMatMul(pool)
	default:
		fmt.Fprintf(os.Stderr, "densebench: unknown -kernel %q\n\n", *kernel)
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("densebench: %v", err)
	}
}

// runAPSP builds a random symmetric graph (diagonal 0, uniform weights
// 1..100, unreachable elsewhere) and times one shortest-path run.
func runAPSP(pool *workerpool.Pool) error {
	n := *graphN
	src, err := mat.NewMatrix[int32](n, n)
	if err != nil {
		return err
	}
	dst, err := mat.NewMatrix[int32](n, n)
	if err != nil {
		return err
	}

	if err := fillRandomGraph(src, *seed); err != nil {
		return err
	}

	start := time.Now()
	switch {
	case *parallel && *mode == "vec":
		err = apsp.ParallelFloydWarshallVec(pool, dst, src)
	case *parallel:
		err = apsp.ParallelFloydWarshall(pool, dst, src)
	case *mode == "vec":
		err = apsp.FloydWarshallVec(dst, src)
	default:
		err = apsp.FloydWarshall(dst, src)
	}
	if err != nil {
		return err
	}

	report("apsp", fmt.Sprintf("n=%d", n), time.Since(start))
	return nil
}

// runMatMul multiplies constant-filled operands and times one product.
func runMatMul(pool *workerpool.Pool) error {
	m, n, k, err := parseDims(*dims)
	if err != nil {
		return err
	}

	a, err := mat.NewMatrix[int32](m, n)
	if err != nil {
		return err
	}
	b, err := mat.NewMatrix[int32](n, k)
	if err != nil {
		return err
	}
	res, err := mat.NewMatrix[int32](m, k)
	if err != nil {
		return err
	}
	a.Fill(100)
	b.Fill(50)

	start := time.Now()
	switch {
	case *parallel && *mode == "vec":
		err = matmul.ParallelMatMulVec(pool, a, b, res)
	case *parallel:
		err = matmul.ParallelMatMul(pool, a, b, res)
	case *mode == "vec":
		err = matmul.MatMulVec(a, b, res)
	default:
		err = matmul.MatMul(a, b, res)
	}
	if err != nil {
		return err
	}

	report("matmul", fmt.Sprintf("dims=%dx%dx%d", m, n, k), time.Since(start))
	return nil
}

// fillRandomGraph populates g with a random symmetric graph in parallel:
// each goroutine owns a contiguous range of source rows and seeds its own
// generator, so the fill is deterministic for a given seed and row split.
func fillRandomGraph(g *mat.Matrix[int32], seed uint64) error {
	n := g.Rows()
	g.Fill(apsp.Unreachable)
	for i := range n {
		g.Set(i, i, 0)
	}

	var eg errgroup.Group
	workers := runtime.GOMAXPROCS(0)
	chunk := (n + workers - 1) / workers
	if chunk == 0 {
		chunk = 1
	}
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		eg.Go(func() error {
			rng := rand.New(rand.NewPCG(seed, uint64(start)))
			for i := start; i < end; i++ {
				for j := i + 1; j < n; j++ {
					w := int32(1 + rng.IntN(100))
					// Each (i, j) pair is visited exactly once, so the
					// mirrored write touches a distinct cell.
					g.Set(i, j, w)
					g.Set(j, i, w)
				}
			}
			return nil
		})
	}
	return eg.Wait()
}

func parseDims(s string) (m, n, k int, err error) {
	parts := strings.Split(s, "x")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid -dims %q: want MxNxK", s)
	}
	var out [3]int
	for i, p := range parts {
		if _, err := fmt.Sscanf(p, "%d", &out[i]); err != nil || out[i] <= 0 {
			return 0, 0, 0, fmt.Errorf("invalid -dims %q: want MxNxK", s)
		}
	}
	return out[0], out[1], out[2], nil
}

func report(kernel, size string, elapsed time.Duration) {
	variant := *mode
	if *parallel {
		variant = "parallel-" + variant
	}
	fmt.Printf("%s %s engine=%s width=%dB workers=%d: %d ms\n",
		kernel, size, variant, lane.Width(), effectiveWorkers(), elapsed.Milliseconds())
}

func effectiveWorkers() int {
	if *workers > 0 {
		return *workers
	}
	return runtime.GOMAXPROCS(0)
}
