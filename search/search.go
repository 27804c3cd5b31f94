// Package search sweeps the three-dimensional spread space, classifying the
// shadow of a point set at every grid sample by its hull vertex count. Each
// sample is independent, so the sweep partitions the outer axis across a
// worker pool and merges private result buffers after the workers finish.
package search

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/artexplorer/primecut"
	"gonum.org/v1/gonum/spatial/r3"
)

// planeDistance used for every sample. Hull topology is invariant to the
// plane offset, so any fixed value serves.
const planeDistance = 1

// Match records one grid sample whose shadow had the requested hull count.
type Match struct {
	Spreads          primecut.Spreads `json:"spreads"`
	HullCount        int              `json:"hull_count"`
	MaxInteriorAngle float64          `json:"max_interior_angle"`
}

// Grid returns the sample values from lo to hi in increments of step, both
// endpoints included. Values are computed as lo + i·step rather than
// accumulated, and the upper bound carries step/2 slack, so grid points
// like 0.5 land exactly and float drift cannot drop the final endpoint.
// Presets sit on grid points; an exclusive bound would miss them.
func Grid(lo, hi, step float64) []float64 {
	if step <= 0 {
		panic("search: grid step must be positive")
	}
	var grid []float64
	for i := 0; ; i++ {
		v := lo + float64(i)*step
		if v > hi+step/2 {
			return grid
		}
		grid = append(grid, v)
	}
}

// ForHullCount sweeps spreads over [lo,hi]³ at the given step and returns a
// Match for every sample whose hull has exactly target vertices. Results
// come back in canonical sweep order (s1 outer, s2 middle, s3 inner)
// regardless of how the work was partitioned. The context is checked
// between outer-loop iterations only; a long inner block runs to its end
// before cancellation is noticed.
func ForHullCount(ctx context.Context, points []r3.Vec, target int, step, lo, hi float64) ([]Match, error) {
	grid := Grid(lo, hi, step)
	if err := validateGrid(grid); err != nil {
		return nil, err
	}

	results := make([][]Match, poolSize(len(grid)))
	err := sweep(ctx, grid, len(results), func(w int, s1 float64) error {
		for _, s2 := range grid {
			for _, s3 := range grid {
				proj, err := primecut.ProjectAndHull(points, primecut.Spreads{s1, s2, s3}, planeDistance)
				if err != nil {
					return err
				}
				if proj.HullCount() == target {
					results[w] = append(results[w], Match{
						Spreads:          primecut.Spreads{s1, s2, s3},
						HullCount:        proj.HullCount(),
						MaxInteriorAngle: primecut.MaxInteriorAngle(proj.Hull),
					})
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var merged []Match
	for _, buf := range results {
		merged = append(merged, buf...)
	}
	return merged, nil
}

// Distribution sweeps spreads over [0,1]³ at the given step and returns the
// histogram of hull counts. Bucket counts sum to len(Grid(0,1,step))³.
func Distribution(ctx context.Context, points []r3.Vec, step float64) (map[int]int, error) {
	grid := Grid(0, 1, step)
	if err := validateGrid(grid); err != nil {
		return nil, err
	}

	hists := make([]map[int]int, poolSize(len(grid)))
	err := sweep(ctx, grid, len(hists), func(w int, s1 float64) error {
		if hists[w] == nil {
			hists[w] = make(map[int]int)
		}
		for _, s2 := range grid {
			for _, s3 := range grid {
				proj, err := primecut.ProjectAndHull(points, primecut.Spreads{s1, s2, s3}, planeDistance)
				if err != nil {
					return err
				}
				hists[w][proj.HullCount()]++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	merged := make(map[int]int)
	for _, h := range hists {
		for count, n := range h {
			merged[count] += n
		}
	}
	return merged, nil
}

// validateGrid rejects sweeps whose samples would fail spread validation,
// before any worker starts.
func validateGrid(grid []float64) error {
	if len(grid) == 0 {
		return errors.New("search: empty sweep range")
	}
	for _, v := range grid {
		if err := (primecut.Spreads{v, v, v}).Validate(); err != nil {
			return err
		}
	}
	return nil
}

// poolSize is the worker count for a sweep with n outer-axis samples.
func poolSize(n int) int {
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// sweep partitions the outer axis into contiguous blocks, one per worker.
// Contiguous blocks mean concatenating per-worker buffers in worker order
// reproduces the canonical sweep order with no sorting. body is called per
// outer-axis sample with the worker index; ctx is polled between calls.
func sweep(ctx context.Context, grid []float64, workers int, body func(w int, s1 float64) error) error {
	per := len(grid) / workers
	rem := len(grid) % workers

	errs := make([]error, workers)
	var wg sync.WaitGroup
	start := 0
	for w := 0; w < workers; w++ {
		n := per
		if w < rem {
			n++
		}
		wg.Add(1)
		go func(w, start, n int) {
			defer wg.Done()
			for _, s1 := range grid[start : start+n] {
				if err := ctx.Err(); err != nil {
					errs[w] = err
					return
				}
				if err := body(w, s1); err != nil {
					errs[w] = err
					return
				}
			}
		}(w, start, n)
		start += n
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
