package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/sorter"
)

var errOutOfOrder = errors.New("output not in order")

type benchResult struct {
	Algorithm   sorter.Algorithm  `json:"algorithm"   yaml:"algorithm"`
	Properties  sorter.Properties `json:"properties"  yaml:"properties"`
	Comparisons int64             `json:"comparisons" yaml:"comparisons"`
	Elapsed     time.Duration     `json:"-"           yaml:"-"`
	Duration    string            `json:"duration"    yaml:"duration"`
}

type benchReport struct {
	Size    int           `json:"size"    yaml:"size"`
	Seed    uint64        `json:"seed"    yaml:"seed"`
	Results []benchResult `json:"results" yaml:"results"`
}

func randomInts(n int, seed uint64) []int {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec

	values := make([]int, n)
	for i := range values {
		values[i] = rng.IntN(n * 4) //nolint:mnd
	}

	return values
}

// benchmark sorts the same n random integers with every registered strategy.
func benchmark(ctx context.Context, n int, seed uint64) (benchReport, error) {
	return benchSorters(ctx, sorter.All[int](), n, seed)
}

// benchSorters fails with errOutOfOrder as soon as one sorter leaves its
// input unsorted.
func benchSorters(ctx context.Context, sorters []sorter.Sorter[int], n int, seed uint64) (benchReport, error) {
	if seed == 0 {
		seed = rand.Uint64() //nolint:gosec
	}

	input := randomInts(n, seed)
	report := benchReport{Size: n, Seed: seed}

	for _, s := range sorters {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		values := append([]int(nil), input...)
		counted, calls := compare.Counting(compare.Ordered[int]())

		start := time.Now()

		if _, err := sorter.SortSlice(s, values, counted); err != nil {
			return report, fmt.Errorf("%s sort: %w", s.Algorithm(), err)
		}

		elapsed := time.Since(start)

		if !sorter.IsSorted(sorter.Slice[int](values), compare.Ordered[int]()) {
			return report, fmt.Errorf("%s sort: %w", s.Algorithm(), errOutOfOrder)
		}

		logger.Get(ctx).Debug("benchmarked",
			"algorithm", s.Algorithm().String(),
			"comparisons", calls.Load(),
			"duration", elapsed)

		report.Results = append(report.Results, benchResult{
			Algorithm:   s.Algorithm(),
			Properties:  s.Properties(),
			Comparisons: calls.Load(),
			Elapsed:     elapsed,
			Duration:    elapsed.String(),
		})
	}

	return report, nil
}
