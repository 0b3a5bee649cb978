package main

import (
	"context"
	"fmt"
	"io"

	"github.com/amp-labs/amp-sort/batch"
	"github.com/amp-labs/amp-sort/cli"
	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/sorter"
)

type fileResult[T any] struct {
	File   string `json:"file"   yaml:"file"`
	Count  int    `json:"count"  yaml:"count"`
	Values []T    `json:"values" yaml:"values"`
}

type eachResult[T any] struct {
	Algorithm sorter.Algorithm `json:"algorithm" yaml:"algorithm"`
	Files     []fileResult[T]  `json:"files"     yaml:"files"`
}

func runEach(ctx context.Context, alg sorter.Algorithm, cfg config,
	names []string, groups [][]string, w io.Writer,
) error {
	if cfg.numeric {
		numbers := make([][]float64, len(groups))

		for i, tokens := range groups {
			values, err := parseNumbers(tokens)
			if err != nil {
				return fmt.Errorf("%s: %w", names[i], err)
			}

			numbers[i] = values
		}

		return sortEach(ctx, alg, names, numbers, numberOrder(cfg.reverse), cfg.format, w)
	}

	order, err := stringOrder(cfg)
	if err != nil {
		return err
	}

	return sortEach(ctx, alg, names, groups, order, cfg.format, w)
}

func sortEach[T any](ctx context.Context, alg sorter.Algorithm, names []string, groups [][]T,
	order compare.Func[T], format string, w io.Writer,
) error {
	s, err := sorter.New[T](alg)
	if err != nil {
		return err
	}

	logger.Get(ctx).Debug("sorting inputs separately", "inputs", len(groups))

	if err := batch.SortAllSlices(ctx, sorter.Instrumented(s), groups, order); err != nil {
		return err
	}

	if format != formatText {
		res := eachResult[T]{Algorithm: alg, Files: make([]fileResult[T], len(names))}

		for i, name := range names {
			values := groups[i]
			if values == nil {
				values = []T{}
			}

			res.Files[i] = fileResult[T]{File: name, Count: len(values), Values: values}
		}

		return encode(w, format, res)
	}

	for i, name := range names {
		if _, err := fmt.Fprintln(w, cli.Banner(name, cli.DefaultWidth, cli.AlignLeft)); err != nil {
			return err
		}

		if err := writeValues(w, formatText, alg, groups[i]); err != nil {
			return err
		}
	}

	return nil
}
