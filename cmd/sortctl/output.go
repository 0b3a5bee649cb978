package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/amp-labs/amp-sort/cli"
	"github.com/amp-labs/amp-sort/sorter"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

type sortResult[T any] struct {
	Algorithm sorter.Algorithm `json:"algorithm" yaml:"algorithm"`
	Count     int              `json:"count"     yaml:"count"`
	Values    []T              `json:"values"    yaml:"values"`
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2) //nolint:mnd

		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	}
}

func writeValues[T any](w io.Writer, format string, alg sorter.Algorithm, values []T) error {
	if format != formatText {
		if values == nil {
			values = []T{}
		}

		return encode(w, format, sortResult[T]{Algorithm: alg, Count: len(values), Values: values})
	}

	for _, v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}

	return nil
}

func writeBench(w io.Writer, format string, report benchReport) error {
	if format != formatText {
		return encode(w, format, report)
	}

	title := fmt.Sprintf("%d random integers, seed %d", report.Size, report.Seed)
	if _, err := fmt.Fprintln(w, cli.Banner(title, cli.DefaultWidth, cli.AlignCenter)); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd
	fmt.Fprintln(tw, "ALGORITHM\tCOMPARISONS\tDURATION\tWORST\tSTABLE") //nolint:errcheck

	for _, r := range report.Results {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%t\n", //nolint:errcheck
			r.Algorithm, r.Comparisons, r.Elapsed, r.Properties.Worst, r.Properties.Stable)
	}

	return tw.Flush()
}
