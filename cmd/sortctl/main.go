// Command sortctl sorts values read from files or stdin with any of the
// registered sorting strategies, or benchmarks all of them.
//
//	sortctl -algorithm merge -natural names.txt
//	seq 1 20 | shuf | sortctl -numeric -reverse
//	sortctl -bench 10000 -format yaml
//
// The algorithm defaults to $SORT_ALGORITHM, then heap sort. Passing
// -algorithm pick opens an interactive selector. With -each, every file is
// sorted on its own on a worker pool sized by $SORT_WORKER_COUNT.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/amp-labs/amp-sort/cli"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/sorter"
	"github.com/amp-labs/amp-sort/telemetry"
	"github.com/google/uuid"
)

const pickAlgorithm = "pick"

type config struct {
	algorithm string
	reverse   bool
	numeric   bool
	natural   bool
	locale    string
	bench     int
	seed      uint64
	format    string
	each      bool
	files     []string
}

func main() {
	os.Exit(sortctl())
}

func sortctl() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.ConfigureLogging(ctx, "sortctl")

	ctx = logger.With(ctx, "run_id", uuid.NewString())
	log := logger.Get(ctx)

	tel, err := telemetry.LoadConfig(ctx)
	if err != nil {
		log.Error("bad telemetry configuration", "error", err)

		return 1
	}

	shutdown, err := telemetry.Initialize(ctx, tel)
	if err != nil {
		log.Warn("tracing unavailable", "error", err)
	} else {
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), tel.Timeout)
			defer cancel()

			if err := shutdown(flushCtx); err != nil {
				log.Warn("failed to flush traces", "error", err)
			}
		}()
	}

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			log.Error("sortctl failed", "error", err)
			fmt.Fprintln(os.Stderr, "sortctl:", err) //nolint:errcheck
		}

		return 1
	}

	return 0
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("sortctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.algorithm, "algorithm", "",
		"sorting algorithm ("+algorithmNames()+", or "+pickAlgorithm+" to choose interactively)")
	fs.BoolVar(&cfg.reverse, "reverse", false, "sort in descending order")
	fs.BoolVar(&cfg.numeric, "numeric", false, "compare values as numbers")
	fs.BoolVar(&cfg.natural, "natural", false, "natural string order (file2 before file10)")
	fs.StringVar(&cfg.locale, "locale", "", "collate strings by the rules of a BCP 47 locale, e.g. de or sv")
	fs.IntVar(&cfg.bench, "bench", 0, "benchmark every algorithm on N random integers instead of sorting input")
	fs.Uint64Var(&cfg.seed, "seed", 0, "seed for -bench input (0 picks one)")
	fs.StringVar(&cfg.format, "format", formatText, "output format: text, yaml or json")
	fs.BoolVar(&cfg.each, "each", false, "sort every input file on its own, concurrently, instead of merging them")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.files = fs.Args()

	if cfg.natural && cfg.locale != "" {
		return cfg, fmt.Errorf("%w: -natural and -locale are mutually exclusive", errUsage)
	}

	if cfg.each && cfg.bench > 0 {
		return cfg, fmt.Errorf("%w: -each has no effect with -bench", errUsage)
	}

	if cfg.numeric && (cfg.natural || cfg.locale != "") {
		return cfg, fmt.Errorf("%w: -numeric cannot be combined with string orderings", errUsage)
	}

	switch cfg.format {
	case formatText, formatYAML, formatJSON:
	default:
		return cfg, fmt.Errorf("%w: unknown format %q", errUsage, cfg.format)
	}

	return cfg, nil
}

var errUsage = errors.New("usage")

func algorithmNames() string {
	algs := sorter.Algorithms()
	names := make([]string, 0, len(algs))

	for _, a := range algs {
		names = append(names, a.String())
	}

	return strings.Join(names, ", ")
}

func chooseAlgorithm(ctx context.Context, name string) (sorter.Algorithm, error) {
	switch name {
	case "":
		return sorter.ConfiguredAlgorithm(ctx)
	case pickAlgorithm:
		return cli.Terminal().SelectAlgorithm()
	default:
		return sorter.ParseAlgorithm(name)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if cfg.bench > 0 {
		report, err := benchmark(ctx, cfg.bench, cfg.seed)
		if err != nil {
			return err
		}

		return writeBench(stdout, cfg.format, report)
	}

	alg, err := chooseAlgorithm(ctx, cfg.algorithm)
	if err != nil {
		return err
	}

	ctx = logger.With(ctx, "algorithm", alg.String())

	if cfg.each {
		names, groups, err := readEach(cfg.files, stdin)
		if err != nil {
			return err
		}

		return runEach(ctx, alg, cfg, names, groups, stdout)
	}

	tokens, err := readAll(cfg.files, stdin)
	if err != nil {
		return err
	}

	logger.Get(ctx).Debug("read input", "values", len(tokens))

	if cfg.numeric {
		values, err := sortNumbers(alg, tokens, cfg.reverse)
		if err != nil {
			return err
		}

		return writeValues(stdout, cfg.format, alg, values)
	}

	values, err := sortStrings(alg, tokens, cfg)
	if err != nil {
		return err
	}

	return writeValues(stdout, cfg.format, alg, values)
}
