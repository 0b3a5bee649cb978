package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/sorter"
)

const maxTokenSize = 1 << 20

// openInput opens one named input. "-" is stdin.
func openInput(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(stdin), nil
	}

	return os.Open(name)
}

// readEach reads every input separately. No files means a single stdin
// input named "-".
func readEach(files []string, stdin io.Reader) ([]string, [][]string, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}

	groups := make([][]string, len(files))

	for i, name := range files {
		input, err := openInput(name, stdin)
		if err != nil {
			return nil, nil, err
		}

		tokens, err := readTokens(input)
		_ = input.Close()

		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", name, err)
		}

		groups[i] = tokens
	}

	return files, groups, nil
}

// readAll tokenizes every input on its own and concatenates the tokens, so
// a file without a trailing newline never fuses with the next one.
func readAll(files []string, stdin io.Reader) ([]string, error) {
	_, groups, err := readEach(files, stdin)
	if err != nil {
		return nil, err
	}

	return slices.Concat(groups...), nil
}

// readTokens splits the input on any whitespace.
func readTokens(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxTokenSize)
	scanner.Split(bufio.ScanWords)

	var tokens []string

	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return tokens, nil
}

func parseNumbers(tokens []string) ([]float64, error) {
	values := make([]float64, len(tokens))

	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, errors.InvalidArgument(fmt.Sprintf("value %d (%q) is not a number", i+1, tok), err)
		}

		values[i] = v
	}

	return values, nil
}

func sortNumbers(alg sorter.Algorithm, tokens []string, reverse bool) ([]float64, error) {
	values, err := parseNumbers(tokens)
	if err != nil {
		return nil, err
	}

	s, err := sorter.New[float64](alg)
	if err != nil {
		return nil, err
	}

	return sorter.SortSlice(sorter.Instrumented(s), values, numberOrder(reverse))
}

func numberOrder(reverse bool) compare.Func[float64] {
	if reverse {
		return compare.Reverse(compare.Ordered[float64]())
	}

	return compare.Ordered[float64]()
}

func stringOrder(cfg config) (compare.Func[string], error) {
	var (
		order compare.Func[string]
		err   error
	)

	switch {
	case cfg.natural:
		order = compare.NaturalStrings()
	case cfg.locale != "":
		order, err = compare.ParseCollation(cfg.locale, false)
		if err != nil {
			return nil, err
		}
	default:
		order = compare.Ordered[string]()
	}

	if cfg.reverse {
		order = compare.Reverse(order)
	}

	return order, nil
}

func sortStrings(alg sorter.Algorithm, tokens []string, cfg config) ([]string, error) {
	order, err := stringOrder(cfg)
	if err != nil {
		return nil, err
	}

	s, err := sorter.New[string](alg)
	if err != nil {
		return nil, err
	}

	return sorter.SortSlice(sorter.Instrumented(s), tokens, order)
}
