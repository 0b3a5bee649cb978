// Package cli holds the interactive and presentational bits of sortctl.
package cli

import (
	"io"
	"os"
	"strings"

	"github.com/amp-labs/amp-sort/sorter"
	"github.com/manifoldco/promptui"
)

// Prompter runs interactive prompts against the given terminal streams.
type Prompter struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// Terminal prompts on the process's stdin/stdout.
func Terminal() Prompter {
	return Prompter{Stdin: os.Stdin, Stdout: os.Stdout}
}

// Select asks the user to pick one of choices. Typing filters by prefix.
func (p Prompter) Select(label string, choices ...string) (string, error) {
	if len(choices) == 0 {
		return "", nil
	}

	sel := &promptui.Select{
		Label: label,
		Items: choices,
		Size:  len(choices),
		Searcher: func(input string, index int) bool {
			return strings.HasPrefix(choices[index], strings.ToLower(strings.TrimSpace(input)))
		},
		Stdin:  p.Stdin,
		Stdout: p.Stdout,
	}

	_, value, err := sel.Run()
	if err != nil {
		return "", err
	}

	return value, nil
}

// SelectAlgorithm lets the user pick a sorting strategy, showing each one's
// complexity and stability next to its name.
func (p Prompter) SelectAlgorithm() (sorter.Algorithm, error) {
	algs := sorter.Algorithms()
	labels := make([]string, len(algs))

	for i, a := range algs {
		labels[i] = Describe(a)
	}

	choice, err := p.Select("Sorting algorithm", labels...)
	if err != nil {
		return "", err
	}

	name, _, _ := strings.Cut(choice, " ")

	return sorter.ParseAlgorithm(name)
}

// Describe renders an algorithm with its headline properties, e.g.
// "merge (worst O(n log n), stable)".
func Describe(a sorter.Algorithm) string {
	s, err := sorter.New[int](a)
	if err != nil {
		return a.String()
	}

	props := s.Properties()

	stability := "unstable"
	if props.Stable {
		stability = "stable"
	}

	return a.String() + " (worst " + string(props.Worst) + ", " + stability + ")"
}
