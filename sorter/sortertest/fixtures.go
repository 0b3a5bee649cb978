package sortertest

import (
	"fmt"
	"math/rand/v2"

	"github.com/zeebo/xxh3"
)

// Fixture is a named input shared by every strategy under test.
type Fixture struct {
	Name  string
	Input []int
}

// randomSizes covers both sides of the insertion-sort cutoff used by the
// divide-and-conquer strategies, plus sizes large enough to recurse deeply.
var randomSizes = []int{2, 3, 5, 12, 13, 31, 64, 100, 257, 1000} //nolint:gochecknoglobals

// Fixtures returns the input battery: the degenerate shapes, the classic
// adversarial shapes, and seeded random inputs of several sizes. Random
// inputs are seeded from the fixture name, so every run (and every strategy)
// sees the same data.
func Fixtures() []Fixture {
	fixtures := []Fixture{
		{Name: "empty", Input: []int{}},
		{Name: "nil", Input: nil},
		{Name: "singleton", Input: []int{7}},
		{Name: "pair in order", Input: []int{1, 2}},
		{Name: "pair reversed", Input: []int{2, 1}},
		{Name: "example", Input: []int{5, 3, 8, 1, 9, 2}},
		{Name: "all duplicates", Input: []int{4, 4, 4}},
		{Name: "already sorted", Input: ascending(200)},
		{Name: "reverse sorted", Input: descending(200)},
		{Name: "all equal large", Input: constant(150, -3)},
		{Name: "organ pipe", Input: organPipe(99)},
		{Name: "sawtooth", Input: sawtooth(300, 17)},
		{Name: "negatives and zero", Input: []int{0, -1, 5, -10, 0, 3, -1}},
	}

	for _, n := range randomSizes {
		fixtures = append(fixtures,
			randomFixture(fmt.Sprintf("random %d", n), n, n*4),
			randomFixture(fmt.Sprintf("few unique %d", n), n, 3),
		)
	}

	return fixtures
}

func randomFixture(name string, n, spread int) Fixture {
	rng := seeded(name)
	input := make([]int, n)

	for i := range input {
		input[i] = rng.IntN(2*spread+1) - spread
	}

	return Fixture{Name: name, Input: input}
}

func seeded(name string) *rand.Rand {
	seed := xxh3.HashString(name)

	return rand.New(rand.NewPCG(seed, seed>>1|1)) //nolint:gosec
}

func ascending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

func descending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = n - i
	}

	return out
}

func constant(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}

	return out
}

func organPipe(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = min(i, n-1-i)
	}

	return out
}

func sawtooth(n, period int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i % period
	}

	return out
}
