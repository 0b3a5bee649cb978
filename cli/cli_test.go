package cli

import (
	"strings"
	"testing"

	"github.com/amp-labs/amp-sort/sorter"
	"github.com/stretchr/testify/assert"
)

func TestBanner(t *testing.T) {
	t.Parallel()

	t.Run("centers each line", func(t *testing.T) {
		t.Parallel()

		out := Banner("heap\nquick", 10, AlignCenter)
		lines := strings.Split(out, "\n")

		assert.Equal(t, []string{
			"╒════════╕",
			"│  heap  │",
			"│ quick  │",
			"└────────┘",
		}, lines)
	})

	t.Run("aligns left and right", func(t *testing.T) {
		t.Parallel()

		assert.Contains(t, Banner("ab", 6, AlignLeft), "│ab  │")
		assert.Contains(t, Banner("ab", 6, AlignRight), "│  ab│")
	})

	t.Run("truncates long lines", func(t *testing.T) {
		t.Parallel()

		assert.Contains(t, Banner("selection", 7, AlignLeft), "│sele…│")
	})

	t.Run("rejects bad input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, Banner("", 10, AlignLeft))
		assert.Empty(t, Banner("x", 2, AlignLeft))
		assert.Empty(t, Banner("x", 10, 42))
	})
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "merge (worst O(n log n), stable)", Describe(sorter.Merge))
	assert.Equal(t, "heap (worst O(n log n), unstable)", Describe(sorter.Heap))
	assert.Equal(t, "bogo", Describe("bogo"))
}
