package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()

	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestSample(t *testing.T) {
	t.Parallel()

	pool := []string{"a", "b", "c", "d", "e"}

	t.Run("draws distinct elements", func(t *testing.T) {
		rng := New(7)
		for i := 0; i < 200; i++ {
			got := Sample(rng, pool, 3)
			require.Len(t, got, 3)
			seen := map[string]bool{}
			for _, s := range got {
				assert.False(t, seen[s], "duplicate %q in %v", s, got)
				assert.Contains(t, pool, s)
				seen[s] = true
			}
		}
	})

	t.Run("clamps to pool size", func(t *testing.T) {
		got := Sample(New(1), pool, 10)
		assert.ElementsMatch(t, pool, got)
	})

	t.Run("zero returns nil", func(t *testing.T) {
		assert.Nil(t, Sample(New(1), pool, 0))
	})

	t.Run("does not mutate pool", func(t *testing.T) {
		before := append([]string(nil), pool...)
		Sample(New(3), pool, 4)
		assert.Equal(t, before, pool)
	})

	t.Run("roughly uniform", func(t *testing.T) {
		rng := New(99)
		counts := map[string]int{}
		const trials = 20000
		for i := 0; i < trials; i++ {
			counts[Sample(rng, pool, 1)[0]]++
		}
		for _, s := range pool {
			assert.InDelta(t, 0.2, float64(counts[s])/trials, 0.02, "element %q", s)
		}
	})
}

func TestChoice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "only", Choice(New(5), []string{"only"}))
	assert.Panics(t, func() { Choice(New(5), []int{}) })
}
