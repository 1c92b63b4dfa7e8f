package words

import (
	"errors"
	"testing"

	"github.com/lox/impostor/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingBank struct{ *StaticBank }

func (failingBank) CustomEntries() ([]Entry, error) { return nil, errors.New("disk on fire") }

func TestSelect(t *testing.T) {
	t.Parallel()

	custom := MustNew("Viaje", "Coche", "Vuelo", "Maleta")

	t.Run("default mode ignores custom words", func(t *testing.T) {
		bank := NewStaticBank(custom)
		rng := randutil.New(1)
		for i := 0; i < 50; i++ {
			sel, err := Select(bank, false, rng)
			require.NoError(t, err)
			assert.NotEqual(t, "Viaje", sel.Entry.Word())
			assert.False(t, sel.Custom)
			assert.False(t, sel.Fallback)
		}
	})

	t.Run("custom mode uses custom words", func(t *testing.T) {
		sel, err := Select(NewStaticBank(custom), true, randutil.New(1))
		require.NoError(t, err)
		assert.Equal(t, "Viaje", sel.Entry.Word())
		assert.True(t, sel.Custom)
		assert.False(t, sel.Fallback)
	})

	t.Run("empty custom list falls back to defaults", func(t *testing.T) {
		sel, err := Select(NewStaticBank(), true, randutil.New(1))
		require.NoError(t, err)
		assert.True(t, sel.Fallback)
		assert.False(t, sel.Custom)
		assert.Contains(t, Default(), sel.Entry)
	})

	t.Run("custom load error surfaces", func(t *testing.T) {
		_, err := Select(failingBank{NewStaticBank()}, true, randutil.New(1))
		assert.ErrorContains(t, err, "disk on fire")
	})

	t.Run("empty defaults", func(t *testing.T) {
		_, err := Select(&StaticBank{}, false, randutil.New(1))
		assert.ErrorIs(t, err, ErrEmptyDataset)
	})

	t.Run("uniform over defaults", func(t *testing.T) {
		rng := randutil.New(11)
		counts := map[string]int{}
		const trials = 20000
		for i := 0; i < trials; i++ {
			sel, err := Select(NewStaticBank(), false, rng)
			require.NoError(t, err)
			counts[sel.Entry.Word()]++
		}
		require.Len(t, counts, 10)
		for w, c := range counts {
			assert.InDelta(t, 0.1, float64(c)/trials, 0.015, w)
		}
	})
}
