package service

import (
	"testing"

	"minesbot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinefieldGenerator_Generate(t *testing.T) {
	gen := NewSeededMinefieldGenerator(42)

	t.Run("correct count and distinct indices", func(t *testing.T) {
		for mines := 1; mines < models.GridSize; mines++ {
			bombs, err := gen.Generate(models.GridSize, mines)
			require.NoError(t, err)
			require.Len(t, bombs, mines)

			seen := make(map[int]bool)
			for _, b := range bombs {
				assert.GreaterOrEqual(t, b, 0)
				assert.Less(t, b, models.GridSize)
				assert.False(t, seen[b], "duplicate bomb index %d", b)
				seen[b] = true
			}
		}
	})

	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		first, err := NewSeededMinefieldGenerator(7).Generate(models.GridSize, 5)
		require.NoError(t, err)
		second, err := NewSeededMinefieldGenerator(7).Generate(models.GridSize, 5)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("rejects zero mines", func(t *testing.T) {
		_, err := gen.Generate(models.GridSize, 0)
		assert.ErrorIs(t, err, ErrInvalidMineCount)
	})

	t.Run("rejects a full board of mines", func(t *testing.T) {
		_, err := gen.Generate(models.GridSize, models.GridSize)
		assert.ErrorIs(t, err, ErrInvalidMineCount)
	})

	t.Run("unseeded generator produces valid layouts", func(t *testing.T) {
		bombs, err := NewMinefieldGenerator().Generate(models.GridSize, 3)
		require.NoError(t, err)
		assert.Len(t, bombs, 3)
	})
}
