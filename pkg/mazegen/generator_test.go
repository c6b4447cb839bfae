package mazegen_test

import (
	"testing"

	"lintang/labyrinthx/pkg/datastructure"
	"lintang/labyrinthx/pkg/mazegen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	start, goal := datastructure.NewCell(1, 1), datastructure.NewCell(3, 4)

	t.Run("p=0 keeps only special cells open", func(t *testing.T) {
		g, err := mazegen.NewGenerator(1).Generate(5, 0, start, goal)
		require.NoError(t, err)

		open := 0
		for i := 0; i < 5; i++ {
			for j := 0; j < 5; j++ {
				if g.Passable(datastructure.NewCell(i, j)) {
					open++
				}
			}
		}
		assert.Equal(t, 4, open)
		assert.True(t, g.Passable(start))
		assert.True(t, g.Passable(goal))
		assert.True(t, g.Passable(g.PortalA()))
		assert.True(t, g.Passable(g.PortalB()))
	})

	t.Run("p=1 opens everything", func(t *testing.T) {
		g, err := mazegen.NewGenerator(1).Generate(6, 1, start, goal)
		require.NoError(t, err)
		for _, row := range g.Rows() {
			assert.Equal(t, "......", row)
		}
	})

	t.Run("same seed same maze", func(t *testing.T) {
		a, err := mazegen.NewGenerator(42).Generate(20, 0.6, start, goal)
		require.NoError(t, err)
		b, err := mazegen.NewGenerator(42).Generate(20, 0.6, start, goal)
		require.NoError(t, err)
		assert.Equal(t, a.Rows(), b.Rows())
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := mazegen.NewGenerator(1).Generate(0, 0.5, start, goal)
		assert.ErrorIs(t, err, datastructure.ErrInvalidGridSize)
		_, err = mazegen.NewGenerator(1).Generate(5, 1.5, start, goal)
		assert.ErrorIs(t, err, mazegen.ErrInvalidProbability)
	})
}

func TestRandomEndpoints(t *testing.T) {
	gen := mazegen.NewGenerator(3)
	for i := 0; i < 100; i++ {
		s, g := gen.RandomEndpoints(2)
		assert.NotEqual(t, s, g)
		assert.True(t, s.Row >= 0 && s.Row < 2 && s.Col >= 0 && s.Col < 2)
	}
}
