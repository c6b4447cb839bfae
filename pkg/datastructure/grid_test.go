package datastructure_test

import (
	"testing"

	"lintang/labyrinthx/pkg/datastructure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	t.Run("portal cells are always passable", func(t *testing.T) {
		g, err := datastructure.NewGrid(3, [][]bool{
			{false, false, false},
			{false, false, false},
			{false, false, false},
		})
		require.NoError(t, err)

		assert.True(t, g.Passable(datastructure.NewCell(2, 0)))
		assert.True(t, g.Passable(datastructure.NewCell(0, 2)))
		assert.False(t, g.Passable(datastructure.NewCell(1, 1)))
		assert.Equal(t, datastructure.NewCell(2, 0), g.PortalA())
		assert.Equal(t, datastructure.NewCell(0, 2), g.PortalB())
	})

	t.Run("invalid sizes", func(t *testing.T) {
		_, err := datastructure.NewGrid(0, nil)
		assert.ErrorIs(t, err, datastructure.ErrInvalidGridSize)

		_, err = datastructure.NewGrid(datastructure.MaxGridSize+1, nil)
		assert.ErrorIs(t, err, datastructure.ErrInvalidGridSize)

		_, err = datastructure.NewGrid(2, [][]bool{{true, true}, {true}})
		assert.ErrorIs(t, err, datastructure.ErrNonSquareGrid)
	})

	t.Run("input matrix is copied", func(t *testing.T) {
		m := [][]bool{{true, true}, {true, true}}
		g, err := datastructure.NewGrid(2, m)
		require.NoError(t, err)
		m[1][1] = false
		assert.True(t, g.Passable(datastructure.NewCell(1, 1)))
	})
}

func TestParseGrid(t *testing.T) {
	g, err := datastructure.ParseGrid([]string{
		"#.#",
		"...",
		"###",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, g.Size())
	assert.False(t, g.Passable(datastructure.NewCell(0, 0)))
	assert.True(t, g.Passable(datastructure.NewCell(0, 1)))
	// portal A dipaksa passable
	assert.True(t, g.Passable(datastructure.NewCell(2, 0)))
	assert.False(t, g.Passable(datastructure.NewCell(-1, 0)))
	assert.False(t, g.Passable(datastructure.NewCell(0, 3)))

	assert.Equal(t, []string{"#..", "...", ".##"}, g.Rows())

	_, err = datastructure.ParseGrid([]string{"..", ".x"})
	assert.ErrorIs(t, err, datastructure.ErrInvalidCellRune)
}

func TestPortalJump(t *testing.T) {
	g, err := datastructure.ParseGrid([]string{"....", "....", "....", "...."})
	require.NoError(t, err)

	a, b := g.PortalA(), g.PortalB()
	assert.True(t, g.IsPortalJump(a, b))
	assert.True(t, g.IsPortalJump(b, a))
	assert.False(t, g.IsPortalJump(a, datastructure.NewCell(2, 1)))

	opp, ok := g.OppositePortal(a)
	assert.True(t, ok)
	assert.Equal(t, b, opp)

	_, ok = g.OppositePortal(datastructure.NewCell(1, 1))
	assert.False(t, ok)

	single, err := datastructure.ParseGrid([]string{"."})
	require.NoError(t, err)
	_, ok = single.OppositePortal(datastructure.NewCell(0, 0))
	assert.False(t, ok)
}

func TestPredecessorTable(t *testing.T) {
	p := datastructure.NewPredecessorTable(4)

	_, ok := p.Get(datastructure.NewCell(1, 1))
	assert.False(t, ok)

	p.Set(datastructure.NewCell(1, 1), datastructure.NewCell(3, 0))
	prev, ok := p.Get(datastructure.NewCell(1, 1))
	assert.True(t, ok)
	assert.Equal(t, datastructure.NewCell(3, 0), prev)

	_, ok = p.Get(datastructure.NewCell(4, 0))
	assert.False(t, ok)
}
