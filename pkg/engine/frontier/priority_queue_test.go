package frontier_test

import (
	"math/rand"
	"sort"
	"testing"

	"lintang/labyrinthx/pkg/datastructure"
	"lintang/labyrinthx/pkg/engine/frontier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(row, col int, f float64) datastructure.SearchNode {
	return datastructure.SearchNode{Cell: datastructure.NewCell(row, col), G: f, F: f}
}

func TestMinHeap(t *testing.T) {
	t.Run("extracts in ascending F order", func(t *testing.T) {
		h := frontier.NewMinHeap(0)
		rng := rand.New(rand.NewSource(7))
		want := make([]float64, 0, 200)
		for i := 0; i < 200; i++ {
			f := float64(rng.Intn(50))
			want = append(want, f)
			require.NoError(t, h.Insert(node(i, 0, f)))
		}
		sort.Float64s(want)

		got := make([]float64, 0, 200)
		for !h.IsEmpty() {
			n, err := h.ExtractMin()
			require.NoError(t, err)
			got = append(got, n.F)
		}
		assert.Equal(t, want, got)
	})

	t.Run("ties are broken by insertion order", func(t *testing.T) {
		h := frontier.NewMinHeap(0)
		for i := 0; i < 10; i++ {
			require.NoError(t, h.Insert(node(i, i, 3)))
		}
		require.NoError(t, h.Insert(node(99, 99, 1)))

		first, err := h.ExtractMin()
		require.NoError(t, err)
		assert.Equal(t, datastructure.NewCell(99, 99), first.Cell)
		for i := 0; i < 10; i++ {
			n, err := h.ExtractMin()
			require.NoError(t, err)
			assert.Equal(t, datastructure.NewCell(i, i), n.Cell)
		}
	})

	t.Run("duplicate cells are kept", func(t *testing.T) {
		h := frontier.NewMinHeap(0)
		require.NoError(t, h.Insert(node(1, 1, 5)))
		require.NoError(t, h.Insert(node(1, 1, 2)))
		assert.Equal(t, 2, h.Size())

		top, err := h.GetMin()
		require.NoError(t, err)
		assert.Equal(t, 2.0, top.F)
	})

	t.Run("empty heap", func(t *testing.T) {
		h := frontier.NewMinHeap(4)
		assert.True(t, h.IsEmpty())
		_, err := h.ExtractMin()
		assert.ErrorIs(t, err, frontier.ErrHeapEmpty)
		_, err = h.GetMin()
		assert.ErrorIs(t, err, frontier.ErrHeapEmpty)
	})

	t.Run("rejects inserts beyond capacity", func(t *testing.T) {
		h := frontier.NewMinHeap(2)
		require.NoError(t, h.Insert(node(0, 0, 1)))
		require.NoError(t, h.Insert(node(0, 1, 1)))
		assert.ErrorIs(t, h.Insert(node(0, 2, 0)), frontier.ErrFrontierOverflow)
		assert.Equal(t, 2, h.Size())

		n, err := h.ExtractMin()
		require.NoError(t, err)
		assert.Equal(t, datastructure.NewCell(0, 0), n.Cell)
		assert.NoError(t, h.Insert(node(0, 2, 0)))
	})
}
