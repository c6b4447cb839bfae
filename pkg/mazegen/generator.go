// Package mazegen generates random mazes where every cell is passable with
// an independent probability p.
package mazegen

import (
	"errors"
	"fmt"
	"math/rand"

	"lintang/labyrinthx/pkg/datastructure"
)

var ErrInvalidProbability = errors.New("probability must be between 0 and 1")

// Generator is not safe for concurrent use; give each goroutine its own.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate samples an n x n maze. Start, goal and both portal cells are
// always passable.
func (g *Generator) Generate(n int, p float64, start, goal datastructure.Cell) (*datastructure.Grid, error) {
	if n < 1 || n > datastructure.MaxGridSize {
		return nil, fmt.Errorf("%w: %d", datastructure.ErrInvalidGridSize, n)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProbability, p)
	}

	passable := make([][]bool, n)
	for i := 0; i < n; i++ {
		passable[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			c := datastructure.NewCell(i, j)
			if c == start || c == goal {
				passable[i][j] = true
				continue
			}
			passable[i][j] = g.rng.Float64() < p
		}
	}
	return datastructure.NewGrid(n, passable)
}

// RandomCell uniformly random cell inside an n x n grid.
func (g *Generator) RandomCell(n int) datastructure.Cell {
	return datastructure.NewCell(g.rng.Intn(n), g.rng.Intn(n))
}

// RandomEndpoints picks two distinct cells. n must be at least 2.
func (g *Generator) RandomEndpoints(n int) (start, goal datastructure.Cell) {
	start = g.RandomCell(n)
	goal = g.RandomCell(n)
	for goal == start {
		goal = g.RandomCell(n)
	}
	return start, goal
}
