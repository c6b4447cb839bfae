package routingalgorithm

import (
	"errors"
	"fmt"
	"math"

	"lintang/labyrinthx/pkg/datastructure"
	"lintang/labyrinthx/pkg/engine/frontier"
	"lintang/labyrinthx/pkg/engine/heuristics"
)

const (
	MoveCost       = 1.0
	PortalJumpCost = heuristics.PortalJumpCost
)

var (
	ErrCellOutOfBounds  = errors.New("cell is outside the grid")
	ErrFrontierOverflow = frontier.ErrFrontierOverflow
)

type Algorithm string

const (
	UCS   Algorithm = "UCS"
	AStar Algorithm = "A*"
)

// 8 arah gerak (horizontal, vertical, diagonal)
var (
	dRow = [8]int{-1, -1, -1, 0, 0, 1, 1, 1}
	dCol = [8]int{-1, 0, 1, -1, 1, -1, 0, 1}
)

type Grid interface {
	Size() int
	InBounds(c datastructure.Cell) bool
	Passable(c datastructure.Cell) bool
	PortalA() datastructure.Cell
	PortalB() datastructure.Cell
	OppositePortal(c datastructure.Cell) (datastructure.Cell, bool)
	IsPortalJump(from, to datastructure.Cell) bool
}

type Heuristic interface {
	Estimate(cell, goal datastructure.Cell) float64
}

// SearchResult hasil satu kali run UCS / A*.
// Predecessors hanya bermakna kalau Found true.
type SearchResult struct {
	Algorithm    Algorithm
	Found        bool
	Predecessors *datastructure.PredecessorTable
	GoalCost     float64
	Expansions   int
}

type RouteAlgorithm struct {
	grid      Grid
	heuristic Heuristic
	capacity  int
}

type Option func(*RouteAlgorithm)

// WithFrontierCapacity override kapasitas frontier (default 9*N*N).
func WithFrontierCapacity(capacity int) Option {
	return func(rt *RouteAlgorithm) { rt.capacity = capacity }
}

func NewRouteAlgorithm(grid Grid, heuristic Heuristic, opts ...Option) *RouteAlgorithm {
	n := grid.Size()
	rt := &RouteAlgorithm{
		grid:      grid,
		heuristic: heuristic,
		// tiap cell paling banyak di-relax sekali per edge masuk (8 tetangga + 1 portal)
		capacity: 9 * n * n,
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// UniformCostSearch f = g
func (rt *RouteAlgorithm) UniformCostSearch(start, goal datastructure.Cell) (SearchResult, error) {
	return rt.search(UCS, start, goal, func(g float64, _ datastructure.Cell) float64 {
		return g
	})
}

// AStar f = g + h(cell, goal)
func (rt *RouteAlgorithm) AStar(start, goal datastructure.Cell) (SearchResult, error) {
	return rt.search(AStar, start, goal, func(g float64, c datastructure.Cell) float64 {
		return g + rt.heuristic.Estimate(c, goal)
	})
}

// Run pilih algoritma berdasarkan nama.
func (rt *RouteAlgorithm) Run(alg Algorithm, start, goal datastructure.Cell) (SearchResult, error) {
	switch alg {
	case UCS:
		return rt.UniformCostSearch(start, goal)
	case AStar:
		return rt.AStar(start, goal)
	}
	return SearchResult{}, fmt.Errorf("unknown algorithm %q", alg)
}

// searchState state milik satu run, dibuang setelah path di-reconstruct.
type searchState struct {
	n       int
	cost    []float64
	visited []bool
	pred    *datastructure.PredecessorTable
	pq      *frontier.MinHeap
}

func newSearchState(n, capacity int) *searchState {
	cost := make([]float64, n*n)
	for i := range cost {
		cost[i] = math.Inf(1)
	}
	return &searchState{
		n:       n,
		cost:    cost,
		visited: make([]bool, n*n),
		pred:    datastructure.NewPredecessorTable(n),
		pq:      frontier.NewMinHeap(capacity),
	}
}

func (s *searchState) idx(c datastructure.Cell) int {
	return c.Row*s.n + c.Col
}

// relax compare-and-relax yang sama untuk gerak biasa dan lompatan portal.
func (s *searchState) relax(from, to datastructure.Cell, newCost float64, priority func(float64, datastructure.Cell) float64) error {
	if s.visited[s.idx(to)] || newCost >= s.cost[s.idx(to)] {
		return nil
	}
	s.cost[s.idx(to)] = newCost
	s.pred.Set(to, from)
	return s.pq.Insert(datastructure.SearchNode{
		Cell:      to,
		G:         newCost,
		F:         priority(newCost, to),
		Parent:    from,
		HasParent: true,
	})
}

// https://theory.stanford.edu/~amitp/GameProgramming/ImplementationNotes.html
func (rt *RouteAlgorithm) search(alg Algorithm, start, goal datastructure.Cell,
	priority func(g float64, c datastructure.Cell) float64) (SearchResult, error) {
	if !rt.grid.InBounds(start) {
		return SearchResult{Algorithm: alg}, fmt.Errorf("%w: start %v", ErrCellOutOfBounds, start)
	}
	if !rt.grid.InBounds(goal) {
		return SearchResult{Algorithm: alg}, fmt.Errorf("%w: goal %v", ErrCellOutOfBounds, goal)
	}

	s := newSearchState(rt.grid.Size(), rt.capacity)
	s.cost[s.idx(start)] = 0
	if err := s.pq.Insert(datastructure.SearchNode{Cell: start, G: 0, F: priority(0, start)}); err != nil {
		return SearchResult{Algorithm: alg}, fmt.Errorf("%s: %w", alg, err)
	}

	expansions := 0
	for !s.pq.IsEmpty() {
		current, err := s.pq.ExtractMin()
		if err != nil {
			return SearchResult{Algorithm: alg, Expansions: expansions}, err
		}
		cur := current.Cell
		if s.visited[s.idx(cur)] {
			// entry stale
			continue
		}
		s.visited[s.idx(cur)] = true
		expansions++

		if cur == goal {
			return SearchResult{
				Algorithm:    alg,
				Found:        true,
				Predecessors: s.pred,
				GoalCost:     current.G,
				Expansions:   expansions,
			}, nil
		}

		for i := 0; i < 8; i++ {
			next := datastructure.Cell{Row: cur.Row + dRow[i], Col: cur.Col + dCol[i]}
			if !rt.grid.Passable(next) {
				continue
			}
			if err := s.relax(cur, next, current.G+MoveCost, priority); err != nil {
				return SearchResult{Algorithm: alg, Expansions: expansions},
					fmt.Errorf("%s: expanding %v: %w", alg, cur, err)
			}
		}

		if opp, ok := rt.grid.OppositePortal(cur); ok && rt.grid.Passable(opp) {
			if err := s.relax(cur, opp, current.G+PortalJumpCost, priority); err != nil {
				return SearchResult{Algorithm: alg, Expansions: expansions},
					fmt.Errorf("%s: portal jump from %v: %w", alg, cur, err)
			}
		}
	}

	return SearchResult{Algorithm: alg, Found: false, Expansions: expansions}, nil
}
