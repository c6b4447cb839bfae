package routingalgorithm

import (
	"errors"
	"fmt"

	"lintang/labyrinthx/pkg/datastructure"
	"lintang/labyrinthx/pkg/engine/heuristics"
	"lintang/labyrinthx/pkg/util"
)

var ErrNoPath = errors.New("no path found")

// ReconstructPath jalan mundur dari goal ke start lewat predecessor table.
// step antar portal dihitung 2, selain itu 1. hanya valid setelah search Found.
func ReconstructPath(grid Grid, pred *datastructure.PredecessorTable, start, goal datastructure.Cell) (datastructure.Path, error) {
	if pred == nil {
		return datastructure.Path{}, ErrNoPath
	}

	n := grid.Size()
	cells := []datastructure.Cell{goal}
	cost := 0.0
	curr := goal
	for curr != start {
		if len(cells) > n*n {
			return datastructure.Path{}, fmt.Errorf("%w: predecessor cycle at %v", ErrNoPath, curr)
		}
		prev, ok := pred.Get(curr)
		if !ok {
			return datastructure.Path{}, fmt.Errorf("%w: %v has no predecessor", ErrNoPath, curr)
		}
		// untuk N=2 kedua portal bertetangga diagonal, search selalu pilih gerak biasa (cost 1)
		if grid.IsPortalJump(prev, curr) && heuristics.Chebyshev(prev, curr) > 1 {
			cost += PortalJumpCost
		} else {
			cost += MoveCost
		}
		cells = append(cells, prev)
		curr = prev
	}

	util.ReverseG(cells)
	return datastructure.Path{Cells: cells, TotalCost: cost}, nil
}

// ShortestPath run search lalu reconstruct path nya. path kosong kalau tidak ketemu.
func (rt *RouteAlgorithm) ShortestPath(alg Algorithm, start, goal datastructure.Cell) (SearchResult, datastructure.Path, error) {
	res, err := rt.Run(alg, start, goal)
	if err != nil {
		return res, datastructure.Path{}, err
	}
	if !res.Found {
		return res, datastructure.Path{}, nil
	}
	path, err := ReconstructPath(rt.grid, res.Predecessors, start, goal)
	if err != nil {
		return res, datastructure.Path{}, err
	}
	return res, path, nil
}
