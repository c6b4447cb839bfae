package heuristics

import (
	"lintang/labyrinthx/pkg/datastructure"
	"lintang/labyrinthx/pkg/util"
)

// PortalJumpCost cost lompat dari satu portal ke portal lainnya
const PortalJumpCost = 2.0

// Chebyshev max(|dRow|, |dCol|). sama dengan cost minimal gerak 8 arah tanpa obstacle.
func Chebyshev(a, b datastructure.Cell) float64 {
	return float64(util.MaxG(util.AbsG(a.Row-b.Row), util.AbsG(a.Col-b.Col)))
}

type PortalGrid interface {
	PortalA() datastructure.Cell
	PortalB() datastructure.Cell
}

// PortalHeuristic lower bound cost ke goal: langsung, atau lewat salah satu portal sebagai waypoint.
// admissible dan consistent karena tiap kandidat adalah jarak chebyshev ke titik tetap ditambah konstanta.
type PortalHeuristic struct {
	portalA datastructure.Cell
	portalB datastructure.Cell
}

func NewPortalHeuristic(g PortalGrid) *PortalHeuristic {
	return &PortalHeuristic{portalA: g.PortalA(), portalB: g.PortalB()}
}

func (h *PortalHeuristic) Estimate(cell, goal datastructure.Cell) float64 {
	direct := Chebyshev(cell, goal)
	viaA := Chebyshev(cell, h.portalA) + PortalJumpCost + Chebyshev(h.portalB, goal)
	viaB := Chebyshev(cell, h.portalB) + PortalJumpCost + Chebyshev(h.portalA, goal)
	return util.MinG(direct, viaA, viaB)
}

// Zero heuristic untuk UCS
type Zero struct{}

func (Zero) Estimate(cell, goal datastructure.Cell) float64 {
	return 0
}
