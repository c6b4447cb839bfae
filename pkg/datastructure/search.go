package datastructure

// SearchNode entry di frontier. G = cost dari start, F = key priority queue
// (UCS: F = G, A*: F = G + h). boleh ada beberapa entry stale untuk cell yang sama.
type SearchNode struct {
	Cell   Cell
	G      float64
	F      float64
	Parent Cell
	// HasParent false hanya untuk node start
	HasParent bool
}

// PredecessorTable best-known previous cell per cell, hasil satu kali search.
type PredecessorTable struct {
	n      int
	parent []int32
}

func NewPredecessorTable(n int) *PredecessorTable {
	parent := make([]int32, n*n)
	for i := range parent {
		parent[i] = -1
	}
	return &PredecessorTable{n: n, parent: parent}
}

func (p *PredecessorTable) inBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < p.n && c.Col >= 0 && c.Col < p.n
}

func (p *PredecessorTable) Set(c, prev Cell) {
	p.parent[c.Row*p.n+c.Col] = int32(prev.Row*p.n + prev.Col)
}

// Get previous cell dari c. ok false kalau c belum pernah di-relax atau c adalah start.
func (p *PredecessorTable) Get(c Cell) (Cell, bool) {
	if !p.inBounds(c) {
		return Cell{}, false
	}
	idx := p.parent[c.Row*p.n+c.Col]
	if idx < 0 {
		return Cell{}, false
	}
	return Cell{Row: int(idx) / p.n, Col: int(idx) % p.n}, true
}

func (p *PredecessorTable) Size() int {
	return p.n
}

// Path urutan cell start -> goal beserta total cost nya
type Path struct {
	Cells     []Cell  `json:"cells"`
	TotalCost float64 `json:"total_cost"`
}

// CellSet set cell di path, dipakai renderer.
func (p Path) CellSet() map[Cell]bool {
	set := make(map[Cell]bool, len(p.Cells))
	for _, c := range p.Cells {
		set[c] = true
	}
	return set
}
