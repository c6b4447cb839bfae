package datastructure

import (
	"errors"
	"fmt"
	"strings"
)

// MaxGridSize batas atas dimensi grid
const MaxGridSize = 100

const (
	FreeCell    = '.'
	BlockedCell = '#'
)

var (
	ErrInvalidGridSize = errors.New("invalid grid size")
	ErrNonSquareGrid   = errors.New("grid rows must form an N x N square")
	ErrInvalidCellRune = errors.New("invalid cell character")
)

// Cell koordinat (row, col) 0-indexed
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCell(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid maze N x N. immutable setelah dibuat.
// portal A ada di pojok kiri bawah (N-1, 0), portal B di pojok kanan atas (0, N-1).
type Grid struct {
	n        int
	passable []bool
}

// NewGrid bikin grid dari matrix passable. portal selalu dibuat passable.
func NewGrid(n int, passable [][]bool) (*Grid, error) {
	if n < 1 || n > MaxGridSize {
		return nil, fmt.Errorf("%w: %d, must be between 1 and %d", ErrInvalidGridSize, n, MaxGridSize)
	}
	if len(passable) != n {
		return nil, fmt.Errorf("%w: got %d rows for n=%d", ErrNonSquareGrid, len(passable), n)
	}

	g := &Grid{
		n:        n,
		passable: make([]bool, n*n),
	}
	for i, row := range passable {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells for n=%d", ErrNonSquareGrid, i, len(row), n)
		}
		copy(g.passable[i*n:(i+1)*n], row)
	}

	g.passable[g.index(g.PortalA())] = true
	g.passable[g.index(g.PortalB())] = true
	return g, nil
}

// ParseGrid bikin grid dari baris teks. '.' = free, '#' = blocked.
func ParseGrid(rows []string) (*Grid, error) {
	n := len(rows)
	passable := make([][]bool, n)
	for i, row := range rows {
		passable[i] = make([]bool, 0, len(row))
		for _, r := range row {
			switch r {
			case FreeCell:
				passable[i] = append(passable[i], true)
			case BlockedCell:
				passable[i] = append(passable[i], false)
			default:
				return nil, fmt.Errorf("%w: %q at row %d", ErrInvalidCellRune, r, i)
			}
		}
	}
	return NewGrid(n, passable)
}

func (g *Grid) index(c Cell) int {
	return c.Row*g.n + c.Col
}

// Size dimensi N
func (g *Grid) Size() int {
	return g.n
}

func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.n && c.Col >= 0 && c.Col < g.n
}

// Passable false juga untuk cell di luar grid.
func (g *Grid) Passable(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.passable[g.index(c)]
}

// PortalA pojok kiri bawah
func (g *Grid) PortalA() Cell {
	return Cell{Row: g.n - 1, Col: 0}
}

// PortalB pojok kanan atas
func (g *Grid) PortalB() Cell {
	return Cell{Row: 0, Col: g.n - 1}
}

// OppositePortal return ujung portal lainnya kalau c adalah portal.
// untuk N=1 kedua portal adalah cell yang sama sehingga tidak ada lompatan.
func (g *Grid) OppositePortal(c Cell) (Cell, bool) {
	a, b := g.PortalA(), g.PortalB()
	if a == b {
		return Cell{}, false
	}
	switch c {
	case a:
		return b, true
	case b:
		return a, true
	}
	return Cell{}, false
}

// IsPortalJump true kalau step from->to adalah lompatan antar portal (dua arah).
func (g *Grid) IsPortalJump(from, to Cell) bool {
	opp, ok := g.OppositePortal(from)
	return ok && opp == to
}

// Rows representasi teks grid, kebalikan dari ParseGrid.
func (g *Grid) Rows() []string {
	rows := make([]string, g.n)
	var sb strings.Builder
	for i := 0; i < g.n; i++ {
		sb.Reset()
		for j := 0; j < g.n; j++ {
			if g.passable[i*g.n+j] {
				sb.WriteByte(FreeCell)
			} else {
				sb.WriteByte(BlockedCell)
			}
		}
		rows[i] = sb.String()
	}
	return rows
}
