// Package console renders mazes and search reports as text.
package console

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"lintang/labyrinthx/pkg/datastructure"

	"github.com/k0kubun/go-ansi"
)

// Color constants for cell markers
const (
	ColorRed     = "\033[31m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorCyan    = "\033[36m"
	ColorMagenta = "\033[35m"
	ColorReset   = "\033[0m"
)

type Grid interface {
	Size() int
	Passable(c datastructure.Cell) bool
	PortalA() datastructure.Cell
	PortalB() datastructure.Cell
}

// Report ringkasan satu run algoritma
type Report struct {
	Found      bool
	Cost       float64
	Expansions int
}

type Printer struct {
	w     io.Writer
	color bool
}

func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// NewStdoutPrinter printer berwarna ke stdout, escape code di-translate di windows.
func NewStdoutPrinter() *Printer {
	return NewPrinter(ansi.NewAnsiStdout(), true)
}

func (p *Printer) paint(s, color string) string {
	if !p.color {
		return s
	}
	return color + s + ColorReset
}

// PrintMaze S = start, G = goal, * = path, X = blocked.
// path boleh nil untuk maze awal.
func (p *Printer) PrintMaze(g Grid, start, goal datastructure.Cell, path map[datastructure.Cell]bool) error {
	n := g.Size()
	separator := strings.Repeat("----", n) + "-\n"

	var buf bytes.Buffer
	for i := 0; i < n; i++ {
		buf.WriteString(separator)
		for j := 0; j < n; j++ {
			c := datastructure.NewCell(i, j)
			buf.WriteString("|")
			switch {
			case c == start:
				buf.WriteString(p.paint(" S ", ColorGreen))
			case c == goal:
				buf.WriteString(p.paint(" G ", ColorRed))
			case path[c] && (c == g.PortalA() || c == g.PortalB()):
				buf.WriteString(p.paint(" * ", ColorMagenta))
			case path[c]:
				buf.WriteString(p.paint(" * ", ColorYellow))
			case g.Passable(c):
				buf.WriteString("   ")
			default:
				buf.WriteString(p.paint(" X ", ColorCyan))
			}
		}
		buf.WriteString("|\n")
	}
	buf.WriteString(separator)

	_, err := p.w.Write(buf.Bytes())
	return err
}

// PrintReport "<title> Results:" lalu cost dan jumlah expansions.
func (p *Printer) PrintReport(title string, r Report) error {
	var err error
	if r.Found {
		_, err = fmt.Fprintf(p.w, "\n%s Results:\nPath cost: %.1f\nExpansions: %d\n", title, r.Cost, r.Expansions)
	} else {
		_, err = fmt.Fprintf(p.w, "\n%s Results:\nNo path found\nExpansions: %d\n", title, r.Expansions)
	}
	return err
}

// RenderMaze maze sebagai string tanpa warna, dipakai response REST.
func RenderMaze(g Grid, start, goal datastructure.Cell, path map[datastructure.Cell]bool) string {
	var buf bytes.Buffer
	_ = NewPrinter(&buf, false).PrintMaze(g, start, goal, path)
	return buf.String()
}
