package console_test

import (
	"bytes"
	"strings"
	"testing"

	"lintang/labyrinthx/pkg/console"
	"lintang/labyrinthx/pkg/datastructure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintMaze(t *testing.T) {
	g, err := datastructure.ParseGrid([]string{
		"..#",
		"#..",
		"...",
	})
	require.NoError(t, err)
	start, goal := datastructure.NewCell(0, 0), datastructure.NewCell(2, 2)
	path := map[datastructure.Cell]bool{
		datastructure.NewCell(0, 1): true,
		datastructure.NewCell(1, 2): true,
	}

	got := console.RenderMaze(g, start, goal, path)
	want := strings.Join([]string{
		"-------------",
		"| S | * |   |",
		"-------------",
		"| X |   | * |",
		"-------------",
		"|   |   | G |",
		"-------------",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestPrintMazeColor(t *testing.T) {
	g, err := datastructure.ParseGrid([]string{"#.", ".."})
	require.NoError(t, err)

	var buf bytes.Buffer
	p := console.NewPrinter(&buf, true)
	require.NoError(t, p.PrintMaze(g, datastructure.NewCell(1, 1), datastructure.NewCell(0, 1), nil))
	out := buf.String()
	assert.Contains(t, out, console.ColorGreen+" S "+console.ColorReset)
	assert.Contains(t, out, console.ColorCyan+" X "+console.ColorReset)
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	p := console.NewPrinter(&buf, false)

	require.NoError(t, p.PrintReport("UCS", console.Report{Found: true, Cost: 4, Expansions: 17}))
	require.NoError(t, p.PrintReport("A*", console.Report{Found: false, Expansions: 1}))

	assert.Equal(t, "\nUCS Results:\nPath cost: 4.0\nExpansions: 17\n\nA* Results:\nNo path found\nExpansions: 1\n", buf.String())
}
