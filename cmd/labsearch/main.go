package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"lintang/labyrinthx/pkg/console"
	"lintang/labyrinthx/pkg/engine/heuristics"
	"lintang/labyrinthx/pkg/engine/routingalgorithm"
	"lintang/labyrinthx/pkg/mazegen"
	"lintang/labyrinthx/pkg/prompt"
)

var (
	seed        = flag.Int64("seed", 0, "seed random maze, 0 = pakai waktu sekarang")
	historyFile = flag.String("history", "", "file history readline, kosong = tanpa history")
)

func main() {
	flag.Parse()

	rl, err := prompt.NewReadline(*historyFile)
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()

	params, err := prompt.NewPrompter(rl, os.Stdout).Ask()
	if errors.Is(err, prompt.ErrAborted) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	grid, err := mazegen.NewGenerator(s).Generate(params.N, params.Probability, params.Start, params.Goal)
	if err != nil {
		log.Fatal(err)
	}

	printer := console.NewStdoutPrinter()
	fmt.Println("\nInitial Maze:")
	if err := printer.PrintMaze(grid, params.Start, params.Goal, nil); err != nil {
		log.Fatal(err)
	}

	rt := routingalgorithm.NewRouteAlgorithm(grid, heuristics.NewPortalHeuristic(grid))
	for _, alg := range []routingalgorithm.Algorithm{routingalgorithm.UCS, routingalgorithm.AStar} {
		res, path, err := rt.ShortestPath(alg, params.Start, params.Goal)
		if err != nil {
			// frontier overflow: kapasitas 9*N^2 tidak cukup, bug di sizing
			log.Fatalf("%s: %v", alg, err)
		}

		report := console.Report{Found: res.Found, Expansions: res.Expansions}
		if res.Found {
			report.Cost = path.TotalCost
			if err := printer.PrintMaze(grid, params.Start, params.Goal, path.CellSet()); err != nil {
				log.Fatal(err)
			}
		}
		if err := printer.PrintReport(string(alg), report); err != nil {
			log.Fatal(err)
		}
	}

	rl.SetPrompt("Press Enter to continue...")
	_, _ = rl.Readline()
}
