// Package experiment compares UCS and A* over many random mazes.
package experiment

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"lintang/labyrinthx/pkg/concurrent"
	"lintang/labyrinthx/pkg/datastructure"
	"lintang/labyrinthx/pkg/engine/heuristics"
	"lintang/labyrinthx/pkg/engine/routingalgorithm"
	"lintang/labyrinthx/pkg/mazegen"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
)

var ErrInvalidExperiment = errors.New("invalid experiment parameters")

type Trial struct {
	Seed int64
	N    int
	P    float64
}

type TrialResult struct {
	Trial           Trial
	Solvable        bool
	UCSCost         float64
	AStarCost       float64
	UCSExpansions   int
	AStarExpansions int
	Err             error
}

type Summary struct {
	Trials              int
	Solvable            int
	UCSExpansions       int64
	AStarExpansions     int64
	CostMismatches      int
	ExpansionViolations int
	Errors              int
}

func (s Summary) MeanUCSExpansions() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.UCSExpansions) / float64(s.Trials)
}

func (s Summary) MeanAStarExpansions() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.AStarExpansions) / float64(s.Trials)
}

func (s Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "trials:               %s\n", humanize.Comma(int64(s.Trials)))
	fmt.Fprintf(&sb, "solvable:             %s\n", humanize.Comma(int64(s.Solvable)))
	fmt.Fprintf(&sb, "UCS expansions:       %s (mean %s)\n", humanize.Comma(s.UCSExpansions), humanize.FormatFloat("#,###.##", s.MeanUCSExpansions()))
	fmt.Fprintf(&sb, "A* expansions:        %s (mean %s)\n", humanize.Comma(s.AStarExpansions), humanize.FormatFloat("#,###.##", s.MeanAStarExpansions()))
	fmt.Fprintf(&sb, "cost mismatches:      %d\n", s.CostMismatches)
	fmt.Fprintf(&sb, "A* expanded more:     %d\n", s.ExpansionViolations)
	fmt.Fprintf(&sb, "errors:               %d\n", s.Errors)
	return sb.String()
}

type Runner struct {
	workers  int
	progress io.Writer
}

// NewRunner progress nil berarti tanpa progress bar.
func NewRunner(workers int, progress io.Writer) *Runner {
	if progress == nil {
		progress = io.Discard
	}
	return &Runner{workers: workers, progress: progress}
}

// RunTrial generate satu maze dari seed lalu jalankan UCS dan A*.
func RunTrial(trial Trial) TrialResult {
	res := TrialResult{Trial: trial}
	gen := mazegen.NewGenerator(trial.Seed)
	start, goal := gen.RandomEndpoints(trial.N)
	grid, err := gen.Generate(trial.N, trial.P, start, goal)
	if err != nil {
		res.Err = err
		return res
	}

	rt := routingalgorithm.NewRouteAlgorithm(grid, heuristics.NewPortalHeuristic(grid))
	ucs, ucsPath, err := rt.ShortestPath(routingalgorithm.UCS, start, goal)
	if err != nil {
		res.Err = err
		return res
	}
	astar, astarPath, err := rt.ShortestPath(routingalgorithm.AStar, start, goal)
	if err != nil {
		res.Err = err
		return res
	}

	res.Solvable = ucs.Found
	res.UCSExpansions = ucs.Expansions
	res.AStarExpansions = astar.Expansions
	res.UCSCost = pathCost(ucs.Found, ucsPath)
	res.AStarCost = pathCost(astar.Found, astarPath)
	return res
}

func pathCost(found bool, p datastructure.Path) float64 {
	if !found {
		return -1
	}
	return p.TotalCost
}

// Run trials maze n x n dengan seed baseSeed, baseSeed+1, ...
func (r *Runner) Run(trials, n int, p float64, baseSeed int64) (Summary, error) {
	if trials < 1 || n < 2 || n > datastructure.MaxGridSize || p < 0 || p > 1 {
		return Summary{}, fmt.Errorf("%w: trials=%d n=%d p=%v", ErrInvalidExperiment, trials, n, p)
	}

	bar := progressbar.NewOptions(trials,
		progressbar.OptionSetWriter(r.progress),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription(fmt.Sprintf("[cyan][1/1][reset] UCS vs A* on %dx%d mazes...", n, n)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	workers := concurrent.NewWorkerPool[concurrent.Job[Trial], TrialResult](r.workers, trials)
	for i := 0; i < trials; i++ {
		workers.AddJob(concurrent.Job[Trial]{ID: i, JobItem: Trial{Seed: baseSeed + int64(i), N: n, P: p}})
	}
	workers.Close()

	workers.Start(func(job concurrent.Job[Trial]) TrialResult {
		return RunTrial(job.JobItem)
	})
	go workers.Wait()

	var s Summary
	for res := range workers.CollectResults() {
		s.add(res)
		bar.Add(1)
	}
	bar.Finish()
	fmt.Fprintln(r.progress)
	return s, nil
}

func (s *Summary) add(res TrialResult) {
	s.Trials++
	if res.Err != nil {
		s.Errors++
		return
	}
	s.UCSExpansions += int64(res.UCSExpansions)
	s.AStarExpansions += int64(res.AStarExpansions)
	if res.Solvable {
		s.Solvable++
	}
	if res.UCSCost != res.AStarCost {
		s.CostMismatches++
	}
	if res.AStarExpansions > res.UCSExpansions {
		s.ExpansionViolations++
	}
}
