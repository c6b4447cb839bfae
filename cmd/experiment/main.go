package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"lintang/labyrinthx/pkg/config"
	"lintang/labyrinthx/pkg/experiment"

	"github.com/k0kubun/go-ansi"
)

var (
	trials  = flag.Int("trials", 1000, "jumlah maze random")
	n       = flag.Int("n", 30, "ukuran grid n x n")
	p       = flag.Float64("p", 0.7, "probabilitas cell free")
	seed    = flag.Int64("seed", 1, "seed maze pertama, maze ke-i pakai seed+i")
	workers = flag.Int("workers", 0, "jumlah worker (default dari LABYRINTHX_WORKERS)")
)

func main() {
	flag.Parse()
	cfg := config.Load()
	if *workers > 0 {
		cfg.Workers = *workers
	}

	start := time.Now()
	summary, err := experiment.NewRunner(cfg.Workers, ansi.NewAnsiStdout()).Run(*trials, *n, *p, *seed)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\nUCS vs A* on %dx%d mazes, p=%.2f, %d workers (%s)\n", *n, *n, *p, cfg.Workers, time.Since(start).Round(time.Millisecond))
	fmt.Print(summary.String())
	if summary.CostMismatches > 0 || summary.ExpansionViolations > 0 {
		log.Fatalf("A* disagreed with UCS on %d mazes", summary.CostMismatches+summary.ExpansionViolations)
	}
}
