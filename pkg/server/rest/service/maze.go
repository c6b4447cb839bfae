package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"lintang/labyrinthx/pkg/datastructure"
	"lintang/labyrinthx/pkg/engine/heuristics"
	"lintang/labyrinthx/pkg/engine/routingalgorithm"
	"lintang/labyrinthx/pkg/kv"
	"lintang/labyrinthx/pkg/mazegen"
	"lintang/labyrinthx/pkg/server"

	"github.com/google/uuid"
)

type KVDB interface {
	SaveMaze(m kv.MazeRecord) error
	GetMaze(id string) (kv.MazeRecord, error)
	DeleteMaze(id string) error
	SaveRuns(mazeID string, runs []kv.RunRecord) error
	GetRuns(mazeID string) ([]kv.RunRecord, error)
}

// AlgorithmReport hasil satu algoritma untuk satu maze
type AlgorithmReport struct {
	Algorithm  routingalgorithm.Algorithm
	Found      bool
	Cost       float64
	Expansions int
	Path       datastructure.Path
}

type MazeService struct {
	KV     KVDB
	log    *slog.Logger
	now    func() time.Time
	newID  func() string
	seedFn func() int64
}

func NewMazeService(kvDB KVDB, log *slog.Logger) *MazeService {
	return &MazeService{
		KV:     kvDB,
		log:    log,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
		seedFn: func() int64 { return time.Now().UnixNano() },
	}
}

func checkEndpoints(n int, start, goal datastructure.Cell) error {
	for _, c := range []datastructure.Cell{start, goal} {
		if c.Row < 0 || c.Row >= n || c.Col < 0 || c.Col >= n {
			return server.WrapErrorf(routingalgorithm.ErrCellOutOfBounds, server.ErrBadParamInput,
				"coordinates %v must be between 0 and %d", c, n-1)
		}
	}
	if start == goal {
		return server.WrapErrorf(nil, server.ErrBadParamInput, "goal cell cannot be the same as start cell")
	}
	return nil
}

// GenerateMaze generate maze random lalu simpan. seed nil = seed dari waktu sekarang.
func (uc *MazeService) GenerateMaze(ctx context.Context, n int, p float64, start, goal datastructure.Cell, seed *int64) (kv.MazeRecord, error) {
	if err := checkEndpoints(n, start, goal); err != nil {
		return kv.MazeRecord{}, err
	}
	s := uc.seedFn()
	if seed != nil {
		s = *seed
	}

	grid, err := mazegen.NewGenerator(s).Generate(n, p, start, goal)
	if err != nil {
		return kv.MazeRecord{}, server.WrapErrorf(err, server.ErrBadParamInput, "cannot generate maze")
	}

	rec := kv.MazeRecord{
		ID:          uc.newID(),
		N:           n,
		Probability: p,
		Seed:        s,
		Rows:        grid.Rows(),
		Start:       start,
		Goal:        goal,
		CreatedAt:   uc.now().Unix(),
	}
	if err := uc.KV.SaveMaze(rec); err != nil {
		return kv.MazeRecord{}, server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
	}
	uc.log.InfoContext(ctx, "maze generated", slog.String("id", rec.ID), slog.Int("n", n), slog.Float64("p", p), slog.Int64("seed", s))
	return rec, nil
}

// CreateMaze simpan maze dari baris teks ('.' free, '#' blocked).
func (uc *MazeService) CreateMaze(ctx context.Context, rows []string, start, goal datastructure.Cell) (kv.MazeRecord, error) {
	grid, err := datastructure.ParseGrid(rows)
	if err != nil {
		return kv.MazeRecord{}, server.WrapErrorf(err, server.ErrBadParamInput, "invalid maze rows")
	}
	if err := checkEndpoints(grid.Size(), start, goal); err != nil {
		return kv.MazeRecord{}, err
	}
	if !grid.Passable(start) || !grid.Passable(goal) {
		return kv.MazeRecord{}, server.WrapErrorf(nil, server.ErrBadParamInput, "start and goal cells must be passable")
	}

	rec := kv.MazeRecord{
		ID:          uc.newID(),
		N:           grid.Size(),
		Probability: -1,
		Rows:        grid.Rows(),
		Start:       start,
		Goal:        goal,
		CreatedAt:   uc.now().Unix(),
	}
	if err := uc.KV.SaveMaze(rec); err != nil {
		return kv.MazeRecord{}, server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
	}
	uc.log.InfoContext(ctx, "maze created", slog.String("id", rec.ID), slog.Int("n", rec.N))
	return rec, nil
}

func (uc *MazeService) GetMaze(ctx context.Context, id string) (kv.MazeRecord, error) {
	rec, err := uc.KV.GetMaze(id)
	if errors.Is(err, kv.ErrMazeNotFound) {
		return kv.MazeRecord{}, server.WrapErrorf(err, server.ErrNotFound, "maze %s not found", id)
	}
	if err != nil {
		return kv.MazeRecord{}, server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
	}
	return rec, nil
}

func (uc *MazeService) DeleteMaze(ctx context.Context, id string) error {
	err := uc.KV.DeleteMaze(id)
	if errors.Is(err, kv.ErrMazeNotFound) {
		return server.WrapErrorf(err, server.ErrNotFound, "maze %s not found", id)
	}
	if err != nil {
		return server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
	}
	return nil
}

// SolveMaze jalankan UCS lalu A* pada maze yang tersimpan, hasilnya ikut disimpan.
func (uc *MazeService) SolveMaze(ctx context.Context, id string) ([]AlgorithmReport, error) {
	rec, err := uc.GetMaze(ctx, id)
	if err != nil {
		return nil, err
	}
	grid, err := rec.Grid()
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrInternalServerError, "stored maze %s is corrupt", id)
	}

	rt := routingalgorithm.NewRouteAlgorithm(grid, heuristics.NewPortalHeuristic(grid))
	reports := make([]AlgorithmReport, 0, 2)
	runs := make([]kv.RunRecord, 0, 2)
	for _, alg := range []routingalgorithm.Algorithm{routingalgorithm.UCS, routingalgorithm.AStar} {
		res, path, err := rt.ShortestPath(alg, rec.Start, rec.Goal)
		if err != nil {
			if errors.Is(err, routingalgorithm.ErrCellOutOfBounds) {
				return nil, server.WrapErrorf(err, server.ErrBadParamInput, "invalid endpoints for maze %s", id)
			}
			// frontier overflow berarti sizing salah, bukan salah input
			uc.log.ErrorContext(ctx, "search failed", slog.String("id", id), slog.String("algorithm", string(alg)), slog.Any("error", err))
			return nil, server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
		}

		report := AlgorithmReport{
			Algorithm:  alg,
			Found:      res.Found,
			Expansions: res.Expansions,
			Path:       path,
		}
		if res.Found {
			report.Cost = path.TotalCost
		}
		reports = append(reports, report)
		runs = append(runs, kv.RunRecord{
			Algorithm:  string(alg),
			Found:      report.Found,
			Cost:       report.Cost,
			Expansions: report.Expansions,
			Path:       path.Cells,
		})
		uc.log.DebugContext(ctx, "search finished", slog.String("id", id), slog.String("algorithm", string(alg)),
			slog.Bool("found", res.Found), slog.Int("expansions", res.Expansions))
	}

	if err := uc.KV.SaveRuns(id, runs); err != nil {
		return nil, server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
	}
	return reports, nil
}

func (uc *MazeService) GetRuns(ctx context.Context, id string) ([]kv.RunRecord, error) {
	if _, err := uc.GetMaze(ctx, id); err != nil {
		return nil, err
	}
	runs, err := uc.KV.GetRuns(id)
	if errors.Is(err, kv.ErrMazeNotFound) {
		return nil, server.WrapErrorf(err, server.ErrNotFound, "maze %s has not been solved yet", id)
	}
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
	}
	return runs, nil
}
