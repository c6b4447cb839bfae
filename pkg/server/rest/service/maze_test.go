package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"lintang/labyrinthx/pkg/datastructure"
	"lintang/labyrinthx/pkg/kv"
	"lintang/labyrinthx/pkg/server"
	"lintang/labyrinthx/pkg/server/rest/service"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *service.MazeService {
	t.Helper()
	db, err := pebble.Open("labyrinthx-svc-test", &pebble.Options{FS: vfs.NewMem()})
	require.NoError(t, err)
	kvDB := kv.NewKVDB(db)
	t.Cleanup(func() { kvDB.Close() })
	return service.NewMazeService(kvDB, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func errCode(t *testing.T, err error) error {
	t.Helper()
	var serr *server.Error
	require.True(t, errors.As(err, &serr), "expected *server.Error, got %v", err)
	return serr.Code()
}

func TestGenerateMaze(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	seed := int64(7)
	start, goal := datastructure.NewCell(0, 0), datastructure.NewCell(11, 11)

	a, err := svc.GenerateMaze(ctx, 12, 0.6, start, goal, &seed)
	require.NoError(t, err)
	b, err := svc.GenerateMaze(ctx, 12, 0.6, start, goal, &seed)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Rows, b.Rows)
	assert.Equal(t, seed, a.Seed)

	got, err := svc.GetMaze(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)

	_, err = svc.GenerateMaze(ctx, 12, 0.6, start, start, nil)
	assert.Equal(t, server.ErrBadParamInput, errCode(t, err))
	_, err = svc.GenerateMaze(ctx, 12, 0.6, start, datastructure.NewCell(12, 0), nil)
	assert.Equal(t, server.ErrBadParamInput, errCode(t, err))
	_, err = svc.GenerateMaze(ctx, 12, 1.2, start, goal, nil)
	assert.Equal(t, server.ErrBadParamInput, errCode(t, err))
}

func TestSolveMaze(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// kolom tengah tertutup, hanya bisa lewat portal
	rec, err := svc.CreateMaze(ctx, []string{
		"..#...",
		"..#...",
		"..#...",
		"..#...",
		"..#...",
		"..#...",
	}, datastructure.NewCell(4, 1), datastructure.NewCell(1, 4))
	require.NoError(t, err)

	reports, err := svc.SolveMaze(ctx, rec.ID)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	for _, rep := range reports {
		assert.True(t, rep.Found)
		assert.Equal(t, reports[0].Cost, rep.Cost)
		assert.Equal(t, rep.Cost, rep.Path.TotalCost)
	}
	assert.LessOrEqual(t, reports[1].Expansions, reports[0].Expansions)

	runs, err := svc.GetRuns(ctx, rec.ID)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "UCS", runs[0].Algorithm)
	assert.Equal(t, "A*", runs[1].Algorithm)
	assert.Equal(t, reports[1].Path.Cells, runs[1].Path)

	require.NoError(t, svc.DeleteMaze(ctx, rec.ID))
	_, err = svc.SolveMaze(ctx, rec.ID)
	assert.Equal(t, server.ErrNotFound, errCode(t, err))
	_, err = svc.GetRuns(ctx, rec.ID)
	assert.Equal(t, server.ErrNotFound, errCode(t, err))
	assert.Equal(t, server.ErrNotFound, errCode(t, svc.DeleteMaze(ctx, rec.ID)))
}

func TestCreateMazeErrors(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateMaze(ctx, []string{"...", ".."}, datastructure.NewCell(0, 0), datastructure.NewCell(1, 1))
	assert.Equal(t, server.ErrBadParamInput, errCode(t, err))

	_, err = svc.CreateMaze(ctx, []string{"..", ".."}, datastructure.NewCell(0, 0), datastructure.NewCell(2, 2))
	assert.Equal(t, server.ErrBadParamInput, errCode(t, err))

	_, err = svc.CreateMaze(ctx, []string{"#.", ".."}, datastructure.NewCell(0, 0), datastructure.NewCell(1, 1))
	assert.Equal(t, server.ErrBadParamInput, errCode(t, err))
}
