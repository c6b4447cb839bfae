package kv

import (
	"errors"
	"fmt"

	"lintang/labyrinthx/pkg/datastructure"

	"github.com/cockroachdb/pebble"
)

var ErrMazeNotFound = errors.New("maze not found")

const (
	mazeKeyPrefix = "maze:"
	runsKeyPrefix = "runs:"
)

// MazeRecord maze yang disimpan beserta parameter generate nya
type MazeRecord struct {
	ID          string
	N           int
	Probability float64
	Seed        int64
	Rows        []string
	Start       datastructure.Cell
	Goal        datastructure.Cell
	CreatedAt   int64
}

// Grid rebuild grid dari Rows
func (m MazeRecord) Grid() (*datastructure.Grid, error) {
	return datastructure.ParseGrid(m.Rows)
}

// RunRecord hasil satu algoritma pada satu maze
type RunRecord struct {
	Algorithm  string
	Found      bool
	Cost       float64
	Expansions int
	Path       []datastructure.Cell
}

type KVDB struct {
	db *pebble.DB
}

func NewKVDB(db *pebble.DB) *KVDB {
	return &KVDB{db}
}

func (k *KVDB) SaveMaze(m MazeRecord) error {
	val, err := encodeCompressed(m)
	if err != nil {
		return fmt.Errorf("encode maze %s: %w", m.ID, err)
	}
	if err := k.db.Set([]byte(mazeKeyPrefix+m.ID), val, pebble.Sync); err != nil {
		return fmt.Errorf("save maze %s: %w", m.ID, err)
	}
	return nil
}

func (k *KVDB) GetMaze(id string) (MazeRecord, error) {
	return get[MazeRecord](k.db, mazeKeyPrefix+id)
}

// DeleteMaze hapus maze beserta hasil run nya
func (k *KVDB) DeleteMaze(id string) error {
	if _, err := k.GetMaze(id); err != nil {
		return err
	}
	b := k.db.NewBatch()
	defer b.Close()
	if err := b.Delete([]byte(mazeKeyPrefix+id), nil); err != nil {
		return err
	}
	if err := b.Delete([]byte(runsKeyPrefix+id), nil); err != nil {
		return err
	}
	return b.Commit(pebble.Sync)
}

func (k *KVDB) SaveRuns(mazeID string, runs []RunRecord) error {
	val, err := encodeCompressed(runs)
	if err != nil {
		return fmt.Errorf("encode runs %s: %w", mazeID, err)
	}
	if err := k.db.Set([]byte(runsKeyPrefix+mazeID), val, pebble.Sync); err != nil {
		return fmt.Errorf("save runs %s: %w", mazeID, err)
	}
	return nil
}

func (k *KVDB) GetRuns(mazeID string) ([]RunRecord, error) {
	return get[[]RunRecord](k.db, runsKeyPrefix+mazeID)
}

func get[T any](db *pebble.DB, key string) (T, error) {
	var zero T
	val, closer, err := db.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return zero, fmt.Errorf("%w: %s", ErrMazeNotFound, key)
	}
	if err != nil {
		return zero, err
	}
	// val hanya valid sampai closer di close
	defer closer.Close()

	v, err := decodeCompressed[T](val)
	if err != nil {
		return zero, fmt.Errorf("decode %s: %w", key, err)
	}
	return v, nil
}

func (k *KVDB) Close() error {
	return k.db.Close()
}
