package storage

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	// SQLite не любит конкурентных писателей
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) SaveRun(ctx context.Context, run RunRecord) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO runs (id, seed, width, height, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			seed = excluded.seed,
			width = excluded.width,
			height = excluded.height,
			created_at = excluded.created_at
	`, run.ID, run.Seed, run.Width, run.Height, run.CreatedAt.UnixNano())
	return err
}

func (s *SQLiteStore) GetRun(ctx context.Context, id string) (RunRecord, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return RunRecord{}, false, err
	}

	var (
		run       RunRecord
		createdAt int64
	)
	err = db.QueryRowContext(ctx, `
		SELECT id, seed, width, height, created_at FROM runs WHERE id = ?
	`, id).Scan(&run.ID, &run.Seed, &run.Width, &run.Height, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return RunRecord{}, false, nil
	}
	if err != nil {
		return RunRecord{}, false, err
	}
	run.CreatedAt = time.Unix(0, createdAt)
	return run, true, nil
}

func (s *SQLiteStore) SaveSnapshot(ctx context.Context, runID string, tick int, payload []byte) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO snapshots (run_id, tick, payload)
		VALUES (?, ?, ?)
		ON CONFLICT(run_id, tick) DO UPDATE SET payload = excluded.payload
	`, runID, tick, payload)
	return err
}

func (s *SQLiteStore) GetSnapshot(ctx context.Context, runID string, tick int) ([]byte, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, false, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx, `
		SELECT payload FROM snapshots WHERE run_id = ? AND tick = ?
	`, runID, tick).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (s *SQLiteStore) LatestSnapshot(ctx context.Context, runID string) (int, []byte, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return 0, nil, false, err
	}

	var (
		tick    int
		payload []byte
	)
	err = db.QueryRowContext(ctx, `
		SELECT tick, payload FROM snapshots WHERE run_id = ? ORDER BY tick DESC LIMIT 1
	`, runID).Scan(&tick, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil, false, nil
	}
	if err != nil {
		return 0, nil, false, err
	}
	return tick, payload, true, nil
}

func (s *SQLiteStore) Ticks(ctx context.Context, runID string) ([]int, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT tick FROM snapshots WHERE run_id = ? ORDER BY tick
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ticks := []int{}
	for rows.Next() {
		var tick int
		if err := rows.Scan(&tick); err != nil {
			return nil, err
		}
		ticks = append(ticks, tick)
	}
	return ticks, rows.Err()
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("store is not initialized")
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS snapshots (
			run_id TEXT NOT NULL,
			tick INTEGER NOT NULL,
			payload BLOB NOT NULL,
			PRIMARY KEY (run_id, tick)
		);
	`)
	return err
}
