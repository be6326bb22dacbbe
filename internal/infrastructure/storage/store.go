package storage

import (
	"context"
	"fmt"
	"time"
)

// RunRecord - метаданные одного прогона симуляции
type RunRecord struct {
	ID        string    `json:"id"`
	Seed      int64     `json:"seed"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryStore хранит снимки мира после каждого тика.
// Payload - JSON снимка (api.ServerResponse), хранилище его не разбирает.
type HistoryStore interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run RunRecord) error
	GetRun(ctx context.Context, id string) (RunRecord, bool, error)
	SaveSnapshot(ctx context.Context, runID string, tick int, payload []byte) error
	GetSnapshot(ctx context.Context, runID string, tick int) ([]byte, bool, error)
	LatestSnapshot(ctx context.Context, runID string) (int, []byte, bool, error)
	Ticks(ctx context.Context, runID string) ([]int, error)
	Close() error
}

// NewHistoryStore выбирает backend: пустой путь - память, иначе SQLite-файл
func NewHistoryStore(kind, sqlitePath string) (HistoryStore, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(sqlitePath), nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", kind)
	}
}
