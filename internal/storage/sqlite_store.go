package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sandeepkv93/habitd/internal/model"
)

const sqliteTimeLayout = time.RFC3339Nano

// SQLiteStore keeps each blob in a single-row-per-key table. The value
// column holds the JSON document verbatim.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	store, err := NewSQLiteStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) LoadState(ctx context.Context) (model.TrackerState, error) {
	raw, err := s.getBlob(ctx, StateKey)
	if err != nil {
		return model.TrackerState{}, err
	}
	if err := validateStateBlob(raw); err != nil {
		return model.TrackerState{}, err
	}
	var state model.TrackerState
	if err := json.Unmarshal(raw, &state); err != nil {
		return model.TrackerState{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return state, nil
}

func (s *SQLiteStore) SaveState(ctx context.Context, state model.TrackerState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	return s.setBlob(ctx, StateKey, payload)
}

func (s *SQLiteStore) LoadHistory(ctx context.Context) ([]model.HistoryRecord, error) {
	raw, err := s.getBlob(ctx, HistoryKey)
	if err != nil {
		return nil, err
	}
	records := make([]model.HistoryRecord, 0)
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return records, nil
}

func (s *SQLiteStore) SaveHistory(ctx context.Context, records []model.HistoryRecord) error {
	if records == nil {
		records = make([]model.HistoryRecord, 0)
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	return s.setBlob(ctx, HistoryKey, payload)
}

func (s *SQLiteStore) getBlob(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM blobs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (s *SQLiteStore) setBlob(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO blobs (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), time.Now().UTC().Format(sqliteTimeLayout),
	)
	return err
}
