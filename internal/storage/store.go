package storage

import (
	"context"
	"errors"

	"github.com/sandeepkv93/habitd/internal/model"
)

var (
	ErrNotFound = errors.New("storage: not found")
	// ErrCorrupt marks a blob that exists but cannot be decoded or fails
	// schema validation. Callers fall back to defaults; never fatal.
	ErrCorrupt = errors.New("storage: corrupt blob")
)

// Blob keys. The whole tracker record and the history log are stored as
// two independent JSON blobs.
const (
	StateKey   = "tracker_state"
	HistoryKey = "tracker_history"
)

// Store persists the tracker state and the bounded history log as whole
// blobs. Writes are synchronous and replace the previous value.
type Store interface {
	LoadState(ctx context.Context) (model.TrackerState, error)
	SaveState(ctx context.Context, state model.TrackerState) error
	LoadHistory(ctx context.Context) ([]model.HistoryRecord, error)
	SaveHistory(ctx context.Context, records []model.HistoryRecord) error
	Close() error
}
