package repository

import (
	"context"
	"errors"

	"github.com/vincenthsieh/tokyosync/internal/domain"
)

// ErrNotFound is returned when no snapshot has been persisted yet.
var ErrNotFound = errors.New("not found")

// SnapshotRepo persists the versioned itinerary snapshot. There is a
// single writer and no concurrent readers; writes are synchronous
// total replacements, never merges.
type SnapshotRepo interface {
	Get(ctx context.Context) (*domain.Snapshot, error)
	Put(ctx context.Context, snap *domain.Snapshot) error
}
