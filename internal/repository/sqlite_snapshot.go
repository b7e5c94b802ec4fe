package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vincenthsieh/tokyosync/internal/db"
	"github.com/vincenthsieh/tokyosync/internal/domain"
)

// snapshotKey identifies the single itinerary snapshot row. The key
// column exists so future datasets (a second trip) can share the table.
const snapshotKey = "tokyo_sync_data_master"

// SQLiteSnapshotRepo implements SnapshotRepo using a SQLite database.
type SQLiteSnapshotRepo struct {
	db db.DBTX
}

// NewSQLiteSnapshotRepo creates a new SQLiteSnapshotRepo.
func NewSQLiteSnapshotRepo(dbtx db.DBTX) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: dbtx}
}

func (r *SQLiteSnapshotRepo) Get(ctx context.Context) (*domain.Snapshot, error) {
	query := `SELECT version, items FROM snapshots WHERE key = ?`
	row := r.db.QueryRowContext(ctx, query, snapshotKey)

	var snap domain.Snapshot
	var itemsJSON string
	if err := row.Scan(&snap.Version, &itemsJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("snapshot: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning snapshot: %w", err)
	}

	if err := json.Unmarshal([]byte(itemsJSON), &snap.Items); err != nil {
		return nil, fmt.Errorf("decoding snapshot items: %w", err)
	}
	return &snap, nil
}

func (r *SQLiteSnapshotRepo) Put(ctx context.Context, snap *domain.Snapshot) error {
	itemsJSON, err := json.Marshal(snap.Items)
	if err != nil {
		return fmt.Errorf("encoding snapshot items: %w", err)
	}

	query := `INSERT INTO snapshots (id, key, version, items, saved_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			version = excluded.version,
			items = excluded.items,
			saved_at = excluded.saved_at`
	_, err = r.db.ExecContext(ctx, query,
		uuid.NewString(),
		snapshotKey,
		snap.Version,
		string(itemsJSON),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting snapshot: %w", err)
	}
	return nil
}
