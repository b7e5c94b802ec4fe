package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vincenthsieh/tokyosync/internal/domain"
	"github.com/vincenthsieh/tokyosync/internal/testutil"
)

func TestSQLiteSnapshotRepo_GetBeforePut(t *testing.T) {
	repo := NewSQLiteSnapshotRepo(testutil.NewTestDB(t))
	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteSnapshotRepo_PutGetRoundTrip(t *testing.T) {
	repo := NewSQLiteSnapshotRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	snap := &domain.Snapshot{
		Version: "v16",
		Items: []domain.Entry{
			{
				ID: "d1-dinner", Day: 1, Type: domain.EntryVisit,
				StartTime: "19:30", EndTime: "21:30", IsReservation: true,
				Location: &domain.Location{ID: "otafuku", Name: "淺草おden 大多福"},
			},
			{
				ID: "d2-split", Day: 2, Type: domain.EntrySplit,
				SplitGroups: []domain.SplitGroup{
					{ID: "g-a", Name: "A組", Itinerary: []domain.Entry{
						{ID: "s1", Type: domain.EntryTransit, Transit: &domain.TransitInfo{Mode: domain.ModeTrain, Duration: "約20分"}},
					}},
				},
			},
		},
	}
	require.NoError(t, repo.Put(ctx, snap))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap.Version, got.Version)
	assert.Equal(t, snap.Items, got.Items)
}

func TestSQLiteSnapshotRepo_PutReplacesExisting(t *testing.T) {
	repo := NewSQLiteSnapshotRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, &domain.Snapshot{
		Version: "v15",
		Items:   []domain.Entry{{ID: "a", Type: domain.EntryVisit}},
	}))
	require.NoError(t, repo.Put(ctx, &domain.Snapshot{
		Version: "v16",
		Items:   []domain.Entry{{ID: "b", Type: domain.EntryVisit}},
	}))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v16", got.Version)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "b", got.Items[0].ID)
}

func TestSQLiteSnapshotRepo_MalformedItemsSurfacesError(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSnapshotRepo(database)
	ctx := context.Background()

	_, err := database.Exec(
		`INSERT INTO snapshots (id, key, version, items, saved_at) VALUES ('x', 'tokyo_sync_data_master', 'v16', '{not json', '2025-12-23T00:00:00Z')`)
	require.NoError(t, err)

	_, err = repo.Get(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding snapshot items")
}
