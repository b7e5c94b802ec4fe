package service

import (
	"context"

	"github.com/vincenthsieh/tokyosync/internal/domain"
	"github.com/vincenthsieh/tokyosync/internal/timeline"
)

// ItineraryService owns the canonical entry sequence: versioned
// load/save against the snapshot store, day groupings, and per-day
// filtered views.
type ItineraryService interface {
	// Load returns the persisted itinerary if its schema version
	// matches exactly and it is non-empty, otherwise the built-in
	// preset. Snapshot problems are never fatal.
	Load(ctx context.Context) []domain.Entry

	// Save persists the full entry sequence tagged with the current
	// schema version. Total replace, never a merge.
	Save(ctx context.Context, entries []domain.Entry) error

	// Reset discards any persisted snapshot state and re-saves the
	// built-in preset, returning it.
	Reset(ctx context.Context) ([]domain.Entry, error)

	// Days returns the sorted distinct day numbers of the sequence.
	Days(entries []domain.Entry) []int

	// FilterByDay returns the day's entries preserving original order.
	FilterByDay(entries []domain.Entry, day int) []domain.Entry

	// DayLabel returns the day's display date, or "Day N".
	DayLabel(entries []domain.Entry, day int) string

	// FindEntry locates an entry by ID anywhere in the sequence,
	// including nested split branches, with its resolved navigation
	// origin.
	FindEntry(entries []domain.Entry, id string) (timeline.EntryContext, bool)

	// Home returns the trip's fixed home-base location.
	Home() domain.Location
}
