package cli

import (
	"context"
	"time"

	"github.com/vincenthsieh/tokyosync/internal/domain"
	"github.com/vincenthsieh/tokyosync/internal/timeline"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Now is the wall clock the whole TUI renders against. It only
	// moves on minute ticks so every view agrees on the time.
	Now time.Time

	// Entries is the loaded itinerary sequence.
	Entries []domain.Entry

	// Splits tracks which branch of each split entry is selected.
	// Session-scoped, never persisted.
	Splits *timeline.SplitSelection

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(app *App) *SharedState {
	s := &SharedState{
		App:    app,
		Now:    time.Now(),
		Splits: timeline.NewSplitSelection(),
	}
	s.Reload()
	return s
}

// Reload refreshes the entry sequence from the store.
func (s *SharedState) Reload() {
	s.Entries = s.App.Itinerary.Load(context.Background())
}

// DayEntries returns the entries for one day.
func (s *SharedState) DayEntries(day int) []domain.Entry {
	return s.App.Itinerary.FilterByDay(s.Entries, day)
}

// DayStatus classifies a day against the shared clock.
func (s *SharedState) DayStatus(day int) timeline.DayStatus {
	return timeline.DayStatusOf(s.Now, s.DayEntries(day))
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines) and status bar (2 lines).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
