package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/vincenthsieh/tokyosync/internal/dataset"
	"github.com/vincenthsieh/tokyosync/internal/domain"
	"github.com/vincenthsieh/tokyosync/internal/repository"
	"github.com/vincenthsieh/tokyosync/internal/timeline"
)

type itineraryService struct {
	repo repository.SnapshotRepo
}

// NewItineraryService creates an ItineraryService backed by the given
// snapshot repository.
func NewItineraryService(repo repository.SnapshotRepo) ItineraryService {
	return &itineraryService{repo: repo}
}

func (s *itineraryService) Load(ctx context.Context) []domain.Entry {
	snap, err := s.repo.Get(ctx)
	if err != nil {
		// Missing, unreadable, or malformed snapshots all fall back
		// to the preset.
		return dataset.Preset()
	}
	if snap.Version != dataset.SchemaVersion || len(snap.Items) == 0 {
		return dataset.Preset()
	}
	return snap.Items
}

func (s *itineraryService) Save(ctx context.Context, entries []domain.Entry) error {
	if err := domain.ValidateAll(entries); err != nil {
		return fmt.Errorf("validating itinerary: %w", err)
	}
	snap := &domain.Snapshot{
		Version: dataset.SchemaVersion,
		Items:   entries,
	}
	if err := s.repo.Put(ctx, snap); err != nil {
		return fmt.Errorf("saving itinerary: %w", err)
	}
	return nil
}

func (s *itineraryService) Reset(ctx context.Context) ([]domain.Entry, error) {
	entries := dataset.Preset()
	if err := s.Save(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *itineraryService) Days(entries []domain.Entry) []int {
	seen := make(map[int]bool)
	var days []int
	for _, e := range entries {
		d := e.DayOrDefault()
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Ints(days)
	return days
}

func (s *itineraryService) FilterByDay(entries []domain.Entry, day int) []domain.Entry {
	var out []domain.Entry
	for _, e := range entries {
		if e.DayOrDefault() == day {
			out = append(out, e)
		}
	}
	return out
}

func (s *itineraryService) DayLabel(entries []domain.Entry, day int) string {
	for _, e := range s.FilterByDay(entries, day) {
		if e.Date != "" {
			return e.Date
		}
	}
	return fmt.Sprintf("Day %d", day)
}

func (s *itineraryService) FindEntry(entries []domain.Entry, id string) (timeline.EntryContext, bool) {
	for _, day := range s.Days(entries) {
		list := s.FilterByDay(entries, day)
		if ctx, ok := timeline.FindEntryContext(list, id, dataset.Hotel); ok {
			ctx.Day = day
			return ctx, true
		}
	}
	return timeline.EntryContext{}, false
}

func (s *itineraryService) Home() domain.Location {
	return dataset.Hotel
}
