package timeline

import "github.com/vincenthsieh/tokyosync/internal/domain"

// SplitSelection tracks which branch of each split entry is currently
// shown. The state is ephemeral, keyed by entry ID, and owned by
// whichever session created it; it is never persisted, so two
// sessions over the same itinerary cannot interfere.
type SplitSelection struct {
	active map[string]int
}

func NewSplitSelection() *SplitSelection {
	return &SplitSelection{active: make(map[string]int)}
}

// Active returns the selected branch index for a split entry,
// defaulting to the first branch.
func (s *SplitSelection) Active(entryID string) int {
	return s.active[entryID]
}

// Select sets the active branch for one split entry. Other entries'
// selections are unaffected; selecting is idempotent.
func (s *SplitSelection) Select(entryID string, index int) {
	s.active[entryID] = index
}

// Cycle advances the active branch of a split entry, wrapping around.
func (s *SplitSelection) Cycle(e domain.Entry) {
	if len(e.SplitGroups) == 0 {
		return
	}
	s.active[e.ID] = (s.active[e.ID] + 1) % len(e.SplitGroups)
}

// ActiveGroup resolves the selected branch of a split entry. ok is
// false for entries with no groups or a selection out of range; such
// entries render as nothing rather than breaking the day's timeline.
func (s *SplitSelection) ActiveGroup(e domain.Entry) (domain.SplitGroup, bool) {
	idx := s.active[e.ID]
	if idx < 0 || idx >= len(e.SplitGroups) {
		return domain.SplitGroup{}, false
	}
	return e.SplitGroups[idx], true
}

// EntryContext is an entry located within a day's list together with
// its resolved navigation origin. Day is the day the entry was found
// on; nested branch entries do not carry their own day number.
type EntryContext struct {
	Entry    domain.Entry
	Day      int
	Previous domain.Location
}

// FindEntryContext locates an entry by ID in a day's list, searching
// nested split branches too, and resolves the predecessor location it
// should navigate from. For a nested entry the parent sequence is
// resolved first at the split entry's own index and passed down as
// the branch fallback. ok is false when the ID is not on this day.
func FindEntryContext(list []domain.Entry, id string, home domain.Location) (EntryContext, bool) {
	for i, e := range list {
		if e.ID == id {
			return EntryContext{Entry: e, Previous: ResolvePrevious(list, i, home)}, true
		}
	}
	for i, e := range list {
		if e.Type != domain.EntrySplit {
			continue
		}
		parentPrev := ResolvePrevious(list, i, home)
		for _, g := range e.SplitGroups {
			for j, sub := range g.Itinerary {
				if sub.ID == id {
					return EntryContext{
						Entry:    sub,
						Previous: ResolvePrevious(g.Itinerary, j, parentPrev),
					}, true
				}
			}
		}
	}
	return EntryContext{}, false
}
