package domain

import "fmt"

// Entry is one scheduled unit of the itinerary: a place visited, a
// transit leg, a meetup, or a parallel split. The Type tag selects
// which payload fields are meaningful; consumers switch exhaustively
// on it rather than probing field presence.
type Entry struct {
	ID   string    `json:"id"`
	Day  int       `json:"day,omitempty"`
	Date string    `json:"date,omitempty"`
	Type EntryType `json:"type"`

	// visit/meetup payload; transit entries may also carry the
	// destination reached by the leg, used for navigation only.
	Location *Location `json:"location,omitempty"`

	// transit payload
	Transit *TransitInfo `json:"transitInfo,omitempty"`

	// split payload
	SplitGroups []SplitGroup `json:"splitGroups,omitempty"`

	StartTime     string       `json:"startTime,omitempty"`
	EndTime       string       `json:"endTime,omitempty"`
	IsReservation bool         `json:"isReservation,omitempty"`
	Notes         string       `json:"notes,omitempty"`
	Details       string       `json:"details,omitempty"`
	WarningLevel  WarningLevel `json:"warningLevel,omitempty"`

	// StrictDeadline marks the entry's end time as a hard cutoff;
	// the display string explains what fails if it is missed.
	StrictDeadline string `json:"strictDeadline,omitempty"`
}

// SplitGroup is one branch of a parallel split: an independent
// sub-itinerary that later converges back into the parent sequence.
type SplitGroup struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Itinerary []Entry `json:"itinerary"`
}

// Snapshot is the persisted form of the full itinerary. Version is an
// opaque schema tag; any non-exact match is stale, never migrated.
type Snapshot struct {
	Version string  `json:"version"`
	Items   []Entry `json:"items"`
}

// DayOrDefault returns the entry's 1-based day, defaulting to 1.
func (e Entry) DayOrDefault() int {
	if e.Day <= 0 {
		return 1
	}
	return e.Day
}

// HasLocation reports whether the entry carries a navigable location.
func (e Entry) HasLocation() bool {
	return e.Location != nil && e.Location.Name != ""
}

// Warning returns the entry's warning level, defaulting to normal.
func (e Entry) Warning() WarningLevel {
	if e.WarningLevel == "" {
		return WarningNormal
	}
	return e.WarningLevel
}

// Validate checks the structural invariants the engine relies on:
// a known entry type and at most one level of split nesting.
func (e Entry) Validate() error {
	if !ValidEntryTypes[string(e.Type)] {
		return fmt.Errorf("entry %q: unknown type %q", e.ID, e.Type)
	}
	if e.Type != EntrySplit && len(e.SplitGroups) > 0 {
		return fmt.Errorf("entry %q: splitGroups on non-split entry", e.ID)
	}
	for _, g := range e.SplitGroups {
		for _, sub := range g.Itinerary {
			if sub.Type == EntrySplit {
				return fmt.Errorf("entry %q: nested split %q inside group %q", e.ID, sub.ID, g.ID)
			}
			if !ValidEntryTypes[string(sub.Type)] {
				return fmt.Errorf("entry %q: unknown nested type %q", e.ID, sub.Type)
			}
		}
	}
	return nil
}

// ValidateAll validates a full entry sequence.
func ValidateAll(entries []Entry) error {
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}
