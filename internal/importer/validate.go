package importer

import (
	"fmt"

	"github.com/vincenthsieh/tokyosync/internal/domain"
	"github.com/vincenthsieh/tokyosync/internal/timeline"
)

// Validate checks a snapshot before it replaces stored state.
// Returns a slice of all validation errors found.
func Validate(snap *domain.Snapshot, wantVersion string) []error {
	var errs []error

	if snap.Version != wantVersion {
		errs = append(errs, fmt.Errorf("schema version %q does not match %q", snap.Version, wantVersion))
	}
	if len(snap.Items) == 0 {
		errs = append(errs, fmt.Errorf("snapshot has no entries"))
	}

	seen := make(map[string]bool)
	for i, e := range snap.Items {
		errs = append(errs, validateEntry(fmt.Sprintf("items[%d]", i), e, seen)...)
	}

	return errs
}

func validateEntry(prefix string, e domain.Entry, seen map[string]bool) []error {
	var errs []error

	if e.ID == "" {
		errs = append(errs, fmt.Errorf("%s: id is required", prefix))
	} else if seen[e.ID] {
		errs = append(errs, fmt.Errorf("%s: duplicate id %q", prefix, e.ID))
	} else {
		seen[e.ID] = true
	}

	if err := e.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
	}

	if e.StartTime != "" {
		if _, ok := timeline.ClockMinutes(e.StartTime); !ok {
			errs = append(errs, fmt.Errorf("%s: invalid startTime %q (expected HH:MM)", prefix, e.StartTime))
		}
	}
	if e.EndTime != "" {
		if _, ok := timeline.ClockMinutes(e.EndTime); !ok {
			errs = append(errs, fmt.Errorf("%s: invalid endTime %q (expected HH:MM)", prefix, e.EndTime))
		}
	}

	for _, g := range e.SplitGroups {
		for j, sub := range g.Itinerary {
			errs = append(errs, validateEntry(fmt.Sprintf("%s.%s[%d]", prefix, g.ID, j), sub, seen)...)
		}
	}

	return errs
}
