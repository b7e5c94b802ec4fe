package timeline

import "github.com/vincenthsieh/tokyosync/internal/domain"

// ResolvePrevious finds the origin location for an A-to-B navigation
// request: the nearest location-bearing entry strictly before index,
// or fallback when none exists. The scan is variant-agnostic: a
// transit leg's destination counts exactly like a visit, since after
// the leg you are physically at its destination. A location is always
// returned, never a zero value, as long as fallback is valid.
//
// For a split-group branch the caller passes the parent sequence's
// already-resolved predecessor as fallback; branches never see each
// other's entries.
func ResolvePrevious(list []domain.Entry, index int, fallback domain.Location) domain.Location {
	if index <= 0 || index > len(list) {
		return fallback
	}
	for i := index - 1; i >= 0; i-- {
		if list[i].HasLocation() {
			return *list[i].Location
		}
	}
	return fallback
}
