package timeline

import (
	"strconv"
	"strings"
	"time"
)

// ClockMinutes parses an "HH:MM" 24-hour string into minutes since
// midnight. ok is false for missing or unparseable strings; callers
// treat those entries as having no time at all.
func ClockMinutes(s string) (int, bool) {
	h, m, found := strings.Cut(s, ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	min, err := strconv.Atoi(strings.TrimSpace(m))
	if err != nil || min < 0 || min > 59 {
		return 0, false
	}
	return hour*60 + min, true
}

// NowMinutes returns now's minute of day at minute resolution.
func NowMinutes(now time.Time) int {
	return now.Hour()*60 + now.Minute()
}
