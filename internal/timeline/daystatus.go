package timeline

import (
	"regexp"
	"strconv"
	"time"

	"github.com/vincenthsieh/tokyosync/internal/domain"
)

// DayStatus is the coarse classification of an entire calendar day
// relative to the current date, ignoring time of day.
type DayStatus string

const (
	DayPast   DayStatus = "PAST"
	DayToday  DayStatus = "TODAY"
	DayFuture DayStatus = "FUTURE"
)

// monthDayRe extracts the embedded month/day token from a display
// date string such as "12/23 (週二)".
var monthDayRe = regexp.MustCompile(`(\d+)/(\d+)`)

// DayStatusOf classifies a day's entries against today's calendar
// date. The day's date comes from the first entry carrying a Date
// field; the year is taken from now, so a trip spanning a year
// boundary is misclassified. No Date found means TODAY.
func DayStatusOf(now time.Time, entries []domain.Entry) DayStatus {
	var dated *domain.Entry
	for i := range entries {
		if entries[i].Date != "" {
			dated = &entries[i]
			break
		}
	}
	if dated == nil {
		return DayToday
	}

	m := monthDayRe.FindStringSubmatch(dated.Date)
	if m == nil {
		return DayToday
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])

	target := time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch {
	case target.Before(today):
		return DayPast
	case target.After(today):
		return DayFuture
	default:
		return DayToday
	}
}
