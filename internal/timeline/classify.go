package timeline

import (
	"time"

	"github.com/vincenthsieh/tokyosync/internal/domain"
)

// implicitWindowMin is the synthesized duration for entries that have
// a start time but no end time.
const implicitWindowMin = 30

// Classification is an entry's status relative to wall-clock time.
// Both flags false means the entry is still ahead (or untimed).
type Classification struct {
	IsPast   bool
	IsActive bool
}

// Classify determines an entry's past/active state. Day-level status
// is checked first and short-circuits the time math: a PAST day marks
// every entry past and a FUTURE day marks none, regardless of the
// entry's own times.
func Classify(now time.Time, day DayStatus, e domain.Entry) Classification {
	switch day {
	case DayPast:
		return Classification{IsPast: true}
	case DayFuture:
		return Classification{}
	}

	startMins, ok := ClockMinutes(e.StartTime)
	if !ok {
		// Untimed entries are never highlighted by time.
		return Classification{}
	}

	nowMins := NowMinutes(now)
	startPassed := nowMins >= startMins

	var endPassed bool
	if endMins, ok := ClockMinutes(e.EndTime); ok {
		endPassed = nowMins >= endMins
	} else {
		endPassed = nowMins >= startMins+implicitWindowMin
	}

	return Classification{
		IsPast:   endPassed,
		IsActive: startPassed && !endPassed,
	}
}
