package timeline

import (
	"fmt"
	"time"

	"github.com/vincenthsieh/tokyosync/internal/domain"
)

// Countdown is the urgency state of a hard deadline.
type Countdown struct {
	Text  string
	Level domain.WarningLevel
}

// DeadlineCountdown computes the remaining time to an "HH:MM"
// deadline interpreted as occurring today. Under 30 minutes (or
// already passed) is critical, under an hour is caution. ok is false
// when the deadline string does not parse.
func DeadlineCountdown(now time.Time, deadline string) (Countdown, bool) {
	deadlineMins, ok := ClockMinutes(deadline)
	if !ok {
		return Countdown{}, false
	}

	diff := deadlineMins - NowMinutes(now)
	switch {
	case diff < 0:
		return Countdown{
			Text:  fmt.Sprintf("deadline %s passed", deadline),
			Level: domain.WarningCritical,
		}, true
	case diff < 30:
		return Countdown{
			Text:  fmt.Sprintf("%d min left", diff),
			Level: domain.WarningCritical,
		}, true
	case diff < 60:
		return Countdown{
			Text:  fmt.Sprintf("%d min left", diff),
			Level: domain.WarningCaution,
		}, true
	default:
		return Countdown{
			Text:  fmt.Sprintf("%dh %02dm left", diff/60, diff%60),
			Level: domain.WarningNormal,
		}, true
	}
}
