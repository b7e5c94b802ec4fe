package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vincenthsieh/tokyosync/internal/domain"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 12, 24, hour, min, 0, 0, time.UTC)
}

func TestClassify_PastDay_EverythingPast(t *testing.T) {
	// Day-level status wins even for an entry whose own window is ahead.
	e := domain.Entry{Type: domain.EntryVisit, StartTime: "23:00", EndTime: "23:59"}
	c := Classify(at(8, 0), DayPast, e)
	assert.True(t, c.IsPast)
	assert.False(t, c.IsActive)
}

func TestClassify_FutureDay_NothingHighlighted(t *testing.T) {
	e := domain.Entry{Type: domain.EntryVisit, StartTime: "00:00", EndTime: "00:01"}
	c := Classify(at(23, 59), DayFuture, e)
	assert.False(t, c.IsPast)
	assert.False(t, c.IsActive)
}

func TestClassify_Today_NoStartTime_NeverHighlighted(t *testing.T) {
	c := Classify(at(14, 0), DayToday, domain.Entry{Type: domain.EntryVisit})
	assert.False(t, c.IsPast)
	assert.False(t, c.IsActive)
}

func TestClassify_Today_WithinWindow_Active(t *testing.T) {
	e := domain.Entry{Type: domain.EntryVisit, StartTime: "14:00", EndTime: "14:30"}
	c := Classify(at(14, 5), DayToday, e)
	assert.True(t, c.IsActive)
	assert.False(t, c.IsPast)
}

func TestClassify_Today_AfterWindow_Past(t *testing.T) {
	e := domain.Entry{Type: domain.EntryVisit, StartTime: "14:00", EndTime: "14:30"}
	c := Classify(at(14, 31), DayToday, e)
	assert.False(t, c.IsActive)
	assert.True(t, c.IsPast)
}

func TestClassify_Today_EqualMinuteCountsAsPassed(t *testing.T) {
	e := domain.Entry{Type: domain.EntryVisit, StartTime: "14:00", EndTime: "14:30"}

	c := Classify(at(14, 0), DayToday, e)
	assert.True(t, c.IsActive, "start boundary minute is already started")

	c = Classify(at(14, 30), DayToday, e)
	assert.True(t, c.IsPast, "end boundary minute is already ended")
}

func TestClassify_Today_ImplicitThirtyMinuteWindow(t *testing.T) {
	e := domain.Entry{Type: domain.EntryVisit, StartTime: "09:00"}

	c := Classify(at(9, 25), DayToday, e)
	assert.True(t, c.IsActive)
	assert.False(t, c.IsPast)

	c = Classify(at(9, 31), DayToday, e)
	assert.False(t, c.IsActive)
	assert.True(t, c.IsPast)
}

func TestClassify_Today_BeforeStart_Neither(t *testing.T) {
	e := domain.Entry{Type: domain.EntryVisit, StartTime: "14:00", EndTime: "14:30"}
	c := Classify(at(13, 59), DayToday, e)
	assert.False(t, c.IsActive)
	assert.False(t, c.IsPast)
}

func TestClassify_Today_UnparseableStartTreatedAsAbsent(t *testing.T) {
	e := domain.Entry{Type: domain.EntryVisit, StartTime: "around noon"}
	c := Classify(at(23, 0), DayToday, e)
	assert.False(t, c.IsActive)
	assert.False(t, c.IsPast)
}

func TestClockMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"09:05", 545, true},
		{"23:59", 1439, true},
		{"", 0, false},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"noon", 0, false},
		{"12", 0, false},
	}
	for _, tt := range tests {
		got, ok := ClockMinutes(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}
