package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vincenthsieh/tokyosync/internal/domain"
)

func dated(date string) []domain.Entry {
	return []domain.Entry{
		{ID: "a", Type: domain.EntryTransit, Date: date},
		{ID: "b", Type: domain.EntryVisit},
	}
}

func TestDayStatusOf_NoDateDefaultsToToday(t *testing.T) {
	now := time.Date(2025, 12, 24, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, DayToday, DayStatusOf(now, dated("")))
	assert.Equal(t, DayToday, DayStatusOf(now, nil))
}

func TestDayStatusOf_PastTodayFuture(t *testing.T) {
	now := time.Date(2025, 12, 24, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, DayPast, DayStatusOf(now, dated("12/23 (週二)")))
	assert.Equal(t, DayToday, DayStatusOf(now, dated("12/24 (週三)")))
	assert.Equal(t, DayFuture, DayStatusOf(now, dated("12/25 (週四)")))
}

func TestDayStatusOf_DateOnlyComparisonIgnoresTime(t *testing.T) {
	// Just after midnight, today's date still reads TODAY.
	now := time.Date(2025, 12, 24, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, DayToday, DayStatusOf(now, dated("12/24 (週三)")))
}

func TestDayStatusOf_UnparseableDateDefaultsToToday(t *testing.T) {
	now := time.Date(2025, 12, 24, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, DayToday, DayStatusOf(now, dated("Christmas Eve")))
}

func TestDayStatusOf_UsesFirstDatedEntry(t *testing.T) {
	now := time.Date(2025, 12, 24, 10, 0, 0, 0, time.UTC)
	entries := []domain.Entry{
		{ID: "a", Type: domain.EntryVisit},
		{ID: "b", Type: domain.EntryVisit, Date: "12/20 (週六)"},
		{ID: "c", Type: domain.EntryVisit, Date: "12/25 (週四)"},
	}
	assert.Equal(t, DayPast, DayStatusOf(now, entries))
}
