package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vincenthsieh/tokyosync/internal/dataset"
	"github.com/vincenthsieh/tokyosync/internal/domain"
	"github.com/vincenthsieh/tokyosync/internal/timeline"
)

func day2View(now time.Time) DayView {
	var entries []domain.Entry
	for _, e := range dataset.Preset() {
		if e.DayOrDefault() == 2 {
			entries = append(entries, e)
		}
	}
	return DayView{
		Label:   "12/24 (週三)",
		Status:  timeline.DayStatusOf(now, entries),
		Entries: entries,
		Now:     now,
		Splits:  timeline.NewSplitSelection(),
		Cursor:  -1,
	}
}

func TestFormatDay_ShowsLabelAndEntries(t *testing.T) {
	now := time.Date(2025, 12, 24, 12, 0, 0, 0, time.UTC)
	out := FormatDay(day2View(now))

	assert.Contains(t, out, "12/24 (週三)")
	assert.Contains(t, out, "Buvette Tokyo")
	assert.Contains(t, out, "[RESERVED]")
	assert.Contains(t, out, "[MEETUP]")
	assert.Contains(t, out, "末班 00:27")
}

func TestFormatDay_ActiveEntryMarkedLive(t *testing.T) {
	now := time.Date(2025, 12, 24, 12, 0, 0, 0, time.UTC)
	out := FormatDay(day2View(now))
	// The 11:15 to 13:00 lunch window is live at noon on 12/24.
	assert.Contains(t, out, "LIVE")
}

func TestFormatDay_SplitShowsActiveBranchOnly(t *testing.T) {
	now := time.Date(2025, 12, 24, 12, 0, 0, 0, time.UTC)
	v := day2View(now)

	out := FormatDay(v)
	assert.Contains(t, out, "分頭行動")
	assert.Contains(t, out, "澀谷 (Shibuya)")
	assert.NotContains(t, out, "中野 Broadway")

	v.Splits.Select("d2-split", 1)
	out = FormatDay(v)
	assert.Contains(t, out, "中野 Broadway")
	assert.NotContains(t, out, "澀谷 (Shibuya)")
}

func TestFormatDay_EmptyDay(t *testing.T) {
	out := FormatDay(DayView{
		Label:  "Day 9",
		Status: timeline.DayToday,
		Now:    time.Now(),
		Splits: timeline.NewSplitSelection(),
		Cursor: -1,
	})
	assert.Contains(t, out, "這一天沒有行程")
}

func TestFormatDay_FutureDayMarked(t *testing.T) {
	now := time.Date(2025, 12, 20, 12, 0, 0, 0, time.UTC)
	v := day2View(now)
	out := FormatDay(v)
	assert.Contains(t, out, "FUTURE")
	assert.NotContains(t, out, "LIVE")
}

func TestModeName(t *testing.T) {
	assert.Equal(t, "電車", ModeName(domain.ModeTrain))
	assert.Equal(t, "步行", ModeName(domain.ModeWalk))
	assert.Equal(t, "計程車", ModeName(domain.ModeTaxi))
	assert.Equal(t, "巴士", ModeName(domain.ModeBus))
	assert.Equal(t, "FERRY", ModeName(domain.TravelMode("FERRY")))
}
