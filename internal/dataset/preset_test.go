package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vincenthsieh/tokyosync/internal/domain"
)

func TestPreset_Validates(t *testing.T) {
	require.NoError(t, domain.ValidateAll(Preset()))
}

func TestPreset_IDsGloballyUnique(t *testing.T) {
	seen := map[string]bool{}
	record := func(id string) {
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
	for _, e := range Preset() {
		record(e.ID)
		for _, g := range e.SplitGroups {
			for _, sub := range g.Itinerary {
				record(sub.ID)
			}
		}
	}
}

func TestPreset_OneDatedEntryPerDayAndFirst(t *testing.T) {
	firstOfDay := map[int]bool{}
	dated := map[int]int{}
	for _, e := range Preset() {
		day := e.DayOrDefault()
		if e.Date != "" {
			dated[day]++
			assert.False(t, firstOfDay[day], "dated entry %q is not first of day %d", e.ID, day)
		}
		firstOfDay[day] = true
	}
	for day := 1; day <= 5; day++ {
		assert.Equal(t, 1, dated[day], "day %d should carry exactly one date", day)
	}
}

func TestPreset_ReturnsFreshCopy(t *testing.T) {
	a := Preset()
	a[0].ID = "mutated"
	b := Preset()
	assert.Equal(t, "d1-arrival", b[0].ID)
}

func TestPreset_SplitDayShape(t *testing.T) {
	entries := Preset()
	var split *domain.Entry
	for i := range entries {
		if entries[i].Type == domain.EntrySplit {
			split = &entries[i]
			break
		}
	}
	require.NotNil(t, split)
	require.Len(t, split.SplitGroups, 2)
	assert.Equal(t, "g-shibuya", split.SplitGroups[0].ID)
	assert.Equal(t, "g-nakano", split.SplitGroups[1].ID)
	assert.NotEqual(t, len(split.SplitGroups[0].Itinerary), len(split.SplitGroups[1].Itinerary),
		"branches are independent timelines of unequal length")
}
