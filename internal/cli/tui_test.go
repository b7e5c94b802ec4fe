package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vincenthsieh/tokyosync/internal/teatest"
)

// newTUIDriver builds the full TUI over an in-memory store, pinned to
// lunchtime on the trip's second day.
func newTUIDriver(t *testing.T) *teatest.Driver {
	t.Helper()
	m := newAppModel(testApp(t))
	m.state.Now = time.Date(2025, 12, 24, 12, 0, 0, 0, time.UTC)
	m.viewStack = []View{newTimelineView(m.state)}

	d := teatest.New(t, m, teatest.WithSize(100, 35))
	d.DrainInit()
	return d
}

func model(d *teatest.Driver) *appModel {
	m := d.Model.(appModel)
	return &m
}

func TestTUI_OpensOnTodayTimeline(t *testing.T) {
	d := newTUIDriver(t)

	out := d.View()
	assert.Contains(t, out, "tokyosync")
	assert.Contains(t, out, "12/24 (週三)")
	assert.Contains(t, out, "Buvette Tokyo")
}

func TestTUI_DayNavigation(t *testing.T) {
	d := newTUIDriver(t)

	d.PressRight()
	assert.Contains(t, d.View(), "新宿")

	d.PressLeft()
	d.PressLeft()
	assert.Contains(t, d.View(), "大多福")
}

func TestTUI_EnterOpensDetailEscReturns(t *testing.T) {
	d := newTUIDriver(t)

	d.PressDown()
	d.PressEnter()
	require.Equal(t, ViewDetail, model(d).activeView().ID())
	assert.Contains(t, d.View(), "A to B 導航")

	d.PressEsc()
	assert.Equal(t, ViewTimeline, model(d).activeView().ID())
}

func TestTUI_SplitBranchSwitching(t *testing.T) {
	d := newTUIDriver(t)

	// Move the cursor to the split entry, third row of day 2.
	d.PressDown()
	d.PressDown()
	require.Contains(t, d.View(), "澀谷 (Shibuya)")

	d.PressTab()
	out := d.View()
	assert.Contains(t, out, "中野 Broadway")
	assert.NotContains(t, out, "澀谷 (Shibuya)")
}

func TestTUI_QuitSetsQuitting(t *testing.T) {
	d := newTUIDriver(t)

	d.PressKey('q')
	assert.True(t, d.Quitting)
	assert.True(t, model(d).quitting)
}
