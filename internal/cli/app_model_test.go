package cli

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vincenthsieh/tokyosync/internal/repository"
	"github.com/vincenthsieh/tokyosync/internal/service"
	"github.com/vincenthsieh/tokyosync/internal/testutil"
)

func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)
	return &App{
		Itinerary: service.NewItineraryService(repository.NewSQLiteSnapshotRepo(db)),
	}
}

type stubView struct {
	id         ViewID
	title      string
	viewText   string
	updateSeen []tea.Msg
}

func (v *stubView) Init() tea.Cmd { return nil }

func (v *stubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v.updateSeen = append(v.updateSeen, msg)
	return v, nil
}

func (v *stubView) View() string             { return v.viewText }
func (v *stubView) ID() ViewID               { return v.id }
func (v *stubView) ShortHelp() []key.Binding { return nil }
func (v *stubView) Title() string            { return v.title }

func TestNewAppModelStartsAtTimeline(t *testing.T) {
	m := newAppModel(testApp(t))

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewTimeline, m.activeView().ID())
}

func TestAppModel_NavigationMessages(t *testing.T) {
	m := newAppModel(testApp(t))
	v2 := &stubView{id: ViewDetail, title: "Buvette Tokyo", viewText: "detail"}

	model, cmd := m.Update(pushViewMsg{view: v2})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, v2, m.activeView())

	model, cmd = m.Update(popViewMsg{})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewTimeline, m.activeView().ID())
}

func TestAppModel_EscPopsButNeverEmptiesStack(t *testing.T) {
	m := newAppModel(testApp(t))
	model, _ := m.Update(pushViewMsg{view: &stubView{id: ViewDetail}})
	m = model.(appModel)

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(appModel)
	assert.Len(t, m.viewStack, 1)

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(appModel)
	assert.Len(t, m.viewStack, 1)
}

func TestAppModel_TickAdvancesClockAndReschedules(t *testing.T) {
	m := newAppModel(testApp(t))
	next := time.Date(2025, 12, 24, 12, 1, 0, 0, time.UTC)

	model, cmd := m.Update(tickMsg(next))
	m = model.(appModel)

	assert.Equal(t, next, m.state.Now)
	require.NotNil(t, cmd)
}

func TestAppModel_QuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		m := newAppModel(testApp(t))
		model, cmd := m.Update(msg)
		m = model.(appModel)

		assert.True(t, m.quitting)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestAppModel_WindowResizeForwardsToActiveView(t *testing.T) {
	m := newAppModel(testApp(t))
	v := &stubView{id: ViewDetail}
	m.viewStack = []View{v}

	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = model.(appModel)

	assert.Equal(t, 100, m.state.Width)
	assert.Equal(t, 30, m.state.Height)
	require.Len(t, v.updateSeen, 1)
}

func TestAppModel_ViewRendersHeaderAndStatusBar(t *testing.T) {
	m := newAppModel(testApp(t))
	m.state.Width = 80
	m.state.Height = 24
	m.state.Now = time.Date(2025, 12, 24, 9, 30, 0, 0, time.UTC)

	out := m.View()
	assert.Contains(t, out, "tokyosync")
	assert.Contains(t, out, "09:30")
	assert.Contains(t, out, "quit")
}
