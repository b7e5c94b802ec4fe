package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vincenthsieh/tokyosync/internal/cli/formatter"
	"github.com/vincenthsieh/tokyosync/internal/domain"
	"github.com/vincenthsieh/tokyosync/internal/timeline"
)

// timelineView is the home screen: one day's entries with day tabs,
// an entry cursor, and split-branch switching.
type timelineView struct {
	state  *SharedState
	days   []int
	dayIdx int
	cursor int
}

func newTimelineView(state *SharedState) *timelineView {
	v := &timelineView{state: state}
	v.days = state.App.Itinerary.Days(state.Entries)
	v.dayIdx = v.todayIdx()
	return v
}

// todayIdx returns the index of the day whose status is TODAY,
// falling back to the first day.
func (v *timelineView) todayIdx() int {
	for i, d := range v.days {
		if v.state.DayStatus(d) == timeline.DayToday {
			return i
		}
	}
	return 0
}

func (v *timelineView) ID() ViewID { return ViewTimeline }

func (v *timelineView) Title() string {
	if len(v.days) == 0 {
		return ""
	}
	return v.state.App.Itinerary.DayLabel(v.state.Entries, v.days[v.dayIdx])
}

func (v *timelineView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "day")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "entry")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch group")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "detail")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	}
}

func (v *timelineView) Init() tea.Cmd { return nil }

func (v *timelineView) dayEntries() []domain.Entry {
	if len(v.days) == 0 {
		return nil
	}
	return v.state.DayEntries(v.days[v.dayIdx])
}

func (v *timelineView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	entries := v.dayEntries()

	switch keyMsg.String() {
	case "left", "h":
		if v.dayIdx > 0 {
			v.dayIdx--
			v.cursor = 0
		}

	case "right", "l":
		if v.dayIdx < len(v.days)-1 {
			v.dayIdx++
			v.cursor = 0
		}

	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}

	case "down", "j":
		if v.cursor < len(entries)-1 {
			v.cursor++
		}

	case "tab":
		if e := v.cursorEntry(entries); e != nil && e.Type == domain.EntrySplit {
			v.state.Splits.Cycle(*e)
		}

	case "enter":
		e := v.cursorEntry(entries)
		if e == nil {
			break
		}
		target := *e
		if e.Type == domain.EntrySplit {
			// Open the first entry of the selected branch.
			group, ok := v.state.Splits.ActiveGroup(*e)
			if !ok || len(group.Itinerary) == 0 {
				break
			}
			target = group.Itinerary[0]
		}
		if ec, ok := v.state.App.Itinerary.FindEntry(v.state.Entries, target.ID); ok {
			return v, pushView(newDetailView(v.state, ec))
		}

	case "r":
		v.state.Reload()
		v.days = v.state.App.Itinerary.Days(v.state.Entries)
		if v.dayIdx >= len(v.days) {
			v.dayIdx = 0
		}
		v.cursor = 0
	}

	return v, nil
}

func (v *timelineView) cursorEntry(entries []domain.Entry) *domain.Entry {
	if v.cursor < 0 || v.cursor >= len(entries) {
		return nil
	}
	return &entries[v.cursor]
}

func (v *timelineView) View() string {
	if len(v.days) == 0 {
		return formatter.Dim("沒有行程資料。")
	}

	var b strings.Builder
	b.WriteString(v.renderDayTabs() + "\n\n")

	day := v.days[v.dayIdx]
	b.WriteString(formatter.FormatDay(formatter.DayView{
		Label:   v.state.App.Itinerary.DayLabel(v.state.Entries, day),
		Status:  v.state.DayStatus(day),
		Entries: v.dayEntries(),
		Now:     v.state.Now,
		Splits:  v.state.Splits,
		Cursor:  v.cursor,
	}))

	return b.String()
}

func (v *timelineView) renderDayTabs() string {
	var tabs []string
	for i, d := range v.days {
		label := v.state.App.Itinerary.DayLabel(v.state.Entries, d)
		switch {
		case i == v.dayIdx:
			tabs = append(tabs, formatter.StyleHeader.Render("["+label+"]"))
		case v.state.DayStatus(d) == timeline.DayPast:
			tabs = append(tabs, formatter.Dim(label))
		default:
			tabs = append(tabs, formatter.StyleFg.Render(label))
		}
	}
	return strings.Join(tabs, "  ")
}
