package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vincenthsieh/tokyosync/internal/cli/formatter"
	"github.com/vincenthsieh/tokyosync/internal/timeline"
)

// detailView shows one entry in full: navigation pair, addresses,
// transfer instructions and deadline state.
type detailView struct {
	state *SharedState
	ec    timeline.EntryContext
}

func newDetailView(state *SharedState, ec timeline.EntryContext) *detailView {
	return &detailView{state: state, ec: ec}
}

func (v *detailView) ID() ViewID { return ViewDetail }

func (v *detailView) Title() string {
	if v.ec.Entry.HasLocation() {
		return v.ec.Entry.Location.Name
	}
	return v.ec.Entry.ID
}

func (v *detailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *detailView) Init() tea.Cmd { return nil }

func (v *detailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return v, nil
}

func (v *detailView) View() string {
	day := v.ec.Day
	if day <= 0 {
		day = v.ec.Entry.DayOrDefault()
	}
	status := v.state.DayStatus(day)
	return formatter.FormatEntryDetail(v.state.Now, status, v.ec)
}
