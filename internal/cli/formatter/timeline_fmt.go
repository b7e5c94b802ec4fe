package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/vincenthsieh/tokyosync/internal/domain"
	"github.com/vincenthsieh/tokyosync/internal/timeline"
)

// DayView bundles everything needed to render one day's timeline.
type DayView struct {
	Label   string
	Status  timeline.DayStatus
	Entries []domain.Entry
	Now     time.Time
	Splits  *timeline.SplitSelection

	// Cursor is the highlighted top-level entry index, -1 for none.
	Cursor int
}

// FormatDay renders a full day timeline: header, every entry with its
// temporal marker, and the selected branch of any split entry.
func FormatDay(v DayView) string {
	var b strings.Builder

	b.WriteString(Header(v.Label))
	if v.Status != timeline.DayToday {
		b.WriteString("  " + Dim(string(v.Status)))
	}
	b.WriteString("\n\n")

	if len(v.Entries) == 0 {
		b.WriteString(Dim("這一天沒有行程") + "\n")
		return b.String()
	}

	for i, e := range v.Entries {
		cursor := "  "
		if i == v.Cursor {
			cursor = StyleHeader.Render("▸ ")
		}

		if e.Type == domain.EntrySplit {
			b.WriteString(cursor + formatSplit(v, e))
			continue
		}

		c := timeline.Classify(v.Now, v.Status, e)
		b.WriteString(cursor + entryLine(v.Now, v.Status, e, c) + "\n")
	}

	return b.String()
}

// entryLine renders a single non-split entry as one timeline row.
func entryLine(now time.Time, status timeline.DayStatus, e domain.Entry, c timeline.Classification) string {
	var parts []string

	parts = append(parts, marker(c))
	if tr := timeRange(e); tr != "" {
		parts = append(parts, StyleDim.Render(tr))
	}

	title := entryTitle(e)
	switch {
	case c.IsActive:
		parts = append(parts, StyleBlue.Bold(true).Render(title), StyleBlue.Render("LIVE"))
	case c.IsPast:
		parts = append(parts, StyleDim.Render(title))
	default:
		parts = append(parts, StyleFg.Render(title))
	}

	if e.IsReservation {
		parts = append(parts, StyleYellow.Render("[RESERVED]"))
	}
	if e.Type == domain.EntryMeetup {
		parts = append(parts, StylePurple.Render("[MEETUP]"))
	}
	if e.Type == domain.EntryTransit && e.Transit != nil {
		parts = append(parts, transitChips(*e.Transit))
	}

	line := strings.Join(parts, " ")

	if e.StrictDeadline != "" && status == timeline.DayToday {
		if cd, ok := timeline.DeadlineCountdown(now, e.EndTime); ok {
			line += "\n      " + WarningColor(cd.Level).Render(
				fmt.Sprintf("⚑ %s · %s", e.StrictDeadline, cd.Text))
		}
	}

	return line
}

// formatSplit renders a split entry: its tabs and the active branch's
// nested timeline. Non-selected branches are not computed.
func formatSplit(v DayView, e domain.Entry) string {
	var b strings.Builder

	b.WriteString(StylePurple.Render("⑂ " + domain.CoalesceStr(e.Notes, "分頭行動")))
	if tr := timeRange(e); tr != "" {
		b.WriteString(" " + StyleDim.Render(tr))
	}
	b.WriteString("\n")

	if len(e.SplitGroups) == 0 {
		return b.String()
	}

	active := v.Splits.Active(e.ID)
	var tabs []string
	for i, g := range e.SplitGroups {
		name, _, _ := strings.Cut(g.Name, "：")
		if i == active {
			tabs = append(tabs, StyleHeader.Render("["+name+"]"))
		} else {
			tabs = append(tabs, Dim(" "+name+" "))
		}
	}
	b.WriteString("    " + strings.Join(tabs, " ") + Dim("  (tab 切換)") + "\n")

	group, ok := v.Splits.ActiveGroup(e)
	if !ok {
		return b.String()
	}
	for _, sub := range group.Itinerary {
		c := timeline.Classify(v.Now, v.Status, sub)
		b.WriteString("    " + entryLine(v.Now, v.Status, sub, c) + "\n")
	}

	return b.String()
}

func marker(c timeline.Classification) string {
	switch {
	case c.IsActive:
		return StyleBlue.Render("●")
	case c.IsPast:
		return StyleDim.Render("✓")
	default:
		return StyleFg.Render("○")
	}
}

func timeRange(e domain.Entry) string {
	switch {
	case e.StartTime == "":
		return ""
	case e.EndTime == "":
		return e.StartTime
	default:
		return e.StartTime + "–" + e.EndTime
	}
}

// entryTitle picks the display name for an entry.
func entryTitle(e domain.Entry) string {
	if e.Type == domain.EntryTransit && e.Transit != nil {
		return domain.CoalesceStr(e.Transit.LineName, ModeName(e.Transit.Mode))
	}
	if e.HasLocation() {
		return e.Location.Name
	}
	return domain.CoalesceStr(e.Notes, "未命名行程")
}

// transitChips renders the compact duration / last-train chips shown
// next to a transit row.
func transitChips(t domain.TransitInfo) string {
	var parts []string
	if t.Duration != "" {
		parts = append(parts, Dim(t.Duration))
	}
	if t.Direction != "" {
		parts = append(parts, Dim(t.Direction))
	}
	if t.LastTrain != "" {
		parts = append(parts, StyleRed.Render("末班 "+t.LastTrain))
	}
	return strings.Join(parts, " ")
}

// ModeName returns the display name for a travel mode.
func ModeName(mode domain.TravelMode) string {
	switch mode {
	case domain.ModeTrain:
		return "電車"
	case domain.ModeWalk:
		return "步行"
	case domain.ModeTaxi:
		return "計程車"
	case domain.ModeBus:
		return "巴士"
	default:
		return string(mode)
	}
}
