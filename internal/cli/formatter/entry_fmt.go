package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/vincenthsieh/tokyosync/internal/domain"
	"github.com/vincenthsieh/tokyosync/internal/navigation"
	"github.com/vincenthsieh/tokyosync/internal/timeline"
)

// FormatEntryDetail renders the full inspection view of one entry:
// its time window, last-train warning, the resolved A-to-B navigation
// pair, addresses, and free-text details.
func FormatEntryDetail(now time.Time, status timeline.DayStatus, ec timeline.EntryContext) string {
	e := ec.Entry
	var b strings.Builder

	b.WriteString(Header(entryTitle(e)))
	b.WriteString("\n\n")

	var meta []string
	if tr := timeRange(e); tr != "" {
		meta = append(meta, tr)
	}
	meta = append(meta, typeLabel(e))
	c := timeline.Classify(now, status, e)
	switch {
	case c.IsActive:
		meta = append(meta, StyleBlue.Render("LIVE"))
	case c.IsPast:
		meta = append(meta, Dim("已結束"))
	}
	b.WriteString(strings.Join(meta, "  ") + "\n\n")

	if e.Transit != nil && e.Transit.LastTrain != "" {
		b.WriteString(StyleRed.Render("⚠ 末班車安全預警") + "\n")
		b.WriteString(fmt.Sprintf("  末班車預計為 %s，建議提早抵達月台。\n\n",
			StyleRed.Bold(true).Render(e.Transit.LastTrain)))
	}

	if e.StrictDeadline != "" {
		if cd, ok := timeline.DeadlineCountdown(now, e.EndTime); ok {
			b.WriteString(WarningColor(cd.Level).Render(
				fmt.Sprintf("⚑ %s · %s", e.StrictDeadline, cd.Text)) + "\n\n")
		}
	}

	if e.HasLocation() {
		b.WriteString(Bold("A to B 導航") + "\n")
		b.WriteString(fmt.Sprintf("  從：%s\n", ec.Previous.Name))
		b.WriteString(fmt.Sprintf("  到：%s\n", Bold(e.Location.Name)))
		b.WriteString("  " + StyleBlue.Render(navigation.DirectionsURL(ec.Previous, *e.Location)) + "\n\n")

		b.WriteString(Bold("景點地址") + "\n")
		if e.Location.JapaneseName != "" {
			b.WriteString("  " + e.Location.JapaneseName + "\n")
		}
		if addr := domain.CoalesceStr(e.Location.JapaneseAddress, e.Location.Address); addr != "" {
			b.WriteString("  " + Dim(addr) + "\n")
		}
		b.WriteString("  " + Dim(navigation.SearchURL(*e.Location)) + "\n\n")
	}

	if e.Transit != nil && e.Transit.Instructions != "" {
		b.WriteString(Bold("轉乘指示") + "\n")
		for _, line := range strings.Split(e.Transit.Instructions, "\n") {
			b.WriteString("  " + line + "\n")
		}
		b.WriteString("\n")
	}

	if text := domain.CoalesceStr(e.Details, e.Notes); text != "" {
		b.WriteString(Bold("更多細節") + "\n")
		for _, line := range strings.Split(text, "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	return b.String()
}

func typeLabel(e domain.Entry) string {
	if e.IsReservation {
		return StyleYellow.Render("預約行程")
	}
	switch e.Type {
	case domain.EntryTransit:
		return Dim("交通行程")
	case domain.EntryMeetup:
		return StylePurple.Render("會合")
	case domain.EntrySplit:
		return StylePurple.Render("分頭行動")
	default:
		return Dim("行程詳細")
	}
}
