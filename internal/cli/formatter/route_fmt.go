package formatter

import (
	"fmt"
	"strings"

	"github.com/vincenthsieh/tokyosync/internal/route"
)

// FormatSuggestion renders a route suggestion, marking fallbacks so a
// failed lookup is never mistaken for a real plan.
func FormatSuggestion(origin, destination string, s *route.Suggestion) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s → %s", origin, destination)))
	b.WriteString("\n\n")

	if s.Fallback {
		b.WriteString(StyleYellow.Render("⚠ ") + s.Transit.Instructions + "\n")
		if s.Notes != "" {
			b.WriteString(Dim(s.Notes) + "\n")
		}
		return b.String()
	}

	t := s.Transit
	b.WriteString(fmt.Sprintf("  %s %s", Bold(ModeName(t.Mode)), t.LineName))
	if t.Duration != "" {
		b.WriteString("  " + Dim(t.Duration))
	}
	if t.Cost != "" {
		b.WriteString("  " + Dim(t.Cost))
	}
	b.WriteString("\n")

	if t.Instructions != "" {
		b.WriteString("  " + t.Instructions + "\n")
	}
	if s.EstimatedArrival != "" {
		b.WriteString("  " + Dim("預計到達 "+s.EstimatedArrival) + "\n")
	}
	if s.Notes != "" {
		b.WriteString("  " + Dim(s.Notes) + "\n")
	}

	return b.String()
}

// FormatSplitPlan renders a suggested split-action plan.
func FormatSplitPlan(p *route.SplitPlan) string {
	var b strings.Builder

	b.WriteString(Header("分頭行動建議"))
	b.WriteString("\n\n")

	b.WriteString(StylePurple.Render("A組") + "\n")
	for _, step := range p.GroupAPlan {
		b.WriteString("  · " + step + "\n")
	}
	b.WriteString(StyleBlue.Render("B組") + "\n")
	for _, step := range p.GroupBPlan {
		b.WriteString("  · " + step + "\n")
	}

	b.WriteString("\n" + Bold("會合建議") + "\n")
	b.WriteString(fmt.Sprintf("  %s · %s\n", p.Meetup.LocationName, p.Meetup.Time))
	if p.Meetup.Reason != "" {
		b.WriteString("  " + Dim(p.Meetup.Reason) + "\n")
	}

	return b.String()
}
