package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vincenthsieh/tokyosync/internal/cli/formatter"
	"github.com/vincenthsieh/tokyosync/internal/domain"
	"github.com/vincenthsieh/tokyosync/internal/timeline"
)

func newNextCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show what is happening now and what comes next today",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			entries := app.Itinerary.Load(context.Background())

			day := currentDay(now, app, entries)
			dayEntries := app.Itinerary.FilterByDay(entries, day)
			status := timeline.DayStatusOf(now, dayEntries)
			if status != timeline.DayToday {
				fmt.Println(formatter.Dim("今天沒有排定的行程。"))
				return nil
			}

			active, upcoming := nextEntries(now, status, dayEntries)
			if active == nil && upcoming == nil {
				fmt.Println(formatter.Dim("今天的行程都結束了。"))
				return nil
			}

			if active != nil {
				ec, _ := app.Itinerary.FindEntry(entries, active.ID)
				fmt.Println(formatter.StyleBlue.Render("● 進行中"))
				fmt.Print(formatter.FormatEntryDetail(now, status, ec))
			}
			if upcoming != nil {
				if active != nil {
					fmt.Println()
				}
				ec, _ := app.Itinerary.FindEntry(entries, upcoming.ID)
				fmt.Println(formatter.StyleGreen.Render("○ 接下來"))
				fmt.Print(formatter.FormatEntryDetail(now, status, ec))
			}
			return nil
		},
	}
}

// nextEntries returns the currently active entry and the first entry
// that has not started yet. Split entries count as a whole.
func nextEntries(now time.Time, status timeline.DayStatus, entries []domain.Entry) (active, upcoming *domain.Entry) {
	for i := range entries {
		c := timeline.Classify(now, status, entries[i])
		switch {
		case c.IsActive && active == nil:
			active = &entries[i]
		case !c.IsPast && !c.IsActive && upcoming == nil:
			upcoming = &entries[i]
		}
		if active != nil && upcoming != nil {
			break
		}
	}
	return active, upcoming
}
