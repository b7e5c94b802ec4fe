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

func newShowCmd(app *App) *cobra.Command {
	var day int
	var entryID string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the timeline for one day, or one entry in detail",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			entries := app.Itinerary.Load(context.Background())

			if entryID != "" {
				ec, ok := app.Itinerary.FindEntry(entries, entryID)
				if !ok {
					return fmt.Errorf("no entry with id %q", entryID)
				}
				dayEntries := app.Itinerary.FilterByDay(entries, ec.Day)
				status := timeline.DayStatusOf(now, dayEntries)
				fmt.Print(formatter.FormatEntryDetail(now, status, ec))
				return nil
			}

			if !cmd.Flags().Changed("day") {
				day = currentDay(now, app, entries)
			}
			dayEntries := app.Itinerary.FilterByDay(entries, day)
			fmt.Print(formatter.FormatDay(formatter.DayView{
				Label:   app.Itinerary.DayLabel(entries, day),
				Status:  timeline.DayStatusOf(now, dayEntries),
				Entries: dayEntries,
				Now:     now,
				Splits:  timeline.NewSplitSelection(),
				Cursor:  -1,
			}))
			return nil
		},
	}

	cmd.Flags().IntVar(&day, "day", 1, "Day number to show")
	cmd.Flags().StringVar(&entryID, "entry", "", "Show one entry by ID instead of a day")

	return cmd
}

// currentDay picks the day whose status is TODAY, falling back to the
// first day of the trip.
func currentDay(now time.Time, app *App, entries []domain.Entry) int {
	days := app.Itinerary.Days(entries)
	if len(days) == 0 {
		return 1
	}
	for _, d := range days {
		if timeline.DayStatusOf(now, app.Itinerary.FilterByDay(entries, d)) == timeline.DayToday {
			return d
		}
	}
	return days[0]
}
