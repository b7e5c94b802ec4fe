package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vincenthsieh/tokyosync/internal/cli/formatter"
	"github.com/vincenthsieh/tokyosync/internal/timeline"
)

func newDaysCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List the trip's days with their status",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			entries := app.Itinerary.Load(context.Background())

			fmt.Println(formatter.Header("行程日"))
			for _, d := range app.Itinerary.Days(entries) {
				dayEntries := app.Itinerary.FilterByDay(entries, d)
				status := timeline.DayStatusOf(now, dayEntries)
				label := app.Itinerary.DayLabel(entries, d)

				line := fmt.Sprintf("  Day %d  %-14s %d 項", d, label, len(dayEntries))
				switch status {
				case timeline.DayToday:
					line += "  " + formatter.StyleBlue.Render("TODAY")
				case timeline.DayPast:
					line = formatter.Dim(line)
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}
