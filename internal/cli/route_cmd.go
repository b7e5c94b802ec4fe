package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vincenthsieh/tokyosync/internal/cli/formatter"
	"github.com/vincenthsieh/tokyosync/internal/route"
)

func newRouteCmd(app *App) *cobra.Command {
	var departAt string

	cmd := &cobra.Command{
		Use:   "route <origin> <destination>",
		Short: "Suggest a transit route between two places",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, destination := args[0], args[1]

			if app.Routes == nil {
				fmt.Print(formatter.FormatSuggestion(origin, destination, route.Disabled()))
				return nil
			}

			if departAt == "" {
				departAt = time.Now().Format("15:04")
			}
			sug, err := app.Routes.SuggestRoute(context.Background(), origin, destination, departAt)
			if err != nil {
				sug = route.Fallback()
			}
			fmt.Print(formatter.FormatSuggestion(origin, destination, sug))
			return nil
		},
	}

	cmd.Flags().StringVar(&departAt, "at", "", "Departure time as HH:MM (default now)")

	return cmd
}
