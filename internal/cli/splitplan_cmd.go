package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vincenthsieh/tokyosync/internal/cli/formatter"
)

func newSplitPlanCmd(app *App) *cobra.Command {
	var hours string

	cmd := &cobra.Command{
		Use:   "splitplan <origin> <interest-a> <interest-b>",
		Short: "Suggest parallel plans for two groups plus a meetup point",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Routes == nil {
				return fmt.Errorf("route suggestions are disabled; set TOKYOSYNC_ROUTE_ENABLED=1")
			}

			plan, err := app.Routes.SuggestSplitPlan(
				context.Background(), args[0], args[1], args[2], hours)
			if err != nil {
				return fmt.Errorf("planning split action: %w", err)
			}
			fmt.Print(formatter.FormatSplitPlan(plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&hours, "hours", "3", "Available hours before the groups rejoin")

	return cmd
}
