package cli

import (
	"github.com/spf13/cobra"
	"github.com/vincenthsieh/tokyosync/internal/route"
	"github.com/vincenthsieh/tokyosync/internal/service"
)

// App holds references to the services used by CLI commands and the TUI.
type App struct {
	Itinerary service.ItineraryService

	// Routes is nil when route suggestions are disabled.
	Routes route.Planner

	// IsInteractive reports whether stdin is an interactive terminal;
	// the bare command only starts the TUI when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tokyosync" command and registers
// all subcommands against the provided App. Running it bare in a
// terminal opens the interactive timeline.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tokyosync",
		Short: "Live multi-day travel itinerary timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newShowCmd(app),
		newDaysCmd(app),
		newNextCmd(app),
		newResetCmd(app),
		newRouteCmd(app),
		newSplitPlanCmd(app),
		newImportCmd(app),
		newExportCmd(app),
	)

	return root
}
