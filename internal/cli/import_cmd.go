package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vincenthsieh/tokyosync/internal/dataset"
	"github.com/vincenthsieh/tokyosync/internal/domain"
	"github.com/vincenthsieh/tokyosync/internal/importer"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the stored itinerary with a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := importer.ReadFile(args[0])
			if err != nil {
				return err
			}

			if errs := importer.Validate(snap, dataset.SchemaVersion); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintf(cmd.ErrOrStderr(), "  - %v\n", e)
				}
				return fmt.Errorf("snapshot failed validation with %d error(s)", len(errs))
			}

			if err := app.Itinerary.Save(context.Background(), snap.Items); err != nil {
				return fmt.Errorf("saving imported itinerary: %w", err)
			}
			fmt.Printf("已匯入 %d 項行程。\n", len(snap.Items))
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the current itinerary to a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := app.Itinerary.Load(context.Background())
			snap := &domain.Snapshot{Version: dataset.SchemaVersion, Items: entries}
			if err := importer.WriteFile(args[0], snap); err != nil {
				return err
			}
			fmt.Printf("已匯出 %d 項行程至 %s。\n", len(entries), args[0])
			return nil
		},
	}
}
