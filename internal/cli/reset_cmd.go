package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/vincenthsieh/tokyosync/internal/cli/formatter"
)

func newResetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard saved changes and restore the built-in itinerary",
		RunE: func(cmd *cobra.Command, args []string) error {
			confirmed := force
			if !confirmed {
				form := confirmForm("捨棄已儲存的行程並還原為預設內容？", &confirmed)
				if err := form.Run(); err != nil {
					return err
				}
			}
			if !confirmed {
				fmt.Println(formatter.Dim("已取消。"))
				return nil
			}

			entries, err := app.Itinerary.Reset(context.Background())
			if err != nil {
				return fmt.Errorf("reset itinerary: %w", err)
			}
			fmt.Printf("已還原預設行程，共 %d 天 %d 項。\n",
				len(app.Itinerary.Days(entries)), len(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}

// confirmForm creates a themed huh form for a yes/no confirmation.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(tokyosyncHuhTheme()).WithShowHelp(false)
}

func tokyosyncHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = formatter.StyleHeader
	t.Focused.FocusedButton = formatter.StyleFg.Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = formatter.StyleDim.Padding(0, 1)
	t.Focused.Description = formatter.StyleDim

	t.Blurred.Title = formatter.StyleDim
	t.Blurred.FocusedButton = formatter.StyleDim.Padding(0, 1)
	t.Blurred.BlurredButton = formatter.StyleDim.Padding(0, 1)

	return t
}
