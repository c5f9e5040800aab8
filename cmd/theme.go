package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xvierd/focusflow/internal/domain"
)

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark|toggle]",
	Short:     "Show or change the saved color theme",
	Long:      `Without an argument, prints the theme the dashboard will open with. The choice is saved and survives restarts.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark", "toggle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		current := app.theme.Init(ctx)

		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), current)
			return nil
		}

		var next domain.Theme
		var err error
		if args[0] == "toggle" {
			next, err = app.theme.Toggle(ctx)
		} else {
			if next, err = domain.ParseTheme(args[0]); err != nil {
				return err
			}
			err = app.theme.Set(ctx, next)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", next.Label())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
