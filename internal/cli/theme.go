package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskman/internal/app"
)

// newThemeCommand creates the theme command.
func newThemeCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: "Toggle between dark and light mode",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.Prefs.Toggle() {
				fmt.Fprintln(cmd.OutOrStdout(), "dark")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "light")
			}
			return nil
		},
	}
}
