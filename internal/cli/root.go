// Package cli provides the command-line interface for taskman.
package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"taskman/internal/app"
	"taskman/internal/tui"
)

// Command group IDs.
const (
	groupAuth = "auth"
	groupTask = "task"
)

// NewRootCommand creates the root command. It receives the container for
// dependency injection and the version for display. Running with no
// subcommand launches the interactive dashboard.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskman",
		Short: "Task tracking client",
		Long: `taskman is a task-tracking client. Run it with no arguments for the
interactive dashboard, or use the subcommands for scripting.

Without an api_url configured, a simulated remote service runs in-process
and keeps its data under the state directory. Log in with test / test123.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			program := tea.NewProgram(tui.New(c), tea.WithAltScreen())
			_, err := program.Run()
			return err
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupAuth, Title: "Session Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
	)

	root.AddCommand(
		newLoginCommand(c),
		newLogoutCommand(c),
		newListCommand(c),
		newAddCommand(c),
		newEditCommand(c),
		newDoneCommand(c),
		newRemoveCommand(c),
		newThemeCommand(c),
		newServeCommand(c),
	)

	return root
}
