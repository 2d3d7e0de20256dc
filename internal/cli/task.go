package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"taskman/internal/app"
	"taskman/internal/domain"
)

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var statusFilter string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		GroupID: groupTask,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var filter domain.Status
			if statusFilter != "" {
				parsed, err := domain.ParseStatus(statusFilter)
				if err != nil {
					return fmt.Errorf("--status %q: %w", statusFilter, err)
				}
				filter = parsed
			}

			if err := c.Tasks.FetchAll(cmd.Context()); err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTATUS\tTITLE\tCREATED")
			for _, task := range c.Tasks.Tasks() {
				if filter != "" && task.Status != filter {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", task.ID, task.Status, task.Title, task.CreatedAt)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&statusFilter, "status", "s", "", "filter by status (todo|in-progress|done)")

	return cmd
}

// newAddCommand creates the add command.
func newAddCommand(c *app.Container) *cobra.Command {
	var description, status, file string

	cmd := &cobra.Command{
		Use:     "add [title]",
		Short:   "Create a task",
		GroupID: groupTask,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				if len(args) > 0 {
					return fmt.Errorf("--file cannot be combined with a title argument")
				}
				return addFromFile(cmd, c, file)
			}
			if len(args) == 0 {
				return domain.ErrEmptyTitle
			}

			parsed, err := domain.ParseStatus(status)
			if err != nil {
				return fmt.Errorf("--status %q: %w", status, err)
			}

			draft := domain.TaskDraft{Title: args[0], Description: description, Status: parsed}
			if err := c.Tasks.Create(cmd.Context(), draft); err != nil {
				return err
			}

			tasks := c.Tasks.Tasks()
			created := tasks[len(tasks)-1]
			fmt.Fprintf(cmd.OutOrStdout(), "Created task %s\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")
	cmd.Flags().StringVarP(&status, "status", "s", string(domain.StatusTodo), "initial status (todo|in-progress|done)")
	cmd.Flags().StringVar(&file, "file", "", "create tasks from a YAML file")

	return cmd
}

// newEditCommand creates the edit command.
func newEditCommand(c *app.Container) *cobra.Command {
	var title, description, status string

	cmd := &cobra.Command{
		Use:     "edit <id>",
		Short:   "Update fields of a task",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.TaskPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("status") {
				parsed, err := domain.ParseStatus(status)
				if err != nil {
					return fmt.Errorf("--status %q: %w", status, err)
				}
				patch.Status = &parsed
			}

			if err := c.Tasks.Update(cmd.Context(), args[0], patch); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	cmd.Flags().StringVarP(&status, "status", "s", "", "new status (todo|in-progress|done)")

	return cmd
}

// newDoneCommand creates the done command.
func newDoneCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "done <id>",
		Short:   "Mark a task as done",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := domain.StatusDone
			patch := domain.TaskPatch{Status: &status}
			if err := c.Tasks.Update(cmd.Context(), args[0], patch); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked task %s as done\n", args[0])
			return nil
		},
	}
}

// newRemoveCommand creates the rm command.
func newRemoveCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Short:   "Delete a task",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.Tasks.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", args[0])
			return nil
		},
	}
}
