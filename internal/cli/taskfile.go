package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"taskman/internal/app"
	"taskman/internal/domain"
)

// taskFile is the YAML format accepted by `add --file`.
type taskFile struct {
	Tasks []taskFileEntry `yaml:"tasks"`
}

type taskFileEntry struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Status      string `yaml:"status"`
}

// addFromFile creates one task per entry, in file order. Creation stops at
// the first failure so a partial import is visible rather than silent.
func addFromFile(cmd *cobra.Command, c *app.Container, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read task file: %w", err)
	}

	var parsed taskFile
	if err := yaml.Unmarshal(content, &parsed); err != nil {
		return fmt.Errorf("parse task file: %w", err)
	}
	if len(parsed.Tasks) == 0 {
		return fmt.Errorf("task file %s contains no tasks", path)
	}

	for i, entry := range parsed.Tasks {
		status := domain.StatusTodo
		if entry.Status != "" {
			status, err = domain.ParseStatus(entry.Status)
			if err != nil {
				return fmt.Errorf("task %d: status %q: %w", i+1, entry.Status, err)
			}
		}

		draft := domain.TaskDraft{Title: entry.Title, Description: entry.Description, Status: status}
		if err := c.Tasks.Create(cmd.Context(), draft); err != nil {
			return fmt.Errorf("task %d (%q): %w", i+1, entry.Title, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %d tasks\n", len(parsed.Tasks))
	return nil
}
