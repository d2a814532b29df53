package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/arc/internal/models"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build a throwaway project with five tasks and print it",
		Long:  `Build an in-memory arc named test_proj, add task0 through task4 and print the result. Nothing is saved.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := models.NewBounded("test_proj", nil, "")
			fmt.Fprintln(out(cmd), p)

			for i := 0; i < 5; i++ {
				p.AddTask(models.NewTask(fmt.Sprintf("task%d", i), "", models.Schedule{}, ""))
			}
			fmt.Fprintln(out(cmd), formatTasks(p))
			return nil
		},
	}
}

// formatTasks renders the key→task mapping, e.g. {0: Task(name=a), 1: ...}
func formatTasks(p *models.Project) string {
	parts := make([]string, 0, p.Len())
	p.Each(func(key int, t *models.Task) {
		parts = append(parts, fmt.Sprintf("%d: %s", key, t))
	})
	return "{" + strings.Join(parts, ", ") + "}"
}
