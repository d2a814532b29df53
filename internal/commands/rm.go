package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/balkashynov/arc/internal/models"
)

func (a *app) newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <project> <pid>",
		Aliases: []string{"delete"},
		Short:   "Delete a task; later tasks move up one key",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parsePID(args[1])
			if err != nil {
				return err
			}

			return a.mutateProject(args[0], func(p *models.Project) error {
				before := p.Tasks()
				if err := p.DeleteTask(pid); err != nil {
					return err
				}

				fmt.Fprintf(out(cmd), "Deleted task #%d from %s: %s\n", pid, p.Name, before[pid].Name)
				for key := pid + 1; key < len(before); key++ {
					fmt.Fprintf(out(cmd), "  #%d → #%d  %s\n", key, key-1, before[key].Name)
				}
				slog.Debug("tasks re-indexed", "project", p.Name, "from", pid, "moved", len(before)-pid-1)
				return nil
			})
		},
	}
}
