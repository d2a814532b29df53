package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/arc/internal/models"
)

func (a *app) newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <project> <task description>",
		Short: "Add a task to a project",
		Long: `Add a new task to a project with optional metadata.

Smart parsing syntax:
  +priority     - Priority (low/medium/high or any integer, e.g. +2, +-1)
  !status       - Status (todo, active, hold, complete, discarded)
  due:3days     - Due date (dd/mm/yyyy, today, tomorrow, X days, 3d, 2w, 5h)
  start:today   - Start date (same formats as due)
  est:1h30m     - Estimated effort (90m, 2h, 2d)

Flags override anything parsed from the title.

Example:
  arc add launch "Write release notes +high due:3d est:2h"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseTaskInput(cmd, args[1:])
			if err != nil {
				return err
			}
			if in.parsed.Title == "" {
				return fmt.Errorf("task title cannot be empty")
			}

			var task *models.Task
			err = a.mutateProject(args[0], func(p *models.Project) error {
				notes := ""
				if in.notes != nil {
					notes = *in.notes
				}
				task = models.NewTask(in.parsed.Title, notes, in.parsed.Schedule(), in.parsed.Status)
				// NewTask does not store the schedule
				task.Reschedule(in.parsed.Schedule())
				if in.priority != nil {
					task.Priority = *in.priority
				}

				pid := p.AddTask(task)
				fmt.Fprintf(out(cmd), "Created task pid %d in %s: %s\n", pid, p.Name, task.Name)
				printTask(out(cmd), p.Len()-1, task)
				return nil
			})
			return err
		},
	}

	addTaskFlags(cmd)
	return cmd
}
