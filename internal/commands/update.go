package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/arc/internal/models"
)

func (a *app) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "update <project> <pid> [new title...]",
		Aliases: []string{"edit"},
		Short:   "Replace a task with an edited copy",
		Long: `Update the task at <pid>. Only the fields you pass change; everything
else is carried over from the current task. Accepts the same smart syntax
and flags as 'arc add'.

Examples:
  arc update launch 2 "Write better release notes"
  arc update launch 2 --due tomorrow --priority high`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parsePID(args[1])
			if err != nil {
				return err
			}
			in, err := parseTaskInput(cmd, args[2:])
			if err != nil {
				return err
			}

			return a.mutateProject(args[0], func(p *models.Project) error {
				current, err := p.Task(pid)
				if err != nil {
					return err
				}

				next := current.Clone()
				if in.parsed.Title != "" {
					next.Name = in.parsed.Title
				}
				if in.notes != nil {
					next.Notes = *in.notes
				}
				if in.parsed.Status != "" {
					next.Status = in.parsed.Status
				}
				if in.priority != nil {
					next.Priority = *in.priority
				}
				if in.scheduleChanged(cmd) {
					sched := current.Schedule()
					if in.parsed.Start != nil || cmd.Flags().Changed("start") {
						sched.Start = in.parsed.Start
					}
					if in.parsed.Due != nil || cmd.Flags().Changed("due") {
						sched.Due = in.parsed.Due
					}
					if in.parsed.Est != nil || cmd.Flags().Changed("est") {
						sched.Est = in.parsed.Est
					}
					next.Reschedule(sched)
				}

				if err := p.UpdateTask(pid, next); err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Updated task #%d in %s: %s\n", pid, p.Name, next.Name)
				printTask(out(cmd), pid, next)
				return nil
			})
		},
	}

	addTaskFlags(cmd)
	return cmd
}

func (a *app) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <project> <pid> <status>",
		Short: "Set a task's status",
		Long: `Set the status of the task at <pid>.

Statuses: todo, active, hold, complete, discarded. Any status may follow
any other.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parsePID(args[1])
			if err != nil {
				return err
			}
			status, err := models.ParseStatus(args[2])
			if err != nil {
				return err
			}

			return a.mutateProject(args[0], func(p *models.Project) error {
				current, err := p.Task(pid)
				if err != nil {
					return err
				}
				next := current.Clone()
				next.Status = status
				if err := p.UpdateTask(pid, next); err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Task #%d %s: %s → %s\n", pid, next.Name, current.Status, next.Status)
				return nil
			})
		},
	}
}
