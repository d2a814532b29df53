package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/arc/internal/db"
	"github.com/balkashynov/arc/internal/models"
	"github.com/balkashynov/arc/internal/tui"
)

func (a *app) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ls <project>",
		Aliases: []string{"list", "board"},
		Short:   "Show a project's tasks",
		Long: `Show the tasks of a project in key order.

Opens the interactive board by default (unless ui.enabled is false).
Use --no-ui for a plain table or --json for machine-readable output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.openDB(); err != nil {
				return err
			}

			p, err := db.GetProjectByName(args[0])
			if err != nil {
				return err
			}

			jsonOutput, _ := cmd.Flags().GetBool("json")
			noUI, _ := cmd.Flags().GetBool("no-ui")

			switch {
			case jsonOutput:
				return renderTasksJSON(cmd, p)
			case noUI || !a.cfg.UI.Enabled:
				fmt.Fprintf(out(cmd), "%s (%s, %s) · next pid %d\n", p.Name, p.Kind, p.Status, p.NextTaskPID())
				if p.Len() == 0 {
					fmt.Fprintf(out(cmd), "No tasks found. Use 'arc add %s \"task description\"' to create one.\n", p.Name)
					return nil
				}
				fmt.Fprintln(out(cmd), tui.RenderTaskTable(p))
				return nil
			}

			changed, err := tui.RunBoardTUI(p, a.cfg.UI.PageSize)
			if err != nil {
				return err
			}
			if changed {
				return db.SaveProject(p)
			}
			return nil
		},
	}

	cmd.Flags().Bool("no-ui", false, "Simple text output")
	cmd.Flags().Bool("json", false, "JSON output")
	return cmd
}

// renderTasksJSON outputs a project and its tasks as JSON
func renderTasksJSON(cmd *cobra.Command, p *models.Project) error {
	type jsonTask struct {
		Key        int        `json:"key"`
		PID        int        `json:"pid"`
		Name       string     `json:"name"`
		Notes      string     `json:"notes,omitempty"`
		Status     string     `json:"status"`
		Priority   int        `json:"priority"`
		Start      *time.Time `json:"start,omitempty"`
		Due        *time.Time `json:"due,omitempty"`
		EstMinutes *float64   `json:"est_minutes,omitempty"`
	}

	type jsonResult struct {
		Project     string     `json:"project"`
		Kind        string     `json:"kind"`
		Status      string     `json:"status"`
		NextTaskPID int        `json:"next_task_pid"`
		Due         *time.Time `json:"due,omitempty"`
		Tasks       []jsonTask `json:"tasks"`
	}

	result := jsonResult{
		Project:     p.Name,
		Kind:        string(p.Kind),
		Status:      string(p.Status),
		NextTaskPID: p.NextTaskPID(),
		Due:         p.Due,
		Tasks:       []jsonTask{},
	}
	p.Each(func(key int, t *models.Task) {
		jt := jsonTask{
			Key:      key,
			PID:      t.PID,
			Name:     t.Name,
			Notes:    t.Notes,
			Status:   string(t.Status),
			Priority: t.Priority,
			Start:    t.Start,
			Due:      t.Due,
		}
		if t.Est != nil {
			m := t.Est.Minutes()
			jt.EstMinutes = &m
		}
		result.Tasks = append(result.Tasks, jt)
	})

	enc := json.NewEncoder(out(cmd))
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
