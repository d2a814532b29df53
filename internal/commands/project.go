package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/arc/internal/db"
	"github.com/balkashynov/arc/internal/models"
	"github.com/balkashynov/arc/internal/parser"
	"github.com/balkashynov/arc/internal/tui"
)

func (a *app) newProjectCmd() *cobra.Command {
	projectCmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"p"},
		Short:   "Manage projects",
	}

	projectCmd.AddCommand(
		a.newProjectNewCmd(),
		a.newProjectListCmd(),
		a.newProjectRenameCmd(),
		a.newProjectStatusCmd(),
		a.newProjectDueCmd(),
		a.newProjectRmCmd(),
	)
	return projectCmd
}

func (a *app) newProjectNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a project (an arc unless --cycle is given)",
		Long: `Create a new project.

  arc project new launch --due 30/11/2026   - an arc with a deadline
  arc project new gym --cycle               - a recurring cycle
  arc project new reading --kind recurring  - same as --cycle`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.openDB(); err != nil {
				return err
			}

			cycle, _ := cmd.Flags().GetBool("cycle")
			rawKind, _ := cmd.Flags().GetString("kind")
			rawStatus, _ := cmd.Flags().GetString("status")
			rawDue, _ := cmd.Flags().GetString("due")

			var status models.Status
			if rawStatus != "" {
				s, err := models.ParseStatus(rawStatus)
				if err != nil {
					return err
				}
				status = s
			}

			kind, err := models.ParseKind(rawKind)
			if err != nil {
				return err
			}
			if cycle {
				kind = models.KindRecurring
			}

			var p *models.Project
			if kind == models.KindRecurring {
				if rawDue != "" {
					return models.ErrNoDeadline
				}
				p = models.NewRecurring(args[0], status)
			} else {
				due, err := parser.ParseDate(rawDue)
				if err != nil {
					return fmt.Errorf("error parsing due date: %w", err)
				}
				p = models.NewBounded(args[0], due, status)
			}

			if err := db.SaveProject(p); err != nil {
				return err
			}

			fmt.Fprintf(out(cmd), "Created %s %s\n", p.Kind, p.Name)
			if p.Due != nil {
				fmt.Fprintf(out(cmd), "  %s\n", parser.FormatDueDate(p.Due))
			}
			return nil
		},
	}

	cmd.Flags().Bool("cycle", false, "Create a recurring project")
	cmd.Flags().StringP("kind", "k", string(models.KindBounded), "Project kind: arc (bounded) or cycle (recurring)")
	cmd.Flags().String("due", "", "Deadline for an arc: dd/mm/yyyy, X days, X weeks")
	cmd.Flags().StringP("status", "s", "", "Initial status (default active)")
	return cmd
}

func (a *app) newProjectListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List projects",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.openDB(); err != nil {
				return err
			}

			projects, err := db.ListProjects()
			if err != nil {
				return fmt.Errorf("error fetching projects: %w", err)
			}

			if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
				return renderProjectsJSON(cmd, projects)
			}

			if len(projects) == 0 {
				fmt.Fprintln(out(cmd), "No projects found. Use 'arc project new <name>' to create one.")
				return nil
			}
			fmt.Fprintln(out(cmd), tui.RenderProjectTable(projects))
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "JSON output")
	return cmd
}

func renderProjectsJSON(cmd *cobra.Command, projects []*models.Project) error {
	type jsonProject struct {
		ID          string     `json:"id"`
		Name        string     `json:"name"`
		Kind        string     `json:"kind"`
		Status      string     `json:"status"`
		Tasks       int        `json:"tasks"`
		NextTaskPID int        `json:"next_task_pid"`
		Due         *time.Time `json:"due,omitempty"`
		Created     time.Time  `json:"created"`
	}

	list := make([]jsonProject, 0, len(projects))
	for _, p := range projects {
		list = append(list, jsonProject{
			ID:          p.ID,
			Name:        p.Name,
			Kind:        string(p.Kind),
			Status:      string(p.Status),
			Tasks:       p.Len(),
			NextTaskPID: p.NextTaskPID(),
			Due:         p.Due,
			Created:     p.Created,
		})
	}

	enc := json.NewEncoder(out(cmd))
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

func (a *app) newProjectRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <name> <new-name>",
		Short: "Rename a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.mutateProject(args[0], func(p *models.Project) error {
				p.Name = args[1]
				fmt.Fprintf(out(cmd), "Renamed %s to %s\n", args[0], args[1])
				return nil
			})
		},
	}
}

func (a *app) newProjectStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <name> <status>",
		Short: "Set a project's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := models.ParseStatus(args[1])
			if err != nil {
				return err
			}
			return a.mutateProject(args[0], func(p *models.Project) error {
				fmt.Fprintf(out(cmd), "%s: %s → %s\n", p.Name, p.Status, status)
				p.Status = status
				return nil
			})
		},
	}
}

func (a *app) newProjectDueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "due <name> <date>",
		Short: "Set an arc's deadline ('none' clears it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var due *time.Time
			if args[1] != "none" {
				d, err := parser.ParseDate(args[1])
				if err != nil {
					return fmt.Errorf("error parsing due date: %w", err)
				}
				due = d
			}
			return a.mutateProject(args[0], func(p *models.Project) error {
				if err := p.SetDue(due); err != nil {
					return fmt.Errorf("%s: %w", p.Name, err)
				}
				if due == nil {
					fmt.Fprintf(out(cmd), "Cleared deadline of %s\n", p.Name)
				} else {
					fmt.Fprintf(out(cmd), "%s: %s\n", p.Name, parser.FormatDueDate(due))
				}
				return nil
			})
		},
	}
}

func (a *app) newProjectRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete a project and all of its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.openDB(); err != nil {
				return err
			}
			if err := db.DeleteProject(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Deleted project %s\n", args[0])
			return nil
		},
	}
}

// mutateProject loads a project, applies fn and saves the result
func (a *app) mutateProject(name string, fn func(p *models.Project) error) error {
	if err := a.openDB(); err != nil {
		return err
	}
	p, err := db.GetProjectByName(name)
	if err != nil {
		return err
	}
	if err := fn(p); err != nil {
		return err
	}
	return db.SaveProject(p)
}
