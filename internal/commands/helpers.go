package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/arc/internal/models"
	"github.com/balkashynov/arc/internal/parser"
)

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}

// parsePID reads a task key argument. Negative numbers are accepted and
// left for the project to reject.
func parsePID(arg string) (int, error) {
	pid, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid task pid '%s'", arg)
	}
	return pid, nil
}

// addTaskFlags registers the flags shared by add and update
func addTaskFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("notes", "n", "", "Additional notes")
	cmd.Flags().String("start", "", "Start date: dd/mm/yyyy, today, tomorrow, X days")
	cmd.Flags().String("due", "", "Due date: dd/mm/yyyy, today, tomorrow, X days, X weeks")
	cmd.Flags().String("est", "", "Estimated effort: 90m, 2h, 1h30m, 2d")
	cmd.Flags().StringP("priority", "p", "", "Priority: low, medium, high or any integer")
	cmd.Flags().StringP("status", "s", "", "Status: todo, active, hold, complete, discarded")
}

// taskInput is the result of smart parsing a title and overlaying flags
type taskInput struct {
	parsed   parser.ParsedTask
	notes    *string
	priority *int
}

// parseTaskInput parses title words and applies explicit flags on top;
// flags take precedence over smart syntax.
func parseTaskInput(cmd *cobra.Command, words []string) (taskInput, error) {
	in := taskInput{parsed: parser.ParseTitle(strings.Join(words, " "))}
	if len(in.parsed.Errors) > 0 {
		return in, fmt.Errorf("could not parse task: %s", strings.Join(in.parsed.Errors, ", "))
	}
	in.priority = in.parsed.Priority

	flags := cmd.Flags()
	if flags.Changed("notes") {
		notes, _ := flags.GetString("notes")
		in.notes = &notes
	}
	if flags.Changed("priority") {
		raw, _ := flags.GetString("priority")
		p, err := parser.ParsePriority(raw)
		if err != nil {
			return in, err
		}
		in.priority = &p
	}
	if flags.Changed("status") {
		raw, _ := flags.GetString("status")
		s, err := models.ParseStatus(raw)
		if err != nil {
			return in, err
		}
		in.parsed.Status = s
	}
	if flags.Changed("start") {
		raw, _ := flags.GetString("start")
		d, err := parser.ParseDate(raw)
		if err != nil {
			return in, fmt.Errorf("error parsing start date: %w", err)
		}
		in.parsed.Start = d
	}
	if flags.Changed("due") {
		raw, _ := flags.GetString("due")
		d, err := parser.ParseDate(raw)
		if err != nil {
			return in, fmt.Errorf("error parsing due date: %w", err)
		}
		in.parsed.Due = d
	}
	if flags.Changed("est") {
		raw, _ := flags.GetString("est")
		d, err := parser.ParseEstimate(raw)
		if err != nil {
			return in, err
		}
		in.parsed.Est = d
	}
	return in, nil
}

// scheduleChanged reports whether the input touches any scheduling field
func (in taskInput) scheduleChanged(cmd *cobra.Command) bool {
	flags := cmd.Flags()
	return in.parsed.Start != nil || in.parsed.Due != nil || in.parsed.Est != nil ||
		flags.Changed("start") || flags.Changed("due") || flags.Changed("est")
}

// printTask writes the detail lines shown after add and update
func printTask(w io.Writer, key int, t *models.Task) {
	fmt.Fprintf(w, "  Key: #%d  Pid: %d  Status: %s\n", key, t.PID, t.Status)
	if t.Priority != 0 {
		fmt.Fprintf(w, "  Priority: %s\n", parser.PriorityLabel(t.Priority))
	}
	if t.Start != nil {
		fmt.Fprintf(w, "  Start: %s\n", t.Start.Format("02/01/2006"))
	}
	if t.Due != nil {
		fmt.Fprintf(w, "  Due: %s\n", parser.FormatDueDate(t.Due))
	}
	if t.Est != nil {
		fmt.Fprintf(w, "  Estimate: %s\n", parser.FormatEstimate(t.Est))
	}
	if t.Notes != "" {
		fmt.Fprintf(w, "  Notes: %s\n", t.Notes)
	}
}
