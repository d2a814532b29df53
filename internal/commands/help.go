package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help",
		Short: "Show comprehensive help for arc",
		Long:  `Display detailed help for all arc commands and flags.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(out(cmd), customHelp)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(out(cmd), "arc %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

const customHelp = `
 █████╗ ██████╗  ██████╗
██╔══██╗██╔══██╗██╔════╝
███████║██████╔╝██║
██╔══██║██╔══██╗██║
██║  ██║██║  ██║╚██████╗
╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝

arc - projects that end, projects that repeat

PROJECTS:

  project new <name>        Create an arc (bounded project)
    --cycle                 Create a cycle (recurring project) instead
    --due                   Deadline for an arc
    -s, --status            Initial status (default active)
  project ls                List projects
    --json                  JSON output
  project rename <n> <new>  Rename a project
  project status <n> <s>    Set project status
  project due <n> <date>    Set an arc's deadline ('none' clears it)
  project rm <name>         Delete a project and its tasks

TASKS:

  add <project> <task>      Add a task; prints its pid
    -n, --notes             Notes
    --start / --due         Dates (dd/mm/yyyy, today, tomorrow, 3d, 2w, 5h)
    --est                   Estimate (90m, 2h, 1h30m, 2d)
    -p, --priority          low|medium|high or any integer
    -s, --status            todo|active|hold|complete|discarded

    Smart syntax:
      +priority     +high, +2, +-1
      !status       !hold
      due:X         due:3d
      start:X       start:today
      est:D         est:2h

    Example:
      arc add launch "Write release notes +high due:3d est:2h"

  update <project> <pid>    Replace a task with an edited copy
  status <project> <pid> <status>
                            Set a task's status
  rm <project> <pid>        Delete a task; later tasks move up one key
  ls <project>              Open the board for a project
    --no-ui                 Plain table
    --json                  JSON output

    Board keys:
      ↑/↓  navigate   ←/→  page   a  add   x  cycle status
      d    delete     q/esc quit

  demo                      Print a throwaway five-task project
  version                   Show build information
  help                      Show this help

GLOBAL FLAGS:

  --config <file>           Config file (default ~/.arc/config.yaml)
  --db <path>               Database path (default ~/.arc/arc.db)
  -v, --verbose             Debug logging on stderr

`
