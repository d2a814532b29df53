package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/balkashynov/arc/internal/config"
	"github.com/balkashynov/arc/internal/db"
	"github.com/balkashynov/arc/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries the state shared by one command tree
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	cfgFile string
	verbose bool
}

// NewRootCmd builds the full arc command tree
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "arc",
		Short: "A CLI for projects that end and projects that repeat",
		Long: `arc keeps track of projects and their tasks from the terminal.

An arc is a project with an end: finish its tasks and it is done.
A cycle is a project that never ends, holding tasks you repeat.
Tasks are addressed by a dense key (#0, #1, ...) that closes up on delete.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ~/.arc/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("db", "", "database path (default is ~/.arc/arc.db)")
	_ = a.v.BindPFlag("database.path", rootCmd.PersistentFlags().Lookup("db"))

	rootCmd.AddCommand(
		a.newProjectCmd(),
		a.newAddCmd(),
		a.newUpdateCmd(),
		a.newStatusCmd(),
		a.newRmCmd(),
		a.newListCmd(),
		newDemoCmd(),
		newVersionCmd(),
	)
	rootCmd.SetHelpCommand(newHelpCmd())

	return rootCmd
}

// setup resolves config and installs the logger before any command runs
func (a *app) setup(cmd *cobra.Command, args []string) error {
	config.SetDefaults(a.v)
	if err := config.ReadFile(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if a.verbose {
		level = "debug"
	}
	logging.Setup(level, cmd.ErrOrStderr())
	return nil
}

// openDB initializes the registry at the configured path
func (a *app) openDB() error {
	if err := db.Close(); err != nil {
		return err
	}
	return db.Initialize(a.cfg.Database.Path)
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	defer db.Close()
	return NewRootCmd().Execute()
}
