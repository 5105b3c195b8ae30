package main

import (
	"fmt"
	"os"
	"strconv"

	"gymtrack/internal/config"
	"gymtrack/internal/logging"
	"gymtrack/internal/store"
	"gymtrack/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootFlags struct {
	configPath  string
	programFile string
	workoutFile string
	logLevel    string
}

func SetupCommands(a *App) *cobra.Command {
	var flags rootFlags

	// root command, runs the menu when called without a subcommand
	rootCmd := &cobra.Command{
		Use:           "gymtrack",
		Short:         "A personal workout tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configure(a, cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.RunMenu(a.LoadSession())
		},
	}
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", config.DefaultPath(), "path to TOML config file")
	rootCmd.PersistentFlags().StringVar(&flags.programFile, "program", "", "program JSON file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flags.workoutFile, "workouts", "", "workout log CSV file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level [trace | debug | info | warn | error]")

	// interactive menu
	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.RunMenu(a.LoadSession())
		},
	}

	// tabbed terminal UI
	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the tabbed workout UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(a.workouts)
		},
	}

	// command for logging a set
	logCmd := &cobra.Command{
		Use:   "log [day] [exercise] [weight] [reps]",
		Short: "Log a completed set",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.LogWorkout(args[0], args[1], args[2], args[3])
		},
	}

	// command for printing the workout log
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Show the workout log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ViewLog()
		},
	}

	// command for removing a log entry by its number in `view`
	removeCmd := &cobra.Command{
		Use:   "remove [number]",
		Short: "Remove a workout log entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", store.ErrInvalidSelection, args[0])
			}
			return a.RemoveLogEntry(position)
		},
	}

	// command for plotting progress of one exercise
	chartCmd := &cobra.Command{
		Use:   "chart [exercise]",
		Short: "Plot weight and reps over time for an exercise",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if err := configure(a, cmd, flags); err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return a.exerciseNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Chart(args[0])
		},
	}

	// command for mirroring the log into SQLite
	exportCmd := &cobra.Command{
		Use:   "export [database]",
		Short: "Export the workout log to a SQLite database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Export(args[0])
		},
	}

	// add commands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(programCommand(a))

	return rootCmd
}

func programCommand(a *App) *cobra.Command {
	programCmd := &cobra.Command{
		Use:   "program",
		Short: "Show or edit the workout program",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the program",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ViewProgram(a.LoadSession())
		},
	}

	addCmd := &cobra.Command{
		Use:   "add [day] [exercises]",
		Short: "Add comma-separated exercises to a day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.AddExercises(a.LoadSession(), args[0], args[1])
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove",
		Short: "Interactively remove an exercise from the program",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.RemoveExercisePrompt(a.LoadSession())
		},
	}

	programCmd.AddCommand(showCmd)
	programCmd.AddCommand(addCmd)
	programCmd.AddCommand(removeCmd)
	return programCmd
}

// configure loads the config file, applies flag overrides, sets up logging
// and points the app at its stores.
func configure(a *App, cmd *cobra.Command, flags rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if flags.programFile != "" {
		cfg.ProgramFile = flags.programFile
	}
	if flags.workoutFile != "" {
		cfg.WorkoutFile = flags.workoutFile
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.LogFile,
		LogToStderr:   cfg.LogToStderr,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogJSON,
	})

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		a.selector = arrowSelector{}
	}

	return a.Configure(cfg)
}
