// Package cli implements the penv command line.
//
// The root command takes an optional variable name. Without it every
// variable is printed, sorted by name; with it only that value is printed.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/runs-on/penv/internal/colors"
	"github.com/runs-on/penv/internal/config"
	"github.com/runs-on/penv/internal/env"
	"github.com/runs-on/penv/internal/render"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// App holds the collaborators the command reads from. Tests replace them.
type App struct {
	Source   env.Source
	Detector colors.Detector
	Logger   zerolog.Logger
}

// NewApp wires the real process environment and stdout terminal detection.
func NewApp(logger zerolog.Logger) *App {
	return &App{
		Source:   env.OsSource{},
		Detector: colors.NewStdoutDetector(),
		Logger:   logger,
	}
}

// UsageError marks a bad invocation, reported with ExitUsage.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// NewRootCommand creates the penv command.
func NewRootCommand(app *App) *cobra.Command {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:   "penv [NAME]",
		Short: "Print your environment variables",
		Long: `Print the environment of the current process, sorted by name.

With NAME, print only the value of that variable and fail if it is not set.

Examples:
  penv
  penv --table
  penv --color=never | grep ^GO
  penv HOME`,
		Version: Version,

		SilenceUsage:  true,
		SilenceErrors: true,

		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return &UsageError{Err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Lookup = true
				cfg.Name = args[0]
			}
			return run(app, cfg, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Var(&cfg.Color, "color", "When to color the output: always, never, auto")
	cmd.Flags().BoolVar(&cfg.Table, "table", false, "Print variables as a table (ignored with NAME)")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log what penv is doing to stderr")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	return cmd
}

func run(app *App, cfg *config.Config, out io.Writer) error {
	logger := app.Logger
	if cfg.Verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	snap := env.Collect(app.Source)
	useColor := cfg.Color.Resolve(app.Detector)
	logger.Debug().
		Int("entries", snap.Len()).
		Str("color", cfg.Color.String()).
		Bool("use_color", useColor).
		Msg("collected environment")

	if cfg.Lookup {
		if cfg.Table {
			logger.Debug().Msg("--table is ignored for a single variable")
		}
		value, err := render.RenderOne(snap, cfg.Name, useColor)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, value)
		return err
	}

	opts := cfg.RenderOptions(useColor)
	logger.Debug().Str("mode", opts.Mode.String()).Msg("rendering")
	_, err := io.WriteString(out, render.RenderAll(snap.Entries(), opts))
	return err
}

// ExitCode maps an error returned by the command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsage
	}
	return ExitError
}

// Execute runs the command, prints any error to stderr and exits non-zero.
func Execute(cmd *cobra.Command) {
	err := cmd.Execute()
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(os.Stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
	}
	os.Exit(ExitCode(err))
}
