package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-githubactions"

	"github.com/runs-on/penv/internal/colors"
	"github.com/runs-on/penv/internal/config"
	"github.com/runs-on/penv/internal/env"
	"github.com/runs-on/penv/internal/render"
)

// The Actions log viewer renders ANSI colors even though stdout is a pipe.
var actionsLog = colors.DetectorFunc(func() bool { return true })

// handleMainExecution contains the main step logic.
func handleMainExecution(action *githubactions.Action, logger *zerolog.Logger) {
	cfg, err := config.NewConfigFromInputs(action)
	if err != nil {
		action.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.HasShowEnv() {
		if err := displayEnv(action, cfg, logger, env.OsSource{}, os.Stdout); err != nil {
			action.Fatalf("Failed to display environment: %v", err)
		}
	}

	action.Infof("Action finished.")
}

// handlePostExecution contains the logic for the post-execution phase.
func handlePostExecution(action *githubactions.Action, logger *zerolog.Logger) {
	action.Infof("Running post-execution phase...")
	cfg, err := config.NewConfigFromInputs(action)
	if err != nil {
		action.Errorf("Failed to load configuration in post-execution: %v", err)
		return
	}

	if cfg.HasShowEnv() {
		if err := displayEnv(action, cfg, logger, env.OsSource{}, os.Stdout); err != nil {
			action.Errorf("Failed to display environment: %v", err)
		}
	}
	action.Infof("Post-execution phase finished.")
}

// displayEnv prints the environment inside a collapsible log group and, when
// asked, adds it to the job summary.
func displayEnv(action *githubactions.Action, cfg *config.Config, logger *zerolog.Logger, src env.Source, out io.Writer) error {
	snap := env.Collect(src)
	useColor := cfg.Color.Resolve(actionsLog)
	logger.Info().Int("entries", snap.Len()).Bool("use_color", useColor).Msg("collected environment")

	if cfg.Lookup {
		value, err := render.RenderOne(snap, cfg.Name, useColor)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, value)
		return err
	}

	action.Group("Environment variables")
	_, err := io.WriteString(out, render.RenderAll(snap.Entries(), cfg.RenderOptions(useColor)))
	action.EndGroup()
	if err != nil {
		return err
	}

	if cfg.HasSummary() {
		summary := "## Environment variables\n\n" + render.RenderMarkdown(snap.Entries())
		action.AddStepSummary(summary)
		action.Infof("Environment added to job summary.")
	}
	return nil
}

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	postFlag := flag.Bool("post", false, "Indicates the post-execution phase")
	flag.Parse()

	action := githubactions.New()

	if *postFlag {
		handlePostExecution(action, &logger)
	} else {
		handleMainExecution(action, &logger)
	}
}
