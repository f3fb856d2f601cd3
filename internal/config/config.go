package config

import (
	"fmt"
	"strconv"

	"github.com/sethvargo/go-githubactions"

	"github.com/runs-on/penv/internal/colors"
	"github.com/runs-on/penv/internal/render"
)

// Config holds what to print and how, from command line flags or action inputs.
type Config struct {
	// Lookup is set when a single variable was requested; Name is then the
	// variable, even if empty.
	Lookup bool
	Name   string

	Color   colors.Mode
	Table   bool
	Verbose bool

	// Action only.
	ShowEnv bool
	Summary bool
}

// NewConfigFromInputs parses action inputs to build the Config struct.
// Malformed booleans are reported and treated as false; an unknown color
// mode is an error.
func NewConfigFromInputs(action *githubactions.Action) (*Config, error) {
	cfg := &Config{}

	cfg.ShowEnv = boolInput(action, "show_env")
	cfg.Table = boolInput(action, "table")
	cfg.Summary = boolInput(action, "summary")

	if name := action.GetInput("name"); name != "" {
		cfg.Lookup = true
		cfg.Name = name
	}

	if colorStr := action.GetInput("color"); colorStr != "" {
		mode, err := colors.ParseMode(colorStr)
		if err != nil {
			return nil, fmt.Errorf("input 'color': %w", err)
		}
		cfg.Color = mode
	}

	action.Infof("Input 'show_env': %t", cfg.ShowEnv)
	action.Infof("Input 'color': %s", cfg.Color)
	action.Infof("Input 'table': %t", cfg.Table)
	action.Infof("Input 'summary': %t", cfg.Summary)
	if cfg.Lookup {
		action.Infof("Input 'name': %s", cfg.Name)
	}

	return cfg, nil
}

func boolInput(action *githubactions.Action, name string) bool {
	s := action.GetInput(name)
	if s == "" {
		return false
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		action.Warningf("Error parsing '%s' input '%s': %v. Assuming false.", name, s, err)
		return false
	}
	return v
}

func (c *Config) HasShowEnv() bool {
	return c.ShowEnv
}

func (c *Config) HasSummary() bool {
	return c.Summary
}

// Mode is the layout for printing every variable.
func (c *Config) Mode() render.Mode {
	if c.Table {
		return render.Table
	}
	return render.KeyValue
}

// RenderOptions combines the layout with an already resolved color decision.
func (c *Config) RenderOptions(useColor bool) render.Options {
	return render.Options{Color: useColor, Mode: c.Mode()}
}
