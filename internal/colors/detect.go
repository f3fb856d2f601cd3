package colors

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/runs-on/penv/internal/env"
)

// TerminalDetector decides Auto from the environment and from whether the
// output file descriptor is a terminal.
//
// Rules, first match wins:
//
//	CLICOLOR_FORCE set and not "0"  -> color
//	NO_COLOR set and non-empty      -> no color
//	CLICOLOR == "0"                 -> no color
//	TERM == "dumb"                  -> no color
//	otherwise                       -> color iff Fd is a terminal
type TerminalDetector struct {
	Env env.Source
	Fd  uintptr

	// IsTerminal defaults to go-isatty when nil.
	IsTerminal func(fd uintptr) bool
}

// NewStdoutDetector inspects the process environment and os.Stdout.
func NewStdoutDetector() *TerminalDetector {
	return &TerminalDetector{
		Env: env.OsSource{},
		Fd:  os.Stdout.Fd(),
	}
}

func (d *TerminalDetector) ColorSupported() bool {
	src := d.Env
	if src == nil {
		src = env.OsSource{}
	}

	if v, ok := src.LookupEnv("CLICOLOR_FORCE"); ok && v != "0" {
		return true
	}
	if v, _ := src.LookupEnv("NO_COLOR"); v != "" {
		return false
	}
	if v, ok := src.LookupEnv("CLICOLOR"); ok && v == "0" {
		return false
	}
	if v, _ := src.LookupEnv("TERM"); v == "dumb" {
		return false
	}

	isTerminal := d.IsTerminal
	if isTerminal == nil {
		isTerminal = isTTY
	}
	return isTerminal(d.Fd)
}

func isTTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
