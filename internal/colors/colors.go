// Package colors resolves the user's color preference into a single on/off
// decision for the renderer.
package colors

import (
	"fmt"
	"strings"
)

// Mode is the tri-state color preference. It implements pflag.Value so it
// can be bound directly as a command line flag.
type Mode int

const (
	Auto Mode = iota
	Always
	Never
)

var modeNames = map[Mode]string{
	Auto:   "auto",
	Always: "always",
	Never:  "never",
}

// ParseMode accepts "always", "never" or "auto" in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return Auto, nil
	case "always":
		return Always, nil
	case "never":
		return Never, nil
	}
	return Auto, fmt.Errorf("invalid color mode %q: must be one of always, never, auto", s)
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Set implements pflag.Value.
func (m *Mode) Set(s string) error {
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string {
	return "when"
}

// Detector reports whether the output supports color. It is only consulted
// for Auto.
type Detector interface {
	ColorSupported() bool
}

// DetectorFunc adapts a function to Detector.
type DetectorFunc func() bool

func (f DetectorFunc) ColorSupported() bool {
	return f()
}

// Resolve turns the preference into the color decision.
func (m Mode) Resolve(d Detector) bool {
	switch m {
	case Always:
		return true
	case Never:
		return false
	}
	if d == nil {
		return false
	}
	return d.ColorSupported()
}
