// Package render turns environment entries into terminal text.
//
// Three strategies implement Renderer: plain "name=value" lines, the same
// lines with ANSI colors, and a bordered two-column table. New picks one from
// Options. The color decision is made by the caller; this package never
// inspects the terminal.
package render

import (
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/runs-on/penv/internal/env"
)

// DefaultWrapWidth is the widest a Value cell gets in table mode, in display
// columns.
const DefaultWrapWidth = 80

// Mode selects the output shape.
type Mode int

const (
	KeyValue Mode = iota
	Table
)

func (m Mode) String() string {
	switch m {
	case KeyValue:
		return "key-value"
	case Table:
		return "table"
	}
	return "unknown"
}

// Options parameterizes a Renderer.
type Options struct {
	Color bool
	Mode  Mode

	// WrapWidth overrides DefaultWrapWidth for the table Value column when
	// greater than zero.
	WrapWidth int
}

// Renderer renders collated entries.
type Renderer interface {
	// Render returns every entry, in the given order, newline terminated.
	Render(entries []env.Entry) string
	// RenderValue returns the value of e alone, with no trailing newline.
	RenderValue(e env.Entry) string
}

var (
	nameColors   = text.Colors{text.FgGreen}
	valueColors  = text.Colors{text.FgBlue}
	headerColors = text.Colors{text.Bold}
)

// New returns the strategy for opts. With opts.Color set it also turns
// go-pretty colors on for the whole process and leaves them on, overriding
// NO_COLOR for any later go-pretty output.
func New(opts Options) Renderer {
	if opts.Color {
		// go-pretty switches colors off globally when the environment asks
		// for it; the caller has already decided.
		text.EnableColors()
	}

	switch {
	case opts.Mode == Table:
		width := opts.WrapWidth
		if width <= 0 {
			width = DefaultWrapWidth
		}
		return &tableRenderer{color: opts.Color, wrapWidth: width}
	case opts.Color:
		return colorRenderer{}
	default:
		return plainRenderer{}
	}
}

// RenderAll collates entries and renders all of them.
func RenderAll(entries []env.Entry, opts Options) string {
	return New(opts).Render(env.Collate(entries))
}

// RenderOne returns the value of name from snap. Nothing is rendered when the
// variable is missing; the error is an *env.NotFoundError.
func RenderOne(snap env.Snapshot, name string, color bool) (string, error) {
	e, ok := snap.Lookup(name)
	if !ok {
		return "", &env.NotFoundError{Name: name}
	}
	return New(Options{Color: color}).RenderValue(e), nil
}
