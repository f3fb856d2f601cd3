package render

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/runs-on/penv/internal/env"
)

var tableHeader = table.Row{"Variable", "Value"}

type tableRenderer struct {
	color     bool
	wrapWidth int
}

func (r *tableRenderer) Render(entries []env.Entry) string {
	out := &strings.Builder{}
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	if r.color {
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, Colors: nameColors, ColorsHeader: headerColors},
			{Number: 2, Colors: valueColors, ColorsHeader: headerColors},
		})
	}

	t.AppendHeader(tableHeader)
	for _, e := range entries {
		t.AppendRow(table.Row{e.Name, wrapCell(e.Value, r.wrapWidth)})
	}
	t.Render()
	return out.String()
}

// RenderValue is the same as the colorized or plain value; a single lookup
// never draws a table.
func (r *tableRenderer) RenderValue(e env.Entry) string {
	if r.color {
		return valueColors.Sprint(e.Value)
	}
	return e.Value
}

// RenderMarkdown renders collated entries as a Markdown table for a GitHub
// job summary. Pipes and newlines in values are escaped by the table writer.
func RenderMarkdown(entries []env.Entry) string {
	t := table.NewWriter()
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(tableHeader)
	for _, e := range env.Collate(entries) {
		t.AppendRow(table.Row{"`" + e.Name + "`", e.Value})
	}
	return t.RenderMarkdown() + "\n"
}
