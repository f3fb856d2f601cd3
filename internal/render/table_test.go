package render

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runs-on/penv/internal/env"
)

// valueCells returns the Value column of every body row, padding included.
func valueCells(t *testing.T, out string) []string {
	t.Helper()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 4)

	var cells []string
	// skip top border, header, header separator and bottom border
	for _, line := range lines[3 : len(lines)-1] {
		parts := strings.Split(line, "│")
		require.Len(t, parts, 4, "line %q", line)
		cells = append(cells, parts[2])
	}
	return cells
}

func TestTableLayout(t *testing.T) {
	entries := []env.Entry{
		{Name: "EMPTY", Value: ""},
		{Name: "A", Value: "1"},
	}

	want := strings.Join([]string{
		"┌──────────┬───────┐",
		"│ Variable │ Value │",
		"├──────────┼───────┤",
		"│ A        │ 1     │",
		"│ EMPTY    │       │",
		"└──────────┴───────┘",
	}, "\n") + "\n"

	assert.Equal(t, want, RenderAll(entries, Options{Mode: Table}))
}

func TestTableWrapsLongValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "no break points", value: strings.Repeat("abcdefghij", 25)},
		{name: "spaces", value: strings.Repeat("word ", 30)},
		{name: "path list", value: strings.Repeat("/opt/tool/bin:", 12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderAll([]env.Entry{{Name: "LONG", Value: tt.value}}, Options{Mode: Table})

			lines := wrapLines(tt.value, DefaultWrapWidth)
			require.Greater(t, len(lines), 1)
			assert.Equal(t, tt.value, strings.Join(lines, ""))

			colWidth := len("Value")
			for _, line := range lines {
				colWidth = max(colWidth, runewidth.StringWidth(line))
			}
			assert.LessOrEqual(t, colWidth, DefaultWrapWidth)

			cells := valueCells(t, out)
			require.Len(t, cells, len(lines))
			for i, cell := range cells {
				// one space of margin each side, then go-pretty's padding
				pad := colWidth - runewidth.StringWidth(lines[i])
				assert.Equal(t, " "+lines[i]+strings.Repeat(" ", pad)+" ", cell, "row %d", i)
			}
		})
	}
}

func TestTableKeepsInvalidUTF8(t *testing.T) {
	value := strings.Repeat("a", 85) + "\xff\xfe" + "zz"
	out := RenderAll([]env.Entry{{Name: "RAW", Value: value}}, Options{Mode: Table})

	assert.Contains(t, out, "\xff\xfezz")
	assert.NotContains(t, out, "\uFFFD")
}

func TestTableLineWidthIsBounded(t *testing.T) {
	entries := sampleEntries()
	for _, width := range []int{10, 33, DefaultWrapWidth} {
		out := RenderAll(entries, Options{Mode: Table, WrapWidth: width})

		for _, cell := range valueCells(t, out) {
			assert.LessOrEqual(t, runewidth.StringWidth(cell)-2, width, "cell %q", cell)
		}

		longestName := 0
		for _, e := range entries {
			longestName = max(longestName, runewidth.StringWidth(e.Name))
		}
		longestName = max(longestName, len("Variable"))
		for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
			// "│ " + name + " │ " + value + " │"
			assert.LessOrEqual(t, runewidth.StringWidth(line), longestName+width+7)
		}
	}
}

func TestTableShortValuesAreNotWrapped(t *testing.T) {
	out := RenderAll([]env.Entry{{Name: "PATH", Value: "/usr/bin:/bin"}}, Options{Mode: Table})
	cells := valueCells(t, out)
	require.Len(t, cells, 1)
	assert.Equal(t, " /usr/bin:/bin ", cells[0])
}

func TestTableHeaderKeepsCase(t *testing.T) {
	out := RenderAll(nil, Options{Mode: Table})
	assert.Contains(t, out, "│ Variable │ Value │")
	assert.NotContains(t, out, "VARIABLE")
}

func TestTableRenderValueIgnoresLayout(t *testing.T) {
	r := New(Options{Mode: Table})
	assert.Equal(t, "a very long value", r.RenderValue(env.Entry{Name: "X", Value: "a very long value"}))

	r = New(Options{Mode: Table, Color: true})
	assert.Equal(t, esc+"[34mv"+esc+"[0m", r.RenderValue(env.Entry{Name: "X", Value: "v"}))
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown([]env.Entry{
		{Name: "B", Value: "x|y"},
		{Name: "A", Value: "1"},
	})

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "| Variable | Value |", lines[0])
	assert.Contains(t, lines[2], "`A`")
	assert.Contains(t, lines[3], "`B`")
	assert.Contains(t, lines[3], `x\|y`)
	assert.NotContains(t, out, esc)
}
