package render

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// wrapCell soft-wraps s for a table cell no wider than width display columns.
func wrapCell(s string, width int) string {
	return strings.Join(wrapLines(s, width), "\n")
}

// wrapLines splits s into lines of at most width display columns. A line
// breaks after the last space or list separator that fits; a run with no
// such point is cut at the width. Newlines in s start a new line and tabs
// count as four spaces. For a single-line value without tabs, joining the
// result with "" gives back s, byte for byte.
func wrapLines(s string, width int) []string {
	s = strings.ReplaceAll(s, "\t", "    ")
	if width <= 0 {
		return strings.Split(s, "\n")
	}

	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		lines = append(lines, wrapParagraph(paragraph, width)...)
	}
	return lines
}

func wrapParagraph(s string, width int) []string {
	if displayWidth(s) <= width {
		return []string{s}
	}

	var (
		lines     []string
		start     int
		lineWidth int
		// breakAt is the byte offset just past the last break point in the
		// current line, or -1 when there is none.
		breakAt = -1
	)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		rw := runeWidth(r, size)
		for i > start && lineWidth+rw > width {
			if breakAt > start {
				lines = append(lines, s[start:breakAt])
				start = breakAt
				lineWidth = displayWidth(s[start:i])
			} else {
				lines = append(lines, s[start:i])
				start = i
				lineWidth = 0
			}
			breakAt = -1
		}
		lineWidth += rw
		i += size
		if isBreak(r) {
			breakAt = i
		}
	}
	return append(lines, s[start:])
}

// runeWidth counts a byte that is not valid UTF-8 as one column.
func runeWidth(r rune, size int) int {
	if r == utf8.RuneError && size == 1 {
		return 1
	}
	return runewidth.RuneWidth(r)
}

func displayWidth(s string) int {
	width := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		width += runeWidth(r, size)
		i += size
	}
	return width
}

func isBreak(r rune) bool {
	switch r {
	case ' ', ':', ';', ',':
		return true
	}
	return false
}
