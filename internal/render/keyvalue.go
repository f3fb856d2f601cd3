package render

import (
	"strings"

	"github.com/runs-on/penv/internal/env"
)

type plainRenderer struct{}

func (plainRenderer) Render(entries []env.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Name)
		b.WriteByte('=')
		b.WriteString(e.Value)
		b.WriteByte('\n')
	}
	return b.String()
}

func (plainRenderer) RenderValue(e env.Entry) string {
	return e.Value
}

type colorRenderer struct{}

func (colorRenderer) Render(entries []env.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(nameColors.Sprint(e.Name))
		b.WriteByte('=')
		b.WriteString(valueColors.Sprint(e.Value))
		b.WriteByte('\n')
	}
	return b.String()
}

func (colorRenderer) RenderValue(e env.Entry) string {
	return valueColors.Sprint(e.Value)
}
