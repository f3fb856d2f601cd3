package config

import (
	"bytes"
	"testing"

	"github.com/sethvargo/go-githubactions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runs-on/penv/internal/colors"
	"github.com/runs-on/penv/internal/render"
)

func newAction(inputs map[string]string) (*githubactions.Action, *bytes.Buffer) {
	out := &bytes.Buffer{}
	action := githubactions.New(
		githubactions.WithWriter(out),
		githubactions.WithGetenv(func(key string) string {
			return inputs[key]
		}),
	)
	return action, out
}

func TestNewConfigFromInputsDefaults(t *testing.T) {
	action, _ := newAction(nil)

	cfg, err := NewConfigFromInputs(action)
	require.NoError(t, err)
	assert.False(t, cfg.HasShowEnv())
	assert.False(t, cfg.HasSummary())
	assert.False(t, cfg.Table)
	assert.False(t, cfg.Lookup)
	assert.Equal(t, colors.Auto, cfg.Color)
}

func TestNewConfigFromInputs(t *testing.T) {
	action, _ := newAction(map[string]string{
		"INPUT_SHOW_ENV": "true",
		"INPUT_TABLE":    "1",
		"INPUT_SUMMARY":  "TRUE",
		"INPUT_COLOR":    "Never",
		"INPUT_NAME":     "GITHUB_SHA",
	})

	cfg, err := NewConfigFromInputs(action)
	require.NoError(t, err)
	assert.True(t, cfg.HasShowEnv())
	assert.True(t, cfg.HasSummary())
	assert.True(t, cfg.Table)
	assert.True(t, cfg.Lookup)
	assert.Equal(t, "GITHUB_SHA", cfg.Name)
	assert.Equal(t, colors.Never, cfg.Color)
}

func TestNewConfigFromInputsBadBool(t *testing.T) {
	action, out := newAction(map[string]string{
		"INPUT_SHOW_ENV": "maybe",
	})

	cfg, err := NewConfigFromInputs(action)
	require.NoError(t, err)
	assert.False(t, cfg.ShowEnv)
	assert.Contains(t, out.String(), "::warning")
	assert.Contains(t, out.String(), "show_env")
}

func TestNewConfigFromInputsBadColor(t *testing.T) {
	action, _ := newAction(map[string]string{
		"INPUT_COLOR": "rainbow",
	})

	_, err := NewConfigFromInputs(action)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rainbow")
}

func TestRenderOptions(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, render.Options{Mode: render.KeyValue, Color: true}, cfg.RenderOptions(true))

	cfg.Table = true
	assert.Equal(t, render.Options{Mode: render.Table}, cfg.RenderOptions(false))
}
