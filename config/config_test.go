package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xqrs/columnlayout/anim"
	"github.com/xqrs/columnlayout/gesture"
	"github.com/xqrs/columnlayout/layout"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "columns.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "horizontal", cfg.Layout.Orientation)
	assert.Equal(t, 1, cfg.Layout.VisibleColumns)
	assert.Equal(t, "paging", cfg.Gesture.Policy)
	assert.Equal(t, 500*time.Millisecond, cfg.Gesture.LongPressTimeout)
	assert.Equal(t, []string{"q", "esc", "ctrl+c"}, cfg.Keybindings[ActionQuit])
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 16*time.Millisecond, cfg.Animation.FrameInterval)
}

func TestLoad_OverridesAndDefaults(t *testing.T) {
	path := writeConfig(t, `
layout:
  orientation: vertical
  visible_columns: 3
  column_margin: 0
gesture:
  policy: migration
  migration_duration: 200ms
rearrange:
  interpolator: spring
keybindings:
  quit: [x]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "vertical", cfg.Layout.Orientation)
	assert.Equal(t, 3, cfg.Layout.VisibleColumns)
	assert.Equal(t, 0, cfg.Layout.ColumnMargin, "zero margin is kept")
	assert.Equal(t, 200*time.Millisecond, cfg.Gesture.MigrationDuration)
	assert.Equal(t, 4.0, cfg.Gesture.MigrationSwipeWidth)
	assert.Equal(t, 0.2, cfg.Rearrange.EdgeBand)
	assert.Equal(t, []string{"x"}, cfg.Keybindings[ActionQuit])
	assert.Equal(t, []string{"home", "g"}, cfg.Keybindings[ActionFirst])
}

func TestLoad_ParseError(t *testing.T) {
	path := writeConfig(t, "layout: [unterminated")

	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, `
layout:
  orientation: diagonal
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid config")
	assert.ErrorContains(t, err, "diagonal")
}

func TestValidate_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
		want   string
	}{
		{
			name:   "visible columns",
			mutate: func(c *Config) { c.Layout.VisibleColumns = 0 },
			field:  "layout.visible_columns",
			want:   "at least 1",
		},
		{
			name:   "negative margin",
			mutate: func(c *Config) { c.Layout.ColumnMargin = -1 },
			field:  "layout.column_margin",
			want:   "negative",
		},
		{
			name:   "unknown policy",
			mutate: func(c *Config) { c.Gesture.Policy = "bouncy" },
			field:  "gesture.policy",
			want:   "bouncy",
		},
		{
			name:   "edge band too wide",
			mutate: func(c *Config) { c.Rearrange.EdgeBand = 0.6 },
			field:  "rearrange.edge_band",
			want:   "between 0 and 0.5",
		},
		{
			name:   "zero auto-scroll factor",
			mutate: func(c *Config) { c.Rearrange.AutoScrollFactor = 0 },
			field:  "rearrange.auto_scroll_factor",
			want:   "positive",
		},
		{
			name:   "zero settle duration",
			mutate: func(c *Config) { c.Rearrange.SettleDuration = 0 },
			field:  "rearrange.settle_duration",
			want:   "positive",
		},
		{
			name:   "unknown interpolator",
			mutate: func(c *Config) { c.Rearrange.Interpolator = "bounce" },
			field:  "rearrange.interpolator",
			want:   "bounce",
		},
		{
			name:   "frame interval",
			mutate: func(c *Config) { c.Animation.FrameInterval = 0 },
			field:  "animation.frame_interval",
			want:   "positive",
		},
		{
			name:   "unknown action",
			mutate: func(c *Config) { c.Keybindings = map[string][]string{"jump": {"x"}} },
			field:  "keybindings.jump",
			want:   "unknown action",
		},
		{
			name:   "empty keys",
			mutate: func(c *Config) { c.Keybindings = map[string][]string{ActionQuit: {}} },
			field:  "keybindings.quit",
			want:   "at least one key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Contains(t, fieldErrs[0].Field, tt.field)
			assert.Contains(t, fieldErrs[0].Err.Error(), tt.want)
		})
	}
}

func TestConverters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout.Orientation = "vertical"
	cfg.Gesture.Policy = "free"

	orientation, err := cfg.Orientation()
	require.NoError(t, err)
	assert.Equal(t, layout.OrientationVertical, orientation)

	detector := cfg.DetectorConfig(gesture.AxisVertical)
	assert.Equal(t, gesture.AxisVertical, detector.Axis)
	assert.Equal(t, 2.0, detector.TouchSlop)

	policy := cfg.PolicyConfig()
	assert.Equal(t, gesture.PolicyFreeScroll, policy.Kind)
	assert.Equal(t, 0.001, policy.Deceleration)

	rearrange, err := cfg.RearrangeConfig()
	require.NoError(t, err)
	assert.Equal(t, 150*time.Millisecond, rearrange.SettleDuration)
	assert.InDelta(t, 0.75, rearrange.Interpolator(0.5), 1e-12)
}

func TestManager(t *testing.T) {
	handler := anim.NewFrameHandler(anim.NewManualFrameClock(time.Time{}))

	cfg := DefaultConfig()
	cfg.Layout.VisibleColumns = 3
	manager, err := cfg.Manager(handler)
	require.NoError(t, err)
	horizontal, ok := manager.(*layout.Horizontal)
	require.True(t, ok)
	assert.Equal(t, 3, horizontal.VisibleColumns())

	cfg.Layout.Orientation = "vertical"
	manager, err = cfg.Manager(handler)
	require.NoError(t, err)
	assert.Equal(t, layout.OrientationVertical, manager.Orientation())

	cfg.Rearrange.Interpolator = "bounce"
	_, err = cfg.Manager(handler)
	assert.ErrorContains(t, err, "bounce")

	cfg.Layout.Orientation = "diagonal"
	_, err = cfg.Manager(handler)
	assert.Error(t, err)
}

func TestBindings_LayersOverDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, []string{"home", "g"}, cfg.Bindings()[ActionFirst])

	cfg.Keybindings = map[string][]string{ActionFirst: {"0"}}
	bindings := cfg.Bindings()
	assert.Equal(t, []string{"0"}, bindings[ActionFirst])
	assert.Equal(t, []string{"q", "esc", "ctrl+c"}, bindings[ActionQuit])
}
