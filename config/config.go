// Package config handles configuration loading and validation for the
// column deck.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Built-in action names for keybindings.
const (
	ActionNext     = "next"
	ActionPrevious = "previous"
	ActionFirst    = "first"
	ActionLast     = "last"
	ActionQuit     = "quit"
)

// defaultKeybindings maps actions to the keys that trigger them. Users can
// override the keys of any action.
var defaultKeybindings = map[string][]string{
	ActionNext:     {"right", "l", "down", "j", "tab"},
	ActionPrevious: {"left", "h", "up", "k", "shift+tab"},
	ActionFirst:    {"home", "g"},
	ActionLast:     {"end", "G"},
	ActionQuit:     {"q", "esc", "ctrl+c"},
}

// Config holds the deck configuration.
type Config struct {
	Layout      LayoutConfig        `yaml:"layout"`
	Gesture     GestureConfig       `yaml:"gesture"`
	Rearrange   RearrangeConfig     `yaml:"rearrange"`
	Animation   AnimationConfig     `yaml:"animation"`
	Keybindings map[string][]string `yaml:"keybindings"`
}

// LayoutConfig holds the deck geometry.
type LayoutConfig struct {
	Orientation    string `yaml:"orientation"`     // horizontal or vertical
	VisibleColumns int    `yaml:"visible_columns"` // columns shown side by side
	ColumnMargin   int    `yaml:"column_margin"`   // cells kept free on each side of a column
}

// GestureConfig holds touch and fling settings.
type GestureConfig struct {
	TouchSlop           float64       `yaml:"touch_slop"`            // cells a pointer travels before a drag starts
	LongPressTimeout    time.Duration `yaml:"long_press_timeout"`    // rest time that picks up a card
	Policy              string        `yaml:"policy"`                // paging, free or migration
	Deceleration        float64       `yaml:"deceleration"`          // fling deceleration in cells/ms²
	MigrationSwipeWidth float64       `yaml:"migration_swipe_width"` // swipe distance that starts a migration
	MigrationDuration   time.Duration `yaml:"migration_duration"`    // length of one migration
}

// RearrangeConfig holds card reordering settings.
type RearrangeConfig struct {
	EdgeBand         float64       `yaml:"edge_band"`          // fraction of the height that auto-scrolls
	AutoScrollFactor float64       `yaml:"auto_scroll_factor"` // cells/ms per cell inside the edge band
	SettleDuration   time.Duration `yaml:"settle_duration"`    // glide time of a released card
	Interpolator     string        `yaml:"interpolator"`       // linear, decelerate or spring
}

// AnimationConfig holds frame clock settings.
type AnimationConfig struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Layout: LayoutConfig{
			Orientation:    "horizontal",
			VisibleColumns: 1,
			ColumnMargin:   1,
		},
		Gesture: GestureConfig{
			TouchSlop:           2,
			LongPressTimeout:    500 * time.Millisecond,
			Policy:              "paging",
			Deceleration:        0.001,
			MigrationSwipeWidth: 4,
			MigrationDuration:   350 * time.Millisecond,
		},
		Rearrange: RearrangeConfig{
			EdgeBand:         0.2,
			AutoScrollFactor: 0.004,
			SettleDuration:   150 * time.Millisecond,
			Interpolator:     "decelerate",
		},
		Animation: AnimationConfig{
			FrameInterval: 16 * time.Millisecond,
		},
		Keybindings: map[string][]string{},
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// Merge user keybindings into defaults (user config overrides defaults)
	cfg.Keybindings = mergeKeybindings(defaultKeybindings, cfg.Keybindings)

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
// Zero is a meaningful column margin, so the margin is left alone.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Layout.Orientation == "" {
		c.Layout.Orientation = defaults.Layout.Orientation
	}
	if c.Layout.VisibleColumns == 0 {
		c.Layout.VisibleColumns = defaults.Layout.VisibleColumns
	}
	if c.Gesture.TouchSlop == 0 {
		c.Gesture.TouchSlop = defaults.Gesture.TouchSlop
	}
	if c.Gesture.LongPressTimeout == 0 {
		c.Gesture.LongPressTimeout = defaults.Gesture.LongPressTimeout
	}
	if c.Gesture.Policy == "" {
		c.Gesture.Policy = defaults.Gesture.Policy
	}
	if c.Gesture.Deceleration == 0 {
		c.Gesture.Deceleration = defaults.Gesture.Deceleration
	}
	if c.Gesture.MigrationSwipeWidth == 0 {
		c.Gesture.MigrationSwipeWidth = defaults.Gesture.MigrationSwipeWidth
	}
	if c.Gesture.MigrationDuration == 0 {
		c.Gesture.MigrationDuration = defaults.Gesture.MigrationDuration
	}
	if c.Rearrange.EdgeBand == 0 {
		c.Rearrange.EdgeBand = defaults.Rearrange.EdgeBand
	}
	if c.Rearrange.AutoScrollFactor == 0 {
		c.Rearrange.AutoScrollFactor = defaults.Rearrange.AutoScrollFactor
	}
	if c.Rearrange.SettleDuration == 0 {
		c.Rearrange.SettleDuration = defaults.Rearrange.SettleDuration
	}
	if c.Rearrange.Interpolator == "" {
		c.Rearrange.Interpolator = defaults.Rearrange.Interpolator
	}
	if c.Animation.FrameInterval == 0 {
		c.Animation.FrameInterval = defaults.Animation.FrameInterval
	}
}

// mergeKeybindings merges user keybindings into defaults.
// User keybindings override defaults for the same action.
func mergeKeybindings(defaults, user map[string][]string) map[string][]string {
	result := make(map[string][]string, len(defaults)+len(user))

	for action, keys := range defaults {
		result[action] = keys
	}

	for action, keys := range user {
		result[action] = keys
	}

	return result
}

// Bindings returns the configured keybindings layered over the defaults.
func (c *Config) Bindings() map[string][]string {
	return mergeKeybindings(defaultKeybindings, c.Keybindings)
}
