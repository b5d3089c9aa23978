package config

import (
	"fmt"
	"sort"

	"github.com/hay-kot/criterio"
	"github.com/xqrs/columnlayout/anim"
	"github.com/xqrs/columnlayout/gesture"
	"github.com/xqrs/columnlayout/layout"
)

var validActions = map[string]bool{
	ActionNext:     true,
	ActionPrevious: true,
	ActionFirst:    true,
	ActionLast:     true,
	ActionQuit:     true,
}

// Validate checks that the configuration describes a usable deck.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		c.validateLayout(),
		c.validateGesture(),
		criterio.Run("gesture.policy", c.Gesture.Policy, isPolicy),
		c.validateRearrange(),
		criterio.Run("rearrange.interpolator", c.Rearrange.Interpolator, isInterpolator),
		c.validateAnimation(),
		c.validateKeybindings(),
	)
}

func (c *Config) validateLayout() error {
	var errs criterio.FieldErrorsBuilder
	if _, err := c.Orientation(); err != nil {
		errs = errs.Append("layout.orientation", err)
	}
	if c.Layout.VisibleColumns < 1 {
		errs = errs.Append("layout.visible_columns", fmt.Errorf("must be at least 1"))
	}
	if c.Layout.ColumnMargin < 0 {
		errs = errs.Append("layout.column_margin", fmt.Errorf("cannot be negative"))
	}
	return errs.ToError()
}

func (c *Config) validateGesture() error {
	var errs criterio.FieldErrorsBuilder
	if c.Gesture.TouchSlop < 0 {
		errs = errs.Append("gesture.touch_slop", fmt.Errorf("cannot be negative"))
	}
	if c.Gesture.LongPressTimeout < 0 {
		errs = errs.Append("gesture.long_press_timeout", fmt.Errorf("cannot be negative"))
	}
	if c.Gesture.Deceleration <= 0 {
		errs = errs.Append("gesture.deceleration", fmt.Errorf("must be positive"))
	}
	if c.Gesture.MigrationSwipeWidth <= 0 {
		errs = errs.Append("gesture.migration_swipe_width", fmt.Errorf("must be positive"))
	}
	if c.Gesture.MigrationDuration <= 0 {
		errs = errs.Append("gesture.migration_duration", fmt.Errorf("must be positive"))
	}
	return errs.ToError()
}

func (c *Config) validateRearrange() error {
	var errs criterio.FieldErrorsBuilder
	if c.Rearrange.EdgeBand <= 0 || c.Rearrange.EdgeBand >= 0.5 {
		errs = errs.Append("rearrange.edge_band", fmt.Errorf("must be between 0 and 0.5"))
	}
	if c.Rearrange.AutoScrollFactor <= 0 {
		errs = errs.Append("rearrange.auto_scroll_factor", fmt.Errorf("must be positive"))
	}
	if c.Rearrange.SettleDuration <= 0 {
		errs = errs.Append("rearrange.settle_duration", fmt.Errorf("must be positive"))
	}
	return errs.ToError()
}

func (c *Config) validateAnimation() error {
	if c.Animation.FrameInterval <= 0 {
		return criterio.NewFieldErrors("animation.frame_interval", fmt.Errorf("must be positive"))
	}
	return nil
}

func (c *Config) validateKeybindings() error {
	actions := make([]string, 0, len(c.Keybindings))
	for action := range c.Keybindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	var errs criterio.FieldErrorsBuilder
	for _, action := range actions {
		field := fmt.Sprintf("keybindings.%s", action)
		if !validActions[action] {
			errs = errs.Append(field, fmt.Errorf("unknown action %q", action))
			continue
		}
		if len(c.Keybindings[action]) == 0 {
			errs = errs.Append(field, fmt.Errorf("at least one key is required"))
		}
	}
	return errs.ToError()
}

func isPolicy(name string) error {
	switch gesture.PolicyKind(name) {
	case gesture.PolicyPaging, gesture.PolicyFreeScroll, gesture.PolicyMigration:
		return nil
	}
	return fmt.Errorf("unknown scroll policy %q", name)
}

func isInterpolator(name string) error {
	_, err := anim.ParseInterpolator(name)
	return err
}

// Orientation returns the configured deck orientation.
func (c *Config) Orientation() (layout.Orientation, error) {
	switch c.Layout.Orientation {
	case "", "horizontal":
		return layout.OrientationHorizontal, nil
	case "vertical":
		return layout.OrientationVertical, nil
	}
	return 0, fmt.Errorf("unknown orientation %q", c.Layout.Orientation)
}

// DetectorConfig returns the gesture detector settings for axis.
func (c *Config) DetectorConfig(axis gesture.Axis) gesture.Config {
	return gesture.Config{
		Axis:             axis,
		TouchSlop:        c.Gesture.TouchSlop,
		LongPressTimeout: c.Gesture.LongPressTimeout,
	}
}

// PolicyConfig returns the scroll policy settings.
func (c *Config) PolicyConfig() gesture.PolicyConfig {
	return gesture.PolicyConfig{
		Kind:                gesture.PolicyKind(c.Gesture.Policy),
		Deceleration:        c.Gesture.Deceleration,
		MigrationSwipeWidth: c.Gesture.MigrationSwipeWidth,
		MigrationDuration:   c.Gesture.MigrationDuration,
	}
}

// RearrangeConfig returns the card reordering settings.
func (c *Config) RearrangeConfig() (layout.RearrangeConfig, error) {
	interpolator, err := anim.ParseInterpolator(c.Rearrange.Interpolator)
	if err != nil {
		return layout.RearrangeConfig{}, fmt.Errorf("rearrange interpolator: %w", err)
	}
	return layout.RearrangeConfig{
		EdgeBand:         c.Rearrange.EdgeBand,
		AutoScrollFactor: c.Rearrange.AutoScrollFactor,
		SettleDuration:   c.Rearrange.SettleDuration,
		Interpolator:     interpolator,
	}, nil
}
