package config

import (
	"github.com/xqrs/columnlayout/anim"
	"github.com/xqrs/columnlayout/layout"
)

// Manager builds the deck manager the configuration describes. handler
// drives the animations of vertical decks.
func (c *Config) Manager(handler *anim.FrameHandler) (layout.Manager, error) {
	orientation, err := c.Orientation()
	if err != nil {
		return nil, err
	}
	if orientation == layout.OrientationHorizontal {
		return layout.NewHorizontal(c.Layout.VisibleColumns, c.Layout.ColumnMargin), nil
	}
	rearrange, err := c.RearrangeConfig()
	if err != nil {
		return nil, err
	}
	return layout.NewVertical(handler, rearrange), nil
}
