package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xqrs/columnlayout"
	"github.com/xqrs/columnlayout/help"
)

func TestBindHelp_ShowsBindingsWhileFocused(t *testing.T) {
	deck, other := columnlayout.NewBox(), columnlayout.NewBox()
	footer := help.New()
	bindHelp(deck, footer, columnlayout.DefaultDeckKeyMap())
	assert.Empty(t, footer.Segments(0))

	app := columnlayout.NewApplication().SetRoot(deck)
	assert.NotEmpty(t, footer.Segments(0))

	app.SetFocus(other)
	assert.Empty(t, footer.Segments(0))
}
