package gesture

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/xqrs/columnlayout/internal/logging"
)

// Navigator moves a deck column by column for discrete input such as keys
// and wheel notches. Steps taken while the policy is still settling add up,
// so pressing "next" twice quickly moves two columns.
type Navigator struct {
	scroller Scroller
	policy   Policy
	target   int

	log zerolog.Logger
}

// NewNavigator returns a navigator settling scroller through policy.
func NewNavigator(scroller Scroller, policy Policy) *Navigator {
	return &Navigator{
		scroller: scroller,
		policy:   policy,
		log:      logging.Component("gesture.nav"),
	}
}

// Step settles steps columns away from the current target.
func (n *Navigator) Step(steps int) {
	if !n.policy.Settling() {
		n.target = n.Nearest()
	}
	n.GoTo(n.target + steps)
}

// GoTo settles on the column at index, clamped to the deck.
func (n *Navigator) GoTo(index int) {
	count := n.scroller.ColumnCount()
	if count == 0 {
		return
	}
	n.target = min(max(index, 0), count-1)
	n.log.Debug().Int("index", n.target).Msg("settle to column")
	n.policy.SettleTo(n.target)
}

// Last settles on the last column.
func (n *Navigator) Last() {
	n.GoTo(n.scroller.ColumnCount() - 1)
}

// Target returns the column the last step settles on.
func (n *Navigator) Target() int {
	return n.target
}

// Nearest returns the column closest to the scroll position.
func (n *Navigator) Nearest() int {
	distance := n.scroller.ColumnDistance()
	if distance <= 0 {
		return 0
	}
	return int(math.Round(n.scroller.ScrollPosition() / distance))
}
