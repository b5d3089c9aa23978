package gesture

import (
	"fmt"
	"math"
	"time"

	"github.com/xqrs/columnlayout/anim"
)

// Policy decides how the deck follows a drag and where it comes to rest.
type Policy interface {
	// Press is called when a pointer touches down.
	Press()
	// StartDrag is called once the detector claims a drag.
	StartDrag()
	// Drag reports the pointer position along the scroll axis and the
	// movement since the previous call.
	Drag(position, delta float64)
	// Release is called when a claimed drag ends.
	Release()
	// SettleTo moves the deck to the column at index.
	SettleTo(index int)
	// Stop halts any motion in progress where it is.
	Stop()
	// Settling reports whether the deck is moving on its own.
	Settling() bool
}

// PolicyKind names a Policy implementation.
type PolicyKind string

const (
	PolicyPaging     PolicyKind = "paging"
	PolicyFreeScroll PolicyKind = "free"
	PolicyMigration  PolicyKind = "migration"
)

// PolicyConfig selects and tunes a Policy.
type PolicyConfig struct {
	Kind PolicyKind
	// Deceleration is the magnitude of the fling deceleration (cells/ms²)
	// used by the paging and free-scroll policies.
	Deceleration float64
	// MigrationSwipeWidth is the distance a pointer must travel to start a
	// migration to the next column.
	MigrationSwipeWidth float64
	// MigrationDuration is the length of one migration.
	MigrationDuration time.Duration
}

// NewPolicy builds the policy named by config.Kind.
func NewPolicy(config PolicyConfig, scroller Scroller, handler *anim.FrameHandler) (Policy, error) {
	switch config.Kind {
	case "", PolicyPaging:
		return NewPaging(scroller, handler, config.Deceleration), nil
	case PolicyFreeScroll:
		return NewFreeScroll(scroller, handler, config.Deceleration), nil
	case PolicyMigration:
		return NewMigration(scroller, handler, config.MigrationSwipeWidth, config.MigrationDuration), nil
	default:
		return nil, fmt.Errorf("unknown scroll policy %q", config.Kind)
	}
}

func clampTarget(s Scroller, target float64) float64 {
	last := float64(max(s.ColumnCount()-1, 0)) * s.ColumnDistance()
	return math.Max(0, math.Min(last, target))
}
