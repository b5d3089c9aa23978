package gesture

import (
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/xqrs/columnlayout/anim"
	"github.com/xqrs/columnlayout/internal/logging"
)

const (
	defaultMigrationSwipeWidth = 4
	defaultMigrationDuration   = 350 * time.Millisecond
)

// Migration does not follow the pointer. Each swipe wider than the swipe
// width migrates the deck by one column with an eased animation; swipes in
// quick succession chain migrations.
type Migration struct {
	scroller   Scroller
	handler    *anim.FrameHandler
	swipeWidth float64
	duration   time.Duration

	index         int
	movementStart float64

	animator  *anim.FloatAnimator
	startTime time.Time
	last      float64

	log zerolog.Logger
}

var _ Policy = (*Migration)(nil)

// NewMigration returns a migration policy.
func NewMigration(scroller Scroller, handler *anim.FrameHandler, swipeWidth float64, duration time.Duration) *Migration {
	if swipeWidth <= 0 {
		swipeWidth = defaultMigrationSwipeWidth
	}
	if duration <= 0 {
		duration = defaultMigrationDuration
	}
	return &Migration{
		scroller:      scroller,
		handler:       handler,
		swipeWidth:    swipeWidth,
		duration:      duration,
		movementStart: math.NaN(),
		log:           logging.Component("gesture.migration"),
	}
}

// Press lets a migration in flight finish.
func (m *Migration) Press() {}

func (m *Migration) StartDrag() {
	m.movementStart = math.NaN()
	if !m.Settling() {
		m.index = m.nearestIndex()
	}
}

func (m *Migration) Drag(position, _ float64) {
	if math.IsNaN(m.movementStart) {
		m.movementStart = position
		return
	}

	swipe := position - m.movementStart
	switch {
	case swipe > m.swipeWidth:
		m.movementStart = position
		m.migrate(m.index - 1)
	case -swipe > m.swipeWidth:
		m.movementStart = position
		m.migrate(m.index + 1)
	}
}

func (m *Migration) Release() {
	m.movementStart = math.NaN()
}

func (m *Migration) SettleTo(index int) {
	m.migrate(index)
}

func (m *Migration) Stop() {
	if m.animator != nil {
		m.animator.Cancel()
	}
}

func (m *Migration) Settling() bool {
	return m.animator != nil && m.animator.Running()
}

// Index returns the column the deck is migrating to.
func (m *Migration) Index() int {
	return m.index
}

func (m *Migration) nearestIndex() int {
	distance := m.scroller.ColumnDistance()
	if distance <= 0 {
		return 0
	}
	return int(math.Round(m.scroller.ScrollPosition() / distance))
}

func (m *Migration) migrate(index int) {
	count := m.scroller.ColumnCount()
	if count == 0 {
		return
	}
	index = max(0, min(count-1, index))
	m.index = index

	now := m.handler.Now()
	distance := m.scroller.ColumnDistance()
	start := m.scroller.ScrollPosition()
	end := float64(index) * distance

	// A migration retargeted to a nearby end keeps the pace of the one
	// it replaces.
	duration := m.duration
	if math.Abs(end-start) < distance*2/3 {
		duration = max(0, min(m.duration, now.Sub(m.startTime)))
	}
	m.startTime = now

	m.log.Debug().Int("index", index).Dur("duration", duration).Msg("migrate")

	m.Stop()
	m.last = start
	m.animator = anim.NewFloatAnimator(m.handler, duration, anim.Decelerate, start, end, func(value float64) {
		m.scroller.ScrollBy(m.last - value)
		m.last = value
	})
	m.animator.Start()
}
