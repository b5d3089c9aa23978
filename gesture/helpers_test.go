package gesture

import (
	"os"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// lineScroller is an unbounded deck of columns distance cells apart.
type lineScroller struct {
	position float64
	distance float64
	count    int
	deltas   []float64
}

func newLineScroller() *lineScroller {
	return &lineScroller{distance: 10, count: 10}
}

func (s *lineScroller) ScrollBy(delta float64) {
	s.deltas = append(s.deltas, delta)
	s.position -= delta
}

func (s *lineScroller) ScrollPosition() float64 { return s.position }
func (s *lineScroller) ColumnDistance() float64 { return s.distance }
func (s *lineScroller) ColumnCount() int        { return s.count }

type recordingPolicy struct {
	presses, starts, releases, stops int
	drags                            []float64
}

func (p *recordingPolicy) Press()                { p.presses++ }
func (p *recordingPolicy) StartDrag()            { p.starts++ }
func (p *recordingPolicy) Drag(_, delta float64) { p.drags = append(p.drags, delta) }
func (p *recordingPolicy) Release()              { p.releases++ }
func (p *recordingPolicy) SettleTo(int)          {}
func (p *recordingPolicy) Stop()                 { p.stops++ }
func (p *recordingPolicy) Settling() bool        { return false }

type recordingRearranger struct {
	starts   []float64
	moves    []float64
	finishes int
	refuse   bool
}

func (r *recordingRearranger) StartRearrange(y float64) bool {
	if r.refuse {
		return false
	}
	r.starts = append(r.starts, y)
	return true
}

func (r *recordingRearranger) RearrangeBy(delta float64) { r.moves = append(r.moves, delta) }
func (r *recordingRearranger) FinishRearrange()          { r.finishes++ }

type recordingContainer struct {
	requests []bool
}

func (c *recordingContainer) RequestExclusive(exclusive bool) {
	c.requests = append(c.requests, exclusive)
}

type nestedRecorder struct {
	calls  int
	axis   Axis
	delta  float64
	answer bool
}

func (n *nestedRecorder) CanScroll(_, _ float64, axis Axis, delta float64) bool {
	n.calls++
	n.axis = axis
	n.delta = delta
	return n.answer
}

// manualScheduler runs deferred calls when told to.
type manualScheduler struct {
	pending []*manualTimer
}

type manualTimer struct {
	after   time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &manualTimer{after: d, f: f}
	s.pending = append(s.pending, t)
	return t
}

// fireAll runs every pending call, including stopped ones, in deadline
// order. Running stopped timers checks that a late fire is ignored.
func (s *manualScheduler) fireAll() {
	pending := s.pending
	s.pending = nil
	sort.SliceStable(pending, func(i, j int) bool { return pending[i].after < pending[j].after })
	for _, t := range pending {
		t.fired = true
		t.f()
	}
}

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}
