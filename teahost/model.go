// Package teahost runs a deck of cards as a Bubble Tea program. The Model is
// the deck's layout host, its frame clock and its timer source, so the same
// layout managers and gesture policies that drive the tcell widgets drive it
// too.
package teahost

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/xqrs/columnlayout/anim"
	"github.com/xqrs/columnlayout/config"
	"github.com/xqrs/columnlayout/gesture"
	"github.com/xqrs/columnlayout/internal/logging"
	"github.com/xqrs/columnlayout/keybind"
	"github.com/xqrs/columnlayout/layout"
)

// Card is one column of the deck.
type Card struct {
	Title string
	Body  string
}

type placement struct {
	width, height int
	x, y          float64
	depth         int
	seq           int
}

// Model is a tea.Model showing a deck of cards above a help line.
type Model struct {
	cards    []*Card
	keys     map[string][]string
	actions  map[string]string
	manager  layout.Manager
	policy   gesture.Policy
	detector *gesture.Detector
	nav      *gesture.Navigator
	styles   Styles

	width, height int
	placements    map[*Card]*placement
	seq           int
	pressed       bool

	now           func() time.Time
	frameInterval time.Duration
	onFrame       func(time.Time)
	frameGen      uint64
	tickGen       uint64

	timers    map[int]*timer
	scheduled []*timer
	timerSeq  int

	log zerolog.Logger
}

var (
	_ tea.Model         = (*Model)(nil)
	_ layout.Host       = (*Model)(nil)
	_ layout.Adapter    = (*Model)(nil)
	_ anim.FrameClock   = (*Model)(nil)
	_ gesture.Scheduler = (*Model)(nil)
)

// Option configures a Model.
type Option func(*Model)

// WithClock replaces time.Now as the source of frame times.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// WithStyles replaces the default styles.
func WithStyles(styles Styles) Option {
	return func(m *Model) {
		m.styles = styles
	}
}

// New returns a deck of cards configured by cfg. Nothing is laid out until
// the first tea.WindowSizeMsg.
func New(cfg config.Config, cards []Card, options ...Option) (*Model, error) {
	m := &Model{
		keys:          cfg.Bindings(),
		actions:       make(map[string]string),
		styles:        DefaultStyles(),
		placements:    make(map[*Card]*placement),
		now:           time.Now,
		frameInterval: cfg.Animation.FrameInterval,
		timers:        make(map[int]*timer),
		log:           logging.Component("teahost"),
	}
	for _, option := range options {
		option(m)
	}
	if m.frameInterval <= 0 {
		m.frameInterval = 16 * time.Millisecond
	}
	for i := range cards {
		card := cards[i]
		m.cards = append(m.cards, &card)
	}
	for action, keys := range m.keys {
		for _, key := range keys {
			m.actions[keybind.Normalize(key)] = action
		}
	}

	handler := anim.NewFrameHandler(m)
	manager, err := cfg.Manager(handler)
	if err != nil {
		return nil, fmt.Errorf("build layout: %w", err)
	}
	policy, err := gesture.NewPolicy(cfg.PolicyConfig(), manager, handler)
	if err != nil {
		return nil, fmt.Errorf("build scroll policy: %w", err)
	}

	axis := gesture.AxisHorizontal
	if manager.Orientation() == layout.OrientationVertical {
		axis = gesture.AxisVertical
	}
	m.manager = manager
	m.policy = policy
	m.nav = gesture.NewNavigator(manager, policy)
	m.detector = gesture.NewDetector(cfg.DetectorConfig(axis), manager, policy)
	if rearranger, ok := manager.(gesture.Rearranger); ok {
		m.detector.SetRearranger(rearranger).SetScheduler(m)
	}
	return m, nil
}

// Cards returns the cards in their current order.
func (m *Model) Cards() []Card {
	cards := make([]Card, len(m.cards))
	for i, card := range m.cards {
		cards[i] = *card
	}
	return cards
}

// Manager returns the deck's layout manager.
func (m *Model) Manager() layout.Manager {
	return m.manager
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case frameMsg:
		m.frame(msg)
	case timerMsg:
		m.fire(msg)
	}
	if next := m.commands(); next != nil {
		cmd = tea.Batch(cmd, next)
	}
	return m, cmd
}

func (m *Model) resize(width, height int) {
	if width == m.width && height == m.height {
		return
	}
	m.width, m.height = width, height
	m.log.Debug().Int("width", width).Int("height", height).Msg("window size")
	if m.manager.Host() == nil {
		m.manager.Attach(m, m)
		return
	}
	m.manager.Relayout()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.actions[keybind.Normalize(msg.String())] {
	case config.ActionQuit:
		return tea.Quit
	case config.ActionNext:
		m.nav.Step(1)
	case config.ActionPrevious:
		m.nav.Step(-1)
	case config.ActionFirst:
		m.nav.GoTo(0)
	case config.ActionLast:
		m.nav.Last()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	x, y := float64(msg.X), float64(msg.Y)
	_, deckHeight := m.Size()

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if msg.Y >= deckHeight {
				return
			}
			m.pressed = true
			m.detector.Handle(gesture.Single(gesture.ActionDown, x, y))
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			if !m.pressed {
				m.nav.Step(-1)
			}
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			if !m.pressed {
				m.nav.Step(1)
			}
		}
	case tea.MouseActionMotion:
		if m.pressed {
			m.detector.Handle(gesture.Single(gesture.ActionMove, x, y))
		}
	case tea.MouseActionRelease:
		if m.pressed {
			m.pressed = false
			m.detector.Handle(gesture.Single(gesture.ActionUp, x, y))
		}
	}
}

// Size implements layout.Host. The last row holds the help line.
func (m *Model) Size() (width, height int) {
	return m.width, max(m.height-1, 0)
}

// Attach implements layout.Host.
func (m *Model) Attach(h layout.ContentHandle, width, height int) {
	card, ok := h.(*Card)
	if !ok {
		m.log.Warn().Type("handle", h).Msg("column content is not a card")
		return
	}
	m.seq++
	m.placements[card] = &placement{width: width, height: height, seq: m.seq}
}

// Detach implements layout.Host.
func (m *Model) Detach(h layout.ContentHandle) {
	if card, ok := h.(*Card); ok {
		delete(m.placements, card)
	}
}

// SetOffset implements layout.Host.
func (m *Model) SetOffset(h layout.ContentHandle, x, y float64) {
	if pl := m.placementOf(h); pl != nil {
		pl.x, pl.y = x, y
	}
}

// SetDepth implements layout.Host.
func (m *Model) SetDepth(h layout.ContentHandle, depth int) {
	if pl := m.placementOf(h); pl != nil {
		pl.depth = depth
	}
}

func (m *Model) placementOf(h layout.ContentHandle) *placement {
	card, ok := h.(*Card)
	if !ok {
		return nil
	}
	return m.placements[card]
}

// ItemCount implements layout.Adapter.
func (m *Model) ItemCount() int {
	return len(m.cards)
}

// ContentAt implements layout.Adapter.
func (m *Model) ContentAt(index int) layout.ContentHandle {
	return m.cards[index]
}

// OnRearranged implements layout.Adapter.
func (m *Model) OnRearranged(oldIndex, newIndex int) {
	m.cards[oldIndex], m.cards[newIndex] = m.cards[newIndex], m.cards[oldIndex]
}

// attached returns the attached cards bottom first.
func (m *Model) attached() []*Card {
	cards := make([]*Card, 0, len(m.placements))
	for card := range m.placements {
		cards = append(cards, card)
	}
	sort.Slice(cards, func(i, j int) bool {
		a, b := m.placements[cards[i]], m.placements[cards[j]]
		if a.depth != b.depth {
			return a.depth < b.depth
		}
		return a.seq < b.seq
	})
	return cards
}

// View implements tea.Model.
func (m *Model) View() string {
	return m.draw().render(m.styles.of)
}

func (m *Model) draw() *canvas {
	cv := newCanvas(m.width, m.height)
	if m.width <= 0 || m.height <= 0 {
		return cv
	}

	width, height := m.Size()
	cv.clip(0, 0, width, height)
	current, held := m.highlighted()
	for _, card := range m.attached() {
		pl := m.placements[card]
		border, kind := lipgloss.RoundedBorder(), kindBorder
		switch card {
		case held:
			border, kind = lipgloss.ThickBorder(), kindHeld
		case current:
			kind = kindCurrent
		}
		x, y := int(math.Round(pl.x)), int(math.Round(pl.y))
		drawCard(cv, card, x, y, pl.width, pl.height, border, kind)
	}

	cv.clip(0, height, m.width, m.height-height)
	cv.print(0, height, m.width, m.helpLine(), kindHelp)
	return cv
}

func (m *Model) highlighted() (current, held *Card) {
	if len(m.cards) == 0 {
		return nil, nil
	}
	current = m.cards[m.manager.CurrentIndex()]
	if sessions, ok := m.manager.(interface {
		Session() (layout.RearrangeSession, bool)
	}); ok {
		if session, active := sessions.Session(); active {
			held = m.cards[session.ActiveIndex]
		}
	}
	return current, held
}

// helpLine lists the first key of every action.
func (m *Model) helpLine() string {
	var items []string
	for _, action := range []string{config.ActionPrevious, config.ActionNext, config.ActionFirst, config.ActionLast, config.ActionQuit} {
		if keys := m.keys[action]; len(keys) > 0 {
			items = append(items, keys[0]+" "+action)
		}
	}
	return strings.Join(items, " • ")
}

// drawCard draws an opaque bordered card with its title on the top border
// and its body wrapped inside.
func drawCard(cv *canvas, card *Card, x, y, width, height int, border lipgloss.Border, kind cellKind) {
	if width < 2 || height < 2 {
		return
	}
	right, bottom := x+width-1, y+height-1

	cv.fill(x+1, y+1, width-2, height-2, kindText)
	for col := x + 1; col < right; col++ {
		cv.set(col, y, border.Top, kind)
		cv.set(col, bottom, border.Bottom, kind)
	}
	for row := y + 1; row < bottom; row++ {
		cv.set(x, row, border.Left, kind)
		cv.set(right, row, border.Right, kind)
	}
	cv.set(x, y, border.TopLeft, kind)
	cv.set(right, y, border.TopRight, kind)
	cv.set(x, bottom, border.BottomLeft, kind)
	cv.set(right, bottom, border.BottomRight, kind)

	if width > 4 {
		cv.print(x+2, y, width-4, card.Title, kindTitle)
	}

	inner := width - 4
	if inner <= 0 || card.Body == "" {
		return
	}
	body := lipgloss.NewStyle().Width(inner).Render(card.Body)
	for i, line := range strings.Split(body, "\n") {
		if i >= height-2 {
			break
		}
		cv.print(x+2, y+1+i, inner, line, kindText)
	}
}
