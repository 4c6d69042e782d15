// Package listview is a virtualized list for bubbletea programs. Only a fixed batch of items around the scroll
// position is rendered at any time, into a pool of slots that is recycled as the list scrolls.
//
// Option changes made with Set are coalesced into a single redraw. Scrolling recomputes the window at most once per
// frame, and is held back briefly after a keypress so that smooth scrolling by page, home and end keys can settle.
package listview

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"github.com/robinovitch61/vl/internal/constants"
	"github.com/robinovitch61/vl/internal/dev"
	"github.com/robinovitch61/vl/internal/frame"
	"github.com/robinovitch61/vl/internal/heights"
	"github.com/robinovitch61/vl/internal/invalidation"
	"github.com/robinovitch61/vl/internal/message"
	"github.com/robinovitch61/vl/internal/slot"
	"github.com/robinovitch61/vl/internal/viewport"
	"github.com/robinovitch61/vl/internal/window"
	"strings"
	"time"
)

// Callback runs once the redraw applying the options it was passed with has completed
type Callback = invalidation.Callback

// Props are fixed for the lifetime of a list view
type Props struct {
	// Virtualized renders only BatchSize items at a time. Otherwise every item is rendered and scrolling never
	// triggers a redraw
	Virtualized bool

	// Viewport selects where the list scrolls
	Viewport viewport.Spec

	// Node is the node the list is mounted in, where automatic viewport resolution starts
	Node viewport.Node

	// BatchSize is the number of slots, which should exceed the number of items visible at once
	BatchSize int

	// MeasureItems measures every rendered item instead of assuming they are all DefaultItemHeight rows tall
	MeasureItems bool

	// Clock is the time source for frames and keypress blocking
	Clock frame.Clock
}

// DefaultProps is a virtualized list in the nearest scrollable node or the window
func DefaultProps() Props {
	return Props{
		Virtualized: true,
		BatchSize:   constants.DefaultBatchSize,
		Clock:       frame.System{},
	}
}

// Model is a list view. Like other bubbletea models it is a value: Update returns the updated model, and methods
// with pointer receivers must be called on the instance the program keeps
type Model[T any] struct {
	id      string
	props   Props
	clock   frame.Clock
	opts    options[T]
	machine *invalidation.Machine

	heights      *heights.Model
	resetHeights bool
	pool         *slot.Pool
	engine       *window.Engine
	lastWindow   window.Result
	vp           viewport.Viewport
	skeleton     skeleton

	// active delegated events and lifecycle subscriptions, rebound by redraws applying events
	delegates     []delegate[T]
	subscriptions []subscription[T]

	// keypress blocking of viewport changes
	blockedUntil time.Time
	retryPending bool

	rendered bool
	removed  bool
	err      error

	width, windowHeight int
	haveWindowSize      bool
	x, y                int
}

// New creates a list view with default options. Nothing is drawn until Render
func New[T any](props Props) Model[T] {
	if props.BatchSize <= 0 {
		props.BatchSize = constants.DefaultBatchSize
	}
	if props.Clock == nil {
		props.Clock = frame.System{}
	}
	interval := props.Viewport.FrameInterval
	if interval <= 0 {
		interval = constants.FrameInterval
	}

	id := uuid.New().String()
	opts := defaultOptions[T]()
	return Model[T]{
		id:      id,
		props:   props,
		clock:   props.Clock,
		opts:    opts,
		machine: invalidation.New(invalidation.NewScheduler(id, props.Clock, interval)),
		heights: heights.New(opts.defaultItemHeight, !props.MeasureItems),
	}
}

// ID identifies the list view in the messages it schedules
func (m Model[T]) ID() string {
	return m.id
}

// Set applies opts and invalidates what they affect. cb runs after the redraw that applies them, or right away if
// there are no options. An invalid option fails the whole call and nothing is applied
func (m *Model[T]) Set(cb Callback, opts ...Option[T]) (tea.Cmd, error) {
	if m.removed {
		return nil, ErrRemoved
	}
	if len(opts) == 0 {
		if cb != nil {
			return cb(), nil
		}
		return nil, nil
	}

	next := m.opts
	next.set = 0
	for _, opt := range opts {
		if err := opt(&next); err != nil {
			return nil, err
		}
	}
	mask := next.invalidation()
	if next.set&fieldDefaultItemHeight != 0 || len(next.items) != m.heights.Count() {
		m.resetHeights = true
	}
	m.opts = next
	dev.Debugf("list %s set invalidates %s", m.id, mask)
	return m.machine.Invalidate(mask, cb), nil
}

// Render attaches the list view and draws it for the first time. It may only be called once
func (m *Model[T]) Render(cb Callback) (tea.Cmd, error) {
	if m.removed {
		return nil, ErrRemoved
	}
	if m.rendered {
		return nil, ErrRendered
	}
	m.rendered = true
	return tea.Batch(m.machine.Attach(), m.machine.Invalidate(invalidation.All, cb)), nil
}

// Remove tears the list view down. Scheduled redraws and blocked change retries stop
func (m *Model[T]) Remove() {
	if m.removed {
		return
	}
	m.removed = true
	m.retryPending = false
	m.machine.Teardown()
	if m.vp != nil {
		m.vp.Remove()
	}
}

// SetPosition sets where on screen the top left of the list is, for locating clicks
func (m *Model[T]) SetPosition(x, y int) {
	m.x, m.y = x, y
}

// SetWidth sets the width rows are truncated to. Window size messages also set it
func (m *Model[T]) SetWidth(width int) {
	m.width = max(0, width)
}

func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	dev.DebugUpdateMsg("ListView", msg)
	if m.removed {
		return m, nil
	}

	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case message.RedrawMsg:
		if msg.Owner == m.id {
			cmds = append(cmds, m.redraw(msg))
		}
		return m, tea.Batch(cmds...)

	case message.RetryChangeMsg:
		if msg.Owner == m.id {
			m.retryPending = false
			cmds = append(cmds, m.onViewportChange())
		}
		return m, tea.Batch(cmds...)

	case tea.WindowSizeMsg:
		m.width, m.windowHeight = msg.Width, msg.Height
		m.haveWindowSize = true

	case tea.KeyPressMsg:
		cmds = append(cmds, dispatch(m.delegates, Event[T]{Type: EventKey, Key: msg.String(), Index: -1}))

	case tea.MouseClickMsg:
		if e, ok := m.locate(msg.X-m.x, msg.Y-m.y); ok {
			cmds = append(cmds, dispatch(m.delegates, e))
		}
	}

	if m.vp != nil {
		events, cmd := m.vp.Update(msg)
		cmds = append(cmds, cmd)
		for _, e := range events {
			switch e.Type {
			case viewport.Keypress:
				m.onKeypress()
			case viewport.Change:
				cmds = append(cmds, m.onViewportChange())
			}
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model[T]) onKeypress() {
	if !m.props.Virtualized {
		return
	}
	m.blockedUntil = m.clock.Now().Add(constants.KeypressBlockDuration)
}

// onViewportChange asks for a redraw on the next frame, unless a recent keypress blocks it. A blocked change is
// retried until the block passes. Only one retry is outstanding at a time
func (m *Model[T]) onViewportChange() tea.Cmd {
	if !m.props.Virtualized || m.removed {
		return nil
	}
	if !m.clock.Now().Before(m.blockedUntil) {
		return m.machine.RequestFrame()
	}
	if m.retryPending {
		return nil
	}
	m.retryPending = true
	id := m.id
	return m.clock.Tick(constants.BlockedChangeRetryInterval, func(time.Time) tea.Msg {
		return message.RetryChangeMsg{Owner: id}
	})
}

// redraw applies everything invalidated since the last redraw, in the order structure, events, items, then moves the
// window to the current scroll position
func (m *Model[T]) redraw(msg message.RedrawMsg) tea.Cmd {
	mask, ok := m.machine.Begin(msg)
	if !ok {
		return nil
	}

	cmds := []tea.Cmd{notify(m.subscriptions, WillRedraw)}
	for _, flag := range invalidation.Order {
		if !mask.Has(flag) {
			continue
		}
		switch flag {
		case invalidation.Structure:
			cmds = append(cmds, m.rebuild())
		case invalidation.Events:
			m.delegates = m.opts.delegates
			m.subscriptions = m.opts.subscriptions
		case invalidation.Items:
			m.resetItems()
		}
	}
	if mask.Has(invalidation.Items) || len(m.opts.items) > 0 {
		cmds = append(cmds, m.rewindow())
	}

	cbs, next := m.machine.Finish()
	cmds = append(cmds, notify(m.subscriptions, DidRedraw))
	for _, cb := range cbs {
		if cb != nil {
			cmds = append(cmds, cb())
		}
	}
	cmds = append(cmds, next)
	return tea.Batch(cmds...)
}

// rebuild renders the skeleton and replaces the viewport and slot pool
func (m *Model[T]) rebuild() tea.Cmd {
	var cmds []tea.Cmd

	sk, err := parseSkeleton(m.opts.listTemplate(m.opts.model))
	m.err = err
	if err != nil {
		dev.Debugf("list %s: %v", m.id, err)
		cmds = append(cmds, func() tea.Msg {
			return message.ErrMsg{Err: err}
		})
	}
	m.skeleton = sk

	if m.vp != nil {
		m.vp.Remove()
	}
	m.vp = viewport.Resolve(m.props.Viewport, m.props.Node, m.clock)
	if m.haveWindowSize {
		_, cmd := m.vp.Update(tea.WindowSizeMsg{Width: m.width, Height: m.windowHeight})
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, m.vp.SetChrome(sk.chrome()))

	m.pool = slot.NewPool(m.poolSize())
	m.engine = window.New(m.pool, m.heights)
	return tea.Batch(cmds...)
}

func (m Model[T]) poolSize() int {
	if m.props.Virtualized {
		return m.props.BatchSize
	}
	return max(1, len(m.opts.items))
}

// resetItems makes the next window pass re-render every slot, resetting heights if the item count or default height
// changed
func (m *Model[T]) resetItems() {
	count := len(m.opts.items)
	if m.resetHeights || m.heights.Count() != count || m.heights.DefaultHeight() != m.opts.defaultItemHeight {
		m.heights.Reset(count, m.opts.defaultItemHeight)
	}
	m.resetHeights = false
	if m.engine == nil {
		return
	}
	if m.pool.Size() != m.poolSize() {
		m.pool = slot.NewPool(m.poolSize())
		m.engine = window.New(m.pool, m.heights)
	}
	m.engine.Invalidate()
}

// rewindow binds the items at the current scroll position into the pool
func (m *Model[T]) rewindow() tea.Cmd {
	if m.engine == nil || m.vp == nil {
		return nil
	}
	cmd := m.vp.SetContentHeight(m.heights.TotalHeight(m.heights.Count()))
	m.lastWindow = m.engine.Update(m.vp.ScrollOffset(), m.renderItem)
	if m.heights.Uniform() {
		return cmd
	}
	// measuring may have changed the total
	return tea.Batch(cmd, m.vp.SetContentHeight(m.heights.TotalHeight(m.heights.Count())))
}

func (m *Model[T]) renderItem(index int) (string, int) {
	content := m.opts.itemTemplate(m.opts.items[index])
	if m.heights.Uniform() {
		h := m.heights.DefaultHeight()
		return fitHeight(content, h), h
	}
	h := max(1, lipgloss.Height(content))
	m.heights.Measure(index, h)
	return content, h
}

// fitHeight clips or pads content to exactly rows lines
func fitHeight(content string, rows int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > rows {
		lines = lines[:rows]
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
