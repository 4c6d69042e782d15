package viewport

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"fmt"
	"github.com/google/uuid"
	"github.com/robinovitch61/vl/internal/constants"
	"github.com/robinovitch61/vl/internal/dev"
	"github.com/robinovitch61/vl/internal/frame"
	"github.com/robinovitch61/vl/internal/message"
	"github.com/robinovitch61/vl/internal/window"
	"time"
)

// Terminology:
// - content: the rows of everything the list could show, top to bottom
// - extent: the number of content rows visible at once
// - chrome: rows of the viewport taken by fixed header and footer lines, not available to content
// - offset: the content row shown at the top of the viewport
//
//   content row     viewport
//   0
//   1
//   2 <- offset     +-------+  row 0
//   3               |       |  row 1
//   4               +-------+  row 2, extent 3
//   5
//

// EventType is the kind of notification a viewport emits
type EventType int

const (
	// Change means the offset, extent or content height changed since the last frame
	Change EventType = iota
	// Keypress means a key was pressed while the viewport had focus
	Keypress
)

func (t EventType) String() string {
	if t == Keypress {
		return "keypress"
	}
	return "change"
}

// Event is a viewport notification
type Event struct {
	Type EventType
	// Key is the pressed key, for Keypress events
	Key string
}

// State is a snapshot of a viewport's scroll state
type State struct {
	ScrollOffset     int
	VisibleExtent    int
	LastScrollOffset int
	Direction        window.Direction
}

func (s State) String() string {
	return fmt.Sprintf("offset %d extent %d last %d %s", s.ScrollOffset, s.VisibleExtent, s.LastScrollOffset, s.Direction)
}

// Viewport is the scrollable region a list is displayed in
type Viewport interface {
	ID() string
	Kind() Kind
	State() State
	ScrollOffset() int
	VisibleExtent() int
	ContentHeight() int
	// SetContentHeight sets the height of everything that can be scrolled through
	SetContentHeight(rows int) tea.Cmd
	// SetChrome reserves rows of the viewport for content that does not scroll
	SetChrome(rows int) tea.Cmd
	ScrollTo(offset int) tea.Cmd
	ScrollBy(delta int) tea.Cmd
	// Update handles navigation, resize and the viewport's own frame messages. It returns the notifications msg caused
	Update(msg tea.Msg) ([]Event, tea.Cmd)
	Remove()
	Removed() bool
}

// Spec describes the viewport a list wants
type Spec struct {
	Kind Kind
	// Pane is the node to scroll in when Kind is Pane
	Pane          Node
	FrameInterval time.Duration
	KeyMap        *KeyMap
}

// Resolve picks the viewport described by spec. With Kind Auto it walks up from root to the first node that scrolls,
// falling back to the window
func Resolve(spec Spec, root Node, clock frame.Clock) Viewport {
	switch spec.Kind {
	case Window:
		return NewUnbounded(spec, clock)
	case Pane:
		if spec.Pane != nil {
			return NewBounded(spec.Pane, spec, clock)
		}
		if root != nil {
			return NewBounded(root, spec, clock)
		}
		return NewUnbounded(spec, clock)
	}
	if n := nearestScrollable(root); n != nil {
		return NewBounded(n, spec, clock)
	}
	return NewUnbounded(spec, clock)
}

// core is the scroll state and frame debouncing shared by both viewports. extent reports the variant's visible rows
type core struct {
	id       string
	clock    frame.Clock
	interval time.Duration
	keyMap   KeyMap
	extent   func() int

	offset        int
	last          int
	direction     window.Direction
	contentHeight int
	chrome        int

	// smooth scrolling toward target, one step per frame
	target    int
	animating bool

	// frame debouncing
	seq         int
	tickPending bool
	changed     bool
	lastExtent  int

	removed bool
}

func newCore(spec Spec, clock frame.Clock) core {
	c := core{
		id:       uuid.New().String(),
		clock:    clock,
		interval: spec.FrameInterval,
		keyMap:   DefaultKeyMap(),
	}
	if c.interval <= 0 {
		c.interval = constants.FrameInterval
	}
	if spec.KeyMap != nil {
		c.keyMap = *spec.KeyMap
	}
	return c
}

func (c *core) ID() string {
	return c.id
}

func (c *core) VisibleExtent() int {
	return max(0, c.extent()-c.chrome)
}

func (c *core) ScrollOffset() int {
	return c.offset
}

func (c *core) ContentHeight() int {
	return c.contentHeight
}

func (c *core) State() State {
	return State{
		ScrollOffset:     c.offset,
		VisibleExtent:    c.VisibleExtent(),
		LastScrollOffset: c.last,
		Direction:        c.direction,
	}
}

func (c *core) maxOffset() int {
	return max(0, c.contentHeight-c.VisibleExtent())
}

func (c *core) SetContentHeight(rows int) tea.Cmd {
	if c.removed {
		return nil
	}
	rows = max(0, rows)
	if rows != c.contentHeight {
		c.contentHeight = rows
		c.changed = true
		c.setOffset(c.offset)
	}
	return c.flush()
}

func (c *core) SetChrome(rows int) tea.Cmd {
	if c.removed {
		return nil
	}
	rows = max(0, rows)
	if rows != c.chrome {
		c.chrome = rows
		c.changed = true
		c.setOffset(c.offset)
	}
	return c.flush()
}

func (c *core) ScrollTo(offset int) tea.Cmd {
	if c.removed {
		return nil
	}
	c.animating = false
	c.scroll(offset)
	return c.flush()
}

func (c *core) ScrollBy(delta int) tea.Cmd {
	return c.ScrollTo(c.offset + delta)
}

func (c *core) Remove() {
	c.removed = true
	c.animating = false
	c.changed = false
}

func (c *core) Removed() bool {
	return c.removed
}

// setOffset clamps offset into the scrollable range and records the scroll direction
func (c *core) setOffset(offset int) {
	offset = max(0, min(offset, c.maxOffset()))
	if offset == c.offset {
		return
	}
	c.last = c.offset
	c.offset = offset
	if c.offset < c.last {
		c.direction = window.Up
	} else {
		c.direction = window.Down
	}
	c.changed = true
}

// scroll is a scroll sample. A sample that doesn't move the offset still resets the direction, to Down
func (c *core) scroll(offset int) {
	if max(0, min(offset, c.maxOffset())) == c.offset {
		c.last = c.offset
		c.direction = window.Down
		return
	}
	c.setOffset(offset)
}

// smoothScrollTo starts moving toward offset, half of the remaining distance per frame
func (c *core) smoothScrollTo(offset int) {
	c.target = max(0, min(offset, c.maxOffset()))
	c.animating = c.target != c.offset
}

func (c *core) step() {
	if !c.animating {
		return
	}
	c.target = min(c.target, c.maxOffset())
	remaining := c.target - c.offset
	delta := remaining / 2
	if delta == 0 {
		delta = remaining
	}
	c.setOffset(c.offset + delta)
	if c.offset == c.target {
		c.animating = false
	}
}

// flush schedules the next frame if there is something to report or animate and no frame is on its way
func (c *core) flush() tea.Cmd {
	if c.removed || c.tickPending || !(c.changed || c.animating) {
		return nil
	}
	c.tickPending = true
	c.seq++
	msg := message.FrameMsg{Owner: c.id, Seq: c.seq}
	return c.clock.Tick(c.interval, func(t time.Time) tea.Msg {
		msg.At = t
		return msg
	})
}

func (c *core) update(msg tea.Msg) ([]Event, tea.Cmd) {
	if c.removed {
		return nil, nil
	}

	var events []Event
	switch msg := msg.(type) {
	case message.FrameMsg:
		if msg.Owner != c.id || msg.Seq != c.seq || !c.tickPending {
			return nil, nil
		}
		c.tickPending = false
		c.step()
		if extent := c.VisibleExtent(); extent != c.lastExtent {
			c.lastExtent = extent
			c.changed = true
			c.setOffset(c.offset)
		}
		if c.changed {
			c.changed = false
			events = append(events, Event{Type: Change})
		}

	case tea.KeyPressMsg:
		events = append(events, Event{Type: Keypress, Key: msg.String()})
		half := max(1, c.VisibleExtent()/2)
		page := max(1, c.VisibleExtent())
		switch {
		case key.Matches(msg, c.keyMap.Up):
			c.animating = false
			c.scroll(c.offset - 1)
		case key.Matches(msg, c.keyMap.Down):
			c.animating = false
			c.scroll(c.offset + 1)
		case key.Matches(msg, c.keyMap.HalfPageUp):
			c.smoothScrollTo(c.scrollBase() - half)
		case key.Matches(msg, c.keyMap.HalfPageDown):
			c.smoothScrollTo(c.scrollBase() + half)
		case key.Matches(msg, c.keyMap.PageUp):
			c.smoothScrollTo(c.scrollBase() - page)
		case key.Matches(msg, c.keyMap.PageDown):
			c.smoothScrollTo(c.scrollBase() + page)
		case key.Matches(msg, c.keyMap.Top):
			c.smoothScrollTo(0)
		case key.Matches(msg, c.keyMap.Bottom):
			c.smoothScrollTo(c.maxOffset())
		}

	case tea.MouseWheelMsg:
		c.animating = false
		switch msg.Button {
		case tea.MouseWheelUp:
			c.scroll(c.offset - constants.MouseWheelRows)
		case tea.MouseWheelDown:
			c.scroll(c.offset + constants.MouseWheelRows)
		}

	case tea.WindowSizeMsg:
		// picked up by the extent check on the next frame
		c.changed = true
	}
	return events, c.flush()
}

// scrollBase is where a relative smooth scroll is measured from. Repeated page keys accumulate on the pending target
func (c *core) scrollBase() int {
	if c.animating {
		return c.target
	}
	return c.offset
}

// Bounded scrolls inside a Node. Its extent is the node's height
type Bounded struct {
	core
	node Node
}

func NewBounded(node Node, spec Spec, clock frame.Clock) *Bounded {
	b := &Bounded{core: newCore(spec, clock), node: node}
	b.extent = b.node.Height
	b.lastExtent = b.VisibleExtent()
	return b
}

func (b *Bounded) Kind() Kind {
	return Pane
}

func (b *Bounded) Node() Node {
	return b.node
}

func (b *Bounded) Update(msg tea.Msg) ([]Event, tea.Cmd) {
	dev.DebugUpdateMsg("Bounded viewport", msg)
	return b.update(msg)
}

// Unbounded scrolls the whole terminal window. Its extent is the window height
type Unbounded struct {
	core
	height int
}

func NewUnbounded(spec Spec, clock frame.Clock) *Unbounded {
	u := &Unbounded{core: newCore(spec, clock)}
	u.extent = func() int {
		return u.height
	}
	return u
}

func (u *Unbounded) Kind() Kind {
	return Window
}

func (u *Unbounded) Update(msg tea.Msg) ([]Event, tea.Cmd) {
	dev.DebugUpdateMsg("Unbounded viewport", msg)
	if msg, ok := msg.(tea.WindowSizeMsg); ok && !u.removed {
		u.height = max(0, msg.Height)
		u.setOffset(u.offset)
	}
	return u.update(msg)
}

// assert both viewports implement Viewport
var (
	_ Viewport = &Bounded{}
	_ Viewport = &Unbounded{}
)
