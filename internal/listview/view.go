package listview

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/robinovitch61/vl/internal/invalidation"
	"github.com/robinovitch61/vl/internal/slot"
	"github.com/robinovitch61/vl/internal/viewport"
	"github.com/robinovitch61/vl/internal/window"
	"strings"
)

// View renders the header, the visible rows of the slots, and the footer. Rows no slot covers are blank
func (m Model[T]) View() string {
	if m.vp == nil || m.removed {
		return ""
	}
	var lines []string
	lines = append(lines, m.skeleton.header...)
	lines = append(lines, m.rows()...)
	lines = append(lines, m.skeleton.footer...)
	if m.width > 0 {
		for i := range lines {
			lines[i] = ansi.Truncate(lines[i], m.width, "")
		}
	}
	return strings.Join(lines, "\n")
}

// rows returns the visible content rows, [offset, offset+extent)
func (m Model[T]) rows() []string {
	extent := m.vp.VisibleExtent()
	offset := m.vp.ScrollOffset()
	rows := make([]string, extent)
	if m.pool == nil {
		return rows
	}
	m.pool.Each(func(s *slot.Slot) {
		if s.Top >= offset+extent || s.Top+s.Height <= offset {
			return
		}
		for j, line := range strings.Split(s.Content, "\n") {
			if j >= s.Height {
				break
			}
			if row := s.Top + j - offset; row >= 0 && row < extent {
				rows[row] = line
			}
		}
	})
	return rows
}

// locate returns the click event for position x, y relative to the list. It returns false outside the list
func (m Model[T]) locate(x, y int) (Event[T], bool) {
	e := Event[T]{Type: EventClick, Index: -1, X: x, Y: y}
	if m.vp == nil || x < 0 || y < 0 || (m.width > 0 && x >= m.width) {
		return e, false
	}
	header := len(m.skeleton.header)
	extent := m.vp.VisibleExtent()
	switch {
	case y < header:
		e.Target = TargetHeader
	case y < header+extent:
		row := m.vp.ScrollOffset() + y - header
		if s, ok := m.slotAt(row); ok {
			e.Target = TargetItem
			e.Index = s.Index
			e.Item = m.opts.items[s.Index]
		}
	case y < header+extent+len(m.skeleton.footer):
		e.Target = TargetFooter
	default:
		return e, false
	}
	return e, true
}

// slotAt returns the occupied slot covering content row
func (m Model[T]) slotAt(row int) (slot.Slot, bool) {
	if m.pool == nil {
		return slot.Slot{}, false
	}
	for _, s := range m.pool.Slots() {
		if s.Occupied() && s.Index < len(m.opts.items) && row >= s.Top && row < s.Top+s.Height {
			return s, true
		}
	}
	return slot.Slot{}, false
}

// Range returns the window of item indexes currently bound into slots, [start, end)
func (m Model[T]) Range() (int, int) {
	return m.lastWindow.Start, m.lastWindow.End
}

// LastWindow returns the result of the latest window pass
func (m Model[T]) LastWindow() window.Result {
	return m.lastWindow
}

// Slots returns a copy of the slot pool in physical order
func (m Model[T]) Slots() []slot.Slot {
	if m.pool == nil {
		return nil
	}
	return m.pool.Slots()
}

// Fillers returns the rows above and below the bound window, which are never rendered
func (m Model[T]) Fillers() (int, int) {
	start, end := m.Range()
	total := m.heights.TotalHeight(m.heights.Count())
	if end <= start {
		return 0, total
	}
	return m.heights.Offset(start), total - m.heights.Offset(end)
}

// Redraws returns the number of completed redraws
func (m Model[T]) Redraws() int {
	return m.machine.Redraws()
}

func (m Model[T]) State() invalidation.State {
	return m.machine.State()
}

// Viewport returns the current viewport, nil before the first redraw
func (m Model[T]) Viewport() viewport.Viewport {
	return m.vp
}

// Err returns the configuration error found by the latest structural redraw, if any
func (m Model[T]) Err() error {
	return m.err
}

// Items returns the current items
func (m Model[T]) Items() []T {
	return m.opts.items
}

// Model returns the current model
func (m Model[T]) Model() any {
	return m.opts.model
}

func (m Model[T]) Rendered() bool {
	return m.rendered
}

func (m Model[T]) Removed() bool {
	return m.removed
}

// Blocked reports whether viewport changes are currently held back by a recent keypress
func (m Model[T]) Blocked() bool {
	return m.clock.Now().Before(m.blockedUntil)
}
