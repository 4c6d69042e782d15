package listview

import (
	tea "charm.land/bubbletea/v2"
	"fmt"
	"github.com/robinovitch61/vl/internal/frame"
	"github.com/robinovitch61/vl/internal/message"
	"github.com/robinovitch61/vl/internal/viewport"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

var (
	epoch       = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	downKeyMsg  = tea.KeyPressMsg{Code: 'j', Text: "j"}
	endKeyMsg   = tea.KeyPressMsg{Code: tea.KeyEnd}
	enterKeyMsg = tea.KeyPressMsg{Code: tea.KeyEnter}
)

// textItem is the item used by the demo, {Text: i}
type textItem struct {
	Text int
}

func textItems(n int) []textItem {
	items := make([]textItem, n)
	for i := range items {
		items[i] = textItem{Text: i}
	}
	return items
}

func textTemplate(item textItem) string {
	return fmt.Sprintf("item %d", item.Text)
}

func lines(n int) []string {
	res := make([]string, n)
	for i := range res {
		res[i] = fmt.Sprintf("line %d", i)
	}
	return res
}

// harness drives a list view through a simulated event loop. Callbacks and handlers made with done report back as
// strings, collected in order
type harness[T any] struct {
	t     *testing.T
	clock *frame.Fake
	sim   *frame.Simulator
	list  Model[T]
	pane  *viewport.Box
	done  []string
	errs  []error
}

// paneProps returns virtualized props scrolling in a pane of the given height
func paneProps(height int) (Props, *viewport.Box) {
	pane := viewport.NewBox(nil, viewport.OverflowAuto, height)
	props := DefaultProps()
	props.Viewport = viewport.Spec{Kind: viewport.Pane, Pane: pane}
	return props, pane
}

func newHarness[T any](t *testing.T, props Props) *harness[T] {
	t.Helper()
	h := &harness[T]{t: t, clock: frame.NewFake(epoch)}
	if b, ok := props.Viewport.Pane.(*viewport.Box); ok {
		h.pane = b
	}
	props.Clock = h.clock
	h.list = New[T](props)
	h.sim = frame.NewSimulator(h.clock, func(msg tea.Msg) tea.Cmd {
		switch msg := msg.(type) {
		case string:
			h.done = append(h.done, msg)
			return nil
		case message.ErrMsg:
			h.errs = append(h.errs, msg.Err)
			return nil
		}
		var cmd tea.Cmd
		h.list, cmd = h.list.Update(msg)
		return cmd
	})
	return h
}

func done(name string) Callback {
	return func() tea.Cmd {
		return frame.Immediate(name)
	}
}

func handler[T any](name string) Handler[T] {
	return func(e Event[T]) tea.Cmd {
		return frame.Immediate(fmt.Sprintf("%s %s %s %d", name, e.Target, e.Key, e.Index))
	}
}

// set applies opts and runs the resulting command, without advancing time
func (h *harness[T]) set(cb Callback, opts ...Option[T]) {
	h.t.Helper()
	cmd, err := h.list.Set(cb, opts...)
	require.NoError(h.t, err)
	h.sim.Run(cmd)
}

// render renders the list and lets every scheduled frame play out
func (h *harness[T]) render(opts ...Option[T]) {
	h.t.Helper()
	if len(opts) > 0 {
		h.set(nil, opts...)
	}
	cmd, err := h.list.Render(done("rendered"))
	require.NoError(h.t, err)
	h.sim.Run(cmd)
	h.sim.Settle()
	require.False(h.t, h.sim.Exhausted())
}

func (h *harness[T]) send(msgs ...tea.Msg) {
	for _, msg := range msgs {
		h.sim.Run(frame.Immediate(msg))
	}
}

func (h *harness[T]) scrollTo(offset int) {
	h.sim.Run(h.list.Viewport().ScrollTo(offset))
	h.sim.Settle()
}

// delivered counts the delivered messages of the same type as sample
func (h *harness[T]) delivered(sample tea.Msg) int {
	n := 0
	for _, msg := range h.sim.Delivered {
		if fmt.Sprintf("%T", msg) == fmt.Sprintf("%T", sample) {
			n++
		}
	}
	return n
}

func (h *harness[T]) boundIndexes() map[int]bool {
	res := make(map[int]bool)
	for _, s := range h.list.Slots() {
		if s.Occupied() {
			res[s.Index] = true
		}
	}
	return res
}

func span(from, to int) map[int]bool {
	res := make(map[int]bool)
	for i := from; i < to; i++ {
		res[i] = true
	}
	return res
}
