package listview

import (
	tea "charm.land/bubbletea/v2"
	"errors"
	"fmt"
	"github.com/robinovitch61/vl/internal/invalidation"
	"github.com/robinovitch61/vl/internal/message"
	"github.com/robinovitch61/vl/internal/slot"
	"github.com/robinovitch61/vl/internal/util"
	"github.com/robinovitch61/vl/internal/viewport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
	"time"
)

func TestListView_TwoHundredItems(t *testing.T) {
	props, _ := paneProps(500)
	h := newHarness[textItem](t, props)
	h.render(
		WithItems(textItems(200)),
		WithItemTemplate(textTemplate),
		WithDefaultItemHeight[textItem](50),
	)

	assert.Equal(t, []string{"rendered"}, h.done)
	start, end := h.list.Range()
	assert.Equal(t, 0, start)
	assert.Equal(t, 20, end)
	assert.Equal(t, 200*50, h.list.Viewport().ContentHeight())
	assert.Equal(t, span(0, 20), h.boundIndexes())

	h.scrollTo(505)
	start, end = h.list.Range()
	assert.GreaterOrEqual(t, start, 10)
	assert.Equal(t, start+20, end)
	assert.Equal(t, span(start, end), h.boundIndexes())
	for _, s := range h.list.Slots() {
		rows := strings.Split(s.Content, "\n")
		assert.Len(t, rows, 50)
		assert.Equal(t, textTemplate(textItem{Text: s.Index}), rows[0])
		assert.Equal(t, s.Index*50, s.Top)
	}
	top, bottom := h.list.Fillers()
	assert.Equal(t, start*50, top)
	assert.Equal(t, (200-end)*50, bottom)
}

func TestListView_ScrollingUpRecyclesFromTheBottom(t *testing.T) {
	props, _ := paneProps(500)
	h := newHarness[textItem](t, props)
	h.render(WithItems(textItems(200)), WithItemTemplate(textTemplate), WithDefaultItemHeight[textItem](50))

	h.scrollTo(5001)
	start, _ := h.list.Range()
	require.Equal(t, 100, start)

	h.scrollTo(4751)
	start, end := h.list.Range()
	assert.Equal(t, 95, start)
	assert.Equal(t, span(95, 115), h.boundIndexes())
	assert.Equal(t, 5, h.list.LastWindow().Bound)
	assert.Equal(t, 115, end)
}

func TestListView_SetCoalescesIntoOneRedraw(t *testing.T) {
	props, _ := paneProps(10)
	h := newHarness[string](t, props)
	h.render(WithItems(lines(100)))
	redraws := h.list.Redraws()

	cmd1, err := h.list.Set(done("a"), WithItems(lines(100)))
	require.NoError(t, err)
	cmd2, err := h.list.Set(done("b"), WithEvents(map[string]Handler[string]{"key enter": handler[string]("enter")}))
	require.NoError(t, err)
	cmd3, err := h.list.Set(done("c"), WithItemTemplate(strings.ToUpper))
	require.NoError(t, err)
	assert.NotNil(t, cmd1)
	assert.Nil(t, cmd2)
	assert.Nil(t, cmd3)
	assert.Equal(t, invalidation.Scheduled, h.list.State())

	h.sim.Run(cmd1)
	h.sim.Settle()
	assert.Equal(t, redraws+1, h.list.Redraws())
	assert.Equal(t, []string{"rendered", "a", "b", "c"}, h.done)
	assert.Equal(t, invalidation.Clean, h.list.State())
	assert.Equal(t, "LINE 0", h.list.Slots()[0].Content)
}

func TestListView_SetWithoutOptionsRunsCallbackNow(t *testing.T) {
	props, _ := paneProps(10)
	h := newHarness[string](t, props)
	h.render(WithItems(lines(5)))
	redraws := h.list.Redraws()

	cmd, err := h.list.Set(done("now"))
	require.NoError(t, err)
	h.sim.Run(cmd)
	assert.Equal(t, []string{"rendered", "now"}, h.done)
	assert.Equal(t, redraws, h.list.Redraws())
	assert.Equal(t, invalidation.Clean, h.list.State())
}

func TestListView_SetBeforeRenderDrawsNothing(t *testing.T) {
	props, _ := paneProps(10)
	h := newHarness[string](t, props)
	cmd, err := h.list.Set(done("early"), WithItems(lines(5)))
	require.NoError(t, err)
	assert.Nil(t, cmd)
	assert.Equal(t, invalidation.Pending, h.list.State())
	assert.Equal(t, "", h.list.View())

	h.render()
	assert.Equal(t, []string{"early", "rendered"}, h.done)
	// the first redraw, then the frame redraw for the viewport's first change
	assert.Equal(t, 2, h.delivered(message.RedrawMsg{}))
	assert.Equal(t, 2, h.list.Redraws())
}

func TestListView_EmptyItems(t *testing.T) {
	props, _ := paneProps(10)
	h := newHarness[string](t, props)
	h.render(WithItems(lines(30)))

	h.set(done("emptied"), WithItems([]string{}))
	h.sim.Settle()
	assert.Contains(t, h.done, "emptied")
	start, end := h.list.Range()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
	assert.Zero(t, h.list.LastWindow().Bound)
	assert.Empty(t, h.boundIndexes())
	assert.Zero(t, h.list.Viewport().ContentHeight())
	util.CmpStr(t, strings.Repeat("\n", 9), h.list.View())
}

func TestListView_ItemHeightChangeInvalidatesItemsOnly(t *testing.T) {
	props, _ := paneProps(10)
	h := newHarness[string](t, props)
	templateCalls := 0
	tmpl := func(any) string {
		templateCalls++
		return DefaultListTemplate(nil)
	}
	h.render(WithItems(lines(100)), WithListTemplate[string](tmpl))
	vp := h.list.Viewport()
	require.Equal(t, 1, templateCalls)

	h.set(done("taller"), WithDefaultItemHeight[string](3))
	h.sim.Settle()
	assert.Equal(t, []string{"rendered", "taller"}, h.done)
	assert.Equal(t, 1, templateCalls)
	assert.Same(t, vp, h.list.Viewport())
	assert.Equal(t, 300, vp.ContentHeight())
	for _, s := range h.list.Slots() {
		assert.Equal(t, 3, s.Height)
		assert.Equal(t, 3, len(strings.Split(s.Content, "\n")))
	}
}

func TestListView_ModelChangeRebuildsStructure(t *testing.T) {
	props, _ := paneProps(500)
	h := newHarness[textItem](t, props)
	h.render(WithItems(textItems(200)), WithItemTemplate(textTemplate), WithDefaultItemHeight[textItem](50))
	h.scrollTo(505)
	old := h.list.Viewport()
	start, _ := h.list.Range()
	require.Equal(t, 10, start)

	h.set(done("new model"), WithModel[textItem](map[string]string{"title": "new"}))
	h.sim.Settle()
	assert.Contains(t, h.done, "new model")
	assert.True(t, old.Removed())
	assert.NotEqual(t, old.ID(), h.list.Viewport().ID())
	assert.Zero(t, h.list.Viewport().ScrollOffset())
	start, end := h.list.Range()
	assert.Equal(t, 0, start)
	assert.Equal(t, 20, end)
	assert.Equal(t, span(0, 20), h.boundIndexes())
	assert.Equal(t, map[string]string{"title": "new"}, h.list.Model())
}

func TestListView_HeaderAndFooter(t *testing.T) {
	props, _ := paneProps(5)
	h := newHarness[string](t, props)
	tmpl := func(model any) string {
		return model.(string) + "\n" + TopFiller + "\n" + BottomFiller + "\nfooter"
	}
	h.render(WithModel[string]("title"), WithListTemplate[string](tmpl), WithItems([]string{"a", "b", "c", "d", "e"}))

	assert.Equal(t, 3, h.list.Viewport().VisibleExtent())
	util.CmpStr(t, "title\na\nb\nc\nfooter", h.list.View())

	h.scrollTo(2)
	util.CmpStr(t, "title\nc\nd\ne\nfooter", h.list.View())

	h.send(tea.WindowSizeMsg{Width: 3, Height: 40})
	h.sim.Settle()
	util.CmpStr(t, "tit\nc\nd\ne\nfoo", h.list.View())
}

func TestListView_MissingAnchors(t *testing.T) {
	tests := []struct {
		name     string
		template string
	}{
		{name: "none", template: "just a header"},
		{name: "no bottom", template: "header\n" + TopFiller},
		{name: "no top", template: BottomFiller + "\nfooter"},
		{name: "misordered", template: BottomFiller + "\n" + TopFiller},
		{name: "not adjacent", template: TopFiller + "\nbetween\n" + BottomFiller},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props, _ := paneProps(5)
			h := newHarness[string](t, props)
			h.render(WithItems(lines(3)), WithListTemplate[string](func(any) string { return tt.template }))
			assert.ErrorIs(t, h.list.Err(), ErrMissingAnchor)
			require.Len(t, h.errs, 1)
			assert.ErrorIs(t, h.errs[0], ErrMissingAnchor)
			assert.Equal(t, []string{"rendered"}, h.done)
		})
	}
}

func TestListView_AnchorsFixedByNextTemplate(t *testing.T) {
	props, _ := paneProps(5)
	h := newHarness[string](t, props)
	h.render(WithItems(lines(3)), WithListTemplate[string](func(any) string { return "oops" }))
	require.Error(t, h.list.Err())

	h.set(nil, WithListTemplate[string](DefaultListTemplate))
	h.sim.Settle()
	assert.NoError(t, h.list.Err())
}

func TestListView_InvalidOptions(t *testing.T) {
	props, _ := paneProps(5)
	h := newHarness[string](t, props)
	h.render(WithItems(lines(3)))
	redraws := h.list.Redraws()

	tests := []struct {
		name string
		opts []Option[string]
	}{
		{name: "zero height", opts: []Option[string]{WithDefaultItemHeight[string](0)}},
		{name: "negative height", opts: []Option[string]{WithDefaultItemHeight[string](-2)}},
		{name: "nil item template", opts: []Option[string]{WithItemTemplate[string](nil)}},
		{name: "nil list template", opts: []Option[string]{WithListTemplate[string](nil)}},
		{name: "unknown event", opts: []Option[string]{WithEvents(map[string]Handler[string]{"hover item": handler[string]("x")})}},
		{name: "unknown click target", opts: []Option[string]{WithEvents(map[string]Handler[string]{"click sidebar": handler[string]("x")})}},
		{name: "nil handler", opts: []Option[string]{WithEvents(map[string]Handler[string]{"click": nil})}},
		{name: "lifecycle with selector", opts: []Option[string]{WithEvents(map[string]Handler[string]{"didRedraw item": handler[string]("x")})}},
		{name: "valid then invalid", opts: []Option[string]{WithItems(lines(50)), WithDefaultItemHeight[string](0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := h.list.Set(done("never"), tt.opts...)
			assert.ErrorIs(t, err, ErrInvalidOption)
			assert.Nil(t, cmd)
			assert.Equal(t, invalidation.Clean, h.list.State())
		})
	}
	h.sim.Settle()
	assert.Equal(t, redraws, h.list.Redraws())
	assert.Len(t, h.list.Items(), 3)
	assert.NotContains(t, h.done, "never")
}

func TestListView_RenderTwice(t *testing.T) {
	props, _ := paneProps(5)
	h := newHarness[string](t, props)
	h.render(WithItems(lines(3)))
	_, err := h.list.Render(nil)
	assert.ErrorIs(t, err, ErrRendered)
}

func TestListView_KeypressBlocksRedraw(t *testing.T) {
	props, _ := paneProps(10)
	h := newHarness[string](t, props)
	h.render(WithItems(lines(200)))
	redraws := h.list.Redraws()
	start := h.clock.Now()

	h.send(endKeyMsg)
	assert.True(t, h.list.Blocked())

	h.sim.RunUntil(start.Add(200 * time.Millisecond))
	assert.Equal(t, 190, h.list.Viewport().ScrollOffset())
	assert.Equal(t, redraws, h.list.Redraws())
	first, _ := h.list.Range()
	assert.Equal(t, 0, first)

	h.sim.Settle()
	assert.Equal(t, redraws+1, h.list.Redraws())
	first, last := h.list.Range()
	assert.Equal(t, 180, first)
	assert.Equal(t, 200, last)
	assert.Equal(t, 2, h.delivered(message.RetryChangeMsg{}))
	assert.False(t, h.list.Blocked())
}

func TestListView_RetryAtTheDeadlineIsNotBlocked(t *testing.T) {
	props, _ := paneProps(10)
	h := newHarness[string](t, props)
	h.render(WithItems(lines(200)))
	redraws := h.list.Redraws()
	start := h.clock.Now()

	// enter blocks without scrolling. The wheel change lands at 100ms, its retry exactly at the deadline
	h.send(enterKeyMsg)
	h.sim.RunUntil(start.Add(84 * time.Millisecond))
	h.send(tea.MouseWheelMsg{Button: tea.MouseWheelDown})
	h.sim.RunUntil(start.Add(200 * time.Millisecond))
	assert.False(t, h.list.Blocked())
	assert.Equal(t, 1, h.delivered(message.RetryChangeMsg{}))

	h.sim.RunUntil(start.Add(216 * time.Millisecond))
	assert.Equal(t, redraws+1, h.list.Redraws())
	assert.Equal(t, 1, h.delivered(message.RetryChangeMsg{}))
}

func TestListView_ScrollWithoutKeypressIsNotBlocked(t *testing.T) {
	props, _ := paneProps(10)
	h := newHarness[string](t, props)
	h.render(WithItems(lines(200)))
	redraws := h.list.Redraws()
	start := h.clock.Now()

	h.send(tea.MouseWheelMsg{Button: tea.MouseWheelDown})
	h.sim.RunUntil(start.Add(32 * time.Millisecond))
	assert.Equal(t, redraws+1, h.list.Redraws())
	assert.Zero(t, h.delivered(message.RetryChangeMsg{}))
}

func TestListView_RemoveStopsRetries(t *testing.T) {
	props, _ := paneProps(10)
	h := newHarness[string](t, props)
	h.render(WithItems(lines(200)))
	redraws := h.list.Redraws()
	start := h.clock.Now()

	h.send(endKeyMsg)
	h.sim.RunUntil(start.Add(50 * time.Millisecond))
	h.list.Remove()
	h.sim.Settle()

	assert.Equal(t, 1, h.delivered(message.RetryChangeMsg{}))
	assert.Equal(t, redraws, h.list.Redraws())
	assert.True(t, h.list.Removed())
	assert.True(t, h.list.Viewport().Removed())
	assert.Zero(t, h.sim.Pending())
	assert.Equal(t, "", h.list.View())

	_, err := h.list.Set(nil, WithItems(lines(1)))
	assert.ErrorIs(t, err, ErrRemoved)
	_, err = h.list.Render(nil)
	assert.ErrorIs(t, err, ErrRemoved)
}

func TestListView_RemoveCancelsScheduledRedraw(t *testing.T) {
	props, _ := paneProps(10)
	h := newHarness[string](t, props)
	h.render(WithItems(lines(20)))
	redraws := h.list.Redraws()

	cmd, err := h.list.Set(done("never"), WithItems(lines(40)))
	require.NoError(t, err)
	h.list.Remove()
	h.sim.Run(cmd)
	h.sim.Settle()
	assert.Equal(t, redraws, h.list.Redraws())
	assert.NotContains(t, h.done, "never")
}

func TestListView_Events(t *testing.T) {
	props, _ := paneProps(4)
	h := newHarness[string](t, props)
	tmpl := func(any) string {
		return "header\n" + TopFiller + "\n" + BottomFiller + "\nfooter"
	}
	h.render(WithItems(lines(10)), WithListTemplate[string](tmpl))

	cmd, err := h.list.Set(nil, WithEvents(map[string]Handler[string]{
		"key enter":    handler[string]("enter"),
		"key":          handler[string]("any key"),
		"click":        handler[string]("click"),
		"click item":   handler[string]("item"),
		"click header": handler[string]("header"),
		"click footer": handler[string]("footer"),
	}))
	require.NoError(t, err)

	// not bound until the redraw
	h.send(enterKeyMsg)
	assert.Equal(t, []string{"rendered"}, h.done)

	h.sim.Run(cmd)
	h.done = nil
	h.send(enterKeyMsg)
	assert.ElementsMatch(t, []string{"enter  enter -1", "any key  enter -1"}, h.done)

	h.scrollTo(3)
	h.done = nil
	h.send(tea.MouseClickMsg{X: 2, Y: 1, Button: tea.MouseLeft})
	assert.ElementsMatch(t, []string{"click item  3", "item item  3"}, h.done)

	h.done = nil
	h.send(tea.MouseClickMsg{X: 2, Y: 0, Button: tea.MouseLeft})
	assert.ElementsMatch(t, []string{"click header  -1", "header header  -1"}, h.done)

	h.done = nil
	h.send(tea.MouseClickMsg{X: 2, Y: 3, Button: tea.MouseLeft})
	assert.ElementsMatch(t, []string{"click footer  -1", "footer footer  -1"}, h.done)

	h.done = nil
	h.send(tea.MouseClickMsg{X: 2, Y: 4, Button: tea.MouseLeft})
	assert.Empty(t, h.done)
}

func TestListView_ClickUsesPosition(t *testing.T) {
	props, _ := paneProps(4)
	h := newHarness[string](t, props)
	var clicked []Event[string]
	h.render(WithItems(lines(10)), WithEvents(map[string]Handler[string]{
		"click item": func(e Event[string]) tea.Cmd {
			clicked = append(clicked, e)
			return nil
		},
	}))
	h.list.SetPosition(5, 10)

	h.send(tea.MouseClickMsg{X: 6, Y: 12, Button: tea.MouseLeft})
	require.Len(t, clicked, 1)
	assert.Equal(t, 2, clicked[0].Index)
	assert.Equal(t, "line 2", clicked[0].Item)
	assert.Equal(t, 1, clicked[0].X)
	assert.Equal(t, 2, clicked[0].Y)

	h.send(tea.MouseClickMsg{X: 6, Y: 2, Button: tea.MouseLeft})
	assert.Len(t, clicked, 1)
}

func TestListView_LifecycleEvents(t *testing.T) {
	props, _ := paneProps(4)
	h := newHarness[string](t, props)
	var order []string
	h.render(WithItems(lines(10)), WithEvents(map[string]Handler[string]{
		WillRedraw: func(e Event[string]) tea.Cmd {
			order = append(order, e.Type)
			return nil
		},
		DidRedraw: func(e Event[string]) tea.Cmd {
			order = append(order, e.Type)
			return nil
		},
	}))
	// handlers bound by the first redraw miss its willRedraw
	assert.Equal(t, []string{DidRedraw, WillRedraw, DidRedraw}, order)

	order = nil
	h.set(done("after"), WithItems(lines(12)))
	assert.Equal(t, []string{WillRedraw, DidRedraw}, order)

	order = nil
	h.set(nil, WithEvents(map[string]Handler[string]{}))
	assert.Equal(t, []string{WillRedraw}, order)
}

func TestListView_NonVirtualized(t *testing.T) {
	props, _ := paneProps(5)
	props.Virtualized = false
	h := newHarness[string](t, props)
	h.render(WithItems(lines(50)))

	assert.Len(t, h.list.Slots(), 50)
	assert.Equal(t, span(0, 50), h.boundIndexes())
	redraws := h.list.Redraws()

	h.send(endKeyMsg)
	assert.False(t, h.list.Blocked())
	h.sim.Settle()
	assert.Equal(t, redraws, h.list.Redraws())
	assert.Zero(t, h.delivered(message.RetryChangeMsg{}))
	util.CmpStr(t, "line 45\nline 46\nline 47\nline 48\nline 49", h.list.View())

	h.set(nil, WithItems(lines(60)))
	assert.Len(t, h.list.Slots(), 60)
}

func TestListView_MeasuredItems(t *testing.T) {
	props, _ := paneProps(6)
	props.MeasureItems = true
	props.BatchSize = 5
	h := newHarness[int](t, props)
	items := make([]int, 30)
	for i := range items {
		items[i] = i
	}
	// item i is i%3+1 lines tall
	tmpl := func(i int) string {
		return strings.TrimSuffix(strings.Repeat("x\n", i%3+1), "\n")
	}
	h.render(WithItems(items), WithItemTemplate(tmpl))

	var tops []int
	for _, s := range h.list.Slots() {
		tops = append(tops, s.Top)
	}
	assert.Equal(t, []int{0, 1, 3, 6, 7}, tops)
	// 5 measured items, 25 estimated at 1 row
	assert.Equal(t, 1+2+3+1+2+25, h.list.Viewport().ContentHeight())

	h.scrollTo(7)
	// item 3 ends exactly at row 7, so it is still the first item
	start, end := h.list.Range()
	assert.Equal(t, 3, start)
	assert.Equal(t, 8, end)
	for _, s := range h.list.Slots() {
		assert.Equal(t, s.Index%3+1, s.Height)
	}
}

func TestListView_UnboundedViewportFollowsWindow(t *testing.T) {
	props := DefaultProps()
	props.Viewport = viewport.Spec{Kind: viewport.Window}
	h := newHarness[string](t, props)
	h.send(tea.WindowSizeMsg{Width: 20, Height: 3})
	h.render(WithItems(lines(10)))

	assert.Equal(t, viewport.Window, h.list.Viewport().Kind())
	assert.Equal(t, 3, h.list.Viewport().VisibleExtent())
	util.CmpStr(t, "line 0\nline 1\nline 2", h.list.View())

	// the window size carries over to the viewport a structural redraw creates
	h.set(nil, WithModel[string]("again"))
	h.sim.Settle()
	assert.Equal(t, 3, h.list.Viewport().VisibleExtent())
}

func TestListView_AutoViewportFindsScrollableAncestor(t *testing.T) {
	outer := viewport.NewBox(nil, viewport.OverflowScroll, 4)
	mount := viewport.NewBox(outer, viewport.OverflowVisible, 100)
	props := DefaultProps()
	props.Node = mount
	h := newHarness[string](t, props)
	h.render(WithItems(lines(10)))

	b, ok := h.list.Viewport().(*viewport.Bounded)
	require.True(t, ok)
	assert.Same(t, outer, b.Node())
	assert.Equal(t, 4, h.list.Viewport().VisibleExtent())
}

func TestListView_RecyclingKeepsContentSetDuringRandomScrolls(t *testing.T) {
	props, _ := paneProps(7)
	props.BatchSize = 12
	h := newHarness[string](t, props)
	h.render(WithItems(lines(400)), WithDefaultItemHeight[string](2))

	offsets := []int{3, 40, 41, 90, 60, 59, 58, 300, 299, 10, 0, 793, 500, 480}
	for _, off := range offsets {
		h.scrollTo(off)
		start, end := h.list.Range()
		require.Equal(t, span(start, end), h.boundIndexes(), "offset %d", off)
		for _, s := range h.list.Slots() {
			require.Equal(t, fmt.Sprintf("line %d\n", s.Index), s.Content, "offset %d", off)
		}
	}
}

func TestListView_PoolSlotsAreReusedNotRecreated(t *testing.T) {
	props, _ := paneProps(10)
	h := newHarness[string](t, props)
	h.render(WithItems(lines(200)))
	before := h.list.Slots()

	// item 14 ends at row 15, so row 16 is the first offset where item 15 starts the window
	h.scrollTo(16)
	after := h.list.Slots()
	require.Len(t, after, len(before))
	for i := range after {
		assert.Equal(t, before[i].ID, after[i].ID)
	}
	// the first 15 slots were rebound to the items entering at the bottom, the rest kept their items
	assert.Equal(t, 20, after[0].Index)
	assert.Equal(t, 34, after[14].Index)
	assert.Equal(t, 15, h.list.LastWindow().Bound)
	assert.Equal(t, slot.Slot{ID: 15, Index: 15, Top: 15, Height: 1, Content: "line 15"}, after[15])
}

func TestListView_ErrorsAreWrapped(t *testing.T) {
	m := New[string](DefaultProps())
	_, err := m.Set(nil, WithDefaultItemHeight[string](0))
	assert.True(t, errors.Is(err, ErrInvalidOption))
	assert.Contains(t, err.Error(), "default item height must be positive")
}

func TestListView_LineScrollKeyMovesAtOnce(t *testing.T) {
	props, _ := paneProps(10)
	h := newHarness[string](t, props)
	h.render(WithItems(lines(200)))

	h.send(downKeyMsg, downKeyMsg)
	assert.Equal(t, 2, h.list.Viewport().ScrollOffset())
	assert.True(t, h.list.Blocked())
	util.CmpStr(t, "line 2", strings.Split(h.list.View(), "\n")[0])
}
