package window

import (
	"github.com/robinovitch61/vl/internal/dev"
	"github.com/robinovitch61/vl/internal/slot"
)

// Engine keeps a pool of slots bound to the contiguous run of items starting at the first visible one.
// Scrolling down rebinds the slots that fell off the top to the items entering at the bottom, scrolling up does the
// reverse. Untouched slots keep their content
type Engine struct {
	pool    *slot.Pool
	heights Heights
	start   int
	primed  bool
}

func New(pool *slot.Pool, heights Heights) *Engine {
	return &Engine{pool: pool, heights: heights}
}

// Invalidate forces the next Update to rebind every slot. The current start is kept as a hint for the next scan
func (e *Engine) Invalidate() {
	e.primed = false
}

// Reset clears the pool and forgets the current window entirely
func (e *Engine) Reset() {
	e.pool.Clear()
	e.start = 0
	e.primed = false
}

func (e *Engine) Start() int {
	return e.start
}

// Range returns the window of item indexes held by the pool, [start, end)
func (e *Engine) Range() (int, int) {
	return e.start, min(e.start+e.pool.Size(), e.heights.Count())
}

// Update moves the window so it starts at the first item visible at scrollOffset, rendering newly exposed items with
// render, and repositions every occupied slot
func (e *Engine) Update(scrollOffset int, render Renderer) Result {
	n := e.pool.Size()
	count := e.heights.Count()
	if count == 0 {
		e.pool.Clear()
		e.start, e.primed = 0, true
		return Result{}
	}

	maxStart := max(0, count-n)
	start := ComputeStart(e.heights, scrollOffset, e.start)
	if start < 0 || start > maxStart {
		start = maxStart
	}

	delta := start - e.start
	res := Result{Start: start, End: min(start+n, count), Direction: Down}
	if delta < 0 {
		res.Direction = Up
	}

	switch {
	case !e.primed || delta >= n || -delta >= n:
		e.pool.Clear()
		for k := 0; k < n; k++ {
			if e.bind(e.pool.Advance(), start+k, count, render) {
				res.Bound++
			}
		}
	case delta > 0:
		for i := e.start + n; i < start+n; i++ {
			if e.bind(e.pool.Advance(), i, count, render) {
				res.Bound++
			}
		}
	case delta < 0:
		for i := e.start - 1; i >= start; i-- {
			if e.bind(e.pool.Retreat(), i, count, render) {
				res.Bound++
			}
		}
	}
	e.start, e.primed = start, true

	// measuring may have moved every item below a rebound one
	e.pool.Each(func(s *slot.Slot) {
		s.Top = e.heights.Offset(s.Index)
		s.Height = e.heights.HeightOf(s.Index)
	})
	if res.Bound > 0 {
		dev.Debugf("window %s", res)
	}
	return res
}

func (e *Engine) bind(s *slot.Slot, index, count int, render Renderer) bool {
	if index >= count {
		s.Clear()
		return false
	}
	content, height := render(index)
	s.Bind(index, 0, height, content)
	return true
}
