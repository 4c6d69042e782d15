// Package window computes which items of a virtualized list are visible and recycles a fixed pool of slots to show
// them as the list scrolls.
package window

import (
	"fmt"
)

// Direction is the direction of the latest scroll
type Direction int

const (
	Down Direction = iota
	Up
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Heights is the height model the engine windows over
type Heights interface {
	Count() int
	HeightOf(index int) int
	Offset(index int) int
}

// Renderer renders the item at index, returning its content and height in rows
type Renderer func(index int) (content string, height int)

// Result describes one engine pass
type Result struct {
	// Start and End bound the window of item indexes held by the pool, [Start, End)
	Start, End int

	// Bound is the number of slots that were given a new item in this pass
	Bound int

	Direction Direction
}

func (r Result) String() string {
	return fmt.Sprintf("[%d, %d) bound %d scrolling %s", r.Start, r.End, r.Bound, r.Direction)
}

// ComputeStart returns the first index at or after priorStart whose bottom edge is at or below scrollOffset, or -1 if
// scrollOffset is past every item. The scan starts at priorStart so each scroll sample costs the distance scrolled,
// not the length of the list. If scrollOffset lies above priorStart the scan walks backward instead
func ComputeStart(h Heights, scrollOffset, priorStart int) int {
	count := h.Count()
	if count == 0 {
		return -1
	}
	i := max(0, min(priorStart, count-1))

	top := h.Offset(i)
	if i > 0 && top >= scrollOffset {
		// the item above also reaches scrollOffset, walk up until one doesn't
		for i > 0 && top >= scrollOffset {
			i--
			top -= h.HeightOf(i)
		}
		return i
	}

	bottom := top + h.HeightOf(i)
	for bottom < scrollOffset {
		i++
		if i >= count {
			return -1
		}
		bottom += h.HeightOf(i)
	}
	return i
}
