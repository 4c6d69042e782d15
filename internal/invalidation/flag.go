// Package invalidation tracks what about a list view is out of date and schedules the redraw that brings it back.
// Any number of invalidations between two redraws coalesce into one.
package invalidation

import "strings"

// Flag is a bitmask of the categories a redraw has to apply
type Flag uint8

const (
	// Items means the items, the item template or the item height changed
	Items Flag = 1 << iota
	// Events means the event handlers changed
	Events
	// Structure means the model or list template changed. It implies everything else
	Structure

	All = Items | Events | Structure
)

// Order is the order in which a redraw applies the categories
var Order = []Flag{Structure, Events, Items}

func (f Flag) Has(o Flag) bool {
	return f&o != 0
}

func (f Flag) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for _, o := range Order {
		if f.Has(o) {
			switch o {
			case Structure:
				parts = append(parts, "structure")
			case Events:
				parts = append(parts, "events")
			case Items:
				parts = append(parts, "items")
			}
		}
	}
	return strings.Join(parts, "|")
}

// State is where a Machine is in its redraw cycle
type State int

const (
	// Clean has nothing to do
	Clean State = iota
	// Pending has work but is not attached, so nothing is scheduled yet
	Pending
	// Scheduled has a redraw on its way
	Scheduled
	// Redrawing is between Begin and Finish
	Redrawing
)

func (s State) String() string {
	switch s {
	case Clean:
		return "clean"
	case Pending:
		return "pending"
	case Scheduled:
		return "scheduled"
	case Redrawing:
		return "redrawing"
	}
	return "unknown"
}
