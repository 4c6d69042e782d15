package listview

import (
	tea "charm.land/bubbletea/v2"
	"fmt"
	"sort"
	"strings"
)

// Lifecycle event names. Their handlers run once per completed redraw, before and after it is applied
const (
	WillRedraw = "willRedraw"
	DidRedraw  = "didRedraw"
)

// Delegated event types
const (
	EventKey   = "key"
	EventClick = "click"
)

// Click targets
const (
	TargetItem   = "item"
	TargetHeader = "header"
	TargetFooter = "footer"
)

// Event is what a Handler receives
type Event[T any] struct {
	// Type is the event type: key, click, or a lifecycle event name
	Type string

	// Target is the part of the list a click landed on, one of TargetItem, TargetHeader, TargetFooter, or empty
	Target string

	// Key is the pressed key for key events
	Key string

	// Index and Item are the clicked item when Target is TargetItem. Index is -1 otherwise
	Index int
	Item  T

	// X and Y are the click position relative to the top left of the list
	X, Y int
}

// Handler handles an event. Keys of the events map passed to WithEvents name what a handler receives:
//
//	"key"             any key press
//	"key <key>"       a key press whose string form is <key>, e.g. "key enter" or "key ctrl+s"
//	"click"           a click anywhere on the list
//	"click item"      a click on an item
//	"click header"    a click on a header line
//	"click footer"    a click on a footer line
//	"willRedraw"      before each redraw
//	"didRedraw"       after each redraw
type Handler[T any] func(e Event[T]) tea.Cmd

// delegate is a parsed key/click entry
type delegate[T any] struct {
	eventType string
	selector  string
	handler   Handler[T]
}

func (d delegate[T]) matches(e Event[T]) bool {
	if d.eventType != e.Type {
		return false
	}
	if d.selector == "" {
		return true
	}
	switch e.Type {
	case EventKey:
		return d.selector == e.Key
	case EventClick:
		return d.selector == e.Target
	}
	return false
}

// subscription is a lifecycle entry
type subscription[T any] struct {
	event   string
	handler Handler[T]
}

// parseEvents splits an events map into delegated events and lifecycle subscriptions, in key order
func parseEvents[T any](events map[string]Handler[T]) ([]delegate[T], []subscription[T], error) {
	keys := make([]string, 0, len(events))
	for k := range events {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var delegates []delegate[T]
	var subscriptions []subscription[T]
	for _, k := range keys {
		handler := events[k]
		if handler == nil {
			return nil, nil, fmt.Errorf("%w: nil handler for event %q", ErrInvalidOption, k)
		}
		eventType, selector, _ := strings.Cut(strings.TrimSpace(k), " ")
		selector = strings.TrimSpace(selector)
		switch eventType {
		case WillRedraw, DidRedraw:
			if selector != "" {
				return nil, nil, fmt.Errorf("%w: lifecycle event %q takes no selector", ErrInvalidOption, k)
			}
			subscriptions = append(subscriptions, subscription[T]{event: eventType, handler: handler})
		case EventKey:
			delegates = append(delegates, delegate[T]{eventType: eventType, selector: selector, handler: handler})
		case EventClick:
			switch selector {
			case "", TargetItem, TargetHeader, TargetFooter:
			default:
				return nil, nil, fmt.Errorf("%w: unknown click target %q", ErrInvalidOption, selector)
			}
			delegates = append(delegates, delegate[T]{eventType: eventType, selector: selector, handler: handler})
		default:
			return nil, nil, fmt.Errorf("%w: unknown event type %q", ErrInvalidOption, eventType)
		}
	}
	return delegates, subscriptions, nil
}

func dispatch[T any](delegates []delegate[T], e Event[T]) tea.Cmd {
	var cmds []tea.Cmd
	for _, d := range delegates {
		if d.matches(e) {
			cmds = append(cmds, d.handler(e))
		}
	}
	return tea.Batch(cmds...)
}

func notify[T any](subscriptions []subscription[T], event string) tea.Cmd {
	var cmds []tea.Cmd
	for _, s := range subscriptions {
		if s.event == event {
			cmds = append(cmds, s.handler(Event[T]{Type: event, Index: -1}))
		}
	}
	return tea.Batch(cmds...)
}
