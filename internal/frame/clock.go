// Package frame provides the two scheduling primitives the list view is built on: a per-frame tick and a zero-delay
// command, behind a Clock so that scheduling can be driven deterministically in tests.
package frame

import (
	tea "charm.land/bubbletea/v2"
	"time"
)

// Clock tells the time and schedules delayed messages
type Clock interface {
	Now() time.Time
	Tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd
}

// System is the wall clock, scheduling through tea.Tick
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

func (System) Tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return tea.Tick(d, fn)
}

// Immediate returns a command that delivers msg as soon as the event loop gets to it, with no timer involved
func Immediate(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

// assert System implements Clock
var _ Clock = System{}
