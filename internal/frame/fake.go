package frame

import (
	tea "charm.land/bubbletea/v2"
	"time"
)

// TimerMsg is what a Fake clock's Tick command returns instead of sleeping. A Simulator holds it until Due
type TimerMsg struct {
	Due  time.Time
	Fire func(time.Time) tea.Msg
}

// Fake is a manually advanced Clock
type Fake struct {
	now time.Time
}

func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

func (f *Fake) Now() time.Time {
	return f.now
}

func (f *Fake) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

// Set moves the clock to t. The clock never goes backwards
func (f *Fake) Set(t time.Time) {
	if t.After(f.now) {
		f.now = t
	}
}

func (f *Fake) Tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	due := f.now.Add(d)
	return func() tea.Msg {
		return TimerMsg{Due: due, Fire: fn}
	}
}

// assert Fake implements Clock
var _ Clock = &Fake{}
