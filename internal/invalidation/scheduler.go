package invalidation

import (
	tea "charm.land/bubbletea/v2"
	"github.com/robinovitch61/vl/internal/frame"
	"github.com/robinovitch61/vl/internal/message"
	"time"
)

// Strategy is how soon a requested redraw runs
type Strategy int

const (
	// Frame waits for the next rendering frame
	Frame Strategy = iota
	// Immediate runs as soon as the event loop is free
	Immediate
)

func (s Strategy) String() string {
	if s == Immediate {
		return "immediate"
	}
	return "frame"
}

// Scheduler hands out redraw commands. At most one request is outstanding at a time; a RedrawMsg is only accepted if
// it answers the outstanding request, so superseded and cancelled requests are ignored when they arrive
type Scheduler struct {
	owner    string
	clock    frame.Clock
	interval time.Duration
	seq      int
	pending  bool
	strategy Strategy
}

func NewScheduler(owner string, clock frame.Clock, interval time.Duration) *Scheduler {
	return &Scheduler{owner: owner, clock: clock, interval: interval}
}

// Request returns the command that delivers the next RedrawMsg, or nil if an equally or more urgent request is
// already outstanding. An Immediate request supersedes an outstanding Frame request
func (s *Scheduler) Request(strategy Strategy) tea.Cmd {
	if s.pending && (strategy == Frame || s.strategy == Immediate) {
		return nil
	}
	s.seq++
	s.pending = true
	s.strategy = strategy

	msg := message.RedrawMsg{Owner: s.owner, Seq: s.seq}
	if strategy == Immediate {
		return frame.Immediate(msg)
	}
	return s.clock.Tick(s.interval, func(time.Time) tea.Msg {
		return msg
	})
}

// Accept reports whether msg answers the outstanding request, and if so marks it answered
func (s *Scheduler) Accept(msg message.RedrawMsg) bool {
	if msg.Owner != s.owner || !s.pending || msg.Seq != s.seq {
		return false
	}
	s.pending = false
	return true
}

// Cancel drops the outstanding request, if any
func (s *Scheduler) Cancel() {
	s.pending = false
	s.seq++
}

func (s *Scheduler) Pending() bool {
	return s.pending
}
