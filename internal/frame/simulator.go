package frame

import (
	tea "charm.land/bubbletea/v2"
	"github.com/emirpasic/gods/trees/binaryheap"
	"time"
)

// DefaultMaxSteps bounds a simulation so that a command loop that never settles fails instead of hanging
const DefaultMaxSteps = 10000

type timer struct {
	due  time.Time
	seq  int
	fire func(time.Time) tea.Msg
}

// Simulator runs commands against a Fake clock the way the bubbletea event loop would: zero-delay commands first, in
// order, then timers by due time. Every non-timer message is handed to the update func, and the command it returns is
// run in turn
type Simulator struct {
	clock     *Fake
	update    func(tea.Msg) tea.Cmd
	timers    *binaryheap.Heap
	queue     []tea.Cmd
	seq       int
	steps     int
	MaxSteps  int
	Delivered []tea.Msg
}

func NewSimulator(clock *Fake, update func(tea.Msg) tea.Cmd) *Simulator {
	return &Simulator{
		clock:  clock,
		update: update,
		timers: binaryheap.NewWith(func(a, b interface{}) int {
			ta, tb := a.(timer), b.(timer)
			switch {
			case ta.due.Before(tb.due):
				return -1
			case ta.due.After(tb.due):
				return 1
			}
			return ta.seq - tb.seq
		}),
		MaxSteps: DefaultMaxSteps,
	}
}

// Run executes cmd and every zero-delay command that follows from it. Timers are queued, not fired
func (s *Simulator) Run(cmd tea.Cmd) {
	if cmd != nil {
		s.queue = append(s.queue, cmd)
	}
	s.drain()
}

// RunUntil fires every timer due at or before t, in order, then leaves the clock at t
func (s *Simulator) RunUntil(t time.Time) {
	for !s.timers.Empty() {
		v, _ := s.timers.Peek()
		next := v.(timer)
		if next.due.After(t) {
			break
		}
		s.timers.Pop()
		s.fire(next)
	}
	s.clock.Set(t)
}

// RunFor is RunUntil relative to the current time
func (s *Simulator) RunFor(d time.Duration) {
	s.RunUntil(s.clock.Now().Add(d))
}

// Settle fires timers until none are left
func (s *Simulator) Settle() {
	for !s.timers.Empty() && !s.exhausted() {
		v, _ := s.timers.Pop()
		s.fire(v.(timer))
	}
}

// Pending returns the number of timers that have not fired yet
func (s *Simulator) Pending() int {
	return s.timers.Size()
}

// Steps returns the number of messages delivered so far
func (s *Simulator) Steps() int {
	return s.steps
}

// Exhausted is true when the simulation stopped because it hit MaxSteps
func (s *Simulator) Exhausted() bool {
	return s.exhausted()
}

func (s *Simulator) exhausted() bool {
	return s.steps >= s.MaxSteps
}

func (s *Simulator) fire(t timer) {
	s.clock.Set(t.due)
	s.deliver(t.fire(t.due))
	s.drain()
}

func (s *Simulator) drain() {
	for len(s.queue) > 0 && !s.exhausted() {
		cmd := s.queue[0]
		s.queue = s.queue[1:]
		s.deliver(cmd())
	}
}

func (s *Simulator) deliver(msg tea.Msg) {
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, cmd := range msg {
			if cmd != nil {
				s.queue = append(s.queue, cmd)
			}
		}
	case TimerMsg:
		s.seq++
		s.timers.Push(timer{due: msg.Due, seq: s.seq, fire: msg.Fire})
	default:
		s.steps++
		s.Delivered = append(s.Delivered, msg)
		if cmd := s.update(msg); cmd != nil {
			s.queue = append(s.queue, cmd)
		}
	}
}
