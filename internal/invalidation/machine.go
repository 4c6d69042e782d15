package invalidation

import (
	tea "charm.land/bubbletea/v2"
	"github.com/robinovitch61/vl/internal/dev"
	"github.com/robinovitch61/vl/internal/message"
)

// Callback runs once the redraw covering the invalidation it was passed with completes
type Callback func() tea.Cmd

// Machine accumulates invalidations and drives them through a Scheduler. A redraw is a Begin/Finish pair: Begin
// snapshots the dirty mask and callbacks, Finish clears exactly that snapshot. Anything invalidated in between is kept
// for the next redraw, which Finish schedules
type Machine struct {
	scheduler *Scheduler
	attached  bool
	removed   bool
	state     State
	dirty     Flag
	callbacks []Callback

	// arrived during the current redraw
	arrived          Flag
	arrivedCallbacks []Callback
	frameWanted      bool

	inFlight          Flag
	inFlightCallbacks []Callback
	redraws           int
}

func New(scheduler *Scheduler) *Machine {
	return &Machine{scheduler: scheduler}
}

// Attach lets the machine start scheduling. Work invalidated before Attach is scheduled now
func (m *Machine) Attach() tea.Cmd {
	if m.attached || m.removed {
		return nil
	}
	m.attached = true
	if m.state == Pending {
		m.state = Scheduled
		return m.scheduler.Request(Immediate)
	}
	return nil
}

// Invalidate marks mask dirty and queues cb to run after the redraw that applies it. The redraw runs Immediate
func (m *Machine) Invalidate(mask Flag, cb Callback) tea.Cmd {
	if m.removed {
		return nil
	}
	if m.state == Redrawing {
		m.arrived |= mask
		if cb != nil {
			m.arrivedCallbacks = append(m.arrivedCallbacks, cb)
		}
		return nil
	}

	m.dirty |= mask
	if cb != nil {
		m.callbacks = append(m.callbacks, cb)
	}
	if !m.attached {
		m.state = Pending
		return nil
	}
	m.state = Scheduled
	return m.scheduler.Request(Immediate)
}

// RequestFrame asks for a redraw on the next frame without marking anything dirty, for scrolling
func (m *Machine) RequestFrame() tea.Cmd {
	if m.removed || !m.attached {
		return nil
	}
	switch m.state {
	case Redrawing:
		m.frameWanted = true
		return nil
	case Scheduled:
		return m.scheduler.Request(Frame)
	}
	m.state = Scheduled
	return m.scheduler.Request(Frame)
}

// Begin starts the redraw msg asks for, returning the categories to apply. It returns false if msg is stale
func (m *Machine) Begin(msg message.RedrawMsg) (Flag, bool) {
	if m.removed || m.state != Scheduled || !m.scheduler.Accept(msg) {
		return 0, false
	}
	m.state = Redrawing
	m.inFlight = m.dirty
	m.inFlightCallbacks = m.callbacks
	m.callbacks = nil
	return m.inFlight, true
}

// Finish completes the current redraw. It returns the callbacks the redraw covered, in the order they were passed,
// and the command for the next redraw if more work arrived in the meantime
func (m *Machine) Finish() ([]Callback, tea.Cmd) {
	if m.state != Redrawing {
		return nil, nil
	}
	cbs := m.inFlightCallbacks
	m.dirty = m.dirty&^m.inFlight | m.arrived
	m.callbacks = append(m.callbacks, m.arrivedCallbacks...)
	m.inFlight, m.inFlightCallbacks = 0, nil
	m.arrived, m.arrivedCallbacks = 0, nil
	frameWanted := m.frameWanted
	m.frameWanted = false
	m.redraws++

	var cmd tea.Cmd
	switch {
	case m.removed:
		m.state = Clean
	case m.dirty != 0 || len(m.callbacks) > 0:
		m.state = Scheduled
		cmd = m.scheduler.Request(Immediate)
	case frameWanted:
		m.state = Scheduled
		cmd = m.scheduler.Request(Frame)
	default:
		m.state = Clean
	}
	dev.Debugf("redraw %d finished, %d callbacks, now %s", m.redraws, len(cbs), m.state)
	return cbs, cmd
}

// Teardown cancels any scheduled redraw and stops the machine for good. Queued callbacks are dropped
func (m *Machine) Teardown() {
	m.removed = true
	m.scheduler.Cancel()
	m.dirty, m.callbacks = 0, nil
	m.arrived, m.arrivedCallbacks = 0, nil
	if m.state != Redrawing {
		m.state = Clean
	}
}

func (m *Machine) State() State {
	return m.state
}

// Dirty returns the categories waiting for a redraw, including any arrived during the current one
func (m *Machine) Dirty() Flag {
	return m.dirty | m.arrived
}

// Redraws returns the number of completed redraws
func (m *Machine) Redraws() int {
	return m.redraws
}

func (m *Machine) Removed() bool {
	return m.removed
}
