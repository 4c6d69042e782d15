// Package toast shows a short message over the bottom rows of the screen until it times out
package toast

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wrap"
	"github.com/robinovitch61/vl/internal/dev"
	"github.com/robinovitch61/vl/internal/style"
	"sync"
	"time"
)

// Kind picks the toast's style and how long it stays up
type Kind int

const (
	Info Kind = iota
	Error
)

var (
	lastID int
	idMtx  sync.Mutex
)

// Model is one toast. Showing a new toast replaces the old one, whose timeout is then ignored
type Model struct {
	id      int
	text    string
	kind    Kind
	visible bool
}

// TimeoutMsg hides the toast with the same ID
type TimeoutMsg struct {
	ID int
}

// Show returns a visible toast and the command that hides it after d. Errors stay up twice as long
func Show(text string, kind Kind, d time.Duration) (Model, tea.Cmd) {
	m := Model{id: nextID(), text: text, kind: kind, visible: true}
	if kind == Error {
		d *= 2
	}
	id := m.id
	return m, tea.Tick(d, func(time.Time) tea.Msg { return TimeoutMsg{ID: id} })
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	dev.DebugUpdateMsg("Toast", msg)
	if msg, ok := msg.(TimeoutMsg); ok && msg.ID == m.id {
		m.visible = false
	}
	return m, nil
}

func (m Model) ID() int {
	return m.id
}

func (m Model) Visible() bool {
	return m.visible
}

// View renders the toast across width, wrapping long text
func (m Model) View(width int) string {
	if !m.visible {
		return ""
	}
	s := style.ToastStyle
	if m.kind == Error {
		s = style.ErrorToastStyle
	}
	text := m.text
	if inner := width - s.GetHorizontalFrameSize(); inner > 0 {
		text = wrap.String(text, inner)
		s = s.Width(width)
	}
	return s.Render(text)
}

// Height is the number of rows View takes at width
func (m Model) Height(width int) int {
	if !m.visible {
		return 0
	}
	return lipgloss.Height(m.View(width))
}

func nextID() int {
	idMtx.Lock()
	defer idMtx.Unlock()
	lastID++
	return lastID
}
