package message

import "time"

type ErrMsg struct{ Err error }

func (e ErrMsg) Error() string { return e.Err.Error() }

// FrameMsg is a viewport's per-frame tick. Owner is the viewport ID
type FrameMsg struct {
	Owner string
	Seq   int
	At    time.Time
}

// RedrawMsg asks the list view identified by Owner to run a redraw. Stale Seq values are ignored
type RedrawMsg struct {
	Owner string
	Seq   int
}

// RetryChangeMsg retries a viewport change that arrived while scroll events were blocked
type RetryChangeMsg struct {
	Owner string
}

// RedrawnMsg reports a completed redraw of the list view identified by Owner
type RedrawnMsg struct {
	Owner string
}

type ItemClickedMsg struct {
	Index int
}

type CleanupCompleteMsg struct{}
