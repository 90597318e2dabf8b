package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFPS is the counter frame rate when none is configured.
const DefaultFPS = 60

// FrameScheduler hands out at most one pending frame at a time.
// Request returns a tea.Cmd that delivers a FrameMsg after one frame
// interval; the receiver calls Received before asking for the next one.
type FrameScheduler struct {
	Interval time.Duration
	pending  bool
}

// NewFrameScheduler creates a scheduler ticking fps times per second.
func NewFrameScheduler(fps int) *FrameScheduler {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &FrameScheduler{Interval: time.Second / time.Duration(fps)}
}

// Request schedules the next frame, or returns nil if one is already pending.
func (s *FrameScheduler) Request() tea.Cmd {
	if s.pending {
		return nil
	}
	s.pending = true
	return tea.Tick(s.Interval, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}

// Received marks the pending frame as delivered.
func (s *FrameScheduler) Received() {
	s.pending = false
}

// Pending reports whether a frame is in flight.
func (s *FrameScheduler) Pending() bool {
	return s.pending
}
