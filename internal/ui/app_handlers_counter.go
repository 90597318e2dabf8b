package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handlePay handles PayMsg by starting a counter run and asking for a frame.
func (a *appModelAdapter) handlePay() (tea.Model, tea.Cmd) {
	if a.disposed {
		return a, nil
	}
	a.Animator.Pay()
	a.Preview.SetPoints(a.Animator.Displayed())
	a.Status = "Payment sent"
	a.StatusIsError = false
	return a, a.Frames.Request()
}

// handleFrame advances the counter one frame and schedules the next while
// the run is still animating.
func (a *appModelAdapter) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	a.Frames.Received()
	if a.disposed {
		return a, nil
	}
	more := a.Animator.Tick(msg.Time)
	a.Preview.SetPoints(a.Animator.Displayed())
	if !more {
		return a, nil
	}
	return a, a.Frames.Request()
}
