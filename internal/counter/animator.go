// Package counter animates the points badge of the payment widget.
//
// The Animator holds the committed total and the value currently displayed.
// It never schedules anything itself: a frame scheduler calls Tick with the
// frame timestamp until Tick reports that the run is finished. Progress is
// computed from elapsed time, so the frame rate only affects smoothness.
package counter

import (
	"math"
	"time"
)

const (
	// InitialTotal is the points total a fresh animator starts with.
	InitialTotal = 1000
	// Reward is the amount committed by each Pay.
	Reward = 100
	// Duration is the length of one animation run.
	Duration = 2 * time.Second
)

// Ease is the quartic ease-out curve 1-(1-f)^4. f is clamped to [0,1].
func Ease(f float64) float64 {
	f = clamp(f)
	return 1 - math.Pow(1-f, 4)
}

func clamp(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// Phase is the animator's state machine position.
type Phase int

const (
	Idle Phase = iota
	Animating
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Animating:
		return "Animating"
	default:
		return "Unknown"
	}
}

// Run is one in-flight transition from Start to End.
// StartTime is zero until the first Tick observes the run.
type Run struct {
	Start     int
	End       int
	StartTime time.Time
}

// started reports whether a frame has anchored the run in time.
func (r Run) started() bool {
	return !r.StartTime.IsZero()
}

// Animator drives the displayed points value toward the committed total.
// It is not safe for concurrent use.
type Animator struct {
	committed int
	displayed int
	run       *Run

	// Observer receives run lifecycle callbacks. Nil is allowed.
	Observer Observer
}

// NewAnimator creates an idle animator at InitialTotal.
func NewAnimator() *Animator {
	return &Animator{
		committed: InitialTotal,
		displayed: InitialTotal,
	}
}

// Committed returns the authoritative points total.
func (a *Animator) Committed() int { return a.committed }

// Displayed returns the value to show this frame.
func (a *Animator) Displayed() int { return a.displayed }

// Active returns the in-flight run, if any.
func (a *Animator) Active() (Run, bool) {
	if a.run == nil {
		return Run{}, false
	}
	return *a.run, true
}

// Phase returns Animating while a run is in flight, Idle otherwise.
func (a *Animator) Phase() Phase {
	if a.run != nil {
		return Animating
	}
	return Idle
}

// Pay commits Reward and starts a run from the currently displayed value to
// the new total. An in-flight run is replaced, not resumed, so the counter
// never jumps backward.
func (a *Animator) Pay() {
	if a.run != nil {
		a.endRun(false)
	}
	a.committed += Reward
	a.run = &Run{Start: a.displayed, End: a.committed}
	a.observer().OnRunStart(*a.run)
}

// Tick advances the in-flight run to now and reports whether another frame
// is needed. On an idle animator it does nothing and returns false.
func (a *Animator) Tick(now time.Time) bool {
	if a.run == nil {
		return false
	}
	if !a.run.started() {
		a.run.StartTime = now
	}
	f := clamp(float64(now.Sub(a.run.StartTime)) / float64(Duration))
	if f >= 1 {
		a.displayed = a.run.End
		a.endRun(true)
		return false
	}
	next := int(math.Round(float64(a.run.Start) + float64(a.run.End-a.run.Start)*Ease(f)))
	// Out-of-order timestamps must not move the counter backward.
	if next > a.displayed {
		a.displayed = next
	}
	return true
}

// Cancel stops any in-flight run and leaves the displayed value where it is.
func (a *Animator) Cancel() {
	if a.run != nil {
		a.endRun(false)
	}
}

func (a *Animator) endRun(completed bool) {
	r := *a.run
	a.run = nil
	a.observer().OnRunEnd(r, a.displayed, completed)
}

func (a *Animator) observer() Observer {
	if a.Observer == nil {
		return NoopObserver{}
	}
	return a.Observer
}
