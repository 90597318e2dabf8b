package counter

import "github.com/sirupsen/logrus"

// Observer receives animation run lifecycle callbacks.
type Observer interface {
	// OnRunStart is called when Pay creates a run.
	OnRunStart(run Run)
	// OnRunEnd is called when a run finishes (completed=true) or is
	// cancelled or replaced (completed=false). displayed is the value shown
	// at that moment.
	OnRunEnd(run Run, displayed int, completed bool)
}

// NoopObserver ignores every callback. Embed it to implement only some methods.
type NoopObserver struct{}

func (NoopObserver) OnRunStart(Run)          {}
func (NoopObserver) OnRunEnd(Run, int, bool) {}

// MultiObserver fans out callbacks to several observers.
type MultiObserver struct {
	observers []Observer
}

// Ensure MultiObserver implements Observer.
var _ Observer = (*MultiObserver)(nil)

// NewMultiObserver creates a MultiObserver. Nil observers are dropped.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

// safeCall runs fn, swallowing a panic so one observer cannot starve the rest.
func safeCall(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("counter: observer panicked")
		}
	}()
	fn()
}

// OnRunStart forwards the call to all observers.
func (m *MultiObserver) OnRunStart(run Run) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnRunStart(run) })
	}
}

// OnRunEnd forwards the call to all observers.
func (m *MultiObserver) OnRunEnd(run Run, displayed int, completed bool) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnRunEnd(run, displayed, completed) })
	}
}

// LogObserver writes run lifecycle events to a logrus logger.
type LogObserver struct {
	Logger logrus.FieldLogger
}

// Ensure LogObserver implements Observer.
var _ Observer = (*LogObserver)(nil)

// NewLogObserver logs through l, or the standard logger when l is nil.
func NewLogObserver(l logrus.FieldLogger) *LogObserver {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &LogObserver{Logger: l}
}

func (o *LogObserver) OnRunStart(run Run) {
	o.Logger.WithFields(logrus.Fields{
		"start": run.Start,
		"end":   run.End,
	}).Info("counter: run started")
}

func (o *LogObserver) OnRunEnd(run Run, displayed int, completed bool) {
	entry := o.Logger.WithFields(logrus.Fields{
		"start":     run.Start,
		"end":       run.End,
		"displayed": displayed,
	})
	if completed {
		entry.Info("counter: run completed")
		return
	}
	entry.Info("counter: run interrupted")
}
