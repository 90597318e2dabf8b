package customize

import (
	"maps"
	"slices"

	"github.com/sirupsen/logrus"
)

// Op is a pure edit applied to a snapshot.
type Op func(State) State

// Store owns the current snapshot and notifies subscribers after every edit.
// It is not safe for concurrent use; the UI drives it from a single goroutine.
type Store struct {
	current     State
	subscribers map[int]func(State)
	nextID      int
}

// NewStore creates a store holding initial.
func NewStore(initial State) *Store {
	return &Store{
		current:     initial.Clone(),
		subscribers: make(map[int]func(State)),
	}
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() State {
	return s.current
}

// Subscribe registers fn to receive every new snapshot.
// The returned func removes the subscription.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	return func() { delete(s.subscribers, id) }
}

// Apply runs op against the current snapshot, publishes the result and returns it.
// Subscribers are called in the order they subscribed.
func (s *Store) Apply(op Op) State {
	s.current = op(s.current)
	for _, id := range slices.Sorted(maps.Keys(s.subscribers)) {
		if fn, ok := s.subscribers[id]; ok {
			fn(s.current)
		}
	}
	return s.current
}

// SetField replaces title, recipient or buttonText.
func (s *Store) SetField(f Field, value string) State {
	logrus.WithFields(logrus.Fields{"field": f, "value": value}).Debug("customize: set field")
	return s.Apply(func(st State) State { return st.SetField(f, value) })
}

// Toggle flips darkMode or showPoints.
func (s *Store) Toggle(t Toggle) State {
	logrus.WithField("toggle", t).Debug("customize: toggle")
	return s.Apply(func(st State) State { return st.Toggle(t) })
}

// SetCheckField replaces a field of the check at index.
func (s *Store) SetCheckField(index int, f CheckField, value string) State {
	logrus.WithFields(logrus.Fields{"index": index, "field": f, "value": value}).Debug("customize: set check field")
	return s.Apply(func(st State) State { return st.SetCheckField(index, f, value) })
}

// AddCheck appends an empty check.
func (s *Store) AddCheck() State {
	logrus.Debug("customize: add check")
	return s.Apply(State.AddCheck)
}

// RemoveCheck removes the check at index.
func (s *Store) RemoveCheck(index int) State {
	logrus.WithField("index", index).Debug("customize: remove check")
	return s.Apply(func(st State) State { return st.RemoveCheck(index) })
}

// SetPictureSquareField replaces a field of the picture square at index.
func (s *Store) SetPictureSquareField(index int, f SquareField, value string) State {
	logrus.WithFields(logrus.Fields{"index": index, "field": f, "value": value}).Debug("customize: set picture square field")
	return s.Apply(func(st State) State { return st.SetPictureSquareField(index, f, value) })
}

// AddPictureSquare appends an empty picture square.
func (s *Store) AddPictureSquare() State {
	logrus.Debug("customize: add picture square")
	return s.Apply(State.AddPictureSquare)
}

// RemovePictureSquare removes the picture square at index.
func (s *Store) RemovePictureSquare(index int) State {
	logrus.WithField("index", index).Debug("customize: remove picture square")
	return s.Apply(func(st State) State { return st.RemovePictureSquare(index) })
}
