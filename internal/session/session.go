// ABOUTME: Session holds the exercise being logged and its staged sets.
// ABOUTME: Two states: Browsing (nothing selected) and Logging.
package session

import (
	"github.com/harperreed/gym/internal/models"
	"github.com/harperreed/gym/internal/store"
)

// State is the session's view state.
type State int

const (
	// Browsing shows the exercise list.
	Browsing State = iota
	// Logging shows set entry for the selected exercise.
	Logging
)

func (s State) String() string {
	switch s {
	case Browsing:
		return "browsing"
	case Logging:
		return "logging"
	default:
		return "unknown"
	}
}

// Recorder commits a finished workout. *store.Store satisfies it.
type Recorder interface {
	RecordWorkout(name string, sets []models.SetRecord) *store.Result
}

// Session is ephemeral and never persisted.
type Session struct {
	recorder Recorder
	selected *models.Exercise
	pending  []models.SetRecord
	reps     string
	weight   string
}

// New creates a Session in the Browsing state.
func New(recorder Recorder) *Session {
	return &Session{recorder: recorder}
}

// State reports Browsing or Logging.
func (s *Session) State() State {
	if s.selected == nil {
		return Browsing
	}
	return Logging
}

// Selected returns a copy of the selected exercise.
func (s *Session) Selected() (models.Exercise, bool) {
	if s.selected == nil {
		return models.Exercise{}, false
	}
	return s.selected.Clone(), true
}

// Pending returns a copy of the staged sets in staging order.
func (s *Session) Pending() []models.SetRecord {
	return append([]models.SetRecord{}, s.pending...)
}

// Reps returns the pending reps field.
func (s *Session) Reps() string { return s.reps }

// Weight returns the pending weight field.
func (s *Session) Weight() string { return s.weight }

// SetReps updates the pending reps field.
func (s *Session) SetReps(v string) { s.reps = v }

// SetWeight updates the pending weight field.
func (s *Session) SetWeight(v string) { s.weight = v }

// Select copies ex into the session and clears staged sets and fields.
// Later changes to the store's copy are not reflected here.
func (s *Session) Select(ex models.Exercise) {
	c := ex.Clone()
	s.selected = &c
	s.pending = nil
	s.reps = ""
	s.weight = ""
}

// StageSet appends a set and clears the pending fields.
// It does nothing and returns false if either value is empty.
func (s *Session) StageSet(reps, weight string) bool {
	if reps == "" || weight == "" {
		return false
	}
	s.pending = append(s.pending, models.NewSetRecord(reps, weight))
	s.reps = ""
	s.weight = ""
	return true
}

// StagePending stages the current pending fields.
func (s *Session) StagePending() bool {
	return s.StageSet(s.reps, s.weight)
}

// Commit records the staged sets against the selected exercise and returns
// to Browsing. It returns nil without recording when nothing is selected.
func (s *Session) Commit() *store.Result {
	if s.selected == nil {
		return nil
	}
	r := s.recorder.RecordWorkout(s.selected.Name, s.Pending())
	s.clear()
	return r
}

// Cancel discards staged sets and returns to Browsing.
func (s *Session) Cancel() {
	s.clear()
}

func (s *Session) clear() {
	s.selected = nil
	s.pending = nil
	s.reps = ""
	s.weight = ""
}
