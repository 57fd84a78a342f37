// ABOUTME: Exercise, WorkoutEntry, and SetRecord models for gym logging.
// ABOUTME: Sets are raw text; histories are append-only lists of workouts.
package models

import (
	"fmt"
	"strings"
)

// SetRecord is one reps/weight pair as the user typed it.
// Values are never parsed; "ten" is as valid as "10".
type SetRecord struct {
	Reps   string `json:"reps" yaml:"reps"`
	Weight string `json:"weight" yaml:"weight"`
}

// NewSetRecord creates a SetRecord.
func NewSetRecord(reps, weight string) SetRecord {
	return SetRecord{Reps: reps, Weight: weight}
}

// String renders the set as "<reps>x<weight>".
func (s SetRecord) String() string {
	return fmt.Sprintf("%sx%s", s.Reps, s.Weight)
}

// WorkoutEntry holds every set logged in one save.
type WorkoutEntry []SetRecord

// String renders the entry the way the exercise list shows it: "10x135, 8x145".
func (w WorkoutEntry) String() string {
	parts := make([]string, len(w))
	for i, s := range w {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

// Exercise is a named activity with its workout history, oldest first.
type Exercise struct {
	Name    string         `json:"name" yaml:"name"`
	History []WorkoutEntry `json:"history" yaml:"history"`
}

// NewExercise creates an Exercise with an empty history.
func NewExercise(name string) Exercise {
	return Exercise{Name: name, History: []WorkoutEntry{}}
}

// Last returns the most recent workout, if any.
func (e Exercise) Last() (WorkoutEntry, bool) {
	if len(e.History) == 0 {
		return nil, false
	}
	return e.History[len(e.History)-1], true
}

// Clone returns a deep copy. Mutating the copy never touches e.
func (e Exercise) Clone() Exercise {
	c := Exercise{Name: e.Name, History: make([]WorkoutEntry, len(e.History))}
	for i, w := range e.History {
		c.History[i] = w.Clone()
	}
	return c
}

// Clone returns a copy of the entry that is never nil.
func (w WorkoutEntry) Clone() WorkoutEntry {
	c := make(WorkoutEntry, len(w))
	copy(c, w)
	return c
}
