// ABOUTME: Store owns the exercise sequence and persists it on every mutation.
// ABOUTME: Writes are queued to one background writer and never retried.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/harperreed/gym/internal/kv"
	"github.com/harperreed/gym/internal/models"
)

// Key is the fixed key the exercise sequence is stored under.
const Key = "exercises"

var (
	// ErrBlankName is returned when adding an exercise with a blank name.
	ErrBlankName = errors.New("exercise name is blank")
	// ErrDuplicateName is returned when an exercise with the same name exists.
	ErrDuplicateName = errors.New("exercise already exists")
	// ErrLoadFailure wraps storage read and decode failures.
	ErrLoadFailure = errors.New("load failure")
	// ErrSaveFailure wraps storage write and encode failures.
	ErrSaveFailure = errors.New("save failure")
	// ErrClosed is returned for writes requested after Close.
	ErrClosed = errors.New("store is closed")
)

type write struct {
	data   []byte
	result *Result
}

// Store is the persisted collection of exercises.
type Store struct {
	backend kv.Backend
	logger  *log.Logger

	mu        sync.RWMutex
	exercises []models.Exercise
	closed    bool

	writes chan write
	wg     sync.WaitGroup
}

// New creates a Store that takes ownership of backend and starts its writer.
// A nil logger discards log output.
func New(backend kv.Backend, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Store{
		backend:   backend,
		logger:    logger,
		exercises: []models.Exercise{},
		writes:    make(chan write, 16),
	}
	s.wg.Add(1)
	go s.writer()
	return s
}

// Load replaces the in-memory sequence with the persisted one. A missing key
// yields an empty sequence. Failures are logged, leave the sequence empty,
// and are returned wrapped in ErrLoadFailure for callers that care.
func (s *Store) Load(ctx context.Context) error {
	data, ok, err := s.backend.Get(ctx, Key)
	if err != nil {
		s.logger.Error("error loading data", "key", Key, "err", err)
		s.reset()
		return fmt.Errorf("%w: %w", ErrLoadFailure, err)
	}
	if !ok {
		s.reset()
		return nil
	}

	exercises, err := Decode(data)
	if err != nil {
		s.logger.Error("error loading data", "key", Key, "err", err)
		s.reset()
		return fmt.Errorf("%w: %w", ErrLoadFailure, err)
	}

	s.mu.Lock()
	s.exercises = exercises
	s.mu.Unlock()

	s.logger.Debug("loaded exercises", "count", len(exercises))
	return nil
}

func (s *Store) reset() {
	s.mu.Lock()
	s.exercises = []models.Exercise{}
	s.mu.Unlock()
}

// Exercises returns a deep copy of the sequence in creation order.
func (s *Store) Exercises() []models.Exercise {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return normalize(s.exercises)
}

// Exercise returns a copy of the first exercise with the given name.
func (s *Store) Exercise(name string) (models.Exercise, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.exercises {
		if e.Name == name {
			return e.Clone(), true
		}
	}
	return models.Exercise{}, false
}

// AddExercise appends a new exercise with an empty history and persists.
// The name is stored as given; blank names and exact duplicates are refused
// without touching the sequence.
func (s *Store) AddExercise(name string) (*Result, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.exercises {
		if e.Name == name {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
	}
	s.exercises = append(s.exercises, models.NewExercise(name))
	return s.persistLocked(), nil
}

// RecordWorkout appends sets as one workout to every exercise named name,
// then persists. Empty sets append an empty workout.
func (s *Store) RecordWorkout(name string, sets []models.SetRecord) *Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.exercises {
		if s.exercises[i].Name == name {
			s.exercises[i].History = append(s.exercises[i].History, models.WorkoutEntry(sets).Clone())
		}
	}
	return s.persistLocked()
}

// persistLocked snapshots the sequence and queues it for writing.
// Must be called with s.mu held so queue order matches mutation order.
func (s *Store) persistLocked() *Result {
	if s.closed {
		return resolved(ErrClosed)
	}

	data, err := Encode(s.exercises)
	if err != nil {
		s.logger.Error("error saving data", "key", Key, "err", err)
		return resolved(fmt.Errorf("%w: %w", ErrSaveFailure, err))
	}

	r := newResult()
	s.writes <- write{data: data, result: r}
	return r
}

func (s *Store) writer() {
	defer s.wg.Done()
	for w := range s.writes {
		if err := s.backend.Set(context.Background(), Key, w.data); err != nil {
			s.logger.Error("error saving data", "key", Key, "err", err)
			w.result.finish(fmt.Errorf("%w: %w", ErrSaveFailure, err))
			continue
		}
		w.result.finish(nil)
	}
}

// Close waits for queued writes, then closes the backend.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.writes)
	s.mu.Unlock()

	s.wg.Wait()
	return s.backend.Close()
}
